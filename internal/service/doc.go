// Package service provides application-level services for users, shopping
// lists and products. Services resolve owners by email, check that referenced
// entities exist and run multi-step mutations in a single transaction. They
// depend only on the store interfaces, so handlers can be tested with mocks.
package service
