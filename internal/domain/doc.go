// Package domain contains the core business entities of the shopping-list
// service: users, their lists, and the product catalog. It is independent of
// any specific infrastructure or delivery mechanism.
package domain
