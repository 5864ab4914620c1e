// Package ciutil detects CI environments and resolves the environment
// variables tests use to find an external PostgreSQL database.
package ciutil
