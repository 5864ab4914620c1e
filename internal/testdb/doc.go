// Package testdb provides utilities for database testing.
//
// Every test gets its own migrated database. By default that is a private
// in-memory SQLite database, so store and API tests need no external
// services. When HUNTERPRICE_TEST_DB_URL is set, OpenPostgres connects to
// that PostgreSQL instance instead and isolates the test in a transaction
// that is rolled back when the test completes.
//
// # Basic Usage
//
//	func TestMyFeature(t *testing.T) {
//	    db := testdb.Open(t)
//	    user := testdb.CreateUser(t, db, "alice@example.com")
//
//	    lists := sqlstore.NewListStore(db, nil)
//	    ...
//	}
//
// Seed helpers (CreateUser, CreateProduct, CreateList) insert rows directly
// through the sqlstore implementations and fail the test on error.
package testdb
