package testdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/hunterprice/internal/ciutil"
	"github.com/phrazzld/hunterprice/internal/platform/sqlstore"
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

// EnvTestDatabaseURL names the variable holding a PostgreSQL URL for tests.
const EnvTestDatabaseURL = ciutil.EnvTestDBURL

// GetTestDatabaseURL returns the PostgreSQL URL for tests, or "" when unset.
func GetTestDatabaseURL() string {
	return ciutil.GetTestDatabaseURL(nil)
}

// Open returns a freshly migrated in-memory SQLite database private to t.
// The database is closed when the test completes.
func Open(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:test-%s?mode=memory&cache=shared", uuid.NewString())
	return open(t, sqlstore.DriverSQLite, dsn)
}

// OpenPostgres connects to the database named by HUNTERPRICE_TEST_DB_URL and
// applies migrations. The test is skipped when the variable is unset.
func OpenPostgres(t *testing.T) *sqlx.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skip(EnvTestDatabaseURL + " not set - skipping integration test")
	}
	return OpenURL(t, dbURL)
}

// OpenURL connects to a PostgreSQL URL and applies migrations.
func OpenURL(t *testing.T, dbURL string) *sqlx.DB {
	t.Helper()
	return open(t, sqlstore.DriverPostgres, dbURL)
}

func open(t *testing.T, driver, dsn string) *sqlx.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	db, err := sqlstore.Open(ctx, driver, dsn, 5)
	require.NoError(t, err, "Failed to open test database")
	t.Cleanup(func() {
		_ = db.Close()
	})

	migrator, err := sqlstore.NewMigrator(db, nil)
	require.NoError(t, err, "Failed to create migrator")
	require.NoError(t, migrator.Up(ctx), "Failed to run migrations")

	return db
}

// WithTx runs fn inside a transaction that is rolled back afterwards, so
// changes made by the test never persist.
func WithTx(t *testing.T, db *sqlx.DB, fn func(t *testing.T, tx *sqlx.Tx)) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	tx, err := db.BeginTxx(ctx, nil)
	require.NoError(t, err, "Failed to begin transaction")
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("Warning: failed to rollback transaction: %v", err)
		}
	}()

	fn(t, tx)
}
