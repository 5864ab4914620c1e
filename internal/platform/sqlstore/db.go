package sqlstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	// Register the drivers selectable through database.driver.
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Supported values for the database.driver setting.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

const pingTimeout = 5 * time.Second

// Open connects to the database with the given driver and verifies the
// connection. SQLite connections get foreign key enforcement switched on
// and are limited to a single connection, so in-memory databases stay
// shared and writes are serialized.
func Open(ctx context.Context, driver, url string, maxOpenConns int) (*sqlx.DB, error) {
	switch driver {
	case DriverPostgres:
	case DriverSQLite:
		url = sqliteDSN(url)
		maxOpenConns = 1
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
		db.SetMaxIdleConns(maxOpenConns)
	}
	db.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// sqliteDSN appends the foreign key pragma to dsn unless the caller set it.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=1"
}
