// Package sqlstore provides SQL implementations of the storage interfaces
// defined in the internal/store package. The same stores run on PostgreSQL
// (pgx driver) and SQLite (go-sqlite3 driver): queries are written with '?'
// placeholders and rebound for the active driver by sqlx. It also owns the
// embedded goose migrations for both dialects.
package sqlstore
