package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/phrazzld/hunterprice/internal/store"
)

// PostgreSQL error codes
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
	notNullViolationCode    = "23502"
)

// constraintKind classifies a constraint violation independently of the driver.
type constraintKind int

const (
	constraintNone constraintKind = iota
	constraintUnique
	constraintForeignKey
	constraintCheck
	constraintNotNull
)

// classify inspects err for a PostgreSQL or SQLite constraint violation.
func classify(err error) constraintKind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return constraintUnique
		case foreignKeyViolationCode:
			return constraintForeignKey
		case checkViolationCode:
			return constraintCheck
		case notNullViolationCode:
			return constraintNotNull
		}
		return constraintNone
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return constraintUnique
		case sqlite3.ErrConstraintForeignKey:
			return constraintForeignKey
		case sqlite3.ErrConstraintCheck:
			return constraintCheck
		case sqlite3.ErrConstraintNotNull:
			return constraintNotNull
		}
	}
	return constraintNone
}

// MapError maps a database error to an appropriate store error.
// It wraps the original error to preserve context for logging.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	switch classify(err) {
	case constraintUnique:
		return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
	case constraintForeignKey:
		return fmt.Errorf("%w: foreign key violation: %v", store.ErrInvalidEntity, err)
	case constraintCheck:
		return fmt.Errorf("%w: check constraint violation: %v", store.ErrInvalidEntity, err)
	case constraintNotNull:
		return fmt.Errorf("%w: not null violation: %v", store.ErrInvalidEntity, err)
	}

	return err
}

// IsUniqueViolation reports whether err is a unique constraint violation on either driver.
func IsUniqueViolation(err error) bool {
	return classify(err) == constraintUnique
}

// IsForeignKeyViolation reports whether err is a foreign key violation on either driver.
func IsForeignKeyViolation(err error) bool {
	return classify(err) == constraintForeignKey
}

// CheckRowsAffected examines the number of rows affected by a database operation.
// If no rows were affected, it returns notFound.
func CheckRowsAffected(result sql.Result, notFound error) error {
	if result == nil {
		return fmt.Errorf("nil result provided to CheckRowsAffected")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		if notFound == nil {
			return store.ErrNotFound
		}
		return notFound
	}

	return nil
}
