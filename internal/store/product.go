package store

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/hunterprice/internal/domain"
)

// ProductStore defines the interface for product catalog persistence.
type ProductStore interface {
	// Create saves a new product and sets its generated ID.
	Create(ctx context.Context, product *domain.Product) error

	// List returns every product ordered by id.
	List(ctx context.Context) ([]domain.Product, error)

	// GetByIDs returns the existing products among ids, ordered by id.
	// Missing ids are silently absent from the result.
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)

	// WithTx returns a new ProductStore instance that uses the provided transaction.
	WithTx(tx *sqlx.Tx) ProductStore
}
