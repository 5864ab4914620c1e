package store

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/hunterprice/internal/domain"
)

// ListStore defines the interface for shopping list persistence, including
// the list-product association.
type ListStore interface {
	// Create saves a new list and sets its generated ID.
	// Returns ErrInvalidEntity if the owner does not exist.
	Create(ctx context.Context, list *domain.List) error

	// ListByOwner returns the owner's lists ordered by id, without products.
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.List, error)

	// GetByOwner retrieves the list with the given id among the owner's lists.
	// Returns ErrListNotFound if there is no such list or another user owns it.
	GetByOwner(ctx context.Context, ownerID, listID int64) (*domain.List, error)

	// Update writes the list's scalar fields.
	// Returns ErrListNotFound if the list does not exist.
	Update(ctx context.Context, list *domain.List) error

	// Products returns the products associated with the list ordered by id.
	Products(ctx context.Context, listID int64) ([]domain.Product, error)

	// ReplaceProducts makes productIDs the list's complete association.
	// Callers must run it in a transaction to keep the replacement atomic.
	ReplaceProducts(ctx context.Context, listID int64, productIDs []int64) error

	// WithTx returns a new ListStore instance that uses the provided transaction.
	WithTx(tx *sqlx.Tx) ListStore
}
