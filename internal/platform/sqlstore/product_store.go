package sqlstore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/hunterprice/internal/domain"
	"github.com/phrazzld/hunterprice/internal/platform/logger"
	"github.com/phrazzld/hunterprice/internal/store"
)

const productColumns = `id, name, description, unit, amount`

// ProductStore implements the store.ProductStore interface on a SQL database.
type ProductStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewProductStore creates a new SQL implementation of the ProductStore interface.
// If logger is nil, a default logger will be used.
func NewProductStore(db store.DBTX, logger *slog.Logger) *ProductStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductStore{
		db:     db,
		logger: logger.With(slog.String("component", "product_store")),
	}
}

// Ensure ProductStore implements store.ProductStore interface
var _ store.ProductStore = (*ProductStore)(nil)

// Create implements store.ProductStore.Create
func (s *ProductStore) Create(ctx context.Context, product *domain.Product) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := s.db.Rebind(`
		INSERT INTO products (name, description, unit, amount)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`)
	err := s.db.QueryRowxContext(ctx, query,
		product.Name, product.Description, product.Unit, product.Amount).
		Scan(&product.ID)
	if err != nil {
		log.Error("failed to create product", slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("product created successfully", slog.Int64("product_id", product.ID))
	return nil
}

// List implements store.ProductStore.List
func (s *ProductStore) List(ctx context.Context) ([]domain.Product, error) {
	products := []domain.Product{}
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`
	if err := s.db.SelectContext(ctx, &products, query); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).
			Error("failed to list products", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return products, nil
}

// GetByIDs implements store.ProductStore.GetByIDs
func (s *ProductStore) GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	products := []domain.Product{}
	if len(ids) == 0 {
		return products, nil
	}

	query, args, err := sqlx.In(
		`SELECT `+productColumns+` FROM products WHERE id IN (?) ORDER BY id`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build product lookup: %w", err)
	}
	if err := s.db.SelectContext(ctx, &products, s.db.Rebind(query), args...); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).
			Error("failed to get products by id",
				slog.String("error", err.Error()),
				slog.Int("requested", len(ids)))
		return nil, MapError(err)
	}
	return products, nil
}

// WithTx implements store.ProductStore.WithTx
func (s *ProductStore) WithTx(tx *sqlx.Tx) store.ProductStore {
	return &ProductStore{db: tx, logger: s.logger}
}
