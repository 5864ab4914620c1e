package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/hunterprice/internal/domain"
	"github.com/phrazzld/hunterprice/internal/platform/logger"
	"github.com/phrazzld/hunterprice/internal/store"
)

const listColumns = `id, owner, name, description, creation_time`

// listProduct is one row of the lists_products association table.
type listProduct struct {
	ListID    int64 `db:"list_id"`
	ProductID int64 `db:"product_id"`
}

// ListStore implements the store.ListStore interface on a SQL database.
type ListStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewListStore creates a new SQL implementation of the ListStore interface.
// If logger is nil, a default logger will be used.
func NewListStore(db store.DBTX, logger *slog.Logger) *ListStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ListStore{
		db:     db,
		logger: logger.With(slog.String("component", "list_store")),
	}
}

// Ensure ListStore implements store.ListStore interface
var _ store.ListStore = (*ListStore)(nil)

// Create implements store.ListStore.Create
// Returns store.ErrInvalidEntity if the owner doesn't exist (foreign key violation).
func (s *ListStore) Create(ctx context.Context, list *domain.List) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := list.Validate(); err != nil {
		log.Warn("list validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := s.db.Rebind(`
		INSERT INTO lists (owner, name, description, creation_time)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`)
	err := s.db.QueryRowxContext(ctx, query,
		list.Owner, list.Name, list.Description, list.CreationTime.UTC()).
		Scan(&list.ID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during list creation",
				slog.Int64("owner", list.Owner))
			return fmt.Errorf("%w: user with ID %d not found", store.ErrInvalidEntity, list.Owner)
		}
		log.Error("failed to create list",
			slog.String("error", err.Error()),
			slog.Int64("owner", list.Owner))
		return MapError(err)
	}

	log.Info("list created successfully",
		slog.Int64("list_id", list.ID),
		slog.Int64("owner", list.Owner))
	return nil
}

// ListByOwner implements store.ListStore.ListByOwner
func (s *ListStore) ListByOwner(ctx context.Context, ownerID int64) ([]domain.List, error) {
	lists := []domain.List{}
	query := s.db.Rebind(`SELECT ` + listColumns + ` FROM lists WHERE owner = ? ORDER BY id`)
	if err := s.db.SelectContext(ctx, &lists, query, ownerID); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).
			Error("failed to list lists by owner",
				slog.String("error", err.Error()),
				slog.Int64("owner", ownerID))
		return nil, MapError(err)
	}
	return lists, nil
}

// GetByOwner implements store.ListStore.GetByOwner
func (s *ListStore) GetByOwner(ctx context.Context, ownerID, listID int64) (*domain.List, error) {
	var list domain.List
	query := s.db.Rebind(`SELECT ` + listColumns + ` FROM lists WHERE owner = ? AND id = ?`)
	if err := s.db.GetContext(ctx, &list, query, ownerID, listID); err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrNotFound) {
			return nil, store.ErrListNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).
			Error("failed to get list",
				slog.String("error", err.Error()),
				slog.Int64("list_id", listID))
		return nil, mapped
	}
	return &list, nil
}

// Update implements store.ListStore.Update
func (s *ListStore) Update(ctx context.Context, list *domain.List) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := list.Validate(); err != nil {
		log.Warn("list validation failed during update", slog.String("error", err.Error()))
		return err
	}

	query := s.db.Rebind(`
		UPDATE lists
		SET name = ?, description = ?, creation_time = ?
		WHERE id = ?
	`)
	result, err := s.db.ExecContext(ctx, query,
		list.Name, list.Description, list.CreationTime.UTC(), list.ID)
	if err != nil {
		log.Error("failed to update list",
			slog.String("error", err.Error()),
			slog.Int64("list_id", list.ID))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrListNotFound)
}

// Products implements store.ListStore.Products
func (s *ListStore) Products(ctx context.Context, listID int64) ([]domain.Product, error) {
	products := []domain.Product{}
	query := s.db.Rebind(`
		SELECT p.id, p.name, p.description, p.unit, p.amount
		FROM products p
		JOIN lists_products lp ON lp.product_id = p.id
		WHERE lp.list_id = ?
		ORDER BY p.id
	`)
	if err := s.db.SelectContext(ctx, &products, query, listID); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).
			Error("failed to load list products",
				slog.String("error", err.Error()),
				slog.Int64("list_id", listID))
		return nil, MapError(err)
	}
	return products, nil
}

// ReplaceProducts implements store.ListStore.ReplaceProducts
func (s *ListStore) ReplaceProducts(ctx context.Context, listID int64, productIDs []int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	deleteQuery := s.db.Rebind(`DELETE FROM lists_products WHERE list_id = ?`)
	if _, err := s.db.ExecContext(ctx, deleteQuery, listID); err != nil {
		log.Error("failed to clear list products",
			slog.String("error", err.Error()),
			slog.Int64("list_id", listID))
		return MapError(err)
	}

	if len(productIDs) == 0 {
		return nil
	}

	rows := make([]listProduct, 0, len(productIDs))
	for _, id := range productIDs {
		rows = append(rows, listProduct{ListID: listID, ProductID: id})
	}
	_, err := sqlx.NamedExecContext(ctx, s.db,
		`INSERT INTO lists_products (list_id, product_id) VALUES (:list_id, :product_id)`,
		rows)
	if err != nil {
		log.Error("failed to associate list products",
			slog.String("error", err.Error()),
			slog.Int64("list_id", listID),
			slog.Int("count", len(productIDs)))
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrInvalidEntity) {
			return fmt.Errorf("%w: %v", store.ErrProductNotFound, err)
		}
		return mapped
	}
	return nil
}

// WithTx implements store.ListStore.WithTx
func (s *ListStore) WithTx(tx *sqlx.Tx) store.ListStore {
	return &ListStore{db: tx, logger: s.logger}
}
