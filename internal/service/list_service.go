package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/hunterprice/internal/domain"
	"github.com/phrazzld/hunterprice/internal/store"
)

// NewListInput holds the caller-supplied fields of a new list.
// A nil CreationTime defaults to the creation instant.
type NewListInput struct {
	Name         string
	Description  string
	CreationTime *time.Time
}

// ListService provides shopping list operations scoped to an owner, who is
// identified by email.
type ListService interface {
	// ListsForUser returns the user's lists ordered by id, without products.
	ListsForUser(ctx context.Context, email string) ([]domain.List, error)

	// CreateList creates a list owned by the user. The returned list carries
	// its generated id and an empty, loaded product association.
	CreateList(ctx context.Context, email string, input NewListInput) (*domain.List, error)

	// GetList returns one of the user's lists with its products loaded.
	GetList(ctx context.Context, email string, listID int64) (*domain.List, error)

	// UpdateList applies update to one of the user's lists in a single
	// transaction and returns the list with its products loaded.
	UpdateList(ctx context.Context, email string, listID int64, update domain.ListUpdate) (*domain.List, error)
}

// ListServiceImpl implements the ListService interface
type ListServiceImpl struct {
	userStore    store.UserStore
	listStore    store.ListStore
	productStore store.ProductStore
	db           *sqlx.DB
	timeFunc     func() time.Time
	logger       *slog.Logger
}

// NewListService creates a new ListService
func NewListService(
	userStore store.UserStore,
	listStore store.ListStore,
	productStore store.ProductStore,
	db *sqlx.DB,
	logger *slog.Logger,
) ListService {
	if userStore == nil || listStore == nil || productStore == nil {
		panic("stores cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ListServiceImpl{
		userStore:    userStore,
		listStore:    listStore,
		productStore: productStore,
		db:           db,
		timeFunc:     time.Now,
		logger:       logger.With("component", "list_service"),
	}
}

// resolveOwner looks the owner up by email.
func resolveOwner(ctx context.Context, users store.UserStore, email string) (*domain.User, error) {
	user, err := users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve list owner: %w", err)
	}
	return user, nil
}

// ListsForUser returns the user's lists ordered by id
func (s *ListServiceImpl) ListsForUser(ctx context.Context, email string) ([]domain.List, error) {
	user, err := resolveOwner(ctx, s.userStore, email)
	if err != nil {
		return nil, err
	}

	lists, err := s.listStore.ListByOwner(ctx, user.ID)
	if err != nil {
		s.logger.Error("failed to list lists", "error", err, "user_id", user.ID)
		return nil, fmt.Errorf("failed to list lists: %w", err)
	}
	return lists, nil
}

// CreateList creates a list owned by the user identified by email
func (s *ListServiceImpl) CreateList(
	ctx context.Context,
	email string,
	input NewListInput,
) (*domain.List, error) {
	user, err := resolveOwner(ctx, s.userStore, email)
	if err != nil {
		return nil, err
	}

	list, err := domain.NewList(user.ID, input.Name, input.Description, input.CreationTime, s.timeFunc())
	if err != nil {
		return nil, fmt.Errorf("failed to create list: %w", err)
	}

	if err := s.listStore.Create(ctx, list); err != nil {
		s.logger.Error("failed to save list", "error", err, "user_id", user.ID)
		return nil, fmt.Errorf("failed to create list: %w", err)
	}

	s.logger.Info("list created successfully", "list_id", list.ID, "user_id", user.ID)
	return list, nil
}

// GetList returns one of the user's lists with its products
func (s *ListServiceImpl) GetList(ctx context.Context, email string, listID int64) (*domain.List, error) {
	user, err := resolveOwner(ctx, s.userStore, email)
	if err != nil {
		return nil, err
	}

	list, err := s.listStore.GetByOwner(ctx, user.ID, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve list: %w", err)
	}

	products, err := s.listStore.Products(ctx, list.ID)
	if err != nil {
		s.logger.Error("failed to load list products", "error", err, "list_id", list.ID)
		return nil, fmt.Errorf("failed to load list products: %w", err)
	}
	list.SetProducts(products)
	return list, nil
}

// UpdateList applies a partial update to one of the user's lists.
// If the update replaces products and any referenced product does not exist,
// nothing is written and ErrProductsMissing is returned.
func (s *ListServiceImpl) UpdateList(
	ctx context.Context,
	email string,
	listID int64,
	update domain.ListUpdate,
) (*domain.List, error) {
	if s.db == nil {
		return nil, fmt.Errorf("list updates require a database handle")
	}

	var updated *domain.List
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		lists := s.listStore.WithTx(tx)

		user, err := resolveOwner(ctx, s.userStore.WithTx(tx), email)
		if err != nil {
			return err
		}

		list, err := lists.GetByOwner(ctx, user.ID, listID)
		if err != nil {
			return fmt.Errorf("failed to retrieve list: %w", err)
		}

		if err := list.CheckImmutable(update); err != nil {
			return err
		}

		var products []domain.Product
		if update.ReplaceProducts {
			products, err = s.productStore.WithTx(tx).GetByIDs(ctx, update.ProductIDs)
			if err != nil {
				return fmt.Errorf("failed to look up products: %w", err)
			}
			if len(products) < len(update.ProductIDs) {
				s.logger.Debug("list update references missing products",
					"list_id", list.ID,
					"requested", len(update.ProductIDs),
					"found", len(products))
				return ErrProductsMissing
			}
		}

		list.Apply(update)
		if err := lists.Update(ctx, list); err != nil {
			return fmt.Errorf("failed to update list: %w", err)
		}

		if update.ReplaceProducts {
			if err := lists.ReplaceProducts(ctx, list.ID, domain.ProductIDs(products)); err != nil {
				return fmt.Errorf("failed to replace list products: %w", err)
			}
		} else {
			products, err = lists.Products(ctx, list.ID)
			if err != nil {
				return fmt.Errorf("failed to load list products: %w", err)
			}
		}

		list.SetProducts(products)
		updated = list
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("list updated successfully",
		"list_id", updated.ID,
		"products_replaced", update.ReplaceProducts)
	return updated, nil
}
