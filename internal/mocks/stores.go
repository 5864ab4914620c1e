package mocks

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/hunterprice/internal/domain"
	"github.com/phrazzld/hunterprice/internal/store"
	"github.com/stretchr/testify/mock"
)

// TestifyMockUserStore is a mock of store.UserStore interface for use with testify/mock
type TestifyMockUserStore struct {
	mock.Mock
}

var _ store.UserStore = (*TestifyMockUserStore)(nil)

// Create is a mock implementation of store.UserStore.Create
func (m *TestifyMockUserStore) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// List is a mock implementation of store.UserStore.List
func (m *TestifyMockUserStore) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]domain.User)
	return users, args.Error(1)
}

// GetByEmail is a mock implementation of store.UserStore.GetByEmail
func (m *TestifyMockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// WithTx is a mock implementation of store.UserStore.WithTx; it returns the mock itself.
func (m *TestifyMockUserStore) WithTx(tx *sqlx.Tx) store.UserStore {
	return m
}

// TestifyMockListStore is a mock of store.ListStore interface for use with testify/mock
type TestifyMockListStore struct {
	mock.Mock
}

var _ store.ListStore = (*TestifyMockListStore)(nil)

// Create is a mock implementation of store.ListStore.Create
func (m *TestifyMockListStore) Create(ctx context.Context, list *domain.List) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

// ListByOwner is a mock implementation of store.ListStore.ListByOwner
func (m *TestifyMockListStore) ListByOwner(ctx context.Context, ownerID int64) ([]domain.List, error) {
	args := m.Called(ctx, ownerID)
	lists, _ := args.Get(0).([]domain.List)
	return lists, args.Error(1)
}

// GetByOwner is a mock implementation of store.ListStore.GetByOwner
func (m *TestifyMockListStore) GetByOwner(ctx context.Context, ownerID, listID int64) (*domain.List, error) {
	args := m.Called(ctx, ownerID, listID)
	if list, ok := args.Get(0).(*domain.List); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update is a mock implementation of store.ListStore.Update
func (m *TestifyMockListStore) Update(ctx context.Context, list *domain.List) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

// Products is a mock implementation of store.ListStore.Products
func (m *TestifyMockListStore) Products(ctx context.Context, listID int64) ([]domain.Product, error) {
	args := m.Called(ctx, listID)
	products, _ := args.Get(0).([]domain.Product)
	return products, args.Error(1)
}

// ReplaceProducts is a mock implementation of store.ListStore.ReplaceProducts
func (m *TestifyMockListStore) ReplaceProducts(ctx context.Context, listID int64, productIDs []int64) error {
	args := m.Called(ctx, listID, productIDs)
	return args.Error(0)
}

// WithTx is a mock implementation of store.ListStore.WithTx; it returns the mock itself.
func (m *TestifyMockListStore) WithTx(tx *sqlx.Tx) store.ListStore {
	return m
}

// TestifyMockProductStore is a mock of store.ProductStore interface for use with testify/mock
type TestifyMockProductStore struct {
	mock.Mock
}

var _ store.ProductStore = (*TestifyMockProductStore)(nil)

// Create is a mock implementation of store.ProductStore.Create
func (m *TestifyMockProductStore) Create(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

// List is a mock implementation of store.ProductStore.List
func (m *TestifyMockProductStore) List(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]domain.Product)
	return products, args.Error(1)
}

// GetByIDs is a mock implementation of store.ProductStore.GetByIDs
func (m *TestifyMockProductStore) GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	args := m.Called(ctx, ids)
	products, _ := args.Get(0).([]domain.Product)
	return products, args.Error(1)
}

// WithTx is a mock implementation of store.ProductStore.WithTx; it returns the mock itself.
func (m *TestifyMockProductStore) WithTx(tx *sqlx.Tx) store.ProductStore {
	return m
}
