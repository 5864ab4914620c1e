package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/hunterprice/internal/domain"
	"github.com/phrazzld/hunterprice/internal/service"
)

// MockUserService implements service.UserService for testing
type MockUserService struct {
	ListUsersFn      func(ctx context.Context) ([]domain.User, error)
	GetUserByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	CreateUserFn     func(ctx context.Context, name, email, password string) (*domain.User, error)

	// Default response values
	Users []domain.User
	User  *domain.User
	Err   error
}

var _ service.UserService = (*MockUserService)(nil)

// ListUsers implements the service.UserService interface
func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	if m.ListUsersFn != nil {
		return m.ListUsersFn(ctx)
	}
	return m.Users, m.Err
}

// GetUserByEmail implements the service.UserService interface
func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetUserByEmailFn != nil {
		return m.GetUserByEmailFn(ctx, email)
	}
	return m.User, m.Err
}

// CreateUser implements the service.UserService interface
func (m *MockUserService) CreateUser(ctx context.Context, name, email, password string) (*domain.User, error) {
	if m.CreateUserFn != nil {
		return m.CreateUserFn(ctx, name, email, password)
	}
	return m.User, m.Err
}

// MockListService implements service.ListService for testing
type MockListService struct {
	ListsForUserFn func(ctx context.Context, email string) ([]domain.List, error)
	CreateListFn   func(ctx context.Context, email string, input service.NewListInput) (*domain.List, error)
	GetListFn      func(ctx context.Context, email string, listID int64) (*domain.List, error)
	UpdateListFn   func(ctx context.Context, email string, listID int64, update domain.ListUpdate) (*domain.List, error)

	// Default response values
	Lists []domain.List
	List  *domain.List
	Err   error

	// Call tracking for verification
	mu            sync.Mutex
	CreateInputs  []service.NewListInput
	UpdateUpdates []domain.ListUpdate
}

var _ service.ListService = (*MockListService)(nil)

// ListsForUser implements the service.ListService interface
func (m *MockListService) ListsForUser(ctx context.Context, email string) ([]domain.List, error) {
	if m.ListsForUserFn != nil {
		return m.ListsForUserFn(ctx, email)
	}
	return m.Lists, m.Err
}

// CreateList implements the service.ListService interface
func (m *MockListService) CreateList(
	ctx context.Context,
	email string,
	input service.NewListInput,
) (*domain.List, error) {
	m.mu.Lock()
	m.CreateInputs = append(m.CreateInputs, input)
	m.mu.Unlock()

	if m.CreateListFn != nil {
		return m.CreateListFn(ctx, email, input)
	}
	return m.List, m.Err
}

// GetList implements the service.ListService interface
func (m *MockListService) GetList(ctx context.Context, email string, listID int64) (*domain.List, error) {
	if m.GetListFn != nil {
		return m.GetListFn(ctx, email, listID)
	}
	return m.List, m.Err
}

// UpdateList implements the service.ListService interface
func (m *MockListService) UpdateList(
	ctx context.Context,
	email string,
	listID int64,
	update domain.ListUpdate,
) (*domain.List, error) {
	m.mu.Lock()
	m.UpdateUpdates = append(m.UpdateUpdates, update)
	m.mu.Unlock()

	if m.UpdateListFn != nil {
		return m.UpdateListFn(ctx, email, listID, update)
	}
	return m.List, m.Err
}

// CreateCalls returns the number of CreateList calls.
func (m *MockListService) CreateCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.CreateInputs)
}

// UpdateCalls returns the number of UpdateList calls.
func (m *MockListService) UpdateCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.UpdateUpdates)
}

// MockProductService implements service.ProductService for testing
type MockProductService struct {
	ListProductsFn  func(ctx context.Context) ([]domain.Product, error)
	CreateProductFn func(ctx context.Context, input service.NewProductInput) (*domain.Product, error)

	// Default response values
	Products []domain.Product
	Product  *domain.Product
	Err      error
}

var _ service.ProductService = (*MockProductService)(nil)

// ListProducts implements the service.ProductService interface
func (m *MockProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if m.ListProductsFn != nil {
		return m.ListProductsFn(ctx)
	}
	return m.Products, m.Err
}

// CreateProduct implements the service.ProductService interface
func (m *MockProductService) CreateProduct(
	ctx context.Context,
	input service.NewProductInput,
) (*domain.Product, error) {
	if m.CreateProductFn != nil {
		return m.CreateProductFn(ctx, input)
	}
	return m.Product, m.Err
}
