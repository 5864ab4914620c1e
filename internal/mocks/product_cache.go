package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/hunterprice/internal/domain"
	"github.com/phrazzld/hunterprice/internal/service"
)

// MockProductCache is an in-memory service.ProductCache. Setting Err makes
// every operation fail with it.
type MockProductCache struct {
	mu         sync.Mutex
	products   []domain.Product
	cached     bool
	generation int64

	Err error

	Gets          int
	Sets          int
	StaleSets     int
	Invalidations int
}

var _ service.ProductCache = (*MockProductCache)(nil)

// GetProducts implements the service.ProductCache interface
func (m *MockProductCache) GetProducts(ctx context.Context) ([]domain.Product, int64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Gets++
	if m.Err != nil {
		return nil, 0, false, m.Err
	}
	return m.products, m.generation, m.cached, nil
}

// SetProducts implements the service.ProductCache interface
func (m *MockProductCache) SetProducts(ctx context.Context, generation int64, products []domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sets++
	if m.Err != nil {
		return m.Err
	}
	if generation != m.generation {
		m.StaleSets++
		return nil
	}
	m.products = append([]domain.Product(nil), products...)
	m.cached = true
	return nil
}

// Invalidate implements the service.ProductCache interface
func (m *MockProductCache) Invalidate(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Invalidations++
	if m.Err != nil {
		return m.Err
	}
	m.products = nil
	m.cached = false
	m.generation++
	return nil
}
