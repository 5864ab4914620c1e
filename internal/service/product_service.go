package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/hunterprice/internal/domain"
	"github.com/phrazzld/hunterprice/internal/store"
)

// ProductCache is a read-through cache of the full product catalog.
type ProductCache interface {
	// GetProducts returns the cached catalog and the cache generation;
	// found is false on a miss.
	GetProducts(ctx context.Context) (products []domain.Product, generation int64, found bool, err error)

	// SetProducts stores a catalog read from the store at generation. The
	// write is dropped if the cache was invalidated since.
	SetProducts(ctx context.Context, generation int64, products []domain.Product) error

	// Invalidate drops the cached catalog and advances the generation.
	Invalidate(ctx context.Context) error
}

// NewProductInput holds the fields of a new product.
type NewProductInput struct {
	Name        string
	Description string
	Unit        string
	Amount      int64
}

// ProductService provides product catalog operations
type ProductService interface {
	// ListProducts returns every product ordered by id
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// CreateProduct adds a product to the catalog
	CreateProduct(ctx context.Context, input NewProductInput) (*domain.Product, error)
}

// ProductServiceImpl implements the ProductService interface
type ProductServiceImpl struct {
	productStore store.ProductStore
	cache        ProductCache
	logger       *slog.Logger
}

// NewProductService creates a new ProductService. cache may be nil, in which
// case every read goes to the store.
func NewProductService(
	productStore store.ProductStore,
	cache ProductCache,
	logger *slog.Logger,
) ProductService {
	if productStore == nil {
		panic("productStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductServiceImpl{
		productStore: productStore,
		cache:        cache,
		logger:       logger.With("component", "product_service"),
	}
}

// ListProducts returns every product, from the cache when possible.
// Cache failures are logged and fall through to the store.
func (s *ProductServiceImpl) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var generation int64
	cacheUsable := false
	if s.cache != nil {
		products, gen, found, err := s.cache.GetProducts(ctx)
		switch {
		case err != nil:
			s.logger.Warn("product cache read failed", "error", err)
		case found:
			return products, nil
		default:
			generation = gen
			cacheUsable = true
		}
	}

	products, err := s.productStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list products", "error", err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	if cacheUsable {
		if err := s.cache.SetProducts(ctx, generation, products); err != nil {
			s.logger.Warn("product cache write failed", "error", err)
		}
	}
	return products, nil
}

// CreateProduct adds a product and invalidates the cached catalog
func (s *ProductServiceImpl) CreateProduct(
	ctx context.Context,
	input NewProductInput,
) (*domain.Product, error) {
	product := domain.NewProduct(input.Name, input.Description, input.Unit, input.Amount)
	if err := s.productStore.Create(ctx, product); err != nil {
		s.logger.Error("failed to save product", "error", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("product cache invalidation failed", "error", err)
		}
	}

	s.logger.Info("product created successfully", "product_id", product.ID)
	return product, nil
}
