package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/hunterprice/internal/domain"
	"github.com/phrazzld/hunterprice/internal/mocks"
	"github.com/phrazzld/hunterprice/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var catalog = []domain.Product{
	{ID: 1, Name: "milk", Unit: "l", Amount: 1},
	{ID: 2, Name: "bread", Unit: "pcs", Amount: 2},
}

func TestProductService_ListProductsWithoutCache(t *testing.T) {
	t.Parallel()
	products := &mocks.TestifyMockProductStore{}
	products.On("List", mock.Anything).Return(catalog, nil)

	svc := service.NewProductService(products, nil, nil)
	got, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog, got)
}

func TestProductService_ReadThroughCache(t *testing.T) {
	t.Parallel()
	products := &mocks.TestifyMockProductStore{}
	products.On("List", mock.Anything).Return(catalog, nil)
	products.On("Create", mock.Anything, mock.AnythingOfType("*domain.Product")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Product).ID = 3
		}).
		Return(nil)
	cache := &mocks.MockProductCache{}

	svc := service.NewProductService(products, cache, nil)
	ctx := context.Background()

	for range 3 {
		got, err := svc.ListProducts(ctx)
		require.NoError(t, err)
		assert.Equal(t, catalog, got)
	}
	products.AssertNumberOfCalls(t, "List", 1)
	assert.Equal(t, 1, cache.Sets)

	created, err := svc.CreateProduct(ctx, service.NewProductInput{Name: "eggs", Unit: "pcs", Amount: 12})
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)
	assert.Equal(t, 1, cache.Invalidations)

	_, err = svc.ListProducts(ctx)
	require.NoError(t, err)
	products.AssertNumberOfCalls(t, "List", 2)
}

func TestProductService_InvalidationDuringReadSkipsWriteBack(t *testing.T) {
	t.Parallel()
	cache := &mocks.MockProductCache{}
	withEggs := append(append([]domain.Product{}, catalog...), domain.Product{ID: 3, Name: "eggs"})

	products := &mocks.TestifyMockProductStore{}
	products.On("List", mock.Anything).
		Run(func(args mock.Arguments) {
			// A product is created and the cache invalidated while this read is in flight.
			require.NoError(t, cache.Invalidate(args.Get(0).(context.Context)))
		}).
		Return(catalog, nil).Once()
	products.On("List", mock.Anything).Return(withEggs, nil)

	svc := service.NewProductService(products, cache, nil)
	ctx := context.Background()

	got, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalog, got)
	assert.Equal(t, 1, cache.StaleSets, "the old catalog must not be cached")

	got, err = svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, withEggs, got)
	products.AssertNumberOfCalls(t, "List", 2)

	got, err = svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, withEggs, got)
	products.AssertNumberOfCalls(t, "List", 2)
}

func TestProductService_CacheFailureFallsThrough(t *testing.T) {
	t.Parallel()
	products := &mocks.TestifyMockProductStore{}
	products.On("List", mock.Anything).Return(catalog, nil)
	products.On("Create", mock.Anything, mock.Anything).Return(nil)
	cache := &mocks.MockProductCache{Err: errors.New("redis down")}

	svc := service.NewProductService(products, cache, nil)

	got, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog, got)
	assert.Zero(t, cache.Sets, "no write-back without a known generation")

	_, err = svc.CreateProduct(context.Background(), service.NewProductInput{Name: "eggs"})
	assert.NoError(t, err)
}

func TestProductService_StoreFailure(t *testing.T) {
	t.Parallel()
	products := &mocks.TestifyMockProductStore{}
	products.On("List", mock.Anything).Return(nil, errors.New("connection reset"))
	products.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	svc := service.NewProductService(products, &mocks.MockProductCache{}, nil)

	_, err := svc.ListProducts(context.Background())
	assert.ErrorContains(t, err, "failed to list products")

	_, err = svc.CreateProduct(context.Background(), service.NewProductInput{Name: "eggs"})
	assert.ErrorContains(t, err, "failed to create product")
}
