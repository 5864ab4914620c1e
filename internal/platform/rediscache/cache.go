// Package rediscache provides a Redis-backed read-through cache for the
// product catalog.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/phrazzld/hunterprice/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	// ProductsKey is the Redis key holding the serialized product catalog.
	ProductsKey = "hunterprice:products:all"

	// GenerationKey counts invalidations of the catalog. A catalog read from
	// the store is only written back if the generation has not moved since.
	GenerationKey = "hunterprice:products:generation"
)

// ProductCache caches the full product catalog in Redis.
type ProductCache struct {
	client            *redis.Client
	ttl               time.Duration
	logger            *slog.Logger
	createdInternally bool
}

// New connects to the Redis server at url (redis://host:port/db) and
// verifies the connection with a ping.
func New(ctx context.Context, url string, ttl time.Duration, logger *slog.Logger) (*ProductCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	cache := NewWithClient(client, ttl, logger)
	cache.createdInternally = true
	return cache, nil
}

// NewWithClient wraps an existing client. The caller keeps ownership of it.
func NewWithClient(client *redis.Client, ttl time.Duration, logger *slog.Logger) *ProductCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductCache{
		client: client,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "product_cache")),
	}
}

// GetProducts returns the cached catalog and the current generation.
// found is false when nothing is cached.
func (c *ProductCache) GetProducts(
	ctx context.Context,
) (products []domain.Product, generation int64, found bool, err error) {
	vals, err := c.client.MGet(ctx, ProductsKey, GenerationKey).Result()
	if err != nil {
		return nil, 0, false, fmt.Errorf("redis MGet error for key '%s': %w", ProductsKey, err)
	}

	generation, err = parseGeneration(vals[1])
	if err != nil {
		return nil, 0, false, err
	}

	raw, ok := vals[0].(string)
	if !ok {
		c.logger.Debug("product cache miss", slog.Int64("generation", generation))
		return nil, generation, false, nil
	}

	products, err = decodeProducts([]byte(raw))
	if err != nil {
		return nil, generation, false, err
	}
	c.logger.Debug("product cache hit", slog.Int("count", len(products)))
	return products, generation, true, nil
}

// SetProducts stores the catalog with the configured TTL, provided no
// invalidation has happened since generation was read. A skipped write is
// not an error.
func (c *ProductCache) SetProducts(ctx context.Context, generation int64, products []domain.Product) error {
	raw, err := encodeProducts(products)
	if err != nil {
		return err
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, GenerationKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("redis Get error for key '%s': %w", GenerationKey, err)
		}
		if current != generation {
			c.logger.Debug("skipping stale product cache write",
				slog.Int64("read_generation", generation),
				slog.Int64("current_generation", current))
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, ProductsKey, raw, c.ttl)
			return nil
		})
		return err
	}, GenerationKey)

	if errors.Is(err, redis.TxFailedErr) {
		c.logger.Debug("product cache invalidated during write")
		return nil
	}
	if err != nil {
		return fmt.Errorf("redis Set error for key '%s': %w", ProductsKey, err)
	}
	return nil
}

// Invalidate drops the cached catalog and advances the generation.
func (c *ProductCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, GenerationKey)
		pipe.Del(ctx, ProductsKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis invalidation error for key '%s': %w", ProductsKey, err)
	}
	return nil
}

// Close closes the underlying client if New created it.
func (c *ProductCache) Close() error {
	if c.createdInternally && c.client != nil {
		return c.client.Close()
	}
	return nil
}

// cachedProduct is the cache representation of a product.
type cachedProduct struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Unit        string `json:"unit"`
	Amount      int64  `json:"amount"`
}

func encodeProducts(products []domain.Product) ([]byte, error) {
	rows := make([]cachedProduct, len(products))
	for i, p := range products {
		rows[i] = cachedProduct(p)
	}
	raw, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to encode products: %w", err)
	}
	return raw, nil
}

func decodeProducts(raw []byte) ([]domain.Product, error) {
	var rows []cachedProduct
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode cached products: %w", err)
	}
	products := make([]domain.Product, len(rows))
	for i, r := range rows {
		products[i] = domain.Product(r)
	}
	return products, nil
}

// parseGeneration reads the generation counter from an MGET reply slot.
func parseGeneration(v any) (int64, error) {
	raw, ok := v.(string)
	if !ok {
		return 0, nil
	}
	generation, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value for key '%s': %w", GenerationKey, err)
	}
	return generation, nil
}
