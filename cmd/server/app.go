package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/hunterprice/internal/config"
	"github.com/phrazzld/hunterprice/internal/platform/rediscache"
	"github.com/phrazzld/hunterprice/internal/platform/sqlstore"
	"github.com/phrazzld/hunterprice/internal/service"
	"github.com/phrazzld/hunterprice/internal/service/auth"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sqlx.DB

	// Optional product catalog cache; nil when cache.redis_url is empty.
	cache *rediscache.ProductCache

	userService    service.UserService
	listService    service.ListService
	productService service.ProductService

	// Nil when auth is disabled.
	tokenService auth.TokenService
}

// newApplication creates a new application instance with all dependencies initialized.
// It accepts core dependencies like configuration, logger, and database connection that
// must be established before application initialization.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sqlx.DB) (*application, error) {
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	if cfg.Auth.Enabled {
		tokens, err := auth.NewTokenService(cfg.Auth)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize token service: %w", err)
		}
		app.tokenService = tokens
		logger.Info("token authentication enabled")
	}

	var productCache service.ProductCache
	if cfg.Cache.RedisURL != "" {
		cache, err := rediscache.New(ctx, cfg.Cache.RedisURL,
			time.Duration(cfg.Cache.TTLSeconds)*time.Second, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize product cache: %w", err)
		}
		app.cache = cache
		productCache = cache
		logger.Info("product cache enabled", "ttl_seconds", cfg.Cache.TTLSeconds)
	}

	userStore := sqlstore.NewUserStore(db, logger)
	listStore := sqlstore.NewListStore(db, logger)
	productStore := sqlstore.NewProductStore(db, logger)

	app.userService = service.NewUserService(userStore, nil, logger)
	app.listService = service.NewListService(userStore, listStore, productStore, db, logger)
	app.productService = service.NewProductService(productStore, productCache, logger)

	logger.Info("application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.cache != nil {
		if err := app.cache.Close(); err != nil {
			app.logger.Error("error closing product cache", "error", err)
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}
