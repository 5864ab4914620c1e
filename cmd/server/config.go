package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/hunterprice/internal/config"
)

// loadAppConfig loads the application configuration from environment variables or config file.
// Returns the loaded config and any loading error.
func loadAppConfig(configFile string) (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Debug("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_driver", cfg.Database.Driver,
		"auth_enabled", cfg.Auth.Enabled,
		"cache_enabled", cfg.Cache.RedisURL != "")
	return cfg, nil
}
