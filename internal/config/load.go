package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load,
// e.g. HUNTERPRICE_SERVER_PORT or HUNTERPRICE_DATABASE_URL.
const EnvPrefix = "HUNTERPRICE"

// Load configuration from environment variables and optionally a config file.
// Environment variables take precedence over values from config files.
// An empty configFile searches for config.yaml in the working directory and
// in $HOME/.hunterprice; a missing file is not an error in that case.
// Returns a populated Config struct or an error if loading/validation fails.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.hunterprice")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only applies to keys viper already knows about, so every
	// key without a default has to be bound explicitly.
	for _, key := range []string{"database.url", "auth.jwt_secret", "cache.redis_url"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks struct tags and the cross-field rules tags cannot express.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if cfg.Auth.Enabled && len(cfg.Auth.JWTSecret) < MinJWTSecretLength {
		return fmt.Errorf("config validation failed: auth.jwt_secret must be at least %d characters",
			MinJWTSecretLength)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.shutdown_timeout_seconds", 10)
	v.SetDefault("database.driver", "pgx")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("auth.enabled", false)
	v.SetDefault("cache.ttl_seconds", 60)
}
