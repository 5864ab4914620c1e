package ciutil

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/phrazzld/hunterprice/internal/redact"
)

// Defaults applied to test database URLs in CI, matching the postgres
// service container of the pipeline.
const (
	StandardCIUser     = "postgres"
	StandardCIPassword = "postgres"
	StandardCIPort     = "5432"
	StandardCIDatabase = "hunterprice_test"
	StandardCIOptions  = "sslmode=disable"
)

// GetTestDatabaseURL returns the PostgreSQL URL integration tests should
// use, checking HUNTERPRICE_TEST_DB_URL, HUNTERPRICE_DATABASE_URL and
// DATABASE_URL in that order. In CI the URL is standardized. It returns ""
// when none is set.
func GetTestDatabaseURL(logger *slog.Logger) string {
	dbURL := GetEnvWithFallbacks([]string{EnvTestDBURL, EnvDatabaseURL, EnvPlainDBURL}, "", logger)
	if dbURL == "" || !IsCI() {
		return dbURL
	}

	standardized, err := StandardizeDatabaseURL(dbURL)
	if err != nil {
		if logger != nil {
			logger.Error("failed to standardize database URL",
				"error", err,
				"url", redact.String(dbURL))
		}
		return dbURL
	}
	return standardized
}

// StandardizeDatabaseURL rewrites a postgres URL to the CI credentials and
// fills in a missing port, database name and options. Other schemes are
// returned unchanged.
func StandardizeDatabaseURL(dbURL string) (string, error) {
	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse database URL: %w", err)
	}
	if parsed.Scheme != "postgres" && parsed.Scheme != "postgresql" {
		return dbURL, nil
	}

	std := *parsed
	std.User = url.UserPassword(StandardCIUser, StandardCIPassword)

	host := parsed.Hostname()
	if parsed.Port() == "" && (host == "" || host == "localhost" || host == "127.0.0.1") {
		if host == "" {
			host = "localhost"
		}
		std.Host = host + ":" + StandardCIPort
	}
	if strings.TrimPrefix(parsed.Path, "/") == "" {
		std.Path = "/" + StandardCIDatabase
	}
	if parsed.RawQuery == "" {
		std.RawQuery = StandardCIOptions
	}

	return std.String(), nil
}
