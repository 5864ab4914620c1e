package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/hunterprice/internal/config"
	"github.com/phrazzld/hunterprice/internal/platform/logger"
	"github.com/phrazzld/hunterprice/internal/testdb"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret-that-is-at-least-32-characters"

// testConfig returns a valid configuration for an in-process SQLite server.
func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   8080,
			LogLevel:               "debug",
			ShutdownTimeoutSeconds: 1,
		},
		Database: config.DatabaseConfig{
			Driver:       "sqlite3",
			URL:          "file::memory:",
			MaxOpenConns: 1,
		},
		Cache: config.CacheConfig{TTLSeconds: 60},
	}
}

// testServer wires a complete application against a migrated in-memory
// database and returns it with its router.
type testServer struct {
	app    *application
	db     *sqlx.DB
	router http.Handler
	logs   *logger.TestLogBuffer
}

func newTestServer(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()

	db := testdb.Open(t)
	log, logs := logger.NewTestLogger()

	app, err := newApplication(context.Background(), cfg, log, db)
	require.NoError(t, err)

	return &testServer{app: app, db: db, router: app.setupRouter(), logs: logs}
}

// do performs a JSON API request. Non-empty headers override the defaults.
func (s *testServer) do(t *testing.T, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Accept", "application/json")
	if method == http.MethodPost || method == http.MethodPut {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

// decodeJSON unmarshals a response body into a generic value.
func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}
