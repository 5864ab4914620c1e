package sqlstore

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var embeddedMigrations embed.FS

// Migration commands understood by Migrator.Run.
const (
	MigrateUp      = "up"
	MigrateDown    = "down"
	MigrateStatus  = "status"
	MigrateVersion = "version"
)

// Migrator applies the embedded schema migrations for one database.
type Migrator struct {
	provider *goose.Provider
	logger   *slog.Logger
}

// NewMigrator creates a Migrator for db, choosing the migration set that
// matches the connection's driver.
func NewMigrator(db *sqlx.DB, logger *slog.Logger) (*Migrator, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var (
		dialect goose.Dialect
		dir     string
	)
	switch db.DriverName() {
	case DriverPostgres:
		dialect, dir = goose.DialectPostgres, "migrations/postgres"
	case DriverSQLite:
		dialect, dir = goose.DialectSQLite3, "migrations/sqlite"
	default:
		return nil, fmt.Errorf("no migrations for database driver %q", db.DriverName())
	}

	sub, err := fs.Sub(embeddedMigrations, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	provider, err := goose.NewProvider(dialect, db.DB, sub)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration provider: %w", err)
	}

	return &Migrator{
		provider: provider,
		logger:   logger.With(slog.String("component", "migrator")),
	}, nil
}

// Run executes a migration command: up, down, status or version.
func (m *Migrator) Run(ctx context.Context, command string) error {
	log := m.logger.With(
		slog.String("correlation_id", uuid.New().String()),
		slog.String("command", command),
	)
	log.Info("running migration command")

	switch command {
	case MigrateUp:
		results, err := m.provider.Up(ctx)
		for _, r := range results {
			logResult(log, r)
		}
		if err != nil {
			return fmt.Errorf("migration up failed: %w", err)
		}
		log.Info("migrations applied", slog.Int("count", len(results)))
	case MigrateDown:
		result, err := m.provider.Down(ctx)
		if result != nil {
			logResult(log, result)
		}
		if err != nil {
			return fmt.Errorf("migration down failed: %w", err)
		}
	case MigrateStatus:
		statuses, err := m.provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("migration status failed: %w", err)
		}
		for _, s := range statuses {
			log.Info("migration status",
				slog.Int64("version", s.Source.Version),
				slog.String("path", s.Source.Path),
				slog.String("state", string(s.State)),
				slog.Time("applied_at", s.AppliedAt))
		}
	case MigrateVersion:
		version, err := m.Version(ctx)
		if err != nil {
			return err
		}
		log.Info("current database version", slog.Int64("version", version))
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}
	return nil
}

// Up applies every pending migration.
func (m *Migrator) Up(ctx context.Context) error {
	return m.Run(ctx, MigrateUp)
}

// Version returns the current schema version.
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	version, err := m.provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get database version: %w", err)
	}
	return version, nil
}

func logResult(log *slog.Logger, r *goose.MigrationResult) {
	if r == nil || r.Source == nil {
		return
	}
	attrs := []any{
		slog.Int64("version", r.Source.Version),
		slog.String("path", r.Source.Path),
		slog.String("direction", r.Direction),
		slog.Duration("duration", r.Duration),
	}
	if r.Error != nil {
		log.Error("migration failed", append(attrs, slog.String("error", r.Error.Error()))...)
		return
	}
	log.Info("migration applied", attrs...)
}
