package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/hunterprice/internal/domain"
	"github.com/phrazzld/hunterprice/internal/platform/logger"
	"github.com/phrazzld/hunterprice/internal/store"
)

// UserStore implements the store.UserStore interface on a SQL database.
type UserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewUserStore creates a new SQL implementation of the UserStore interface.
// If logger is nil, a default logger will be used.
func NewUserStore(db store.DBTX, logger *slog.Logger) *UserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

// Create implements store.UserStore.Create
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create", slog.String("error", err.Error()))
		return err
	}
	if user.PasswordHash == "" {
		return fmt.Errorf("%w: password hash is required", store.ErrInvalidEntity)
	}

	query := s.db.Rebind(`
		INSERT INTO users (name, email, password_hash)
		VALUES (?, ?, ?)
		RETURNING id
	`)
	err := s.db.QueryRowxContext(ctx, query, user.Name, user.Email, user.PasswordHash).
		Scan(&user.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("email already exists during user creation")
			return store.ErrEmailExists
		}
		log.Error("failed to create user", slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("user created successfully", slog.Int64("user_id", user.ID))
	return nil
}

// List implements store.UserStore.List
func (s *UserStore) List(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}
	query := `SELECT id, name, email, password_hash FROM users ORDER BY id`
	if err := s.db.SelectContext(ctx, &users, query); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).
			Error("failed to list users", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return users, nil
}

// GetByEmail implements store.UserStore.GetByEmail
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	query := s.db.Rebind(`SELECT id, name, email, password_hash FROM users WHERE email = ?`)
	if err := s.db.GetContext(ctx, &user, query, email); err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrNotFound) {
			return nil, store.ErrUserNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).
			Error("failed to get user by email", slog.String("error", err.Error()))
		return nil, mapped
	}
	return &user, nil
}

// WithTx implements store.UserStore.WithTx
func (s *UserStore) WithTx(tx *sqlx.Tx) store.UserStore {
	return &UserStore{db: tx, logger: s.logger}
}
