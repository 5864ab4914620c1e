package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/hunterprice/internal/domain"
	"github.com/phrazzld/hunterprice/internal/service/auth"
	"github.com/phrazzld/hunterprice/internal/store"
)

// UserService provides user-related operations
type UserService interface {
	// ListUsers returns every user ordered by id
	ListUsers(ctx context.Context) ([]domain.User, error)

	// GetUserByEmail retrieves a user by their email address
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// CreateUser creates a new user, storing a hash of the password
	CreateUser(ctx context.Context, name, email, password string) (*domain.User, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	logger    *slog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	logger *slog.Logger,
) UserService {
	if userStore == nil {
		panic("userStore cannot be nil")
	}
	if hasher == nil {
		hasher = auth.NewBcryptHasher(0)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UserServiceImpl{
		userStore: userStore,
		hasher:    hasher,
		logger:    logger.With("component", "user_service"),
	}
}

// ListUsers returns every user ordered by id
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUserByEmail retrieves a user by their email address
func (s *UserServiceImpl) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found by email")
		} else {
			s.logger.Error("failed to retrieve user by email", "error", err)
		}
		return nil, fmt.Errorf("failed to retrieve user by email: %w", err)
	}

	s.logger.Debug("retrieved user by email successfully", "user_id", user.ID)
	return user, nil
}

// CreateUser creates a new user with the specified name, email and password
func (s *UserServiceImpl) CreateUser(
	ctx context.Context,
	name, email, password string,
) (*domain.User, error) {
	user, err := domain.NewUser(name, email, password)
	if err != nil {
		s.logger.Debug("invalid user data", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	user.PasswordHash = hash

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("attempted to create user with existing email")
		} else {
			s.logger.Error("failed to save user to database", "error", err)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	user.Password = ""

	s.logger.Info("user created successfully", "user_id", user.ID)
	return user, nil
}
