package mocks

import (
	"context"

	"github.com/phrazzld/hunterprice/internal/service/auth"
)

// MockTokenService implements auth.TokenService for testing
type MockTokenService struct {
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)
	GenerateTokenFn func(ctx context.Context, subject string) (string, error)

	// Fixed fields for simple cases
	ValidToken string       // ValidateToken accepts only this token when set
	Claims     *auth.Claims // Claims returned for accepted tokens
	Token      string       // Token returned by GenerateToken
	Err        error
}

var _ auth.TokenService = (*MockTokenService)(nil)

// ValidateToken implements the auth.TokenService interface
func (m *MockTokenService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.ValidToken != "" && tokenString != m.ValidToken {
		return nil, auth.ErrInvalidToken
	}
	if m.Claims == nil {
		return &auth.Claims{Subject: "test"}, nil
	}
	return m.Claims, nil
}

// GenerateToken implements the auth.TokenService interface
func (m *MockTokenService) GenerateToken(ctx context.Context, subject string) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, subject)
	}
	return m.Token, m.Err
}
