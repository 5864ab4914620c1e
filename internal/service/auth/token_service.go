// Package auth verifies and issues the bearer tokens that guard the API,
// and hashes user passwords.
package auth

import (
	"context"
	"strings"
	"time"
)

// TokenService defines operations for verifying and issuing HS256 tokens.
type TokenService interface {
	// ValidateToken verifies the token signature and returns its claims.
	// Time-based claims (exp, nbf, iat) are not enforced.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// GenerateToken signs a token for subject.
	GenerateToken(ctx context.Context, subject string) (string, error)
}

// Claims represents the claims read from a verified token.
type Claims struct {
	Subject  string    `json:"sub,omitempty"`
	IssuedAt time.Time `json:"iat,omitempty"`
	ID       string    `json:"jti,omitempty"`
}

// ParseAuthorizationHeader extracts the token from an Authorization header
// of the form "<scheme> <token>". Any scheme is accepted.
func ParseAuthorizationHeader(header string) (string, error) {
	if strings.TrimSpace(header) == "" {
		return "", ErrMissingToken
	}
	fields := strings.Fields(header)
	if len(fields) != 2 {
		return "", ErrMalformedHeader
	}
	return fields[1], nil
}
