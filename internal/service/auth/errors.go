package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrMalformedHeader indicates an Authorization header that is not "<scheme> <token>"
	ErrMalformedHeader = errors.New("authorization header must be '<scheme> <token>'")

	// ErrSecretTooShort indicates a signing secret below config.MinJWTSecretLength
	ErrSecretTooShort = errors.New("jwt secret is too short")
)
