package service

import (
	"fmt"

	"github.com/phrazzld/hunterprice/internal/store"
)

// Common service errors - sentinel errors used across service implementations.
// Callers check them with errors.Is; the API layer maps them to HTTP status codes.
var (
	// ErrProductsMissing indicates a list update referenced products that do not exist.
	// It wraps store.ErrProductNotFound, so the API layer maps it to 404 Not Found.
	ErrProductsMissing = fmt.Errorf("%w: one or more products do not exist", store.ErrProductNotFound)
)
