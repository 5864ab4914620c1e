package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/hunterprice/internal/api/shared"
	"github.com/phrazzld/hunterprice/internal/domain"
	"github.com/phrazzld/hunterprice/internal/service"
	"github.com/phrazzld/hunterprice/internal/service/auth"
	"github.com/phrazzld/hunterprice/internal/store"
)

// ErrInvalidPathParameter is returned when a path parameter cannot be parsed.
var ErrInvalidPathParameter = errors.New("invalid path parameter")

// isBadRequest reports whether err describes a client mistake in the request data.
func isBadRequest(err error) bool {
	return errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrUnknownField) ||
		errors.Is(err, domain.ErrInvalidFormat) ||
		errors.Is(err, domain.ErrInvalidID) ||
		errors.Is(err, store.ErrInvalidEntity) ||
		errors.Is(err, ErrInvalidPathParameter) ||
		errors.Is(err, auth.ErrMissingToken) ||
		errors.Is(err, auth.ErrMalformedHeader)
}

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusInternalServerError

	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized

	// Not found errors, including products referenced by a list update
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case isBadRequest(err):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// ErrorCode returns the machine-readable code sent with an error response.
func ErrorCode(err error) string {
	switch MapErrorToStatusCode(err) {
	case http.StatusUnauthorized:
		return shared.CodeUnauthorized
	case http.StatusNotFound:
		return shared.CodeNotFound
	case http.StatusConflict:
		return shared.CodeConflict
	case http.StatusBadRequest:
		var verr *domain.ValidationError
		switch {
		case errors.Is(err, ErrInvalidPathParameter):
			return shared.CodeInvalidParameter
		case errors.As(err, &verr):
			return shared.CodeInvalidField
		default:
			return shared.CodeBadRequest
		}
	default:
		return shared.CodeInternal
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	// Validation messages are composed from field names and fixed text only.
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken):
		return "Invalid token"
	case errors.Is(err, auth.ErrMissingToken):
		return "Authorization header is required"
	case errors.Is(err, auth.ErrMalformedHeader):
		return "Authorization header must be '<scheme> <token>'"

	// Not found errors
	case errors.Is(err, service.ErrProductsMissing):
		return "One or more products not found"
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, store.ErrListNotFound):
		return "List not found"
	case errors.Is(err, store.ErrProductNotFound):
		return "Product not found"
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"
	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"
	case errors.Is(err, ErrInvalidPathParameter):
		return "Invalid path parameter"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the JSON error response for err and logs the
// redacted details. A non-empty fallback replaces the generic message of
// internal errors.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallback != "" {
		message = fallback
	}
	shared.RespondWithErrorAndLog(w, r, status, ErrorCode(err), message, err)
}
