package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/hunterprice/internal/api/shared"
	"github.com/phrazzld/hunterprice/internal/domain"
)

// getPathInt64 extracts an integer from the URL path parameters.
func getPathInt64(r *http.Request, paramName string) (int64, error) {
	raw := chi.URLParam(r, paramName)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidPathParameter, paramName)
	}
	return id, nil
}

// getPathString extracts a string from the URL path parameters. chi matches
// against RawPath when the request has one, so only then is the value still
// escaped.
func getPathString(r *http.Request, paramName string) (string, error) {
	value := chi.URLParam(r, paramName)
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(value)
		if err != nil {
			return "", fmt.Errorf("%w: %s is not a valid path segment", ErrInvalidPathParameter, paramName)
		}
		value = unescaped
	}
	if value == "" {
		return "", fmt.Errorf("%w: %s is not a valid path segment", ErrInvalidPathParameter, paramName)
	}
	return value, nil
}

// decodeBody decodes the translated request body into v and validates it.
func decodeBody(rc *shared.RequestContext, v interface{}) error {
	if !rc.HasBody() {
		return domain.NewValidationError("", "a JSON body is required", domain.ErrInvalidFormat)
	}
	if err := shared.DecodeStrict(rc.Body, v); err != nil {
		return err
	}
	return shared.ValidateRequest(v)
}
