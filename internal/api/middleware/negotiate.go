package middleware

import (
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/phrazzld/hunterprice/internal/api/shared"
)

const jsonMediaType = "application/json"

// RequireJSON rejects requests whose Accept header does not admit JSON
// responses (406) and POST or PUT requests whose body is not declared as
// JSON (415).
func RequireJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !AcceptsJSON(r.Header.Values("Accept")) {
			shared.RespondWithError(w, r, http.StatusNotAcceptable, shared.CodeNotAcceptable,
				"This API only supports responses encoded as JSON.")
			return
		}

		if hasJSONBody(r.Method) && !IsJSONContentType(r.Header.Get("Content-Type")) {
			shared.RespondWithError(w, r, http.StatusUnsupportedMediaType, shared.CodeUnsupportedMediaType,
				"This API only supports requests encoded as JSON.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// hasJSONBody reports whether requests with method must carry a JSON body.
func hasJSONBody(method string) bool {
	return method == http.MethodPost || method == http.MethodPut
}

// AcceptsJSON reports whether the Accept header values admit application/json.
// A missing header admits everything.
func AcceptsJSON(values []string) bool {
	seen := false
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			seen = true

			mediaType, params, err := mime.ParseMediaType(part)
			if err != nil {
				continue
			}
			if q, ok := params["q"]; ok {
				if weight, err := strconv.ParseFloat(q, 64); err != nil || weight <= 0 {
					continue
				}
			}
			switch mediaType {
			case jsonMediaType, "application/*", "*/*":
				return true
			}
		}
	}
	return !seen
}

// IsJSONContentType reports whether a Content-Type header declares JSON.
// Parameters such as charset are allowed.
func IsJSONContentType(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == jsonMediaType
}
