package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/phrazzld/hunterprice/internal/api/shared"
)

// DefaultMaxBodyBytes caps request bodies read by the translator.
const DefaultMaxBodyBytes int64 = 1 << 20

// JSONTranslator decodes JSON request bodies into the typed request context
// and writes handler results as JSON, with the default body limit.
func JSONTranslator(next http.Handler) http.Handler {
	return NewJSONTranslator(DefaultMaxBodyBytes)(next)
}

// NewJSONTranslator returns the body translator with a custom body limit.
//
// Request phase: a request without a body passes through unless it is a POST
// or PUT (400 empty_body). A body that is not valid UTF-8 JSON is rejected
// with 400 malformed_json, and one above maxBytes with 413.
//
// Response phase: if the handler recorded a result in the request context it
// is written as JSON with the recorded status; otherwise the response is left
// as the handler wrote it.
func NewJSONTranslator(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := &shared.RequestContext{}

			if r.ContentLength != 0 && r.Body != nil && r.Body != http.NoBody {
				body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBytes))
				if err != nil {
					var tooLarge *http.MaxBytesError
					if errors.As(err, &tooLarge) {
						shared.RespondWithErrorAndLog(w, r, http.StatusRequestEntityTooLarge,
							shared.CodeBodyTooLarge, "Request body too large", err)
						return
					}
					shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
						shared.CodeBadRequest, "Could not read the request body.", err)
					return
				}

				if len(body) > 0 {
					data, ok := decodeDocument(body)
					if !ok {
						shared.RespondWithError(w, r, http.StatusBadRequest, shared.CodeMalformedJSON,
							"Could not decode the request body. The JSON was incorrect or not encoded as UTF-8.")
						return
					}
					rc.Body = body
					rc.Data = data
				}
			}

			if !rc.HasBody() && hasJSONBody(r.Method) {
				shared.RespondWithError(w, r, http.StatusBadRequest, shared.CodeEmptyBody,
					"Empty request body. A valid JSON document is required.")
				return
			}

			next.ServeHTTP(w, r.WithContext(shared.WithRequestContext(r.Context(), rc)))

			if result, status, ok := rc.Result(); ok {
				shared.RespondWithJSON(w, r, status, result)
			}
		})
	}
}

// decodeDocument parses body as a single UTF-8 JSON document.
func decodeDocument(body []byte) (any, bool) {
	if !utf8.Valid(body) || !json.Valid(body) {
		return nil, false
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var data any
	if err := dec.Decode(&data); err != nil {
		return nil, false
	}
	return data, true
}
