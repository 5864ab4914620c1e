package api

import (
	"net/http"

	"github.com/phrazzld/hunterprice/internal/api/shared"
)

// HandlerFunc is the signature of the resource handlers. A handler records
// its response with rc.SetResult or returns an error.
type HandlerFunc func(r *http.Request, rc *shared.RequestContext) error

// Handle adapts fn to an http.HandlerFunc. Errors are written as JSON error
// responses. When no body translator ran before the handler, Handle writes
// the recorded result itself.
func Handle(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc, translated := shared.GetRequestContext(r.Context())
		if !translated {
			rc = &shared.RequestContext{}
		}

		if err := fn(r, rc); err != nil {
			HandleAPIError(w, r, err, "")
			return
		}

		if !translated {
			if result, status, ok := rc.Result(); ok {
				shared.RespondWithJSON(w, r, status, result)
			}
		}
	}
}
