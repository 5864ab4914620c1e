package shared

import (
	"context"
	"encoding/json"
	"net/http"
)

// RequestContext is the typed state one request carries through the JSON
// pipeline. The body translator fills Body and Data before the handler runs;
// the handler records its result with SetResult, and the translator writes
// that result as JSON once the handler returns.
type RequestContext struct {
	// Body is the raw JSON document sent by the client, nil when the request had no body.
	Body json.RawMessage

	// Data is Body decoded into generic JSON values (numbers as json.Number).
	Data any

	result    any
	status    int
	hasResult bool
}

// HasBody reports whether the request carried a JSON document.
func (rc *RequestContext) HasBody() bool {
	return rc != nil && len(rc.Body) > 0
}

// SetResult records the value to serialize and the status to send.
func (rc *RequestContext) SetResult(status int, result any) {
	rc.result = result
	rc.status = status
	rc.hasResult = true
}

// Result returns the recorded result, its status and whether one was set.
func (rc *RequestContext) Result() (any, int, bool) {
	status := rc.status
	if status == 0 {
		status = http.StatusOK
	}
	return rc.result, status, rc.hasResult
}

// WithRequestContext stores rc in ctx.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, RequestContextKey, rc)
}

// GetRequestContext returns the RequestContext stored in ctx, if any.
func GetRequestContext(ctx context.Context) (*RequestContext, bool) {
	rc, ok := ctx.Value(RequestContextKey).(*RequestContext)
	return rc, ok && rc != nil
}
