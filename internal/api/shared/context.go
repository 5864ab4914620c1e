package shared

import (
	"context"

	"github.com/google/uuid"
)

// Key type for context values
type ContextKey string

// Context keys for various values
const (
	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// RequestContextKey is the key for the typed per-request state
	RequestContextKey ContextKey = "requestContext"

	// ClaimsSubjectKey is the key for the subject of a verified token
	ClaimsSubjectKey ContextKey = "tokenSubject"
)

// SetTraceID adds a new random trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return WithTraceID(ctx, uuid.NewString())
}

// WithTraceID stores an existing trace ID in the context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// WithSubject stores the subject of a verified token in the context.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, ClaimsSubjectKey, subject)
}

// GetSubject returns the subject of the verified token, if any.
func GetSubject(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(ClaimsSubjectKey).(string)
	return subject, ok
}
