package service

import "context"

type contextKey string

const requestIDContextKey contextKey = "request_id"

// WithRequestID returns a context carrying the request id, used to
// correlate quote audit records with HTTP requests.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDContextKey, requestID)
}

// RequestIDFromContext returns the request id stored in the context,
// or an empty string.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDContextKey).(string); ok {
		return id
	}
	return ""
}
