// Package correlation carries the request id that ties an HTTP request, the
// outbox events it produces, and the audit rows the worker writes for them
// into one traceable chain. The id travels as an explicit context value; the
// HTTP middleware installs it per request and the worker installs it per
// event from the outbox meta.
package correlation

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

// RequestIDKey is the context key for the correlation/request id.
const RequestIDKey contextKey = "request_id"

// DefaultHeader is the HTTP header the id is read from and echoed back on.
const DefaultHeader = "X-Request-Id"

// WithRequestID returns a new context with the request id set.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, RequestIDKey, rid)
}

// RequestID extracts the request id from the context.
func RequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(RequestIDKey).(string)
	return v, ok && v != ""
}

// NewRequestID mints a fresh opaque request id for requests that arrive
// without one.
func NewRequestID() string {
	return uuid.NewString()
}

// NewBatchID mints the worker-side fallback id used when an event carries no
// request id of its own. The "worker:" prefix keeps worker-originated log
// lines groupable per poll iteration.
func NewBatchID() string {
	return "worker:" + uuid.NewString()
}
