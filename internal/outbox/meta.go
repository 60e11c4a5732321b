package outbox

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgtype"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// EventMeta is the correlation envelope stored alongside each outbox event.
// It stays opaque JSON text at the storage boundary and is parsed only when
// the worker needs it.
type EventMeta struct {
	RequestID   string `json:"request_id,omitempty"`
	Traceparent string `json:"traceparent,omitempty"`
	// TraceParent is a legacy alias some producers used for the same value.
	TraceParent string `json:"trace_parent,omitempty"`
}

// ParseMeta decodes the meta column. Absent or malformed meta yields the
// zero value; a bad envelope must never poison the event itself.
func ParseMeta(raw pgtype.Text) EventMeta {
	var m EventMeta
	if !raw.Valid || raw.String == "" {
		return m
	}
	_ = json.Unmarshal([]byte(raw.String), &m)
	return m
}

// carrier returns the W3C traceparent value, honoring the legacy alias.
func (m EventMeta) carrier() string {
	if m.Traceparent != "" {
		return m.Traceparent
	}
	return m.TraceParent
}

// ExtractTrace reconstructs the remote span context recorded at enqueue time
// so worker-side spans link back to the originating request's trace.
func (m EventMeta) ExtractTrace(ctx context.Context) context.Context {
	tp := m.carrier()
	if tp == "" {
		return ctx
	}
	return otel.GetTextMapPropagator().Extract(ctx, propagation.MapCarrier{"traceparent": tp})
}
