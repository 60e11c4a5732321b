package outbox

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/arc-self/qhse-service/internal/correlation"
	db "github.com/arc-self/qhse-service/internal/repository/db"
)

// Enqueue appends one PENDING event to the caller's open transaction: pass
// the transaction-scoped querier (db.New(tx)), never a pool-backed one. If
// the caller rolls back, no event is visible — that is the whole point.
//
// The ambient request id is copied into meta (transport/observability) and
// into the payload when absent (downstream semantic use); the current trace
// context is injected into meta as a W3C traceparent.
func Enqueue(ctx context.Context, q db.Querier, eventType EventType, payload map[string]interface{}) (db.OutboxEvent, error) {
	body := make(map[string]interface{}, len(payload)+1)
	for k, v := range payload {
		body[k] = v
	}

	meta := map[string]string{}
	if rid, ok := correlation.RequestID(ctx); ok {
		meta["request_id"] = rid
		if _, present := body["request_id"]; !present {
			body["request_id"] = rid
		}
	}

	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	if tp := carrier.Get("traceparent"); tp != "" {
		meta["traceparent"] = tp
	}

	payloadJSON, err := json.Marshal(body)
	if err != nil {
		return db.OutboxEvent{}, fmt.Errorf("marshal payload: %w", err)
	}
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return db.OutboxEvent{}, fmt.Errorf("marshal meta: %w", err)
	}

	ev, err := q.InsertOutboxEvent(ctx, db.InsertOutboxEventParams{
		EventID:   uuid.NewString(),
		EventType: string(eventType),
		Payload:   string(payloadJSON),
		Meta:      pgtype.Text{String: string(metaJSON), Valid: true},
	})
	if err != nil {
		return db.OutboxEvent{}, fmt.Errorf("insert outbox event: %w", err)
	}
	return ev, nil
}
