package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/arc-self/qhse-service/internal/correlation"
	db "github.com/arc-self/qhse-service/internal/repository/db"
)

// handlerFunc executes the effect of one event type inside the worker's
// per-event transaction. For this system every effect is an audit row.
type handlerFunc func(ctx context.Context, q db.Querier, ev db.OutboxEvent) error

// handlers is the closed registry. Event types outside this map are poison
// and fail with ErrUnknownEventType.
var handlers = map[EventType]handlerFunc{
	EventNCCreated:           auditHandler("NC_CREATED_HANDLED", "NonConformity", "nc_id"),
	EventNCClosed:            auditHandler("NC_CLOSED_HANDLED", "NonConformity", "nc_id"),
	EventSupplierCertUpdated: auditHandler("SUPPLIER_CERT_UPDATED_HANDLED", "Supplier", "supplier_id"),
}

// Dispatcher executes claimed events to completion inside the caller's
// transaction: idempotency gate, handler effect, dedupe marker, DONE.
type Dispatcher struct {
	logger *zap.Logger
	tracer trace.Tracer
}

func NewDispatcher(logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		logger: logger,
		tracer: otel.Tracer("outbox-dispatcher"),
	}
}

// Dispatch processes one claimed event (status=PROCESSING, locked by the
// caller) within the caller's open transaction. All steps commit or roll
// back together: if any step fails there is no audit row, no dedupe marker,
// and no DONE.
func (d *Dispatcher) Dispatch(ctx context.Context, q db.Querier, ev db.OutboxEvent) error {
	ctx, span := d.tracer.Start(ctx, "outbox.dispatch",
		trace.WithAttributes(
			attribute.Int64("outbox.id", ev.ID),
			attribute.String("outbox.event_type", ev.EventType),
		),
	)
	defer span.End()

	// Idempotency gate: a row already in the processed ledger had its effects
	// committed by an earlier life of this event; retire without re-running.
	processed, err := q.IsEventProcessed(ctx, ev.EventID)
	if err != nil {
		return fmt.Errorf("check processed ledger: %w", err)
	}
	if processed {
		d.logger.Info("event already processed, retiring",
			zap.Int64("outbox_id", ev.ID),
			zap.String("event_id", ev.EventID),
		)
		return q.MarkOutboxEventDone(ctx, ev.ID)
	}

	handler, ok := handlers[EventType(ev.EventType)]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEventType, ev.EventType)
	}
	if err := handler(ctx, q, ev); err != nil {
		span.RecordError(err)
		return err
	}

	if err := q.InsertProcessedEvent(ctx, ev.EventID); err != nil {
		return fmt.Errorf("insert processed marker: %w", err)
	}
	return q.MarkOutboxEventDone(ctx, ev.ID)
}

// auditHandler builds the handler for one event type: append an audit row
// with the given action, naming the entity found under idKey in the payload.
func auditHandler(action, entityType, idKey string) handlerFunc {
	return func(ctx context.Context, q db.Querier, ev db.OutboxEvent) error {
		var payload map[string]interface{}
		if err := json.Unmarshal([]byte(ev.Payload), &payload); err != nil {
			return fmt.Errorf("decode payload: %w", err)
		}
		id, ok := payload[idKey]
		if !ok {
			return fmt.Errorf("payload missing %s", idKey)
		}

		meta, err := auditMeta(ctx, ev, payload)
		if err != nil {
			return err
		}
		_, err = q.InsertAuditLog(ctx, db.InsertAuditLogParams{
			Actor:      "system",
			Action:     action,
			EntityType: entityType,
			EntityID:   entityID(id),
			Meta:       meta,
		})
		if err != nil {
			return fmt.Errorf("insert audit row: %w", err)
		}
		return nil
	}
}

// auditMeta merges the event payload with the correlation context. The
// request id recorded in the event meta wins; the handler's ambient id is
// the fallback; with neither, request_id is simply absent.
func auditMeta(ctx context.Context, ev db.OutboxEvent, payload map[string]interface{}) (string, error) {
	merged := make(map[string]interface{}, len(payload)+1)
	for k, v := range payload {
		merged[k] = v
	}
	if _, present := merged["request_id"]; !present {
		rid := ParseMeta(ev.Meta).RequestID
		if rid == "" {
			rid, _ = correlation.RequestID(ctx)
		}
		if rid != "" {
			merged["request_id"] = rid
		}
	}
	out, err := json.Marshal(merged)
	if err != nil {
		return "", fmt.Errorf("marshal audit meta: %w", err)
	}
	return string(out), nil
}

// entityID stringifies the payload id. JSON numbers arrive as float64; audit
// entity ids are stringified integers.
func entityID(v interface{}) string {
	switch id := v.(type) {
	case float64:
		return strconv.FormatInt(int64(id), 10)
	case string:
		return id
	default:
		return fmt.Sprintf("%v", id)
	}
}
