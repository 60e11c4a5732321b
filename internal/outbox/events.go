// Package outbox implements the transactional-outbox protocol: enqueue
// inside a business transaction, atomic claim with stale-lock reclaim, and
// idempotent dispatch into the audit trail.
package outbox

import "errors"

// EventType is the closed set of business events this system emits.
type EventType string

const (
	EventNCCreated           EventType = "NC_CREATED"
	EventNCClosed            EventType = "NC_CLOSED"
	EventSupplierCertUpdated EventType = "SUPPLIER_CERT_UPDATED"
)

// Outbox row statuses.
const (
	StatusPending    = "PENDING"
	StatusProcessing = "PROCESSING"
	StatusDone       = "DONE"
	StatusFailed     = "FAILED"
)

// ErrUnknownEventType marks events whose type has no registered handler.
// Such events are poison: they retry until the attempt budget is spent and
// then retire as FAILED.
var ErrUnknownEventType = errors.New("unknown event type")
