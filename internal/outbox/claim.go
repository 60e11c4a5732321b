package outbox

import (
	"context"
	"slices"
	"time"

	db "github.com/arc-self/qhse-service/internal/repository/db"
)

// Claim atomically reserves up to limit eligible events for workerID and
// returns their ids in ascending order. Eligible means PENDING, or
// PROCESSING with a lock older than lockTimeout (reclaim of a crashed
// worker's rows). Claimed rows are flipped to PROCESSING with attempts+1 in
// one statement; the inner SELECT uses FOR UPDATE SKIP LOCKED so concurrent
// workers never observe the same row and never block each other.
//
// Attempts count claims, not handler invocations, so a crash loop between
// claim and dispatch still burns the event's retry budget.
func Claim(ctx context.Context, q db.Querier, workerID string, limit int, lockTimeout time.Duration) ([]int64, error) {
	ids, err := q.ClaimOutboxEvents(ctx, db.ClaimOutboxEventsParams{
		WorkerID:        workerID,
		LockTimeoutSecs: int32(lockTimeout / time.Second),
		BatchLimit:      int32(limit),
	})
	if err != nil {
		return nil, err
	}
	// RETURNING rows from an UPDATE carry no order guarantee; the inner
	// ORDER BY only bounds which rows are claimed.
	slices.Sort(ids)
	return ids, nil
}
