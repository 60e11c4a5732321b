// Package worker drains the outbox: it polls, claims a batch, dispatches
// each event in its own transaction, and applies the requeue-or-fail policy.
// One cooperative loop per process; horizontal scaling is more processes
// sharing the database, coordinated only by the claim's row locks.
package worker

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/arc-self/qhse-service/internal/correlation"
	"github.com/arc-self/qhse-service/internal/outbox"
	db "github.com/arc-self/qhse-service/internal/repository/db"
)

// DB is the transaction source. *pgxpool.Pool satisfies it.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Options tune one worker process.
type Options struct {
	ID           string
	BatchSize    int
	LockTimeout  time.Duration
	MaxAttempts  int
	PollInterval time.Duration
}

// Worker is the outbox poll loop.
type Worker struct {
	db         DB
	querier    db.Querier
	dispatcher *outbox.Dispatcher
	opts       Options
	logger     *zap.Logger
	metrics    *Metrics
}

// New constructs a Worker. querier must be pool-backed (used outside
// transactions, for the health gauges); per-event work always runs on
// transaction-scoped queriers.
func New(dbh DB, querier db.Querier, logger *zap.Logger, metrics *Metrics, opts Options) *Worker {
	if opts.ID == "" {
		opts.ID = "worker"
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 10
	}
	if opts.LockTimeout <= 0 {
		opts.LockTimeout = 30 * time.Second
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 5
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = time.Second
	}
	return &Worker{
		db:         dbh,
		querier:    querier,
		dispatcher: outbox.NewDispatcher(logger),
		opts:       opts,
		logger:     logger,
		metrics:    metrics,
	}
}

// Run polls until ctx is cancelled. Cancellation takes effect at loop-top
// boundaries only: in-flight transactions run on a detached context so a
// clean shutdown never strands an event in PROCESSING.
func (w *Worker) Run(ctx context.Context) {
	w.logger.Info("outbox worker started",
		zap.String("worker_id", w.opts.ID),
		zap.Int("batch_size", w.opts.BatchSize),
		zap.Duration("lock_timeout", w.opts.LockTimeout),
		zap.Int("max_attempts", w.opts.MaxAttempts),
	)

	ticker := time.NewTicker(w.opts.PollInterval)
	defer ticker.Stop()

	for {
		w.iterate(context.WithoutCancel(ctx))

		select {
		case <-ctx.Done():
			w.logger.Info("outbox worker stopping")
			return
		case <-ticker.C:
		}
	}
}

// iterate runs one observed poll: claim, dispatch batch, refresh gauges.
func (w *Worker) iterate(ctx context.Context) {
	ctx = correlation.WithRequestID(ctx, correlation.NewBatchID())

	start := time.Now()
	n, err := w.RunOnce(ctx)
	w.metrics.PollDuration.Observe(time.Since(start).Seconds())

	switch {
	case err != nil:
		w.metrics.PollIterations.WithLabelValues("error").Inc()
		w.logger.Error("poll iteration failed", zap.Error(err))
	case n > 0:
		w.metrics.PollIterations.WithLabelValues("ok").Inc()
		w.logger.Info("poll iteration done", zap.Int("processed", n))
	default:
		w.metrics.PollIterations.WithLabelValues("empty").Inc()
	}
}

// RunOnce claims one batch and dispatches each claimed event in its own
// transaction, in ascending id order. It returns the number of successfully
// dispatched events; per-event failures are absorbed by the failure policy
// and never abort the batch.
func (w *Worker) RunOnce(ctx context.Context) (int, error) {
	ids, err := w.claimBatch(ctx)
	if err != nil {
		return 0, err
	}

	processed := 0
	for _, id := range ids {
		if w.processEvent(ctx, id) {
			processed++
		}
	}

	w.refreshGauges(ctx)
	return processed, nil
}

// claimBatch reserves eligible events in a dedicated transaction.
func (w *Worker) claimBatch(ctx context.Context) ([]int64, error) {
	tx, err := w.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	ids, err := outbox.Claim(ctx, db.New(tx), w.opts.ID, w.opts.BatchSize, w.opts.LockTimeout)
	if err != nil {
		return nil, err
	}
	return ids, tx.Commit(ctx)
}

// processEvent loads and dispatches one claimed event in a fresh transaction.
// Returns true iff the event was dispatched and committed.
func (w *Worker) processEvent(ctx context.Context, id int64) bool {
	tx, err := w.db.Begin(ctx)
	if err != nil {
		w.logger.Error("begin event tx failed", zap.Int64("outbox_id", id), zap.Error(err))
		return false
	}
	defer tx.Rollback(ctx)
	qtx := db.New(tx)

	// Row-lock the event for the life of the dispatch transaction so a
	// concurrent reclaim blocks until we commit or roll back.
	ev, err := qtx.GetOutboxEventForUpdate(ctx, id)
	if err != nil {
		w.logger.Warn("claimed event not loadable, dropping",
			zap.Int64("outbox_id", id), zap.Error(err))
		return false
	}
	// The row may have been reclaimed or finished since we claimed it.
	if ev.Status != outbox.StatusProcessing || ev.LockedBy.String != w.opts.ID {
		w.logger.Warn("claimed event no longer ours, dropping",
			zap.Int64("outbox_id", id),
			zap.String("status", ev.Status),
			zap.String("locked_by", ev.LockedBy.String),
		)
		return false
	}

	// Derive the event's own correlation context so handler effects and logs
	// carry the originating request id, not this worker's batch id.
	meta := outbox.ParseMeta(ev.Meta)
	evCtx := ctx
	if meta.RequestID != "" {
		evCtx = correlation.WithRequestID(ctx, meta.RequestID)
	}
	evCtx = meta.ExtractTrace(evCtx)

	start := time.Now()
	err = w.dispatcher.Dispatch(evCtx, qtx, ev)
	w.metrics.JobDuration.WithLabelValues(ev.EventType).Observe(time.Since(start).Seconds())

	if err == nil {
		err = tx.Commit(ctx)
		if err == nil {
			w.metrics.JobsProcessed.WithLabelValues("success", ev.EventType).Inc()
			rid, _ := correlation.RequestID(evCtx)
			w.logger.Info("event processed",
				zap.Int64("outbox_id", ev.ID),
				zap.String("event_id", ev.EventID),
				zap.String("event_type", ev.EventType),
				zap.String("request_id", rid),
			)
			return true
		}
	}

	w.metrics.JobsProcessed.WithLabelValues("failed", ev.EventType).Inc()
	w.logger.Error("event dispatch failed",
		zap.Int64("outbox_id", ev.ID),
		zap.String("event_type", ev.EventType),
		zap.String("status", ev.Status),
		zap.Int32("attempts", ev.Attempts),
		zap.Error(err),
	)

	// The event transaction must be fully rolled back before the release
	// transaction touches the row.
	if rerr := tx.Rollback(ctx); rerr != nil && !errors.Is(rerr, pgx.ErrTxClosed) {
		w.logger.Error("event tx rollback failed", zap.Int64("outbox_id", ev.ID), zap.Error(rerr))
	}
	w.release(ctx, ev)
	return false
}

// release applies the failure policy in a new transaction: requeue as
// PENDING while the attempt budget lasts, retire as FAILED once it is spent.
// Attempts are never reset; the counter is cumulative over the event's life.
// The update only touches rows this worker still owns, so a lock that
// expired mid-dispatch cannot clobber a row another worker has reclaimed or
// already finished.
func (w *Worker) release(ctx context.Context, ev db.OutboxEvent) {
	status := releaseStatus(ev.Attempts, int32(w.opts.MaxAttempts))

	tx, err := w.db.Begin(ctx)
	if err != nil {
		w.logger.Error("begin release tx failed", zap.Int64("outbox_id", ev.ID), zap.Error(err))
		return
	}
	defer tx.Rollback(ctx)

	if err := db.New(tx).ReleaseOutboxEvent(ctx, db.ReleaseOutboxEventParams{
		ID:       ev.ID,
		Status:   status,
		WorkerID: w.opts.ID,
	}); err != nil {
		w.logger.Error("release event failed", zap.Int64("outbox_id", ev.ID), zap.Error(err))
		return
	}
	if err := tx.Commit(ctx); err != nil {
		w.logger.Error("commit release tx failed", zap.Int64("outbox_id", ev.ID), zap.Error(err))
		return
	}

	if status == outbox.StatusFailed {
		w.logger.Error("event permanently failed, operator attention required",
			zap.Int64("outbox_id", ev.ID),
			zap.String("event_type", ev.EventType),
			zap.Int32("attempts", ev.Attempts),
		)
	}
}

// releaseStatus decides requeue vs permanent failure from the claim-based
// attempt counter.
func releaseStatus(attempts, maxAttempts int32) string {
	if attempts >= maxAttempts {
		return outbox.StatusFailed
	}
	return outbox.StatusPending
}

// refreshGauges updates the outbox backlog gauges after each poll.
func (w *Worker) refreshGauges(ctx context.Context) {
	backlog, err := w.querier.CountOutboxUnprocessed(ctx)
	if err != nil {
		w.logger.Error("refresh backlog gauge failed", zap.Error(err))
		return
	}
	w.metrics.Unprocessed.Set(float64(backlog))

	oldest, err := w.querier.OldestUnprocessedCreatedAt(ctx)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		w.metrics.OldestAge.Set(0)
	case err != nil:
		w.logger.Error("refresh oldest-age gauge failed", zap.Error(err))
	case oldest.Valid:
		w.metrics.OldestAge.Set(time.Since(oldest.Time).Seconds())
	default:
		w.metrics.OldestAge.Set(0)
	}

	failed, err := w.querier.CountOutboxByStatus(ctx, outbox.StatusFailed)
	if err != nil {
		w.logger.Error("refresh failed gauge failed", zap.Error(err))
		return
	}
	w.metrics.Failed.Set(float64(failed))

	ledger, err := w.querier.CountProcessedEvents(ctx)
	if err != nil {
		w.logger.Error("refresh ledger gauge failed", zap.Error(err))
		return
	}
	w.metrics.ProcessedTotal.Set(float64(ledger))
}
