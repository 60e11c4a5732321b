package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/arc-self/qhse-service/internal/outbox"
	"github.com/arc-self/qhse-service/internal/repository/mock"
)

// failingDB always refuses to open a transaction, simulating an unreachable
// database.
type failingDB struct{ err error }

func (f failingDB) Begin(context.Context) (pgx.Tx, error) { return nil, f.err }

func newTestWorker(t *testing.T, dbh DB, ctrl *gomock.Controller) (*Worker, *mock.MockQuerier, *Metrics) {
	t.Helper()
	mockQ := mock.NewMockQuerier(ctrl)
	metrics := NewMetrics(prometheus.NewRegistry())
	w := New(dbh, mockQ, zaptest.NewLogger(t), metrics, Options{ID: "w1"})
	return w, mockQ, metrics
}

func TestReleaseStatus(t *testing.T) {
	cases := []struct {
		attempts, max int32
		want          string
	}{
		{1, 5, outbox.StatusPending},
		{4, 5, outbox.StatusPending},
		{5, 5, outbox.StatusFailed},
		{7, 5, outbox.StatusFailed},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, releaseStatus(tc.attempts, tc.max))
	}
}

func TestNew_AppliesDefaults(t *testing.T) {
	w := New(failingDB{}, nil, zaptest.NewLogger(t), NewMetrics(prometheus.NewRegistry()), Options{})
	assert.Equal(t, "worker", w.opts.ID)
	assert.Equal(t, 10, w.opts.BatchSize)
	assert.Equal(t, 30*time.Second, w.opts.LockTimeout)
	assert.Equal(t, 5, w.opts.MaxAttempts)
	assert.Equal(t, time.Second, w.opts.PollInterval)
}

func TestRunOnce_ClaimFailureSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("connection refused")
	w, _, _ := newTestWorker(t, failingDB{err: boom}, ctrl)

	_, err := w.RunOnce(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestIterate_ClassifiesErrorOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, _, metrics := newTestWorker(t, failingDB{err: errors.New("down")}, ctrl)
	w.iterate(context.Background())

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.PollIterations.WithLabelValues("error")))
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.PollIterations.WithLabelValues("ok")))
}

func TestRefreshGauges_Backlog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, mockQ, metrics := newTestWorker(t, failingDB{}, ctrl)

	created := pgtype.Timestamptz{Time: time.Now().Add(-90 * time.Second), Valid: true}
	mockQ.EXPECT().CountOutboxUnprocessed(gomock.Any()).Return(int64(3), nil)
	mockQ.EXPECT().OldestUnprocessedCreatedAt(gomock.Any()).Return(created, nil)
	mockQ.EXPECT().CountOutboxByStatus(gomock.Any(), outbox.StatusFailed).Return(int64(2), nil)
	mockQ.EXPECT().CountProcessedEvents(gomock.Any()).Return(int64(40), nil)

	w.refreshGauges(context.Background())

	assert.Equal(t, float64(3), testutil.ToFloat64(metrics.Unprocessed))
	age := testutil.ToFloat64(metrics.OldestAge)
	require.InDelta(t, 90, age, 5)
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.Failed))
	assert.Equal(t, float64(40), testutil.ToFloat64(metrics.ProcessedTotal))
}

func TestRefreshGauges_EmptyOutbox(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, mockQ, metrics := newTestWorker(t, failingDB{}, ctrl)

	mockQ.EXPECT().CountOutboxUnprocessed(gomock.Any()).Return(int64(0), nil)
	mockQ.EXPECT().OldestUnprocessedCreatedAt(gomock.Any()).Return(pgtype.Timestamptz{}, pgx.ErrNoRows)
	mockQ.EXPECT().CountOutboxByStatus(gomock.Any(), outbox.StatusFailed).Return(int64(0), nil)
	mockQ.EXPECT().CountProcessedEvents(gomock.Any()).Return(int64(0), nil)

	w.refreshGauges(context.Background())

	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.Unprocessed))
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.OldestAge))
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.Failed))
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.ProcessedTotal))
}

func TestRun_StopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, _, _ := newTestWorker(t, failingDB{err: errors.New("down")}, ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("worker did not stop on cancellation")
	}
}
