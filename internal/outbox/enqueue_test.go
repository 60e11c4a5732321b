package outbox_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/arc-self/qhse-service/internal/correlation"
	"github.com/arc-self/qhse-service/internal/outbox"
	db "github.com/arc-self/qhse-service/internal/repository/db"
	"github.com/arc-self/qhse-service/internal/repository/mock"
)

func capturedInsert(t *testing.T, mockQ *mock.MockQuerier) *db.InsertOutboxEventParams {
	t.Helper()
	captured := &db.InsertOutboxEventParams{}
	mockQ.EXPECT().InsertOutboxEvent(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.InsertOutboxEventParams) (db.OutboxEvent, error) {
			*captured = arg
			return db.OutboxEvent{ID: 1, EventID: arg.EventID, EventType: arg.EventType}, nil
		})
	return captured
}

func TestEnqueue_PropagatesAmbientRequestID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockQ := mock.NewMockQuerier(ctrl)
	captured := capturedInsert(t, mockQ)

	ctx := correlation.WithRequestID(context.Background(), "test-rid-123")
	ev, err := outbox.Enqueue(ctx, mockQ, outbox.EventNCCreated, map[string]interface{}{
		"nc_id":       int64(7),
		"supplier_id": int64(3),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, ev.EventID)
	assert.Equal(t, "NC_CREATED", captured.EventType)

	var meta map[string]string
	require.True(t, captured.Meta.Valid)
	require.NoError(t, json.Unmarshal([]byte(captured.Meta.String), &meta))
	assert.Equal(t, "test-rid-123", meta["request_id"])

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(captured.Payload), &payload))
	assert.Equal(t, "test-rid-123", payload["request_id"])
	assert.Equal(t, float64(7), payload["nc_id"])
}

func TestEnqueue_PayloadRequestIDNotOverwritten(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockQ := mock.NewMockQuerier(ctrl)
	captured := capturedInsert(t, mockQ)

	ctx := correlation.WithRequestID(context.Background(), "ambient-rid")
	_, err := outbox.Enqueue(ctx, mockQ, outbox.EventNCClosed, map[string]interface{}{
		"nc_id":      int64(1),
		"request_id": "explicit-rid",
	})
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(captured.Payload), &payload))
	assert.Equal(t, "explicit-rid", payload["request_id"])
}

func TestEnqueue_NoAmbientRequestID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockQ := mock.NewMockQuerier(ctrl)
	captured := capturedInsert(t, mockQ)

	_, err := outbox.Enqueue(context.Background(), mockQ, outbox.EventSupplierCertUpdated, map[string]interface{}{
		"supplier_id": int64(5),
	})
	require.NoError(t, err)

	var meta map[string]string
	require.NoError(t, json.Unmarshal([]byte(captured.Meta.String), &meta))
	_, present := meta["request_id"]
	assert.False(t, present)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(captured.Payload), &payload))
	_, present = payload["request_id"]
	assert.False(t, present)
}

func TestEnqueue_UniqueEventIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockQ := mock.NewMockQuerier(ctrl)

	seen := map[string]struct{}{}
	mockQ.EXPECT().InsertOutboxEvent(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.InsertOutboxEventParams) (db.OutboxEvent, error) {
			seen[arg.EventID] = struct{}{}
			return db.OutboxEvent{EventID: arg.EventID}, nil
		}).Times(10)

	for i := 0; i < 10; i++ {
		_, err := outbox.Enqueue(context.Background(), mockQ, outbox.EventNCCreated, map[string]interface{}{"nc_id": int64(i)})
		require.NoError(t, err)
	}
	assert.Len(t, seen, 10)
}
