package outbox_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/arc-self/qhse-service/internal/outbox"
	db "github.com/arc-self/qhse-service/internal/repository/db"
	"github.com/arc-self/qhse-service/internal/repository/mock"
)

func TestClaim_ForwardsParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockQ := mock.NewMockQuerier(ctrl)

	mockQ.EXPECT().ClaimOutboxEvents(gomock.Any(), db.ClaimOutboxEventsParams{
		WorkerID:        "w1",
		LockTimeoutSecs: 30,
		BatchLimit:      10,
	}).Return([]int64{1, 2}, nil)

	ids, err := outbox.Claim(context.Background(), mockQ, "w1", 10, 30*time.Second)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids)
}

func TestClaim_SortsReturnedIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockQ := mock.NewMockQuerier(ctrl)

	// The UPDATE's RETURNING clause may hand rows back in plan order, not
	// id order.
	mockQ.EXPECT().ClaimOutboxEvents(gomock.Any(), gomock.Any()).
		Return([]int64{3, 1, 5, 2}, nil)

	ids, err := outbox.Claim(context.Background(), mockQ, "w1", 10, 30*time.Second)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 5}, ids)
}

func TestClaim_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockQ := mock.NewMockQuerier(ctrl)

	boom := errors.New("deadlock detected")
	mockQ.EXPECT().ClaimOutboxEvents(gomock.Any(), gomock.Any()).Return(nil, boom)

	_, err := outbox.Claim(context.Background(), mockQ, "w1", 10, 30*time.Second)
	assert.ErrorIs(t, err, boom)
}
