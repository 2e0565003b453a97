package albums

import (
	"context"
	"fmt"
	"testing"

	"stack-manager/core/photos"
	"stack-manager/core/photos/mocks"
	"stack-manager/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func albumClient() *mocks.Client {
	client := new(mocks.Client)
	client.On("ListAlbums", mock.Anything).Return([]photos.AlbumSummary{
		{ID: "al1", AlbumName: "Holiday", Order: photos.OrderDesc},
		{ID: "al2", AlbumName: "Family", Order: photos.OrderAsc},
		{ID: "al3", AlbumName: "Pets", Order: photos.OrderDesc},
	}, nil)
	return client
}

func TestService_Plan(t *testing.T) {
	client := albumClient()
	plan, err := NewService(client, zap.NewNop()).Plan(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, StepOrder, plan.Step)
	assert.Equal(t, 3, plan.Summary.Inspected)
	assert.Equal(t, 2, plan.Summary.Actions[reconcile.ActionOrderAlbum])
	client.AssertNotCalled(t, "UpdateAlbumOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Plan_InvalidOrder(t *testing.T) {
	client := new(mocks.Client)
	_, err := NewService(client, zap.NewNop()).Plan(context.Background(), "sideways")
	assert.ErrorIs(t, err, ErrInvalidOrder)
	client.AssertNotCalled(t, "ListAlbums", mock.Anything)
}

func TestService_Run(t *testing.T) {
	client := albumClient()
	client.On("UpdateAlbumOrder", mock.Anything, "al1", "asc").Return(nil)
	client.On("UpdateAlbumOrder", mock.Anything, "al3", "asc").Return(nil)

	plan, executed, err := NewService(client, zap.NewNop()).Run(context.Background(), "asc", reconcile.Options{Confirmed: true})
	require.NoError(t, err)
	assert.Len(t, plan.Actions, 2)
	assert.Equal(t, 2, executed)
	client.AssertExpectations(t)
}

func TestService_Run_DryRun(t *testing.T) {
	client := albumClient()

	_, executed, err := NewService(client, zap.NewNop()).Run(context.Background(), "asc", reconcile.Options{DryRun: true, Confirmed: true})
	require.NoError(t, err)
	assert.Zero(t, executed)
	client.AssertNotCalled(t, "UpdateAlbumOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Run_FailFast(t *testing.T) {
	client := albumClient()
	client.On("UpdateAlbumOrder", mock.Anything, "al1", "asc").Return(fmt.Errorf("forbidden"))

	plan, executed, err := NewService(client, zap.NewNop()).Run(context.Background(), "asc", reconcile.Options{Confirmed: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")
	assert.NotNil(t, plan)
	assert.Zero(t, executed)
	client.AssertNotCalled(t, "UpdateAlbumOrder", mock.Anything, "al3", mock.Anything)
}

func TestService_Run_InProgress(t *testing.T) {
	svc := NewService(new(mocks.Client), zap.NewNop())
	svc.mu.Lock()
	defer svc.mu.Unlock()

	_, _, err := svc.Run(context.Background(), "asc", reconcile.Options{Confirmed: true})
	assert.ErrorIs(t, err, ErrRunInProgress)
}
