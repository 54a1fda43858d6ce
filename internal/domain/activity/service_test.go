package activity_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trainlog/trainlog/internal/domain/activity"
	"github.com/trainlog/trainlog/internal/repository/mocks"
)

func TestActivityService_RecordAndList(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ActivityRepository{}
	entry := &activity.Entry{
		SessionID: "s1",
		Type:      activity.TypeSessionCreated,
		Summary:   "created",
	}

	repo.On("Log", ctx, entry).Return(nil)
	repo.On("List", ctx, activity.ListOptions{SessionID: "s1"}).Return([]activity.Entry{*entry}, nil)

	svc := activity.NewService(repo, nil)
	require.NoError(t, svc.Record(ctx, entry))
	require.False(t, entry.CreatedAt.IsZero())

	entries, err := svc.Recent(ctx, activity.ListOptions{SessionID: "s1"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	repo.AssertExpectations(t)
}

func TestActivityService_RecordRejectsEmpty(t *testing.T) {
	svc := activity.NewService(&mocks.ActivityRepository{}, nil)
	require.ErrorIs(t, svc.Record(context.Background(), nil), activity.ErrInvalidInput)
	require.ErrorIs(t, svc.Record(context.Background(), &activity.Entry{}), activity.ErrInvalidInput)
}

func TestActivityService_RecordWrapsRepoError(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ActivityRepository{}
	boom := errors.New("disk full")
	repo.On("Log", ctx, mock.Anything).Return(boom)

	svc := activity.NewService(repo, nil)
	err := svc.Record(ctx, &activity.Entry{Type: activity.TypeSessionDeleted})
	require.ErrorIs(t, err, boom)
}
