package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activity-api/internal/domain"
	"activity-api/internal/repository"
	apperrors "activity-api/pkg/errors"
)

func newActivityFixture(t *testing.T) (*repository.MemoryStore, *ActivityService) {
	t.Helper()
	store := repository.NewMemoryStore()
	log := newTestLogger(t)
	return store, NewActivityService(store.Activities(), store.Registrations(), nil, log)
}

func TestListActivities_DerivedCounts(t *testing.T) {
	store, svc := newActivityFixture(t)
	ctx := context.Background()

	ids, err := store.Activities().CreateMany(ctx, []domain.Activity{
		{Name: "滿額活動", MaxParticipants: 1, CreatedAt: time.Now().UTC()},
		{Name: "尚有名額", MaxParticipants: 3, CreatedAt: time.Now().UTC()},
	})
	require.NoError(t, err)

	require.NoError(t, store.Registrations().Create(ctx, &domain.Registration{
		ActivityID: ids[0],
		Name:       "甲",
		Email:      "a@example.com",
		Phone:      "0911111111",
		Gender:     "female",
		Status:     domain.RegistrationStatusConfirmed,
	}))
	require.NoError(t, store.Registrations().Create(ctx, &domain.Registration{
		ActivityID: ids[1],
		Name:       "乙",
		Email:      "b@example.com",
		Phone:      "0922222222",
		Gender:     "male",
		Status:     domain.RegistrationStatusConfirmed,
	}))

	details, err := svc.ListActivities(ctx)
	require.NoError(t, err)
	require.Len(t, details, 2)

	assert.Equal(t, 1, details[0].CurrentRegistrations)
	assert.True(t, details[0].IsFull)
	assert.Equal(t, 1, details[1].CurrentRegistrations)
	assert.False(t, details[1].IsFull)
}

func TestListActivities_EmptyStore(t *testing.T) {
	_, svc := newActivityFixture(t)

	details, err := svc.ListActivities(context.Background())
	require.NoError(t, err)
	assert.Empty(t, details)
}

func TestGetActivity_MalformedID(t *testing.T) {
	_, svc := newActivityFixture(t)

	_, err := svc.GetActivity(context.Background(), "bogus-id")
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
	assert.Equal(t, 404, appErr.StatusCode)
}

func TestGetActivity_Unknown(t *testing.T) {
	_, svc := newActivityFixture(t)

	_, err := svc.GetActivity(context.Background(), "550e8400-e29b-41d4-a716-446655440000")
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
}

func TestGetActivity_WithDerivedFields(t *testing.T) {
	store, svc := newActivityFixture(t)
	ctx := context.Background()

	ids, err := store.Activities().CreateMany(ctx, []domain.Activity{
		{Name: "音樂會表演", MaxParticipants: 200, CreatedAt: time.Now().UTC()},
	})
	require.NoError(t, err)

	detail, err := svc.GetActivity(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, "音樂會表演", detail.Name)
	assert.Equal(t, 0, detail.CurrentRegistrations)
	assert.False(t, detail.IsFull)
}

func TestListActivities_StorageFailure(t *testing.T) {
	store, svc := newActivityFixture(t)
	store.ForcedError = assert.AnError

	_, err := svc.ListActivities(context.Background())
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeStorage, appErr.Type)
	assert.Equal(t, 500, appErr.StatusCode)
}
