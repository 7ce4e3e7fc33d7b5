package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activity-api/internal/domain"
)

func seedActivity(t *testing.T, store *MemoryStore, maxParticipants int) string {
	t.Helper()
	ids, err := store.Activities().CreateMany(context.Background(), []domain.Activity{
		{
			Name:            "測試活動",
			MaxParticipants: maxParticipants,
			Status:          domain.ActivityStatusActive,
			CreatedAt:       time.Now().UTC(),
		},
	})
	require.NoError(t, err)
	require.Len(t, ids, 1)
	return ids[0]
}

func newRegistration(activityID, email string) *domain.Registration {
	return &domain.Registration{
		ActivityID:       activityID,
		Name:             "王小明",
		Email:            email,
		Phone:            "0912345678",
		Gender:           "male",
		RegistrationTime: time.Now().UTC(),
		Status:           domain.RegistrationStatusConfirmed,
	}
}

func TestMemoryStore_CreateRejectsUnknownActivity(t *testing.T) {
	store := NewMemoryStore()
	err := store.Registrations().Create(context.Background(), newRegistration("no-such-id", "a@example.com"))
	assert.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestMemoryStore_CreateRejectsDuplicateEmail(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	activityID := seedActivity(t, store, 10)

	require.NoError(t, store.Registrations().Create(ctx, newRegistration(activityID, "a@example.com")))

	err := store.Registrations().Create(ctx, newRegistration(activityID, "a@example.com"))
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)

	count, err := store.Registrations().CountByActivity(ctx, activityID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMemoryStore_CreateRejectsWhenFull(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	activityID := seedActivity(t, store, 1)

	require.NoError(t, store.Registrations().Create(ctx, newRegistration(activityID, "first@example.com")))

	err := store.Registrations().Create(ctx, newRegistration(activityID, "second@example.com"))
	assert.ErrorIs(t, err, domain.ErrActivityFull)
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	activityID := seedActivity(t, store, 5)

	reg := newRegistration(activityID, "trip@example.com")
	reg.SpecialRequirements = "素食"
	require.NoError(t, store.Registrations().Create(ctx, reg))
	require.NotEmpty(t, reg.ID)

	got, err := store.Registrations().GetByID(ctx, reg.ID)
	require.NoError(t, err)
	assert.Equal(t, *reg, *got)
}

// TestMemoryStore_ConcurrentCapacityGuard launches far more registrations than
// the activity can hold and verifies the guard admits exactly the capacity.
func TestMemoryStore_ConcurrentCapacityGuard(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	capacity := 5
	activityID := seedActivity(t, store, capacity)

	numRequests := 100
	var successCount, fullCount, otherCount int32

	var wg sync.WaitGroup
	wg.Add(numRequests)
	for i := 0; i < numRequests; i++ {
		go func(n int) {
			defer wg.Done()
			err := store.Registrations().Create(ctx, newRegistration(activityID, fmt.Sprintf("gopher%d@example.com", n)))
			switch {
			case err == nil:
				atomic.AddInt32(&successCount, 1)
			case errors.Is(err, domain.ErrActivityFull):
				atomic.AddInt32(&fullCount, 1)
			default:
				atomic.AddInt32(&otherCount, 1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(capacity), successCount)
	assert.Equal(t, int32(numRequests-capacity), fullCount)
	assert.Zero(t, otherCount)

	count, err := store.Registrations().CountByActivity(ctx, activityID)
	require.NoError(t, err)
	assert.Equal(t, capacity, count)
}

func TestMemoryStore_ListFiltersByEmail(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	activityID := seedActivity(t, store, 10)

	require.NoError(t, store.Registrations().Create(ctx, newRegistration(activityID, "a@example.com")))
	require.NoError(t, store.Registrations().Create(ctx, newRegistration(activityID, "b@example.com")))

	all, err := store.Registrations().List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := store.Registrations().List(ctx, "b@example.com")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "b@example.com", filtered[0].Email)
}

func TestMemoryStore_ForcedError(t *testing.T) {
	store := NewMemoryStore()
	store.ForcedError = errors.New("store down")

	_, err := store.Activities().List(context.Background())
	assert.EqualError(t, err, "store down")

	_, err = store.Registrations().List(context.Background(), "")
	assert.EqualError(t, err, "store down")
}
