package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"activity-api/internal/domain"
)

// MemoryStore is an in-memory implementation of the storage gateway. It backs
// the handler and service tests and honors the same contracts as the
// PostgreSQL repositories, including the capacity guard on registration
// inserts and the (activity_id, email) uniqueness rule.
type MemoryStore struct {
	mu            sync.Mutex
	activities    map[string]domain.Activity
	activityOrder []string
	registrations map[string]domain.Registration
	regOrder      []string

	// ForcedError, when set, makes every operation fail with it.
	ForcedError error
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		activities:    make(map[string]domain.Activity),
		registrations: make(map[string]domain.Registration),
	}
}

// Activities returns the store's ActivityRepository view
func (s *MemoryStore) Activities() ActivityRepository {
	return &memoryActivityRepository{store: s}
}

// Registrations returns the store's RegistrationRepository view
func (s *MemoryStore) Registrations() RegistrationRepository {
	return &memoryRegistrationRepository{store: s}
}

type memoryActivityRepository struct {
	store *MemoryStore
}

func (r *memoryActivityRepository) List(_ context.Context) ([]domain.Activity, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ForcedError != nil {
		return nil, s.ForcedError
	}

	activities := make([]domain.Activity, 0, len(s.activityOrder))
	for _, id := range s.activityOrder {
		activities = append(activities, s.activities[id])
	}
	return activities, nil
}

func (r *memoryActivityRepository) GetByID(_ context.Context, id string) (*domain.Activity, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ForcedError != nil {
		return nil, s.ForcedError
	}

	activity, ok := s.activities[id]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	return &activity, nil
}

func (r *memoryActivityRepository) CreateMany(_ context.Context, activities []domain.Activity) ([]string, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ForcedError != nil {
		return nil, s.ForcedError
	}

	ids := make([]string, 0, len(activities))
	for _, a := range activities {
		a.ID = uuid.NewString()
		s.activities[a.ID] = a
		s.activityOrder = append(s.activityOrder, a.ID)
		ids = append(ids, a.ID)
	}
	return ids, nil
}

func (r *memoryActivityRepository) DeleteAll(_ context.Context) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ForcedError != nil {
		return s.ForcedError
	}

	s.activities = make(map[string]domain.Activity)
	s.activityOrder = nil
	return nil
}

type memoryRegistrationRepository struct {
	store *MemoryStore
}

func (r *memoryRegistrationRepository) CountByActivity(_ context.Context, activityID string) (int, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ForcedError != nil {
		return 0, s.ForcedError
	}
	return s.countByActivityLocked(activityID), nil
}

func (s *MemoryStore) countByActivityLocked(activityID string) int {
	count := 0
	for _, reg := range s.registrations {
		if reg.ActivityID == activityID {
			count++
		}
	}
	return count
}

func (r *memoryRegistrationRepository) ExistsByActivityAndEmail(_ context.Context, activityID, email string) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ForcedError != nil {
		return false, s.ForcedError
	}

	for _, reg := range s.registrations {
		if reg.ActivityID == activityID && reg.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryRegistrationRepository) Create(_ context.Context, registration *domain.Registration) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ForcedError != nil {
		return s.ForcedError
	}

	activity, ok := s.activities[registration.ActivityID]
	if !ok {
		return domain.ErrActivityNotFound
	}

	for _, reg := range s.registrations {
		if reg.ActivityID == registration.ActivityID && reg.Email == registration.Email {
			return domain.ErrAlreadyRegistered
		}
	}

	if s.countByActivityLocked(registration.ActivityID) >= activity.MaxParticipants {
		return domain.ErrActivityFull
	}

	registration.ID = uuid.NewString()
	s.registrations[registration.ID] = *registration
	s.regOrder = append(s.regOrder, registration.ID)
	return nil
}

func (r *memoryRegistrationRepository) GetByID(_ context.Context, id string) (*domain.Registration, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ForcedError != nil {
		return nil, s.ForcedError
	}

	registration, ok := s.registrations[id]
	if !ok {
		return nil, domain.ErrRegistrationNotFound
	}
	return &registration, nil
}

func (r *memoryRegistrationRepository) List(_ context.Context, email string) ([]domain.Registration, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ForcedError != nil {
		return nil, s.ForcedError
	}

	var registrations []domain.Registration
	for _, id := range s.regOrder {
		reg := s.registrations[id]
		if email != "" && reg.Email != email {
			continue
		}
		registrations = append(registrations, reg)
	}
	return registrations, nil
}

func (r *memoryRegistrationRepository) DeleteAll(_ context.Context) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ForcedError != nil {
		return s.ForcedError
	}

	s.registrations = make(map[string]domain.Registration)
	s.regOrder = nil
	return nil
}
