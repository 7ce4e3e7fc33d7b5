package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"activity-api/internal/domain"
	"activity-api/internal/repository"
	apperrors "activity-api/pkg/errors"
	"activity-api/pkg/logger"
)

// ActivityService serves activity reads with their derived registration
// statistics.
type ActivityService struct {
	activities    repository.ActivityRepository
	registrations repository.RegistrationRepository
	cache         *CacheService // nil when Redis is not configured
	log           *logger.Logger
}

// NewActivityService creates a new activity service
func NewActivityService(
	activities repository.ActivityRepository,
	registrations repository.RegistrationRepository,
	cache *CacheService,
	log *logger.Logger,
) *ActivityService {
	return &ActivityService{
		activities:    activities,
		registrations: registrations,
		cache:         cache,
		log:           log,
	}
}

// ListActivities returns every activity with current_registrations and is_full.
func (s *ActivityService) ListActivities(ctx context.Context) ([]domain.ActivityDetail, error) {
	activities, err := s.activities.List(ctx)
	if err != nil {
		s.log.WithError(err).Error("failed to list activities")
		return nil, apperrors.NewStorageError("Unable to fetch activities", err)
	}

	details := make([]domain.ActivityDetail, 0, len(activities))
	for _, activity := range activities {
		count, err := s.registrationCount(ctx, activity.ID)
		if err != nil {
			s.log.WithError(err).WithField("activity_id", activity.ID).Error("failed to count registrations")
			return nil, apperrors.NewStorageError("Unable to fetch activities", err)
		}
		details = append(details, domain.NewActivityDetail(activity, count))
	}

	return details, nil
}

// GetActivity returns one activity with derived fields. A malformed identifier
// is reported the same way as a missing one.
func (s *ActivityService) GetActivity(ctx context.Context, id string) (*domain.ActivityDetail, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.NewNotFoundError("Activity not found")
	}

	activity, err := s.activities.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			return nil, apperrors.NewNotFoundError("Activity not found")
		}
		s.log.WithError(err).WithField("activity_id", id).Error("failed to get activity")
		return nil, apperrors.NewStorageError("Unable to fetch activity detail", err)
	}

	count, err := s.registrationCount(ctx, activity.ID)
	if err != nil {
		s.log.WithError(err).WithField("activity_id", id).Error("failed to count registrations")
		return nil, apperrors.NewStorageError("Unable to fetch activity detail", err)
	}

	detail := domain.NewActivityDetail(*activity, count)
	return &detail, nil
}

// registrationCount reads an activity's registration count through the cache
// when one is configured.
func (s *ActivityService) registrationCount(ctx context.Context, activityID string) (int, error) {
	if s.cache != nil {
		if count, ok := s.cache.GetActivityCount(ctx, activityID); ok {
			return count, nil
		}
	}

	count, err := s.registrations.CountByActivity(ctx, activityID)
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		s.cache.SetActivityCount(ctx, activityID, count)
	}
	return count, nil
}
