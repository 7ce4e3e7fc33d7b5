package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"activity-api/internal/domain"
	"activity-api/internal/repository"
	apperrors "activity-api/pkg/errors"
	"activity-api/pkg/logger"
)

// RegistrationService implements the registration flow and the registration
// listing with activity enrichment.
type RegistrationService struct {
	activities    repository.ActivityRepository
	registrations repository.RegistrationRepository
	cache         *CacheService // nil when Redis is not configured
	log           *logger.Logger
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(
	activities repository.ActivityRepository,
	registrations repository.RegistrationRepository,
	cache *CacheService,
	log *logger.Logger,
) *RegistrationService {
	return &RegistrationService{
		activities:    activities,
		registrations: registrations,
		cache:         cache,
		log:           log,
	}
}

// Register validates and inserts a registration, returning its identifier.
// Validation order is fixed: required fields, activity existence, duplicate
// email, capacity. The duplicate and capacity checks are re-run atomically
// inside the repository's guarded insert; the pre-checks only decide which
// error the caller sees first.
func (s *RegistrationService) Register(ctx context.Context, activityID string, req *domain.RegisterRequest) (string, error) {
	if field := req.MissingField(); field != "" {
		return "", apperrors.NewValidationError(fmt.Sprintf("Missing required field: %s", field))
	}

	if _, err := uuid.Parse(activityID); err != nil {
		return "", apperrors.NewNotFoundError("Activity not found")
	}

	if _, err := s.activities.GetByID(ctx, activityID); err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			return "", apperrors.NewNotFoundError("Activity not found")
		}
		s.log.WithError(err).WithField("activity_id", activityID).Error("failed to look up activity")
		return "", apperrors.NewStorageError("Registration failed, please try again later", err)
	}

	exists, err := s.registrations.ExistsByActivityAndEmail(ctx, activityID, req.Email)
	if err != nil {
		s.log.WithError(err).WithField("activity_id", activityID).Error("failed to check existing registration")
		return "", apperrors.NewStorageError("Registration failed, please try again later", err)
	}
	if exists {
		return "", apperrors.NewConflictError("You have already registered for this activity")
	}

	registration := &domain.Registration{
		ActivityID:          activityID,
		Name:                req.Name,
		Email:               req.Email,
		Phone:               req.Phone,
		Gender:              req.Gender,
		SpecialRequirements: req.SpecialRequirements,
		RegistrationTime:    time.Now().UTC(),
		Status:              domain.RegistrationStatusConfirmed,
	}

	if err := s.registrations.Create(ctx, registration); err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyRegistered):
			return "", apperrors.NewConflictError("You have already registered for this activity")
		case errors.Is(err, domain.ErrActivityFull):
			return "", apperrors.NewConflictError("Registration is full")
		case errors.Is(err, domain.ErrActivityNotFound):
			return "", apperrors.NewNotFoundError("Activity not found")
		default:
			s.log.WithError(err).WithField("activity_id", activityID).Error("failed to create registration")
			return "", apperrors.NewStorageError("Registration failed, please try again later", err)
		}
	}

	if s.cache != nil {
		s.cache.InvalidateActivity(ctx, activityID)
	}

	s.log.WithFields(map[string]interface{}{
		"registration_id": registration.ID,
		"activity_id":     activityID,
	}).Info("registration created")

	return registration.ID, nil
}

// ListRegistrations returns registrations, optionally filtered to one email,
// each enriched with its activity's name and date when the activity still
// resolves. A registration whose activity is gone is returned unenriched.
func (s *RegistrationService) ListRegistrations(ctx context.Context, email string) ([]domain.RegistrationDetail, error) {
	registrations, err := s.registrations.List(ctx, email)
	if err != nil {
		s.log.WithError(err).Error("failed to list registrations")
		return nil, apperrors.NewStorageError("Unable to fetch registrations", err)
	}

	details := make([]domain.RegistrationDetail, 0, len(registrations))
	for _, registration := range registrations {
		detail := domain.RegistrationDetail{Registration: registration}
		activity, err := s.activities.GetByID(ctx, registration.ActivityID)
		if err == nil {
			detail.ActivityName = activity.Name
			detail.ActivityDate = activity.Date
		} else if !errors.Is(err, domain.ErrActivityNotFound) {
			s.log.WithError(err).WithField("activity_id", registration.ActivityID).Warn("activity enrichment skipped")
		}
		details = append(details, detail)
	}

	return details, nil
}
