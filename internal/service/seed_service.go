package service

import (
	"context"
	"time"

	"activity-api/internal/domain"
	"activity-api/internal/repository"
	apperrors "activity-api/pkg/errors"
	"activity-api/pkg/logger"
)

// SeedService resets the store to the fixed demo data set.
type SeedService struct {
	activities    repository.ActivityRepository
	registrations repository.RegistrationRepository
	cache         *CacheService // nil when Redis is not configured
	log           *logger.Logger
}

// NewSeedService creates a new seed service
func NewSeedService(
	activities repository.ActivityRepository,
	registrations repository.RegistrationRepository,
	cache *CacheService,
	log *logger.Logger,
) *SeedService {
	return &SeedService{
		activities:    activities,
		registrations: registrations,
		cache:         cache,
		log:           log,
	}
}

// SeedActivities returns the demo activity set carried over from the source
// system. Field values are literal and covered by the scenario tests.
func SeedActivities(now time.Time) []domain.Activity {
	return []domain.Activity{
		{
			Name:            "程式設計競賽",
			Description:     "展現你的程式設計能力，與同學一起挑戰有趣的程式題目！",
			Date:            "2025-08-15",
			Time:            "09:00-17:00",
			Location:        "電腦教室 A",
			MaxParticipants: 30,
			Category:        "競賽",
			Organizer:       "資訊工程系學會",
			ContactEmail:    "cs.club@example.com",
			ImageURL:        "/images/programming-contest.jpg",
			Status:          domain.ActivityStatusActive,
			CreatedAt:       now,
		},
		{
			Name:            "音樂會表演",
			Description:     "學生音樂社團精彩演出，包含古典、流行、民謠等多種風格。",
			Date:            "2025-09-10",
			Time:            "19:00-21:00",
			Location:        "學校禮堂",
			MaxParticipants: 200,
			Category:        "表演",
			Organizer:       "音樂社",
			ContactEmail:    "music.club@example.com",
			ImageURL:        "/images/concert.jpg",
			Status:          domain.ActivityStatusActive,
			CreatedAt:       now,
		},
		{
			Name:            "環保淨灘活動",
			Description:     "一起為地球盡一份心力，保護海洋環境，還有豐富的生態導覽！",
			Date:            "2025-10-05",
			Time:            "08:00-16:00",
			Location:        "海邊（學校巴士接送）",
			MaxParticipants: 50,
			Category:        "公益",
			Organizer:       "環保社",
			ContactEmail:    "eco.club@example.com",
			ImageURL:        "/images/beach-cleanup.jpg",
			Status:          domain.ActivityStatusActive,
			CreatedAt:       now,
		},
	}
}

// InitData unconditionally clears both collections and inserts the demo
// activities. Registrations go first so the activity foreign key is never
// violated mid-reset.
func (s *SeedService) InitData(ctx context.Context) ([]string, error) {
	if err := s.registrations.DeleteAll(ctx); err != nil {
		s.log.WithError(err).Error("failed to clear registrations")
		return nil, apperrors.NewStorageError("Failed to initialize data", err)
	}
	if err := s.activities.DeleteAll(ctx); err != nil {
		s.log.WithError(err).Error("failed to clear activities")
		return nil, apperrors.NewStorageError("Failed to initialize data", err)
	}

	ids, err := s.activities.CreateMany(ctx, SeedActivities(time.Now().UTC()))
	if err != nil {
		s.log.WithError(err).Error("failed to insert demo activities")
		return nil, apperrors.NewStorageError("Failed to initialize data", err)
	}

	if s.cache != nil {
		s.cache.InvalidateAll(ctx)
	}

	s.log.WithField("count", len(ids)).Info("demo data initialized")
	return ids, nil
}
