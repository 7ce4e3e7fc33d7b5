package repository

import (
	"context"

	"activity-api/internal/domain"
)

// ActivityRepository defines the interface for activity data operations
type ActivityRepository interface {
	// List retrieves every activity, oldest first
	List(ctx context.Context) ([]domain.Activity, error)

	// GetByID retrieves one activity; domain.ErrActivityNotFound when absent
	GetByID(ctx context.Context, id string) (*domain.Activity, error)

	// CreateMany inserts activities and returns their generated identifiers
	CreateMany(ctx context.Context, activities []domain.Activity) ([]string, error)

	// DeleteAll removes every activity
	DeleteAll(ctx context.Context) error
}

// RegistrationRepository defines the interface for registration data operations
type RegistrationRepository interface {
	// CountByActivity returns the number of registrations referencing an activity
	CountByActivity(ctx context.Context, activityID string) (int, error)

	// ExistsByActivityAndEmail reports whether an email already registered for an activity
	ExistsByActivityAndEmail(ctx context.Context, activityID, email string) (bool, error)

	// Create inserts a registration under the activity's capacity guard and
	// fills in the generated identifier. Returns domain.ErrActivityNotFound,
	// domain.ErrActivityFull or domain.ErrAlreadyRegistered on a rejected insert.
	Create(ctx context.Context, registration *domain.Registration) error

	// GetByID retrieves one registration; domain.ErrRegistrationNotFound when absent
	GetByID(ctx context.Context, id string) (*domain.Registration, error)

	// List retrieves registrations, optionally filtered to an exact email
	List(ctx context.Context, email string) ([]domain.Registration, error)

	// DeleteAll removes every registration
	DeleteAll(ctx context.Context) error
}

// Repositories aggregates the storage gateway's collections
type Repositories struct {
	Activities    ActivityRepository
	Registrations RegistrationRepository
}
