package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"activity-api/internal/domain"
	"activity-api/pkg/database"
)

// activityRepository handles activity operations with PostgreSQL
type activityRepository struct {
	db *database.PostgresDB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *database.PostgresDB) ActivityRepository {
	return &activityRepository{db: db}
}

const activityColumns = `id::text, name, description, date, time, location,
	max_participants, category, organizer, contact_email, image_url, status, created_at`

func scanActivity(row pgx.Row, a *domain.Activity) error {
	return row.Scan(
		&a.ID,
		&a.Name,
		&a.Description,
		&a.Date,
		&a.Time,
		&a.Location,
		&a.MaxParticipants,
		&a.Category,
		&a.Organizer,
		&a.ContactEmail,
		&a.ImageURL,
		&a.Status,
		&a.CreatedAt,
	)
}

// List retrieves every activity, oldest first
func (r *activityRepository) List(ctx context.Context) ([]domain.Activity, error) {
	query := fmt.Sprintf(`SELECT %s FROM activities ORDER BY created_at, id`, activityColumns)

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		var a domain.Activity
		if err := scanActivity(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan activity row: %w", err)
		}
		activities = append(activities, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading activity rows: %w", err)
	}

	return activities, nil
}

// GetByID retrieves one activity by its identifier
func (r *activityRepository) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	query := fmt.Sprintf(`SELECT %s FROM activities WHERE id = $1::uuid`, activityColumns)

	activity := &domain.Activity{}
	err := scanActivity(r.db.Pool.QueryRow(ctx, query, id), activity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	return activity, nil
}

// CreateMany inserts activities and returns their generated identifiers
func (r *activityRepository) CreateMany(ctx context.Context, activities []domain.Activity) ([]string, error) {
	query := `
		INSERT INTO activities (id, name, description, date, time, location,
			max_participants, category, organizer, contact_email, image_url, status, created_at)
		VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	ids := make([]string, 0, len(activities))
	for _, a := range activities {
		id := uuid.NewString()
		_, err := r.db.Pool.Exec(ctx, query,
			id,
			a.Name,
			a.Description,
			a.Date,
			a.Time,
			a.Location,
			a.MaxParticipants,
			a.Category,
			a.Organizer,
			a.ContactEmail,
			a.ImageURL,
			a.Status,
			a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert activity %q: %w", a.Name, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// DeleteAll removes every activity
func (r *activityRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Pool.Exec(ctx, `DELETE FROM activities`); err != nil {
		return fmt.Errorf("failed to delete activities: %w", err)
	}
	return nil
}
