package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"activity-api/internal/domain"
	"activity-api/pkg/database"
)

// uniqueViolation is the PostgreSQL error code raised by the
// (activity_id, email) unique index.
const uniqueViolation = "23505"

// registrationRepository handles registration operations with PostgreSQL
type registrationRepository struct {
	db *database.PostgresDB
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db *database.PostgresDB) RegistrationRepository {
	return &registrationRepository{db: db}
}

const registrationColumns = `id::text, activity_id::text, name, email, phone, gender,
	special_requirements, registration_time, status`

func scanRegistration(row pgx.Row, reg *domain.Registration) error {
	return row.Scan(
		&reg.ID,
		&reg.ActivityID,
		&reg.Name,
		&reg.Email,
		&reg.Phone,
		&reg.Gender,
		&reg.SpecialRequirements,
		&reg.RegistrationTime,
		&reg.Status,
	)
}

// CountByActivity returns the number of registrations referencing an activity
func (r *registrationRepository) CountByActivity(ctx context.Context, activityID string) (int, error) {
	var count int
	err := r.db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM registrations WHERE activity_id = $1::uuid`, activityID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count registrations: %w", err)
	}
	return count, nil
}

// ExistsByActivityAndEmail reports whether an email already registered for an activity
func (r *registrationRepository) ExistsByActivityAndEmail(ctx context.Context, activityID, email string) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM registrations WHERE activity_id = $1::uuid AND email = $2)`,
		activityID, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check existing registration: %w", err)
	}
	return exists, nil
}

// Create inserts a registration under the activity's capacity guard. The
// activity row is locked for the duration of the transaction so a concurrent
// register for the same activity cannot slip past the capacity check.
func (r *registrationRepository) Create(ctx context.Context, registration *domain.Registration) error {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var maxParticipants int
	err = tx.QueryRow(ctx,
		`SELECT max_participants FROM activities WHERE id = $1::uuid FOR UPDATE`,
		registration.ActivityID,
	).Scan(&maxParticipants)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrActivityNotFound
		}
		return fmt.Errorf("failed to lock activity: %w", err)
	}

	var count int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM registrations WHERE activity_id = $1::uuid`,
		registration.ActivityID,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count registrations: %w", err)
	}
	if count >= maxParticipants {
		return domain.ErrActivityFull
	}

	registration.ID = uuid.NewString()
	_, err = tx.Exec(ctx, `
		INSERT INTO registrations (id, activity_id, name, email, phone, gender,
			special_requirements, registration_time, status)
		VALUES ($1::uuid, $2::uuid, $3, $4, $5, $6, $7, $8, $9)
	`,
		registration.ID,
		registration.ActivityID,
		registration.Name,
		registration.Email,
		registration.Phone,
		registration.Gender,
		registration.SpecialRequirements,
		registration.RegistrationTime,
		registration.Status,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrAlreadyRegistered
		}
		return fmt.Errorf("failed to insert registration: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit registration: %w", err)
	}

	return nil
}

// GetByID retrieves one registration by its identifier
func (r *registrationRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	query := fmt.Sprintf(`SELECT %s FROM registrations WHERE id = $1::uuid`, registrationColumns)

	registration := &domain.Registration{}
	err := scanRegistration(r.db.Pool.QueryRow(ctx, query, id), registration)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("failed to get registration: %w", err)
	}

	return registration, nil
}

// List retrieves registrations, optionally filtered to an exact email
func (r *registrationRepository) List(ctx context.Context, email string) ([]domain.Registration, error) {
	query := fmt.Sprintf(`SELECT %s FROM registrations`, registrationColumns)
	args := []interface{}{}
	if email != "" {
		query += ` WHERE email = $1`
		args = append(args, email)
	}
	query += ` ORDER BY registration_time, id`

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query registrations: %w", err)
	}
	defer rows.Close()

	var registrations []domain.Registration
	for rows.Next() {
		var reg domain.Registration
		if err := scanRegistration(rows, &reg); err != nil {
			return nil, fmt.Errorf("failed to scan registration row: %w", err)
		}
		registrations = append(registrations, reg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading registration rows: %w", err)
	}

	return registrations, nil
}

// DeleteAll removes every registration
func (r *registrationRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Pool.Exec(ctx, `DELETE FROM registrations`); err != nil {
		return fmt.Errorf("failed to delete registrations: %w", err)
	}
	return nil
}
