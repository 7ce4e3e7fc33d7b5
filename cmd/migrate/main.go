package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"activity-api/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	if len(os.Args) < 2 {
		fmt.Println("Usage: go run ./cmd/migrate [up|drop|seed]")
		os.Exit(1)
	}

	command := os.Args[1]

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close(ctx)

	switch command {
	case "up":
		if err := createTables(ctx, conn); err != nil {
			log.Fatalf("Failed to create tables: %v", err)
		}
		fmt.Println("All tables created successfully")

	case "drop":
		if err := dropTables(ctx, conn); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		fmt.Println("All tables dropped successfully")

	case "seed":
		if err := seedData(ctx, conn); err != nil {
			log.Fatalf("Failed to seed data: %v", err)
		}
		fmt.Println("Demo data seeded successfully")

	default:
		fmt.Printf("Unknown command: %s\n", command)
		fmt.Println("Usage: go run ./cmd/migrate [up|drop|seed]")
		os.Exit(1)
	}
}

func createTables(ctx context.Context, conn *pgx.Conn) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS activities (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			date TEXT NOT NULL DEFAULT '',
			time TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			max_participants INTEGER NOT NULL CHECK (max_participants >= 0),
			category TEXT NOT NULL DEFAULT '',
			organizer TEXT NOT NULL DEFAULT '',
			contact_email TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'active',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS registrations (
			id UUID PRIMARY KEY,
			activity_id UUID NOT NULL REFERENCES activities(id),
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			gender TEXT NOT NULL,
			special_requirements TEXT NOT NULL DEFAULT '',
			registration_time TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			status TEXT NOT NULL DEFAULT 'confirmed',
			UNIQUE (activity_id, email)
		)`,
		// Kept for parity with the source system; no endpoint touches it yet.
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			email TEXT UNIQUE NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_registrations_activity ON registrations (activity_id)`,
		`CREATE INDEX IF NOT EXISTS idx_registrations_email ON registrations (email)`,
	}

	for _, query := range queries {
		if _, err := conn.Exec(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}

	return nil
}

func dropTables(ctx context.Context, conn *pgx.Conn) error {
	queries := []string{
		`DROP TABLE IF EXISTS registrations CASCADE`,
		`DROP TABLE IF EXISTS activities CASCADE`,
		`DROP TABLE IF EXISTS users CASCADE`,
	}

	for _, query := range queries {
		if _, err := conn.Exec(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}

	return nil
}

func seedData(ctx context.Context, conn *pgx.Conn) error {
	if _, err := conn.Exec(ctx, `DELETE FROM registrations`); err != nil {
		return fmt.Errorf("failed to clear registrations: %w", err)
	}
	if _, err := conn.Exec(ctx, `DELETE FROM activities`); err != nil {
		return fmt.Errorf("failed to clear activities: %w", err)
	}

	for _, a := range service.SeedActivities(time.Now().UTC()) {
		_, err := conn.Exec(ctx, `
			INSERT INTO activities (id, name, description, date, time, location,
				max_participants, category, organizer, contact_email, image_url, status, created_at)
			VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		`,
			uuid.NewString(), a.Name, a.Description, a.Date, a.Time, a.Location,
			a.MaxParticipants, a.Category, a.Organizer, a.ContactEmail, a.ImageURL, a.Status, a.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert activity %q: %w", a.Name, err)
		}
		fmt.Printf("  Seeded: %s\n", a.Name)
	}

	return nil
}
