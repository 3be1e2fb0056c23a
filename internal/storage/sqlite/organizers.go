package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mmynk/giftshuffler/internal/models"
	"github.com/mmynk/giftshuffler/internal/storage"
)

// CreateOrganizer inserts a new organizer into the database.
func (s *SQLiteStore) CreateOrganizer(ctx context.Context, organizer *models.Organizer) error {
	query := `
		INSERT INTO organizers (id, email, display_name, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (email) DO NOTHING
	`

	res, err := s.db.ExecContext(ctx, query,
		organizer.ID,
		organizer.Email,
		organizer.DisplayName,
		organizer.PasswordHash,
		organizer.CreatedAt,
		organizer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create organizer: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("organizer %s: %w", organizer.Email, storage.ErrAlreadyExists)
	}

	return nil
}

// GetOrganizerByEmail retrieves an organizer by their email address.
func (s *SQLiteStore) GetOrganizerByEmail(ctx context.Context, email string) (*models.Organizer, error) {
	query := `
		SELECT id, email, display_name, password_hash, created_at, updated_at
		FROM organizers
		WHERE email = ?
	`

	email = strings.ToLower(strings.TrimSpace(email))
	organizer, err := scanOrganizer(s.db.QueryRowContext(ctx, query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("organizer", email)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get organizer by email: %w", err)
	}

	return organizer, nil
}

// GetOrganizerByID retrieves an organizer by their ID.
func (s *SQLiteStore) GetOrganizerByID(ctx context.Context, id string) (*models.Organizer, error) {
	query := `
		SELECT id, email, display_name, password_hash, created_at, updated_at
		FROM organizers
		WHERE id = ?
	`

	organizer, err := scanOrganizer(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("organizer", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get organizer by ID: %w", err)
	}

	return organizer, nil
}

func scanOrganizer(row rowScanner) (*models.Organizer, error) {
	organizer := &models.Organizer{}
	err := row.Scan(
		&organizer.ID,
		&organizer.Email,
		&organizer.DisplayName,
		&organizer.PasswordHash,
		&organizer.CreatedAt,
		&organizer.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return organizer, nil
}
