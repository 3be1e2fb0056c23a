package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/giftshuffler/internal/models"
)

// CreateOccasion persists a new occasion.
func (s *SQLiteStore) CreateOccasion(ctx context.Context, occasion *models.Occasion) error {
	if occasion.ID == "" {
		occasion.ID = uuid.New().String()
	}
	if occasion.CreatedAt == 0 {
		occasion.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO occasions (id, name, description, created_at) VALUES (?, ?, ?, ?)",
		occasion.ID, occasion.Name, occasion.Description, occasion.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert occasion: %w", err)
	}
	return nil
}

// GetOccasion retrieves an occasion by ID.
func (s *SQLiteStore) GetOccasion(ctx context.Context, occasionID string) (*models.Occasion, error) {
	occasion := &models.Occasion{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, description, created_at FROM occasions WHERE id = ?",
		occasionID,
	).Scan(&occasion.ID, &occasion.Name, &occasion.Description, &occasion.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("occasion", occasionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get occasion: %w", err)
	}
	return occasion, nil
}

// ListOccasions retrieves all occasions ordered by name.
func (s *SQLiteStore) ListOccasions(ctx context.Context) ([]*models.Occasion, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, description, created_at FROM occasions ORDER BY name, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list occasions: %w", err)
	}
	defer rows.Close()

	var occasions []*models.Occasion
	for rows.Next() {
		occasion := &models.Occasion{}
		if err := rows.Scan(&occasion.ID, &occasion.Name, &occasion.Description, &occasion.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan occasion: %w", err)
		}
		occasions = append(occasions, occasion)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate occasions: %w", err)
	}
	return occasions, nil
}

// DeleteOccasion removes an occasion; its editions cascade.
func (s *SQLiteStore) DeleteOccasion(ctx context.Context, occasionID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM occasions WHERE id = ?", occasionID)
	if err != nil {
		return fmt.Errorf("failed to delete occasion: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return notFound("occasion", occasionID)
	}
	return nil
}
