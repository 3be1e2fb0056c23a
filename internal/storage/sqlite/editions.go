package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/giftshuffler/internal/models"
)

const editionColumns = `
	e.id, e.name, e.group_id, g.name, e.occasion_id, o.name,
	e.number, e.is_shuffled, e.created_at`

const editionJoins = `
	FROM editions e
	JOIN groups g ON g.id = e.group_id
	JOIN occasions o ON o.id = e.occasion_id`

// CreateEdition persists a new edition with the next number for its group and
// occasion. Numbers come from edition_counters so they are never reused.
func (s *SQLiteStore) CreateEdition(ctx context.Context, edition *models.Edition) error {
	if edition.ID == "" {
		edition.ID = uuid.New().String()
	}
	if edition.CreatedAt == 0 {
		edition.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, "SELECT name FROM groups WHERE id = ?", edition.GroupID).Scan(&edition.GroupName)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound("group", edition.GroupID)
	}
	if err != nil {
		return fmt.Errorf("failed to get group: %w", err)
	}

	err = tx.QueryRowContext(ctx, "SELECT name FROM occasions WHERE id = ?", edition.OccasionID).Scan(&edition.OccasionName)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound("occasion", edition.OccasionID)
	}
	if err != nil {
		return fmt.Errorf("failed to get occasion: %w", err)
	}

	err = tx.QueryRowContext(ctx,
		`INSERT INTO edition_counters (group_id, occasion_id, last_number) VALUES (?, ?, 1)
		 ON CONFLICT (group_id, occasion_id) DO UPDATE SET last_number = last_number + 1
		 RETURNING last_number`,
		edition.GroupID, edition.OccasionID,
	).Scan(&edition.Number)
	if err != nil {
		return fmt.Errorf("failed to allocate edition number: %w", err)
	}

	if strings.TrimSpace(edition.Name) == "" {
		edition.Name = models.DefaultEditionName(edition.GroupName, edition.OccasionName, edition.Number)
	}
	edition.IsShuffled = false

	_, err = tx.ExecContext(ctx,
		`INSERT INTO editions (id, name, group_id, occasion_id, number, is_shuffled, created_at)
		 VALUES (?, ?, ?, ?, ?, 0, ?)`,
		edition.ID, edition.Name, edition.GroupID, edition.OccasionID, edition.Number, edition.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert edition: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetEdition retrieves an edition by ID.
func (s *SQLiteStore) GetEdition(ctx context.Context, editionID string) (*models.Edition, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT"+editionColumns+editionJoins+" WHERE e.id = ?",
		editionID,
	)
	edition, err := scanEdition(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("edition", editionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get edition: %w", err)
	}
	return edition, nil
}

// ListEditions retrieves editions matching the filter, newest first.
func (s *SQLiteStore) ListEditions(ctx context.Context, filter models.EditionFilter) ([]*models.Edition, error) {
	query := "SELECT" + editionColumns + editionJoins
	var (
		where []string
		args  []any
	)
	if filter.GroupID != "" {
		where = append(where, "e.group_id = ?")
		args = append(args, filter.GroupID)
	}
	if filter.OccasionID != "" {
		where = append(where, "e.occasion_id = ?")
		args = append(args, filter.OccasionID)
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY e.created_at DESC, e.number DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list editions: %w", err)
	}
	defer rows.Close()

	var editions []*models.Edition
	for rows.Next() {
		edition, err := scanEdition(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan edition: %w", err)
		}
		editions = append(editions, edition)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate editions: %w", err)
	}
	return editions, nil
}

// DeleteEdition removes an edition's assignments, then the edition itself.
func (s *SQLiteStore) DeleteEdition(ctx context.Context, editionID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM assignments WHERE edition_id = ?", editionID); err != nil {
		return fmt.Errorf("failed to delete assignments: %w", err)
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM editions WHERE id = ?", editionID)
	if err != nil {
		return fmt.Errorf("failed to delete edition: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return notFound("edition", editionID)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEdition(row rowScanner) (*models.Edition, error) {
	edition := &models.Edition{}
	err := row.Scan(
		&edition.ID, &edition.Name,
		&edition.GroupID, &edition.GroupName,
		&edition.OccasionID, &edition.OccasionName,
		&edition.Number, &edition.IsShuffled, &edition.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return edition, nil
}
