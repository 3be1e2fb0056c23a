package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/giftshuffler/internal/models"
	"github.com/mmynk/giftshuffler/internal/shuffle"
	"github.com/mmynk/giftshuffler/internal/storage"
)

// GetForbiddenPairs returns all pairs recorded by editions of the group and occasion.
func (s *SQLiteStore) GetForbiddenPairs(ctx context.Context, groupID, occasionID string) ([]shuffle.Pair, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT a.giver_id, a.recipient_id
		 FROM assignments a
		 JOIN editions e ON e.id = a.edition_id
		 WHERE e.group_id = ? AND e.occasion_id = ?`,
		groupID, occasionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get previous assignments: %w", err)
	}
	defer rows.Close()

	var pairs []shuffle.Pair
	for rows.Next() {
		var p shuffle.Pair
		if err := rows.Scan(&p.Giver, &p.Recipient); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		pairs = append(pairs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assignments: %w", err)
	}
	return pairs, nil
}

// CommitAssignments flips the edition's shuffled flag and inserts all pairs in
// one transaction. The flag update is a compare-and-set: only the caller that
// moves it from 0 to 1 gets to write assignments.
func (s *SQLiteStore) CommitAssignments(ctx context.Context, editionID string, pairs []shuffle.Pair) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"UPDATE editions SET is_shuffled = 1 WHERE id = ? AND is_shuffled = 0",
		editionID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark edition shuffled: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to mark edition shuffled: %w", err)
	}
	if n == 0 {
		ok, err := exists(ctx, tx, "editions", editionID)
		if err != nil {
			return err
		}
		if !ok {
			return notFound("edition", editionID)
		}
		return fmt.Errorf("edition %s: %w", editionID, storage.ErrAlreadyShuffled)
	}

	createdAt := time.Now().Unix()
	for _, p := range pairs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO assignments (id, edition_id, giver_id, recipient_id, created_at)
			 VALUES (?, ?, ?, ?, ?)`,
			uuid.New().String(), editionID, p.Giver, p.Recipient, createdAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert assignment: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListAssignments retrieves an edition's assignments with giver and recipient
// names, ordered by giver name. Names of deleted persons come back empty.
func (s *SQLiteStore) ListAssignments(ctx context.Context, editionID string) ([]*models.Assignment, error) {
	ok, err := exists(ctx, s.db, "editions", editionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFound("edition", editionID)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT a.id, a.edition_id,
		        a.giver_id, COALESCE(g.name, ''),
		        a.recipient_id, COALESCE(r.name, ''),
		        a.created_at
		 FROM assignments a
		 LEFT JOIN persons g ON g.id = a.giver_id
		 LEFT JOIN persons r ON r.id = a.recipient_id
		 WHERE a.edition_id = ?
		 ORDER BY COALESCE(g.name, ''), a.giver_id`,
		editionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}
	defer rows.Close()

	assignments := []*models.Assignment{}
	for rows.Next() {
		a := &models.Assignment{}
		if err := rows.Scan(&a.ID, &a.EditionID, &a.GiverID, &a.GiverName,
			&a.RecipientID, &a.RecipientName, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assignments: %w", err)
	}
	return assignments, nil
}
