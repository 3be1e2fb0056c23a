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

// CreateGroup persists a new group. Members listed on the model are added in
// the same transaction; they must reference existing persons.
func (s *SQLiteStore) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO groups (id, name, created_at) VALUES (?, ?, ?)",
		group.ID, group.Name, group.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group: %w", err)
	}

	for _, member := range group.Members {
		if err := addMember(ctx, tx, group.ID, member.ID); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetGroup retrieves a group by ID, including its members.
func (s *SQLiteStore) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	group := &models.Group{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, created_at FROM groups WHERE id = ?",
		groupID,
	).Scan(&group.ID, &group.Name, &group.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("group", groupID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	members, err := listMembers(ctx, s.db, groupID)
	if err != nil {
		return nil, err
	}
	group.Members = members

	return group, nil
}

// ListGroups retrieves all groups with their members, ordered by name.
func (s *SQLiteStore) ListGroups(ctx context.Context) ([]*models.Group, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, created_at FROM groups ORDER BY name, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	var groups []*models.Group
	for rows.Next() {
		group := &models.Group{}
		if err := rows.Scan(&group.ID, &group.Name, &group.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, group)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	// Members are loaded after the group cursor is closed: the store runs on a
	// single connection.
	for _, group := range groups {
		members, err := listMembers(ctx, s.db, group.ID)
		if err != nil {
			return nil, err
		}
		group.Members = members
	}

	return groups, nil
}

// DeleteGroup removes a group. Memberships, edition counters, editions and
// their assignments cascade.
func (s *SQLiteStore) DeleteGroup(ctx context.Context, groupID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM groups WHERE id = ?", groupID)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return notFound("group", groupID)
	}
	return nil
}

// AddGroupMember adds a person to a group. Re-adding a member is a no-op.
func (s *SQLiteStore) AddGroupMember(ctx context.Context, groupID, personID string) error {
	return addMember(ctx, s.db, groupID, personID)
}

// RemoveGroupMember removes a person from a group.
func (s *SQLiteStore) RemoveGroupMember(ctx context.Context, groupID, personID string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM group_members WHERE group_id = ? AND person_id = ?",
		groupID, personID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove group member: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return notFound("group member", personID)
	}
	return nil
}

// GetGroupMembers returns the group's current members.
func (s *SQLiteStore) GetGroupMembers(ctx context.Context, groupID string) ([]models.Person, error) {
	ok, err := exists(ctx, s.db, "groups", groupID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFound("group", groupID)
	}
	return listMembers(ctx, s.db, groupID)
}

func addMember(ctx context.Context, q queryer, groupID, personID string) error {
	for table, id := range map[string]string{"groups": groupID, "persons": personID} {
		ok, err := exists(ctx, q, table, id)
		if err != nil {
			return err
		}
		if !ok {
			return notFound(table[:len(table)-1], id)
		}
	}

	_, err := q.ExecContext(ctx,
		"INSERT OR IGNORE INTO group_members (group_id, person_id) VALUES (?, ?)",
		groupID, personID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group member: %w", err)
	}
	return nil
}

func listMembers(ctx context.Context, q queryer, groupID string) ([]models.Person, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT p.id, p.name, p.created_at
		 FROM group_members gm
		 JOIN persons p ON p.id = gm.person_id
		 WHERE gm.group_id = ?
		 ORDER BY p.name, p.id`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get group members: %w", err)
	}
	defer rows.Close()

	members := []models.Person{}
	for rows.Next() {
		var p models.Person
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group member: %w", err)
		}
		members = append(members, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate group members: %w", err)
	}
	return members, nil
}
