// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/giftshuffler/internal/models"
	"github.com/mmynk/giftshuffler/internal/shuffle"
)

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyShuffled is returned by CommitAssignments when the edition's
	// shuffled flag is already set.
	ErrAlreadyShuffled = errors.New("edition already shuffled")

	// ErrAlreadyExists is returned when a unique key is taken (organizer email).
	ErrAlreadyExists = errors.New("already exists")
)

// Store defines the interface for gift exchange storage operations.
// This abstraction allows swapping storage backends (SQLite, in-memory)
// without changing the service layer.
type Store interface {
	DirectoryStore
	EditionStore
	OrganizerStore

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}

// DirectoryStore persists persons, groups and occasions.
type DirectoryStore interface {
	// CreatePerson persists a new person. ID and CreatedAt are filled in when empty.
	CreatePerson(ctx context.Context, person *models.Person) error
	GetPerson(ctx context.Context, personID string) (*models.Person, error)
	// ListPersons returns every person ordered by name.
	ListPersons(ctx context.Context) ([]*models.Person, error)
	// DeletePerson removes a person and their group memberships.
	DeletePerson(ctx context.Context, personID string) error

	CreateGroup(ctx context.Context, group *models.Group) error
	// GetGroup returns a group with its current members.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)
	ListGroups(ctx context.Context) ([]*models.Group, error)
	// DeleteGroup removes a group, its memberships and its editions.
	DeleteGroup(ctx context.Context, groupID string) error
	// AddGroupMember adds a person to a group. Adding an existing member is a no-op.
	AddGroupMember(ctx context.Context, groupID, personID string) error
	RemoveGroupMember(ctx context.Context, groupID, personID string) error
	// GetGroupMembers returns the current members ordered by name, then ID.
	GetGroupMembers(ctx context.Context, groupID string) ([]models.Person, error)

	CreateOccasion(ctx context.Context, occasion *models.Occasion) error
	GetOccasion(ctx context.Context, occasionID string) (*models.Occasion, error)
	ListOccasions(ctx context.Context) ([]*models.Occasion, error)
	// DeleteOccasion removes an occasion and its editions.
	DeleteOccasion(ctx context.Context, occasionID string) error
}

// EditionStore persists editions and their assignments.
type EditionStore interface {
	// CreateEdition assigns the next number for (GroupID, OccasionID) and
	// persists the edition. Name defaults to models.DefaultEditionName.
	CreateEdition(ctx context.Context, edition *models.Edition) error
	GetEdition(ctx context.Context, editionID string) (*models.Edition, error)
	// ListEditions returns editions newest first.
	ListEditions(ctx context.Context, filter models.EditionFilter) ([]*models.Edition, error)
	// DeleteEdition removes an edition's assignments and then the edition.
	DeleteEdition(ctx context.Context, editionID string) error

	// GetForbiddenPairs returns every (giver, recipient) pair recorded by any
	// edition of the group and occasion.
	GetForbiddenPairs(ctx context.Context, groupID, occasionID string) ([]shuffle.Pair, error)

	// CommitAssignments writes all pairs and sets the edition's shuffled flag in
	// one atomic step. It fails with ErrAlreadyShuffled if the flag was set.
	CommitAssignments(ctx context.Context, editionID string, pairs []shuffle.Pair) error

	// ListAssignments returns an edition's assignments ordered by giver name.
	ListAssignments(ctx context.Context, editionID string) ([]*models.Assignment, error)
}

// OrganizerStore persists organizer accounts.
type OrganizerStore interface {
	// CreateOrganizer fails with ErrAlreadyExists if the email is taken.
	CreateOrganizer(ctx context.Context, organizer *models.Organizer) error
	// GetOrganizerByEmail returns ErrNotFound for unknown emails.
	GetOrganizerByEmail(ctx context.Context, email string) (*models.Organizer, error)
	GetOrganizerByID(ctx context.Context, id string) (*models.Organizer, error)
}
