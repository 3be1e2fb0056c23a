package models

import "fmt"

// Edition is one occurrence of a group exchanging gifts for an occasion.
//
// An edition starts unshuffled. Shuffling it commits its assignments and flips
// IsShuffled; the flag never goes back to false.
type Edition struct {
	// ID is the unique identifier for the edition (UUID format).
	ID string

	// Name is a human readable label. Defaults to DefaultEditionName.
	Name string

	GroupID    string
	OccasionID string

	// GroupName and OccasionName are filled in on reads.
	GroupName    string
	OccasionName string

	// Number is the sequence number within (GroupID, OccasionID), starting at 1.
	Number int

	// IsShuffled reports whether assignments have been committed.
	IsShuffled bool

	// CreatedAt is the Unix timestamp when the edition was created.
	CreatedAt int64
}

// EditionFilter narrows edition listings. Empty fields match everything.
type EditionFilter struct {
	GroupID    string
	OccasionID string
}

// DefaultEditionName builds the label used when an edition is created without one.
func DefaultEditionName(groupName, occasionName string, number int) string {
	return fmt.Sprintf("%s – %s – Edition %d", groupName, occasionName, number)
}
