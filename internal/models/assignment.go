package models

// Assignment is one giver → recipient pair within an edition.
type Assignment struct {
	ID        string
	EditionID string

	GiverID   string
	GiverName string

	RecipientID   string
	RecipientName string

	// CreatedAt is the Unix timestamp of the commit that produced the assignment.
	// All assignments of an edition share it.
	CreatedAt int64
}
