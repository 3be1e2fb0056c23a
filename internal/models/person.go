package models

// Person is a participant that can be added to groups.
// Persons are immutable once created.
type Person struct {
	// ID is the unique identifier for the person (UUID format).
	ID string

	// Name is the display name of the person.
	Name string

	// CreatedAt is the Unix timestamp when the person was created.
	CreatedAt int64
}
