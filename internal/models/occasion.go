package models

// Occasion is a named recurring event, independent of any group.
type Occasion struct {
	ID          string
	Name        string
	Description string
	CreatedAt   int64
}
