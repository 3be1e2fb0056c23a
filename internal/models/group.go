package models

// Group represents a set of persons who exchange gifts together.
// Membership is a set: a person appears at most once.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Family", "Office").
	Name string

	// Members is the current membership, ordered by name.
	Members []Person

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// MemberIDs returns the IDs of the group's members in listing order.
func (g *Group) MemberIDs() []string {
	ids := make([]string, len(g.Members))
	for i, m := range g.Members {
		ids[i] = m.ID
	}
	return ids
}
