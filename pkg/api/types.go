package api

// Person is a participant that can be a member of groups.
type Person struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"createdAt"`
}

// Group is a named set of persons.
type Group struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Members   []*Person `json:"members"`
	CreatedAt int64     `json:"createdAt"`
}

// Occasion is a recurring event such as a birthday or a holiday.
type Occasion struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   int64  `json:"createdAt"`
}

// Edition is one round of a group exchanging gifts for an occasion.
type Edition struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	GroupID      string `json:"groupId"`
	GroupName    string `json:"groupName"`
	OccasionID   string `json:"occasionId"`
	OccasionName string `json:"occasionName"`
	Number       int    `json:"number"`
	IsShuffled   bool   `json:"isShuffled"`
	CreatedAt    int64  `json:"createdAt"`
}

// Assignment says who gives a gift to whom in an edition.
type Assignment struct {
	ID            string `json:"id"`
	EditionID     string `json:"editionId"`
	GiverID       string `json:"giverId"`
	GiverName     string `json:"giverName"`
	RecipientID   string `json:"recipientId"`
	RecipientName string `json:"recipientName"`
	CreatedAt     int64  `json:"createdAt"`
}

// Organizer is an account that manages the directory and editions.
type Organizer struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	CreatedAt   int64  `json:"createdAt"`
}
