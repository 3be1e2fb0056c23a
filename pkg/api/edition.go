package api

type CreateEditionRequest struct {
	GroupID    string `json:"groupId" validate:"required"`
	OccasionID string `json:"occasionId" validate:"required"`
	// Name is optional; the default is "<group> – <occasion> – Edition <n>".
	Name string `json:"name,omitempty" validate:"max=200"`
}

type CreateEditionResponse struct {
	Edition *Edition `json:"edition"`
}

type GetEditionRequest struct {
	EditionID string `json:"editionId" validate:"required"`
}

type GetEditionResponse struct {
	Edition *Edition `json:"edition"`
}

// ListEditionsRequest filters by group and occasion. Empty fields match all.
type ListEditionsRequest struct {
	GroupID    string `json:"groupId,omitempty"`
	OccasionID string `json:"occasionId,omitempty"`
}

type ListEditionsResponse struct {
	Editions []*Edition `json:"editions"`
}

type DeleteEditionRequest struct {
	EditionID string `json:"editionId" validate:"required"`
}

type DeleteEditionResponse struct{}

type ShuffleEditionRequest struct {
	EditionID string `json:"editionId" validate:"required"`
}

type ShuffleEditionResponse struct {
	Edition     *Edition      `json:"edition"`
	Assignments []*Assignment `json:"assignments"`
	// Attempts is the number of permutations drawn before one was accepted.
	Attempts int `json:"attempts"`
}

type ListAssignmentsRequest struct {
	EditionID string `json:"editionId" validate:"required"`
}

type ListAssignmentsResponse struct {
	Assignments []*Assignment `json:"assignments"`
}
