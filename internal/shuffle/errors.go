package shuffle

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientParticipants is returned for fewer than two participants.
	ErrInsufficientParticipants = errors.New("at least 2 participants are required")

	// ErrDuplicateParticipant is returned when a participant ID repeats.
	ErrDuplicateParticipant = errors.New("duplicate participant")

	// ErrInfeasible matches every *InfeasibleError.
	ErrInfeasible = errors.New("no valid assignment")
)

// InfeasibleError reports that no assignment was produced.
//
// Proven is true when the feasibility check showed that no valid assignment
// exists. Otherwise the sampling budget ran out, which may or may not mean the
// constraints are unsatisfiable.
type InfeasibleError struct {
	Attempts int
	Proven   bool
}

func (e *InfeasibleError) Error() string {
	if e.Proven {
		return "no valid assignment: every derangement repeats a previous pair"
	}
	return fmt.Sprintf("no valid assignment found after %d attempts", e.Attempts)
}

// Is makes errors.Is(err, ErrInfeasible) hold for any *InfeasibleError.
func (e *InfeasibleError) Is(target error) bool {
	return target == ErrInfeasible
}
