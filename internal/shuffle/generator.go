package shuffle

import "fmt"

// DefaultMaxAttempts bounds rejection sampling when no limit is configured.
const DefaultMaxAttempts = 1000

// Generator produces assignments by rejection sampling.
type Generator struct {
	maxAttempts   int
	source        Source
	checkFeasible bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithMaxAttempts sets how many permutations are tried before giving up.
// Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n >= 1 {
			g.maxAttempts = n
		}
	}
}

// WithSource replaces the randomness source.
func WithSource(src Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.source = src
		}
	}
}

// WithFeasibilityCheck makes Generate prove that a valid assignment exists
// before sampling.
func WithFeasibilityCheck(enabled bool) Option {
	return func(g *Generator) {
		g.checkFeasible = enabled
	}
}

// NewGenerator creates a Generator. Without options it tries up to
// DefaultMaxAttempts permutations from the global math/rand/v2 source.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		maxAttempts: DefaultMaxAttempts,
		source:      globalSource{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// MaxAttempts returns the configured sampling budget.
func (g *Generator) MaxAttempts() int {
	return g.maxAttempts
}

// Generate returns one pair per participant, in participant order, such that
// nobody gives to themselves and no pair is in forbidden.
//
// The returned attempt count is the number of permutations drawn. On failure
// the error matches ErrInfeasible and is an *InfeasibleError.
func (g *Generator) Generate(participants []string, forbidden PairSet) ([]Pair, int, error) {
	if err := checkParticipants(participants); err != nil {
		return nil, 0, err
	}

	if g.checkFeasible && !Feasible(participants, forbidden) {
		return nil, 0, &InfeasibleError{Proven: true}
	}

	n := len(participants)
	recipients := make([]string, n)
	swap := func(i, j int) {
		recipients[i], recipients[j] = recipients[j], recipients[i]
	}

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		copy(recipients, participants)
		g.source.Shuffle(n, swap)

		if !IsDerangement(participants, recipients) {
			continue
		}
		if hitsForbidden(participants, recipients, forbidden) {
			continue
		}

		pairs := make([]Pair, n)
		for i := range participants {
			pairs[i] = Pair{Giver: participants[i], Recipient: recipients[i]}
		}
		return pairs, attempt, nil
	}

	return nil, g.maxAttempts, &InfeasibleError{Attempts: g.maxAttempts}
}

// IsDerangement reports whether recipients differs from givers at every position.
func IsDerangement(givers, recipients []string) bool {
	if len(givers) != len(recipients) {
		return false
	}
	for i := range givers {
		if givers[i] == recipients[i] {
			return false
		}
	}
	return true
}

func hitsForbidden(givers, recipients []string, forbidden PairSet) bool {
	if len(forbidden) == 0 {
		return false
	}
	for i := range givers {
		if forbidden.Contains(Pair{Giver: givers[i], Recipient: recipients[i]}) {
			return true
		}
	}
	return false
}

// Valid checks that pairs is a complete assignment over participants: every
// participant gives once and receives once, nobody draws themselves, and no
// pair is forbidden.
func Valid(pairs []Pair, participants []string, forbidden PairSet) error {
	if len(pairs) != len(participants) {
		return fmt.Errorf("got %d pairs for %d participants", len(pairs), len(participants))
	}

	members := make(map[string]bool, len(participants))
	for _, p := range participants {
		members[p] = true
	}

	gives := make(map[string]bool, len(pairs))
	receives := make(map[string]bool, len(pairs))
	for _, p := range pairs {
		switch {
		case !members[p.Giver] || !members[p.Recipient]:
			return fmt.Errorf("pair %s → %s references a non-participant", p.Giver, p.Recipient)
		case p.Giver == p.Recipient:
			return fmt.Errorf("%s is assigned to themselves", p.Giver)
		case forbidden.Contains(p):
			return fmt.Errorf("pair %s → %s is forbidden", p.Giver, p.Recipient)
		case gives[p.Giver]:
			return fmt.Errorf("%s gives more than once", p.Giver)
		case receives[p.Recipient]:
			return fmt.Errorf("%s receives more than once", p.Recipient)
		}
		gives[p.Giver] = true
		receives[p.Recipient] = true
	}
	return nil
}

func checkParticipants(participants []string) error {
	if len(participants) < 2 {
		return ErrInsufficientParticipants
	}
	seen := make(map[string]bool, len(participants))
	for _, p := range participants {
		if seen[p] {
			return fmt.Errorf("%w: %s", ErrDuplicateParticipant, p)
		}
		seen[p] = true
	}
	return nil
}
