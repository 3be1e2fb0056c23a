package shuffle

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed permutations. perms[k][i] is the index of the
// original element that ends up at position i on the k-th call.
type scriptedSource struct {
	perms [][]int
	calls int
}

func (s *scriptedSource) Shuffle(n int, swap func(i, j int)) {
	perm := s.perms[s.calls%len(s.perms)]
	s.calls++

	cur := make([]int, n)
	for i := range cur {
		cur[i] = i
	}
	for i := 0; i < n; i++ {
		j := slices.Index(cur, perm[i])
		if j != i {
			swap(i, j)
			cur[i], cur[j] = cur[j], cur[i]
		}
	}
}

func seeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func people(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("p%02d", i)
	}
	return out
}

func TestGenerate_ValidAssignments(t *testing.T) {
	for n := 3; n <= 12; n++ {
		for seed := uint64(1); seed <= 20; seed++ {
			participants := people(n)
			gen := NewGenerator(WithSource(seeded(seed)))

			previous, _, err := gen.Generate(participants, nil)
			require.NoError(t, err)
			forbidden := NewPairSet(previous...)

			pairs, attempts, err := gen.Generate(participants, forbidden)
			require.NoError(t, err, "n=%d seed=%d", n, seed)
			assert.GreaterOrEqual(t, attempts, 1)
			assert.LessOrEqual(t, attempts, DefaultMaxAttempts)

			require.NoError(t, Valid(pairs, participants, forbidden))

			givers := make([]string, 0, n)
			recipients := make([]string, 0, n)
			for _, p := range pairs {
				assert.NotEqual(t, p.Giver, p.Recipient)
				assert.False(t, forbidden.Contains(p))
				givers = append(givers, p.Giver)
				recipients = append(recipients, p.Recipient)
			}
			assert.Equal(t, participants, givers, "givers keep participant order")
			slices.Sort(recipients)
			assert.Equal(t, participants, recipients, "recipients are a permutation")
		}
	}
}

func TestGenerate_TwoParticipantsWithPairForbidden(t *testing.T) {
	participants := []string{"A", "B"}
	forbidden := NewPairSet(Pair{"A", "B"})

	for maxAttempts := 1; maxAttempts <= 10; maxAttempts++ {
		t.Run(fmt.Sprintf("max=%d", maxAttempts), func(t *testing.T) {
			gen := NewGenerator(WithMaxAttempts(maxAttempts), WithSource(seeded(uint64(maxAttempts))))

			pairs, attempts, err := gen.Generate(participants, forbidden)
			require.ErrorIs(t, err, ErrInfeasible)
			assert.Nil(t, pairs)
			assert.Equal(t, maxAttempts, attempts)

			var infeasible *InfeasibleError
			require.True(t, errors.As(err, &infeasible))
			assert.False(t, infeasible.Proven)
			assert.Equal(t, maxAttempts, infeasible.Attempts)
		})
	}
}

func TestGenerate_FeasibilityCheckSkipsSampling(t *testing.T) {
	src := &scriptedSource{perms: [][]int{{1, 0}}}
	gen := NewGenerator(WithSource(src), WithFeasibilityCheck(true))

	_, attempts, err := gen.Generate([]string{"A", "B"}, NewPairSet(Pair{"A", "B"}))
	require.ErrorIs(t, err, ErrInfeasible)

	var infeasible *InfeasibleError
	require.ErrorAs(t, err, &infeasible)
	assert.True(t, infeasible.Proven)
	assert.Zero(t, attempts)
	assert.Zero(t, src.calls, "source must not be consulted")
}

func TestGenerate_FeasibilityCheckStillSamples(t *testing.T) {
	src := &scriptedSource{perms: [][]int{{1, 0}}}
	gen := NewGenerator(WithSource(src), WithFeasibilityCheck(true))

	pairs, attempts, err := gen.Generate([]string{"A", "B"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, []Pair{{"A", "B"}, {"B", "A"}}, pairs)
}

func TestGenerate_RejectionOrder(t *testing.T) {
	participants := []string{"A", "B", "C", "D"}
	forbidden := NewPairSet(Pair{"A", "B"})

	src := &scriptedSource{perms: [][]int{
		{0, 1, 2, 3}, // identity: fixed points everywhere
		{1, 0, 3, 2}, // derangement, but A→B is forbidden
		{1, 2, 3, 0}, // A→B again
		{2, 0, 3, 1}, // A→C, B→A, C→D, D→B
	}}
	gen := NewGenerator(WithSource(src))

	pairs, attempts, err := gen.Generate(participants, forbidden)
	require.NoError(t, err)
	assert.Equal(t, 4, attempts)
	assert.Equal(t, 4, src.calls)
	assert.Equal(t, []Pair{
		{Giver: "A", Recipient: "C"},
		{Giver: "B", Recipient: "A"},
		{Giver: "C", Recipient: "D"},
		{Giver: "D", Recipient: "B"},
	}, pairs)
}

func TestGenerate_ExhaustsOnScriptedRejections(t *testing.T) {
	src := &scriptedSource{perms: [][]int{{0, 2, 1}}} // A keeps A
	gen := NewGenerator(WithSource(src), WithMaxAttempts(5))

	_, attempts, err := gen.Generate([]string{"A", "B", "C"}, nil)
	require.ErrorIs(t, err, ErrInfeasible)
	assert.Equal(t, 5, attempts)
	assert.Equal(t, 5, src.calls)
}

func TestGenerate_ThreeCycleHistory(t *testing.T) {
	participants := []string{"A", "B", "C"}
	gen := NewGenerator(WithSource(seeded(42)))
	forbidden := NewPairSet()

	for edition := 1; edition <= 2; edition++ {
		require.True(t, Feasible(participants, forbidden))

		pairs, _, err := gen.Generate(participants, forbidden)
		require.NoError(t, err, "edition %d", edition)
		require.NoError(t, Valid(pairs, participants, forbidden))
		forbidden.Add(pairs...)
	}

	assert.Len(t, forbidden, 6, "both 3-cycles used")
	assert.False(t, Feasible(participants, forbidden))

	_, _, err := gen.Generate(participants, forbidden)
	assert.ErrorIs(t, err, ErrInfeasible)
}

func TestGenerate_IgnoresForbiddenOutsideParticipants(t *testing.T) {
	src := &scriptedSource{perms: [][]int{{1, 0}}}
	gen := NewGenerator(WithSource(src))

	forbidden := NewPairSet(Pair{"A", "Z"}, Pair{"Z", "B"})
	pairs, _, err := gen.Generate([]string{"A", "B"}, forbidden)
	require.NoError(t, err)
	assert.Equal(t, []Pair{{"A", "B"}, {"B", "A"}}, pairs)
}

func TestGenerate_BothThreeCyclesReachable(t *testing.T) {
	participants := []string{"A", "B", "C"}
	gen := NewGenerator(WithSource(seeded(7)))

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		pairs, _, err := gen.Generate(participants, nil)
		require.NoError(t, err)
		seen[pairs[0].Recipient] = true
	}
	assert.True(t, seen["B"] && seen["C"], "A should draw both B and C over many runs")
}

func TestGenerate_InvalidParticipants(t *testing.T) {
	gen := NewGenerator()

	_, _, err := gen.Generate(nil, nil)
	assert.ErrorIs(t, err, ErrInsufficientParticipants)

	_, _, err = gen.Generate([]string{"A"}, nil)
	assert.ErrorIs(t, err, ErrInsufficientParticipants)

	_, _, err = gen.Generate([]string{"A", "B", "A"}, nil)
	assert.ErrorIs(t, err, ErrDuplicateParticipant)
	assert.NotErrorIs(t, err, ErrInfeasible)
}

func TestNewGenerator_Options(t *testing.T) {
	assert.Equal(t, DefaultMaxAttempts, NewGenerator().MaxAttempts())
	assert.Equal(t, 7, NewGenerator(WithMaxAttempts(7)).MaxAttempts())
	assert.Equal(t, DefaultMaxAttempts, NewGenerator(WithMaxAttempts(0)).MaxAttempts())
	assert.Equal(t, DefaultMaxAttempts, NewGenerator(WithMaxAttempts(-3)).MaxAttempts())
}

func TestValid(t *testing.T) {
	participants := []string{"A", "B", "C"}

	tests := []struct {
		name      string
		pairs     []Pair
		forbidden PairSet
		wantErr   bool
	}{
		{
			name:  "3-cycle",
			pairs: []Pair{{"A", "B"}, {"B", "C"}, {"C", "A"}},
		},
		{
			name:    "self assignment",
			pairs:   []Pair{{"A", "A"}, {"B", "C"}, {"C", "B"}},
			wantErr: true,
		},
		{
			name:    "recipient twice",
			pairs:   []Pair{{"A", "B"}, {"B", "A"}, {"C", "A"}},
			wantErr: true,
		},
		{
			name:    "missing giver",
			pairs:   []Pair{{"A", "B"}, {"B", "A"}},
			wantErr: true,
		},
		{
			name:    "stranger",
			pairs:   []Pair{{"A", "B"}, {"B", "Z"}, {"C", "A"}},
			wantErr: true,
		},
		{
			name:      "forbidden pair",
			pairs:     []Pair{{"A", "B"}, {"B", "C"}, {"C", "A"}},
			forbidden: NewPairSet(Pair{"B", "C"}),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Valid(tt.pairs, participants, tt.forbidden)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
