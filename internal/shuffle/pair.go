package shuffle

// Pair is a directed giver → recipient assignment.
type Pair struct {
	Giver     string
	Recipient string
}

// PairSet is a set of pairs. The zero value is an empty, read-only set.
type PairSet map[Pair]struct{}

// NewPairSet builds a set from the given pairs.
func NewPairSet(pairs ...Pair) PairSet {
	set := make(PairSet, len(pairs))
	for _, p := range pairs {
		set[p] = struct{}{}
	}
	return set
}

// Contains reports whether p is in the set.
func (s PairSet) Contains(p Pair) bool {
	_, ok := s[p]
	return ok
}

// Add inserts every pair into the set.
func (s PairSet) Add(pairs ...Pair) {
	for _, p := range pairs {
		s[p] = struct{}{}
	}
}
