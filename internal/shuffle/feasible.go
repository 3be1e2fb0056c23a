package shuffle

// Feasible reports whether at least one valid assignment exists for the given
// participants: a perfect matching from givers to recipients that avoids self
// pairs and every forbidden pair.
//
// It runs Kuhn's augmenting path algorithm, O(n³) in the worst case, which is
// negligible for group sizes in the tens.
func Feasible(participants []string, forbidden PairSet) bool {
	n := len(participants)
	if n < 2 {
		return false
	}

	allowed := make([][]int, n)
	for g, giver := range participants {
		for r, recipient := range participants {
			if g == r || forbidden.Contains(Pair{Giver: giver, Recipient: recipient}) {
				continue
			}
			allowed[g] = append(allowed[g], r)
		}
	}

	// matchedTo[r] is the giver currently holding recipient r, or -1.
	matchedTo := make([]int, n)
	for i := range matchedTo {
		matchedTo[i] = -1
	}

	var augment func(g int, seen []bool) bool
	augment = func(g int, seen []bool) bool {
		for _, r := range allowed[g] {
			if seen[r] {
				continue
			}
			seen[r] = true
			if matchedTo[r] == -1 || augment(matchedTo[r], seen) {
				matchedTo[r] = g
				return true
			}
		}
		return false
	}

	for g := 0; g < n; g++ {
		if !augment(g, make([]bool, n)) {
			return false
		}
	}
	return true
}
