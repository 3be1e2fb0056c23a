// Package shuffle generates gift-exchange assignments.
//
// A valid assignment over n participants is a derangement: every participant
// gives exactly one gift and receives exactly one gift, nobody draws themselves,
// and no (giver, recipient) pair appears in the forbidden set.
//
// Generator finds one by rejection sampling: it draws uniformly random
// permutations from its Source and keeps the first that passes both checks, up
// to a fixed number of attempts. With WithFeasibilityCheck it first tests
// whether any valid assignment exists at all (a bipartite perfect matching), so
// a proven dead end is reported apart from an unlucky run.
package shuffle
