package shuffle

import "testing"

func TestFeasible(t *testing.T) {
	tests := []struct {
		name         string
		participants []string
		forbidden    PairSet
		want         bool
	}{
		{
			name:         "single participant",
			participants: []string{"A"},
			want:         false,
		},
		{
			name:         "two participants, no history",
			participants: []string{"A", "B"},
			want:         true,
		},
		{
			name:         "two participants, one direction used",
			participants: []string{"A", "B"},
			forbidden:    NewPairSet(Pair{"A", "B"}),
			want:         false,
		},
		{
			name:         "three participants, one cycle used",
			participants: []string{"A", "B", "C"},
			forbidden:    NewPairSet(Pair{"A", "B"}, Pair{"B", "C"}, Pair{"C", "A"}),
			want:         true,
		},
		{
			name:         "three participants, both cycles used",
			participants: []string{"A", "B", "C"},
			forbidden: NewPairSet(
				Pair{"A", "B"}, Pair{"B", "C"}, Pair{"C", "A"},
				Pair{"A", "C"}, Pair{"C", "B"}, Pair{"B", "A"},
			),
			want: false,
		},
		{
			name:         "one giver has nobody left",
			participants: []string{"A", "B", "C", "D"},
			forbidden:    NewPairSet(Pair{"A", "B"}, Pair{"A", "C"}, Pair{"A", "D"}),
			want:         false,
		},
		{
			name:         "two givers compete for one recipient",
			participants: []string{"A", "B", "C", "D"},
			forbidden: NewPairSet(
				Pair{"A", "B"}, Pair{"A", "C"},
				Pair{"B", "C"}, Pair{"B", "A"},
			),
			// A and B can only give to D.
			want: false,
		},
		{
			name:         "forbidden pairs outside the group are ignored",
			participants: []string{"A", "B"},
			forbidden:    NewPairSet(Pair{"A", "X"}, Pair{"X", "B"}),
			want:         true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Feasible(tt.participants, tt.forbidden); got != tt.want {
				t.Errorf("Feasible() = %v, want %v", got, tt.want)
			}
		})
	}
}
