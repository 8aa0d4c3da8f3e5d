package shuffle

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPermuteKeepsMultiset(t *testing.T) {
	t.Parallel()

	s := New(42)
	inputs := [][]string{
		{"Ali"},
		{"Ali", "Veli"},
		{"Ali", "Veli", "Can"},
		{"Ali", "Ali", "Veli", "Can", "Deniz", "Ege"},
	}
	for _, in := range inputs {
		orig := slices.Clone(in)
		for range 50 {
			out := s.Names(in)
			require.Len(t, out, len(in))
			require.ElementsMatch(t, in, out)
		}
		require.Equal(t, orig, in, "input must not be mutated")
	}
}

func TestPermuteEmpty(t *testing.T) {
	t.Parallel()

	out := Permute[string](New(1), nil)
	require.Empty(t, out)
}

func TestPermuteUniform(t *testing.T) {
	t.Parallel()

	s := New(7)
	in := []string{"a", "b", "c", "d"}
	const trials = 48000
	counts := map[string]int{}
	for range trials {
		counts[strings.Join(s.Names(in), "")]++
	}
	// 4! orderings, each expected 2000 times.
	require.Len(t, counts, 24)
	for order, n := range counts {
		require.InDelta(t, 2000, n, 250, "ordering %s skewed", order)
	}
}

func TestSplitPairsKeepsPartnersApart(t *testing.T) {
	t.Parallel()

	pairs := []Pair{{"Ali", "Veli"}, {"Ayşe", "Fatma"}, {"Can", "Deniz"}}
	s := New(3)
	for range 100 {
		teams := s.Teams(pairs)
		require.Equal(t, len(pairs), teams.Len())
		require.Len(t, teams.B, len(pairs))
		for i, p := range pairs {
			require.ElementsMatch(t, []string{p.Left, p.Right}, []string{teams.A[i], teams.B[i]})
		}
	}
}

func TestSplitPairsFairCoin(t *testing.T) {
	t.Parallel()

	pairs := []Pair{{"Ali", "Veli"}, {"Can", "Deniz"}}
	s := New(11)
	const trials = 20000
	leftInA := make([]int, len(pairs))
	both := 0
	for range trials {
		teams := s.Teams(pairs)
		for i, p := range pairs {
			if teams.A[i] == p.Left {
				leftInA[i]++
			}
		}
		if teams.A[0] == "Ali" && teams.A[1] == "Can" {
			both++
		}
	}
	for i := range pairs {
		require.InDelta(t, 0.5, float64(leftInA[i])/trials, 0.02)
	}
	// independence across pairs: P(both left in A) ~ 0.25
	require.InDelta(t, 0.25, float64(both)/trials, 0.02)
}

func TestSeededShufflerIsReproducible(t *testing.T) {
	t.Parallel()

	in := []string{"Ali", "Veli", "Can", "Deniz", "Ege", "Arda"}
	require.Equal(t, New(99).Names(in), New(99).Names(in))
}
