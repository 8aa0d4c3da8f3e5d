// Package shuffle holds the randomization routines behind every draw: a
// Fisher-Yates permutation and a per-pair coin flip that splits partners
// into two teams.
package shuffle

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source is the subset of *rand.Rand the routines need.
type Source interface {
	IntN(n int) int
}

// Pair is a left/right couple that must end up on opposite teams.
type Pair struct {
	Left  string
	Right string
}

// Teams is a two-way split. A[i] and B[i] always come from the same pair.
type Teams struct {
	A []string
	B []string
}

// Len reports the number of pairs in the split.
func (t Teams) Len() int { return len(t.A) }

// Shuffler provides seeded randomization. It is safe for concurrent use.
type Shuffler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Shuffler. A zero seed derives one from the clock.
func New(seed uint64) *Shuffler {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Shuffler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntN returns a uniform int in [0, n).
func (s *Shuffler) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// Names returns a shuffled copy of names.
func (s *Shuffler) Names(names []string) []string {
	return Permute(s, names)
}

// Teams splits pairs into two teams.
func (s *Shuffler) Teams(pairs []Pair) Teams {
	return SplitPairs(s, pairs)
}

// Permute returns a uniformly random permutation of items. The input slice
// is left untouched.
func Permute[T any](src Source, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i >= 1; i-- {
		j := src.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// SplitPairs assigns each pair's members to opposite teams with an
// independent fair coin per pair, keeping the input order.
func SplitPairs(src Source, pairs []Pair) Teams {
	teams := Teams{
		A: make([]string, 0, len(pairs)),
		B: make([]string, 0, len(pairs)),
	}
	for _, p := range pairs {
		if src.IntN(2) == 0 {
			teams.A = append(teams.A, p.Left)
			teams.B = append(teams.B, p.Right)
		} else {
			teams.A = append(teams.A, p.Right)
			teams.B = append(teams.B, p.Left)
		}
	}
	return teams
}
