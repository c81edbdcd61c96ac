// Package gen generates input sequences for sort runs.
package gen

import (
	"math/rand/v2"

	"github.com/joshuapare/sortkit/pkg/types"
)

// Profile describes an input sequence.
type Profile struct {
	Kind types.InputKind
	Size int

	// Low and High bound InputRandom values, inclusive. Ignored by the
	// other kinds.
	Low  int
	High int

	// Seed for reproducibility (0 = random)
	Seed uint64
}

// Generate returns the sequence described by p. Callers validate p first;
// a Size below one yields an empty slice.
func Generate(p Profile) []int {
	if p.Size < 1 {
		return []int{}
	}

	out := make([]int, p.Size)
	switch p.Kind {
	case types.InputRandom:
		rng := newRand(p.Seed)
		span := p.High - p.Low + 1
		for i := range out {
			out[i] = p.Low + rng.IntN(span)
		}
	case types.InputShuffled:
		ascending(out)
		rng := newRand(p.Seed)
		rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	case types.InputAscending:
		ascending(out)
	case types.InputDescending:
		for i := range out {
			out[i] = p.Size - i
		}
	}
	return out
}

func ascending(out []int) {
	for i := range out {
		out[i] = i + 1
	}
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed))
}
