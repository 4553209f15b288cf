package out

import (
	"math/rand/v2"

	questionout "sciquiz/internal/modules/question/port/out"
	"sciquiz/internal/platform/clock"
)

// NewSeededSource returns a reproducible PCG stream for seed.
func NewSeededSource(seed uint64) questionout.RandomSource {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// NewClockSource seeds a PCG stream from the current time.
func NewClockSource(c clock.Clock) questionout.RandomSource {
	return NewSeededSource(uint64(c.Now().UnixNano()))
}

// NewSource picks the seeded stream when seed is non-zero.
func NewSource(seed uint64, c clock.Clock) questionout.RandomSource {
	if seed != 0 {
		return NewSeededSource(seed)
	}
	return NewClockSource(c)
}
