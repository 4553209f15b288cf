package domain_test

import "math/rand/v2"

const samplesPerDifficulty = 1500

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
