package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Both PCG words are derived from the one seed so that a single --seed flag
// reproduces a whole session.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Seed returns seed unchanged, or a time-derived seed when seed is zero.
func Seed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// Derive returns the n-th child seed of seed, used to give parallel
// simulations independent streams.
func Derive(seed int64, n int) int64 {
	return int64(mix(uint64(seed) + uint64(n)*goldenRatio64))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
