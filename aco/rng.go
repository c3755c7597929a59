package aco

import "math/rand"

// defaultSeed is used when the configured seed is 0.
const defaultSeed int64 = 1

// newRNG returns a deterministic generator; seed 0 selects defaultSeed.
func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// mixSeed combines a parent seed and a stream id with a SplitMix64 finalizer
// so neighbouring stream ids give unrelated seeds.
func mixSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveRNG consumes one value from base and returns an independent stream
// for the given id. *rand.Rand is not safe for concurrent use, so every
// walker gets its own.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(mixSeed(base.Int63(), stream)))
}
