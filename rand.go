// Copyright (c) 2026 The bddkit Authors
//
// MIT License

package robdd

import "math/rand"

// RandSource is the minimal randomness source VarPickRandom and PickRandom
// need: a uniform int64 generator, exactly the shape of *rand.Rand.Int63, so
// that callers can pass a seeded *rand.Rand (for reproducible tests, see
// relops_test.go) or any other compatible generator without this package
// importing math/rand's full Source interface.
type RandSource interface {
	Int63() int64
}

// coinflip draws a single pseudo-random Boolean from rng, used to choose
// between the low and high branch when both lead to a satisfying path.
func coinflip(rng RandSource) bool {
	return rng.Int63()&1 == 1
}

// Compile-time check that *rand.Rand satisfies RandSource, the type the
// *_random tests seed deterministically; this package never constructs a
// generator itself, randomness is always caller-supplied.
var _ RandSource = (*rand.Rand)(nil)
