// Package lehmer provides a fast deterministic integer mixer used as a
// reproducible pseudo-random source. The same seed always yields the same
// output across platforms and runs. It is not cryptographically secure.
//
// The package level functions take an explicit seed and are the way to get
// reproducible sequences. [Source] derives seeds from internal counters for
// callers who only want values that differ from call to call.
package lehmer

import "math"

// Uint64 mixes seed through two multiply-xorshift rounds. All arithmetic
// wraps modulo 2^64.
func Uint64(seed uint64) uint64 {
	seed += 0xe120fc15
	tmp := seed * 0x4a39b70d
	m1 := (tmp >> 32) ^ tmp
	tmp = m1 * 0x12fad5c9
	return (tmp >> 32) ^ tmp
}

// Float32 returns Uint64(seed) normalized to [0, 1] in single precision.
// Rounding can produce exactly 1.
func Float32(seed uint64) float32 {
	return float32(Uint64(seed)) / float32(math.MaxUint64)
}

// Float64 returns Uint64(seed) normalized to [0, 1].
func Float64(seed uint64) float64 {
	return float64(Uint64(seed)) / float64(math.MaxUint64)
}

// Bool returns true if Uint64(seed) is odd.
func Bool(seed uint64) bool {
	return Uint64(seed)%2 != 0
}
