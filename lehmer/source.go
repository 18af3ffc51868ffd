package lehmer

import (
	"encoding/binary"
	"sync/atomic"

	"golang.org/x/crypto/blake2b"
)

var defaultSource Source

// Default returns the process-wide [Source]. Its counters start at zero and
// are never reset.
func Default() *Source { return &defaultSource }

// Source hands out mixed values without requiring the caller to track a seed.
// Each call increments a counter and mixes the incremented value. Integer,
// float and bool calls use independent counters, so e.g. calling Bool does not
// perturb the sequence returned by Uint64.
//
// Source is safe for concurrent use: concurrent callers each observe a
// distinct seed, in unspecified order.
// The zero value of Source is ready to use. *Source implements the
// math/rand/v2 Source interface.
type Source struct {
	ints   atomic.Uint64
	floats atomic.Uint64
	bools  atomic.Uint64
}

// NewSource returns a Source whose counters all start at start,
// so the first call of each kind mixes start+1.
func NewSource(start uint64) *Source {
	s := &Source{}
	s.ints.Store(start)
	s.floats.Store(start)
	s.bools.Store(start)
	return s
}

// Uint64 returns the next mixed integer.
func (s *Source) Uint64() uint64 { return Uint64(s.ints.Add(1)) }

// Float64 returns the next mixed value in [0, 1].
func (s *Source) Float64() float64 { return Float64(s.floats.Add(1)) }

// Float32 returns the next mixed value in [0, 1] in single precision.
// It shares its counter with Float64.
func (s *Source) Float32() float32 { return Float32(s.floats.Add(1)) }

// Bool returns the next mixed bool.
func (s *Source) Bool() bool { return Bool(s.bools.Add(1)) }

// SeedString derives a seed from a label by taking the first 8 bytes of its
// BLAKE2b-256 digest. Equal labels always give equal seeds, which lets callers
// name reproducible streams instead of numbering them.
func SeedString(label string) uint64 {
	sum := blake2b.Sum256([]byte(label))
	return binary.LittleEndian.Uint64(sum[:8])
}
