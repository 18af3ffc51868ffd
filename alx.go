// Package alx holds definitions shared by the numeric helper packages:
// tolerance constants and the numeric type sets used by generic functions.
//
// The facilities themselves live in subpackages:
//   - [github.com/aelliixx/alx/interp]: lerp, clamp, easing and range mapping.
//   - [github.com/aelliixx/alx/lehmer]: deterministic seeded pseudo-random numbers.
//   - [github.com/aelliixx/alx/bitx]: bit masking, reversal and binary rendering.
//   - [github.com/aelliixx/alx/seq]: linear search over slices.
//   - [github.com/aelliixx/alx/geom]: plain 2D and 3D point aggregates.
package alx

import "golang.org/x/exp/constraints"

const (
	// Pi as a float32 constant.
	Pi float32 = 3.1415926535897932384626433832795
	// SmallNumber is the tolerance below which a magnitude is treated as zero,
	// i.e. when guarding divisions.
	SmallNumber = 1e-8
)

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float is any floating point type.
type Float interface {
	constraints.Float
}

// NearTolerance reports whether |v| <= tol.
func NearTolerance[F Float](v, tol F) bool {
	if v < 0 {
		v = -v
	}
	return v <= tol
}

// NearZero reports whether v lies within [SmallNumber] of zero.
// A NaN is never near zero.
func NearZero[F Float](v F) bool {
	return NearTolerance(v, SmallNumber)
}
