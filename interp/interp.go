// Package interp implements linear interpolation, clamping and easing over
// generic numeric types, plus mapping of values between ranges.
//
// None of the functions validate their alpha or exponent arguments:
// values outside [0, 1] extrapolate and non-finite inputs propagate.
package interp

import (
	"math"

	"github.com/aelliixx/alx"
	"golang.org/x/exp/constraints"
)

// Lerp returns a + alpha*(b-a). alpha == 0 and alpha == 1 return a and b exactly.
//
// For integer types the offset alpha*(b-a) is computed in float64, so b-a
// cannot overflow, then truncated towards zero and applied to a in two's
// complement arithmetic. Intermediate results are thus rounded towards a and
// lose precision once |b-a| exceeds 2^53. A non-finite alpha, or one that
// extrapolates past the range of T, yields an unspecified value for integer T.
func Lerp[T alx.Number](a, b T, alpha float64) T {
	switch alpha {
	case 0:
		return a
	case 1:
		return b
	}
	d := alpha * (float64(b) - float64(a))
	if T(1)/2 != 0 {
		// Floating point T.
		return a + T(d)
	}
	if d < 0 {
		return a - T(uint64(-d))
	}
	return a + T(uint64(d))
}

// Clamp returns lo if v < lo, v if v < hi and hi otherwise.
// Note the half-open test against hi: v == hi yields hi, not v.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	} else if v < hi {
		return v
	}
	return hi
}

// EaseIn interpolates between a and b with alpha raised to exp, which
// starts slow and accelerates towards b for exp > 1. exp == 1 is linear.
func EaseIn[T alx.Number](a, b T, alpha, exp float64) T {
	return Lerp(a, b, math.Pow(alpha, exp))
}

// EaseOut is the mirror of [EaseIn]: it starts fast and decelerates towards b.
func EaseOut[T alx.Number](a, b T, alpha, exp float64) T {
	return Lerp(a, b, 1-math.Pow(1-alpha, exp))
}

// EaseInOut eases in over the first half of alpha and out over the second.
// Each half is eased independently with the same exp over [0, 1] and the
// results are recombined into [0, 0.5) and [0.5, 1] respectively.
func EaseInOut[T alx.Number](a, b T, alpha, exp float64) T {
	var eased float64
	if alpha < 0.5 {
		eased = EaseIn(0., 1., alpha*2, exp) * 0.5
	} else {
		eased = EaseOut(0., 1., alpha*2-1, exp)*0.5 + 0.5
	}
	return Lerp(a, b, eased)
}

// Lerpf is [Lerp] for float32.
func Lerpf(a, b, alpha float32) float32 { return Lerp(a, b, float64(alpha)) }

// EaseInf is [EaseIn] for float32.
func EaseInf(a, b, alpha, exp float32) float32 {
	return EaseIn(a, b, float64(alpha), float64(exp))
}

// EaseOutf is [EaseOut] for float32.
func EaseOutf(a, b, alpha, exp float32) float32 {
	return EaseOut(a, b, float64(alpha), float64(exp))
}

// Clampf is [Clamp] for float32.
func Clampf(v, lo, hi float32) float32 { return Clamp(v, lo, hi) }
