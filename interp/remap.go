package interp

import "github.com/aelliixx/alx"

// RangeAlpha returns how far v lies within [lo, hi] as (v-lo)/(hi-lo).
// If hi-lo is within [alx.SmallNumber] of zero no division takes place and
// RangeAlpha returns 1 when v >= hi, and 0 otherwise.
func RangeAlpha[F alx.Float](lo, hi, v F) F {
	div := hi - lo
	if alx.NearZero(div) {
		if v >= hi {
			return 1
		}
		return 0
	}
	return (v - lo) / div
}

// MapUnclamped maps v from [inLo, inHi] onto [outLo, outHi].
// Values outside the input range extrapolate past the output range.
func MapUnclamped[F alx.Float](inLo, inHi, outLo, outHi, v F) F {
	return Lerp(outLo, outHi, float64(RangeAlpha(inLo, inHi, v)))
}

// MapClamped maps v from [inLo, inHi] onto [outLo, outHi], clamping the
// relative position to [0, 1] first so the result never leaves the output range.
func MapClamped[F alx.Float](inLo, inHi, outLo, outHi, v F) F {
	alpha := Clamp(RangeAlpha(inLo, inHi, v), 0, 1)
	return Lerp(outLo, outHi, float64(alpha))
}
