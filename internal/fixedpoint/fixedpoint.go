// Package fixedpoint holds the scale factor, scaled trigonometric constants,
// and rounded-division primitive used by the block transforms and the
// quantizer. Everything here is integer arithmetic. The color conversion
// does not use this package; it has its own scale-1000 constants.
package fixedpoint

// Scale is the base fixed-point scale used by the exact transforms:
// S = 2^20.
const Scale = 1 << 20

// Scaled trigonometric constants for the fast transform, all multiplied by
// Scale and rounded to the nearest integer.
const (
	C1 = 1028428 // cos(pi/16)  * Scale
	S1 = 204567  // sin(pi/16)  * Scale
	C3 = 871859  // cos(3pi/16) * Scale
	S3 = 582558  // sin(3pi/16) * Scale
	C6 = 401273  // cos(6pi/16) * Scale
	S6 = 968758  // sin(6pi/16) * Scale

	Sqrt2 = 1482910 // sqrt(2) * Scale
)

// Div64 performs rounded division with ties away from zero: for a signed
// numerator n and a strictly positive denominator d it returns
// sign(n) * (|n| + d/2) / d, truncating the final division toward zero.
//
// All multiply-accumulates that feed this function must use a 64-bit signed
// accumulator; a 32-bit intermediate on the multiply step is forbidden
// because the transforms accumulate products of two ~21-bit fixed-point
// values.
func Div64(n int64, d int64) int64 {
	if d <= 0 {
		panic("fixedpoint: Div64 requires a positive denominator")
	}
	if n >= 0 {
		return (n + d/2) / d
	}
	return -((-n + d/2) / d)
}

// Div is the int-typed convenience wrapper around Div64 for callers that
// already know their values fit comfortably in a machine int after rounding.
func Div(n, d int) int {
	return int(Div64(int64(n), int64(d)))
}
