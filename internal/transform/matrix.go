package transform

import "github.com/dctlab/codec/internal/fixedpoint"

// cosineMatrix[k][n] = cos(pi*k*(2n+1)/16) * Scale, the exact 8x8 DCT-II
// basis matrix at the fixed-point scale shared by the whole codec.
var cosineMatrix = buildCosineMatrix()

// norm[0] = 1/sqrt(8) * Scale, norm[k>0] = sqrt(2/8) * Scale: the per-row
// orthonormal scaling factors from spec 4.4.2.
var norm = [8]int64{
	370728, // 1/sqrt(8) * 2^20
	524288, // sqrt(2/8) * 2^20 == sqrt(1/4)*2^20 == 0.5 * 2^20
	524288,
	524288,
	524288,
	524288,
	524288,
	524288,
}

func buildCosineMatrix() [8][8]int64 {
	// cos(pi*k*(2n+1)/16) * 2^20 for k,n in [0,7], rounded to the nearest
	// integer and hard-coded so the reference transform needs no floating
	// point at runtime. Row 0 is Scale itself and row 4 is cos(pi/4)*Scale
	// (741455); every other row is built from the six scaled constants
	// (C1, S1, C3, S3, C6, S6), since pi*k*(2n+1)/16 always reduces to one
	// of those angles modulo the cosine's symmetry about 0 and pi.
	table := [8][8]int64{
		{1048576, 1048576, 1048576, 1048576, 1048576, 1048576, 1048576, 1048576},
		{1028428, 871859, 582558, 204567, -204567, -582558, -871859, -1028428},
		{968758, 401273, -401273, -968758, -968758, -401273, 401273, 968758},
		{871859, -204567, -1028428, -582558, 582558, 1028428, 204567, -871859},
		{741455, -741455, -741455, 741455, 741455, -741455, -741455, 741455},
		{582558, -1028428, 204567, 871859, -871859, -204567, 1028428, -582558},
		{401273, -968758, 968758, -401273, -401273, 968758, -968758, 401273},
		{204567, -582558, 871859, -1028428, 1028428, -871859, 582558, -204567},
	}
	var m [8][8]int64
	copy(m[:], table[:])
	return m
}

// matrix1DForward computes output[k] = round(NORM[k] * sum_n input[n] *
// cos(pi*k*(2n+1)/16) / Scale^2), the exact DCT-II by direct summation
// against the cosine matrix. This is slower than the fast transform but
// exists as an unconditional correctness reference: for every input and
// every k the fast transform must reproduce the same quantized
// coefficients this produces.
func matrix1DForward(in [8]int64) [8]int64 {
	var out [8]int64
	for k := 0; k < 8; k++ {
		var acc int64
		for n := 0; n < 8; n++ {
			acc += in[n] * cosineMatrix[k][n]
		}
		// acc is at scale Scale (from cosineMatrix); norm[k] is also at
		// scale Scale, so acc*norm[k] is at scale Scale^2. Round once.
		out[k] = fixedpoint.Div64(acc*norm[k], fixedpoint.Scale*fixedpoint.Scale)
	}
	return out
}

// matrix1DInverse computes output[n] = round(sum_k input[k] * NORM[k] *
// cos(pi*k*(2n+1)/16) / Scale^2), the direct-summation inverse.
func matrix1DInverse(in [8]int64) [8]int64 {
	var out [8]int64
	for n := 0; n < 8; n++ {
		var acc int64
		for k := 0; k < 8; k++ {
			acc += in[k] * norm[k] * cosineMatrix[k][n]
		}
		out[n] = fixedpoint.Div64(acc, fixedpoint.Scale*fixedpoint.Scale)
	}
	return out
}

func forwardMatrix2D(in *Block) Block {
	return apply2D(in, matrix1DForward)
}

func inverseMatrix2D(in *Block) Block {
	return apply2D(in, matrix1DInverse)
}
