package transform

import "github.com/dctlab/codec/internal/fixedpoint"

// cintraBayerT is the Cintra-Bayer (2011) multiplierless approximation of
// the 8-point DCT-II: every entry is in {-1, 0, 1}, so the forward pass
// needs only additions and subtractions. Each row approximates the sign
// pattern of the corresponding true DCT-II basis vector, zeroing the
// entries with the smallest true magnitude so the row's squared norm
// matches spec 4.4.3's (8, 6, 4, 6, 8, 6, 4, 6).
var cintraBayerT = [8][8]int32{
	{1, 1, 1, 1, 1, 1, 1, 1},
	{1, 1, 1, 0, 0, -1, -1, -1},
	{1, 0, 0, -1, -1, 0, 0, 1},
	{1, 0, -1, -1, 1, 1, 0, -1},
	{1, -1, -1, 1, 1, -1, -1, 1},
	{1, -1, 0, 1, -1, 0, 1, -1},
	{0, -1, 1, 0, 0, 1, -1, 0},
	{0, -1, 1, -1, 1, -1, 1, 0},
}

// rowNormSquared is T's per-row squared norm, used by the quantizer's norm
// correction (spec 4.5) to absorb T's non-orthonormality.
var rowNormSquared = [8]int{8, 6, 4, 6, 8, 6, 4, 6}

// RowNormSquared exposes cintraBayerT's squared row norms to the quantizer
// package without exporting the matrix itself.
func RowNormSquared() [8]int {
	return rowNormSquared
}

// inversePrescale are the per-coefficient prescaling factors from spec
// 4.4.3 chosen so the inverse's common denominator (24) can be applied
// with a single rounded division per output sample.
var inversePrescale = [8]int32{3, 4, 6, 4, 3, 4, 6, 4}

const inverseDenom = 24

// approx1DForward computes output = T * input using only additions and
// subtractions, since every entry of T is -1, 0, or 1.
func approx1DForward(x [8]int64) [8]int64 {
	var out [8]int64
	for k := 0; k < 8; k++ {
		var acc int64
		row := cintraBayerT[k]
		for n := 0; n < 8; n++ {
			switch row[n] {
			case 1:
				acc += x[n]
			case -1:
				acc -= x[n]
			}
		}
		out[k] = acc
	}
	return out
}

// approx1DInverse computes output = round(T^T * diag(prescale) * input /
// 24), per spec 4.4.3.
func approx1DInverse(x [8]int64) [8]int64 {
	var out [8]int64
	for n := 0; n < 8; n++ {
		var acc int64
		for k := 0; k < 8; k++ {
			entry := cintraBayerT[k][n]
			if entry == 0 {
				continue
			}
			term := x[k] * int64(inversePrescale[k])
			if entry < 0 {
				term = -term
			}
			acc += term
		}
		out[n] = fixedpoint.Div64(acc, inverseDenom)
	}
	return out
}

func forwardApprox2D(in *Block) Block {
	return apply2D(in, approx1DForward)
}

func inverseApprox2D(in *Block) Block {
	return apply2D(in, approx1DInverse)
}
