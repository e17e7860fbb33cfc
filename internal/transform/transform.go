// Package transform implements the four interchangeable 8x8 block
// transforms: an exact fast (butterfly) algorithm, an exact reference
// matrix form, a multiplierless approximation, and an identity passthrough.
// All four share the same (64 ints in -> 64 ints out) signature and the
// same row-then-column 2D structure; selection between them is a tagged
// enum dispatched through a small table rather than an interface, per the
// codec's no-heavyweight-polymorphism design note.
package transform

import "fmt"

// Block is a flattened 8x8 tile: 8 rows of 8 samples, row-major.
type Block = [64]int32

// Choice selects one of the four block transforms.
type Choice int

const (
	Fast Choice = iota
	Matrix
	Approx
	Identity
)

func (c Choice) String() string {
	switch c {
	case Fast:
		return "fast"
	case Matrix:
		return "matrix"
	case Approx:
		return "approx"
	case Identity:
		return "identity"
	default:
		return fmt.Sprintf("transform.Choice(%d)", int(c))
	}
}

// Valid reports whether c is one of the four enumerated transforms.
func (c Choice) Valid() bool {
	return c >= Fast && c <= Identity
}

// Pair bundles a transform's forward and inverse 2D implementations.
type Pair struct {
	Forward func(in *Block) Block
	Inverse func(in *Block) Block
}

// dispatch is the tag -> implementation table. Indexed directly by Choice,
// so lookups are O(1) with no type assertions or virtual calls.
var dispatch = [...]Pair{
	Fast:     {Forward: forwardFast2D, Inverse: inverseFast2D},
	Matrix:   {Forward: forwardMatrix2D, Inverse: inverseMatrix2D},
	Approx:   {Forward: forwardApprox2D, Inverse: inverseApprox2D},
	Identity: {Forward: forwardIdentity2D, Inverse: inverseIdentity2D},
}

// Get returns the forward/inverse pair for c, or false if c is not a
// recognized transform choice.
func Get(c Choice) (Pair, bool) {
	if !c.Valid() {
		return Pair{}, false
	}
	return dispatch[c], true
}

// apply2D runs a 1D transform across the 8 rows of in into scratch, then
// across the 8 columns of scratch into out, implementing the 2D structure
// shared by all four transforms (row pass, then column pass, with the
// transpose folded into how rows/columns are addressed rather than as a
// separate step).
func apply2D(in *Block, oneD func(row [8]int64) [8]int64) Block {
	var scratch Block
	for r := 0; r < 8; r++ {
		var row [8]int64
		for c := 0; c < 8; c++ {
			row[c] = int64(in[r*8+c])
		}
		out := oneD(row)
		for c := 0; c < 8; c++ {
			scratch[r*8+c] = int32(out[c])
		}
	}

	var result Block
	for c := 0; c < 8; c++ {
		var col [8]int64
		for r := 0; r < 8; r++ {
			col[r] = int64(scratch[r*8+c])
		}
		out := oneD(col)
		for r := 0; r < 8; r++ {
			result[r*8+c] = int32(out[r])
		}
	}
	return result
}
