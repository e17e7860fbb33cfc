package transform

// forwardIdentity2D and inverseIdentity2D copy their input straight
// through, bypassing the row/column machinery entirely. Identity's role is
// to isolate the non-transform error sources in the pipeline (color
// conversion rounding, tile boundary handling) by removing the transform
// itself as a variable.
func forwardIdentity2D(in *Block) Block {
	return *in
}

func inverseIdentity2D(in *Block) Block {
	return *in
}
