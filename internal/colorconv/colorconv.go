// Package colorconv implements the fixed-point BT.601 RGB<->YCbCr
// conversion used by the codec's color transform stage. The integer
// constants (scaled by 1000 and rounded) match libwebp-style fixed-point
// color code in spirit: precomputed integer multipliers, a single rounded
// division per channel, and saturation on the inverse path.
package colorconv

// Forward (RGB -> YCbCr) constants, scaled by 1000.
const (
	fwdYR, fwdYG, fwdYB = 299, 587, 114
	fwdCbR, fwdCbG, fwdCbB = -169, -331, 500
	fwdCrR, fwdCrG, fwdCrB = 500, -419, -81
)

// Inverse (YCbCr -> RGB) constants, scaled by 1000.
const (
	invRCr       = 1402
	invGCb, invGCr = 344, 714
	invBCb       = 1772
)

// roundDiv1000 performs rounded division by 1000, ties away from zero.
func roundDiv1000(n int) int {
	if n >= 0 {
		return (n + 500) / 1000
	}
	return -((-n + 500) / 1000)
}

func clip255(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// RGBToYCbCr converts a single RGB triple to signed Y, Cb, Cr, where Y is
// offset by -128 so the whole triple sits in roughly [-128, 127].
func RGBToYCbCr(r, g, b uint8) (y, cb, cr int32) {
	ri, gi, bi := int(r), int(g), int(b)
	y = int32(roundDiv1000(fwdYR*ri+fwdYG*gi+fwdYB*bi) - 128)
	cb = int32(roundDiv1000(fwdCbR*ri + fwdCbG*gi + fwdCbB*bi))
	cr = int32(roundDiv1000(fwdCrR*ri + fwdCrG*gi + fwdCrB*bi))
	return y, cb, cr
}

// YCbCrToRGB converts a single signed Y/Cb/Cr triple (Y already offset by
// -128) back to a saturated RGB triple.
func YCbCrToRGB(y, cb, cr int32) (r, g, b uint8) {
	yy := int(y) + 128
	r = clip255(yy + roundDiv1000(invRCr*int(cr)))
	g = clip255(yy - roundDiv1000(invGCb*int(cb)+invGCr*int(cr)))
	b = clip255(yy + roundDiv1000(invBCb*int(cb)))
	return r, g, b
}

// RGBPlanesToYCbCr converts a batch of W*H RGB pixels (row-major, 3 bytes
// per pixel) into three signed planes of length W*H. The batched and
// single-pixel forms must agree exactly; this is a straight per-pixel loop
// with no windowed state, so that invariant holds trivially.
func RGBPlanesToYCbCr(rgb []byte, w, h int, y, cb, cr []int32) {
	n := w * h
	for i := 0; i < n; i++ {
		r, g, b := rgb[3*i], rgb[3*i+1], rgb[3*i+2]
		yv, cbv, crv := RGBToYCbCr(r, g, b)
		y[i], cb[i], cr[i] = yv, cbv, crv
	}
}

// YCbCrPlanesToRGB is the batched inverse of RGBPlanesToYCbCr, writing into
// a caller-provided W*H*3 byte buffer.
func YCbCrPlanesToRGB(y, cb, cr []int32, w, h int, rgb []byte) {
	n := w * h
	for i := 0; i < n; i++ {
		r, g, b := YCbCrToRGB(y[i], cb[i], cr[i])
		rgb[3*i], rgb[3*i+1], rgb[3*i+2] = r, g, b
	}
}

// GrayToYPlane sets Y[i] = input[i] - 128 for a grayscale source and zeroes
// both chroma planes, per the codec orchestrator's step 3 for grayscale
// input.
func GrayToYPlane(gray []byte, y, cb, cr []int32) {
	for i, g := range gray {
		y[i] = int32(g) - 128
		cb[i] = 0
		cr[i] = 0
	}
}
