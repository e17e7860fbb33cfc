package codec

import (
	"math"

	"github.com/dctlab/codec/internal/quant"
)

// psnrSentinel is returned when the mean squared error between two images
// is too small to divide by meaningfully.
const psnrSentinel = 100.0

// PSNR computes the peak signal-to-noise ratio in dB between two RGB
// RasterImages of identical dimensions. Returns an error if the images
// differ in size. If the mean squared error is below 1e-10, PSNR returns
// the sentinel value 100 rather than diverging toward +Inf.
func PSNR(a, b *RasterImage) (float64, error) {
	if a == nil || b == nil {
		return 0, ErrNullInput
	}
	if a.Width != b.Width || a.Height != b.Height {
		return 0, ErrInvalidDimensions
	}
	n := len(a.Pixels)
	if len(b.Pixels) < n {
		n = len(b.Pixels)
	}
	var sumSq float64
	for i := 0; i < n; i++ {
		d := float64(a.Pixels[i]) - float64(b.Pixels[i])
		sumSq += d * d
	}
	mse := sumSq / float64(n)
	if mse < 1e-10 {
		return psnrSentinel, nil
	}
	return 20*math.Log10(255) - 10*math.Log10(mse), nil
}

// BitrateProxy estimates bits-per-pixel from a compressed image's
// coefficient statistics without entropy coding: for each tile and plane
// it walks coefficients in zig-zag order, finds the last nonzero
// coefficient, and charges (last_nonzero+1)*8 bits for that block (zero
// for an all-zero block). The total is divided by total_pixels =
// total_tiles*64 summed across all three planes. This tracks
// post-quantization sparsity closely enough for comparing transform/
// quality choices without implementing a Huffman or arithmetic coder.
func BitrateProxy(ci *CompressedImage) (float64, error) {
	if ci == nil {
		return 0, ErrNullInput
	}
	if ci.Width <= 0 || ci.Height <= 0 {
		return 0, ErrInvalidDimensions
	}

	var bits float64
	var totalTiles int
	for _, plane := range [][][64]int32{ci.Y, ci.Cb, ci.Cr} {
		totalTiles += len(plane)
		for _, block := range plane {
			bits += estimateBlockBits(block)
		}
	}
	pixels := float64(totalTiles * 64)
	return bits / pixels, nil
}

func estimateBlockBits(block [64]int32) float64 {
	lastNonzero := -1
	for pos, idx := range quant.ZigZag {
		if block[idx] != 0 {
			lastNonzero = pos
		}
	}
	if lastNonzero < 0 {
		return 0
	}
	return float64(lastNonzero+1) * 8
}
