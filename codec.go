// Package codec implements a portable, fixed-point, JPEG-baseline-style
// lossy still image codec: BT.601 color conversion, 8x8 tiling, one of
// four interchangeable block transforms, and scalar quantization.
package codec

import (
	"context"
	"fmt"

	"github.com/dctlab/codec/internal/colorconv"
	"github.com/dctlab/codec/internal/quant"
	"github.com/dctlab/codec/internal/tile"
	"github.com/dctlab/codec/internal/transform"
)

// RasterImage is an uncompressed raster image: either 3 bytes per pixel
// (RGB, row-major) or, when Gray is true, 1 byte per pixel.
type RasterImage struct {
	Width, Height int
	Gray          bool
	Pixels        []byte
}

// Release drops RasterImage's backing buffer, letting the garbage
// collector reclaim a large image immediately instead of waiting for the
// struct itself to go out of scope.
func (r *RasterImage) Release() {
	r.Pixels = nil
}

// Parameters controls a single Compress call: quality, transform choice,
// and an optional cooperative-cancellation cadence.
type Parameters struct {
	// Quality scales the canonical quality-50 tables: 1.0 reproduces them
	// unchanged, values below 1.0 sharpen (smaller quantization steps,
	// larger output), values above 1.0 coarsen.
	Quality float64

	// Transform selects which of the four block transforms to use.
	Transform transform.Choice

	// SkipQuantization passes transform coefficients straight through
	// uncoded. It has no effect when Transform is Identity, which always
	// bypasses quantization regardless of this flag.
	SkipQuantization bool

	// YieldEvery, if positive, makes CompressContext check ctx.Err()
	// after every YieldEvery tiles processed. Zero disables the check (the
	// whole image is processed in one uninterruptible pass). Decompress
	// does not read it; DecompressContext takes its own yieldEvery.
	YieldEvery int
}

// DefaultParameters returns Parameters equivalent to quality-50 encoding
// with the Fast transform and no cancellation checks.
func DefaultParameters() *Parameters {
	return &Parameters{Quality: 1.0, Transform: transform.Fast, YieldEvery: 0}
}

// Validate reports whether p names a recognized transform and a positive
// quality factor.
func (p *Parameters) Validate() error {
	if p == nil {
		return ErrNullInput
	}
	if !p.Transform.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidTransformChoice, p.Transform)
	}
	if p.Quality <= 0 {
		return fmt.Errorf("codec: quality must be positive, got %v", p.Quality)
	}
	return nil
}

// CompressedImage is the codec's compact representation: one quantized
// coefficient block per 8x8 tile per plane, plus the quantization tables
// and transform choice needed to invert it.
type CompressedImage struct {
	Width, Height    int
	TilesX, TilesY   int
	Transform        transform.Choice
	SkipQuantization bool
	LumaQ            [64]int32
	ChromaQ          [64]int32

	// Y, Cb, Cr hold TilesX*TilesY quantized coefficient blocks each, in
	// row-major tile order.
	Y, Cb, Cr [][64]int32
}

// Release drops CompressedImage's tile slices.
func (c *CompressedImage) Release() {
	c.Y, c.Cb, c.Cr = nil, nil, nil
}

func buildQuantTables(p *Parameters) (lumaRecip, chromaRecip quant.Reciprocal) {
	lumaQ := quant.ScaleTable(quant.Q50Luma, p.Quality)
	chromaQ := quant.ScaleTable(quant.Q50Chroma, p.Quality)
	if p.Transform == transform.Approx {
		lumaQ = quant.ApplyNormCorrection(lumaQ)
		chromaQ = quant.ApplyNormCorrection(chromaQ)
	}
	return quant.BuildReciprocal(lumaQ), quant.BuildReciprocal(chromaQ)
}

// Compress encodes img at the given parameters. If params is nil,
// DefaultParameters() is used.
func Compress(img *RasterImage, params *Parameters) (*CompressedImage, error) {
	return CompressContext(context.Background(), img, params)
}

// CompressContext is Compress with cooperative cancellation: if
// params.YieldEvery is positive, ctx is checked after every YieldEvery
// tiles and processing stops early with ctx.Err() if it has been
// cancelled.
func CompressContext(ctx context.Context, img *RasterImage, params *Parameters) (*CompressedImage, error) {
	if img == nil {
		return nil, ErrNullInput
	}
	if params == nil {
		params = DefaultParameters()
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if img.Width <= 0 || img.Height <= 0 {
		return nil, ErrInvalidDimensions
	}
	wantLen := img.Width * img.Height
	if !img.Gray {
		wantLen *= 3
	}
	if len(img.Pixels) < wantLen {
		return nil, fmt.Errorf("%w: pixel buffer too short for %dx%d", ErrInvalidDimensions, img.Width, img.Height)
	}

	n := img.Width * img.Height
	y := make([]int32, n)
	cb := make([]int32, n)
	cr := make([]int32, n)
	if img.Gray {
		colorconv.GrayToYPlane(img.Pixels[:n], y, cb, cr)
	} else {
		colorconv.RGBPlanesToYCbCr(img.Pixels[:3*n], img.Width, img.Height, y, cb, cr)
	}

	pair, ok := transform.Get(params.Transform)
	if !ok {
		return nil, ErrInvalidTransformChoice
	}
	identity := params.Transform == transform.Identity
	bypass := identity || params.SkipQuantization

	var lumaRecip, chromaRecip quant.Reciprocal
	if !bypass {
		lumaRecip, chromaRecip = buildQuantTables(params)
	}

	tilesX, tilesY := tile.CountDim(img.Width), tile.CountDim(img.Height)
	out := &CompressedImage{
		Width: img.Width, Height: img.Height,
		TilesX: tilesX, TilesY: tilesY,
		Transform:        params.Transform,
		SkipQuantization: params.SkipQuantization,
		LumaQ:            lumaRecip.Q,
		ChromaQ:          chromaRecip.Q,
	}

	var err error
	out.Y, err = compressPlane(ctx, y, img.Width, img.Height, pair, lumaRecip, bypass, params.YieldEvery)
	if err != nil {
		return nil, err
	}
	out.Cb, err = compressPlane(ctx, cb, img.Width, img.Height, pair, chromaRecip, bypass, params.YieldEvery)
	if err != nil {
		return nil, err
	}
	out.Cr, err = compressPlane(ctx, cr, img.Width, img.Height, pair, chromaRecip, bypass, params.YieldEvery)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func compressPlane(ctx context.Context, plane []int32, w, h int, pair transform.Pair, recip quant.Reciprocal, bypass bool, yieldEvery int) ([][64]int32, error) {
	tiles := tile.Extract(plane, w, h)
	count := len(tiles) / 64
	out := make([][64]int32, count)
	for i := 0; i < count; i++ {
		var block transform.Block
		copy(block[:], tiles[i*64:(i+1)*64])
		fwd := pair.Forward(&block)
		if bypass {
			out[i] = fwd
		} else {
			out[i] = recip.Quantize(fwd)
		}
		if yieldEvery > 0 && (i+1)%yieldEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// Decompress reconstructs a RasterImage from a CompressedImage. The
// returned image is always RGB (3 bytes per pixel): chroma planes are
// reconstructed even for sources that started out grayscale, since
// CompressedImage does not record whether the original was grayscale.
func Decompress(ci *CompressedImage) (*RasterImage, error) {
	return DecompressContext(context.Background(), ci, 0)
}

// DecompressContext is Decompress with cooperative cancellation, checking
// ctx.Err() every yieldEvery tiles (0 disables the check).
func DecompressContext(ctx context.Context, ci *CompressedImage, yieldEvery int) (*RasterImage, error) {
	if ci == nil {
		return nil, ErrNullInput
	}
	if ci.Width <= 0 || ci.Height <= 0 {
		return nil, ErrInvalidDimensions
	}
	wantTiles := tile.CountDim(ci.Width) * tile.CountDim(ci.Height)
	if len(ci.Y) != wantTiles || len(ci.Cb) != wantTiles || len(ci.Cr) != wantTiles {
		return nil, fmt.Errorf("%w: coefficient arrays have %d/%d/%d tile blocks (Y/Cb/Cr), want %d", ErrInvalidDimensions, len(ci.Y), len(ci.Cb), len(ci.Cr), wantTiles)
	}
	pair, ok := transform.Get(ci.Transform)
	if !ok {
		return nil, ErrInvalidTransformChoice
	}
	bypass := ci.Transform == transform.Identity || ci.SkipQuantization
	lumaRecip := quant.Reciprocal{Q: ci.LumaQ}
	chromaRecip := quant.Reciprocal{Q: ci.ChromaQ}

	y, err := decompressPlane(ctx, ci.Y, ci.Width, ci.Height, pair, lumaRecip, bypass, yieldEvery)
	if err != nil {
		return nil, err
	}
	cb, err := decompressPlane(ctx, ci.Cb, ci.Width, ci.Height, pair, chromaRecip, bypass, yieldEvery)
	if err != nil {
		return nil, err
	}
	cr, err := decompressPlane(ctx, ci.Cr, ci.Width, ci.Height, pair, chromaRecip, bypass, yieldEvery)
	if err != nil {
		return nil, err
	}

	rgb := make([]byte, ci.Width*ci.Height*3)
	colorconv.YCbCrPlanesToRGB(y, cb, cr, ci.Width, ci.Height, rgb)
	return &RasterImage{Width: ci.Width, Height: ci.Height, Pixels: rgb}, nil
}

func decompressPlane(ctx context.Context, blocks [][64]int32, w, h int, pair transform.Pair, recip quant.Reciprocal, bypass bool, yieldEvery int) ([]int32, error) {
	tiles := make([]int32, len(blocks)*64)
	for i, levels := range blocks {
		var block transform.Block
		if bypass {
			block = levels
		} else {
			block = recip.Dequantize(levels)
		}
		inv := pair.Inverse(&block)
		copy(tiles[i*64:(i+1)*64], inv[:])
		if yieldEvery > 0 && (i+1)%yieldEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
	}
	return tile.Reassemble(tiles, w, h), nil
}
