// Package benchmark compares PSNR, bitrate-proxy, and throughput across
// the codec's four transform choices and a spread of quality factors. It
// has its own module (and its own go.mod) so the root module never
// depends on golang.org/x/image; only this comparative harness does.
//
// Run with:
//
//	go test ./... -bench=. -benchmem -run=^$
package benchmark

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/draw"

	"github.com/dctlab/codec"
	"github.com/dctlab/codec/internal/transform"
)

// syntheticImage procedurally renders a gradient-plus-rings test pattern
// at size w x h. Using a procedural source instead of a checked-in PNG
// keeps this module self-contained and its inputs reproducible.
func syntheticImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	cx, cy := float64(w)/2, float64(h)/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			dist := math.Sqrt(dx*dx + dy*dy)
			ring := uint8(128 + 127*math.Sin(dist/6))
			r := uint8(255 * x / max(w-1, 1))
			g := uint8(255 * y / max(h-1, 1))
			img.Set(x, y, color.RGBA{R: r, G: g, B: ring, A: 255})
		}
	}
	return img
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// resize uses golang.org/x/image/draw's high-quality scaler to produce
// test images at sizes other than the procedurally-rendered source,
// exercising a realistic resampling path before compression.
func resize(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

func toRaster(img *image.RGBA) *codec.RasterImage {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pixels := make([]byte, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			i := (y*w + x) * 3
			pixels[i] = byte(r >> 8)
			pixels[i+1] = byte(g >> 8)
			pixels[i+2] = byte(bl >> 8)
		}
	}
	return &codec.RasterImage{Width: w, Height: h, Pixels: pixels}
}

var transformNames = []transform.Choice{transform.Fast, transform.Matrix, transform.Approx, transform.Identity}

// TestFastMatrixPSNRAgree checks that at a fixed quality, Fast and Matrix
// land within 3 dB PSNR of each other for the same source, since both
// implement the same exact DCT-II up to fixed-point rounding.
func TestFastMatrixPSNRAgree(t *testing.T) {
	src := resize(syntheticImage(128, 128), 96, 80)
	raster := toRaster(src)

	results := make(map[transform.Choice]float64)
	for _, ch := range []transform.Choice{transform.Fast, transform.Matrix} {
		ci, err := codec.Compress(raster, &codec.Parameters{Quality: 1.0, Transform: ch})
		if err != nil {
			t.Fatalf("%v: compress: %v", ch, err)
		}
		recon, err := codec.Decompress(ci)
		if err != nil {
			t.Fatalf("%v: decompress: %v", ch, err)
		}
		psnr, err := codec.PSNR(raster, recon)
		if err != nil {
			t.Fatalf("%v: psnr: %v", ch, err)
		}
		results[ch] = psnr
	}
	diff := math.Abs(results[transform.Fast] - results[transform.Matrix])
	if diff > 3.0 {
		t.Fatalf("fast/matrix PSNR diverged by %.2f dB (fast=%.2f matrix=%.2f)", diff, results[transform.Fast], results[transform.Matrix])
	}
}

// BenchmarkCompressDecompress reports PSNR and estimated bits-per-pixel
// alongside the usual throughput numbers, for every transform at a
// representative quality factor.
func BenchmarkCompressDecompress(b *testing.B) {
	raster := toRaster(resize(syntheticImage(256, 256), 320, 240))

	for _, ch := range transformNames {
		ch := ch
		b.Run(ch.String(), func(b *testing.B) {
			params := &codec.Parameters{Quality: 1.0, Transform: ch}
			var ci *codec.CompressedImage
			var err error
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				ci, err = codec.Compress(raster, params)
				if err != nil {
					b.Fatal(err)
				}
				if _, err = codec.Decompress(ci); err != nil {
					b.Fatal(err)
				}
			}
			b.StopTimer()

			recon, _ := codec.Decompress(ci)
			psnr, _ := codec.PSNR(raster, recon)
			bpp, _ := codec.BitrateProxy(ci)
			b.ReportMetric(psnr, "dB/PSNR")
			b.ReportMetric(bpp, "bits/px")
		})
	}
}

// BenchmarkQualitySweep reports the PSNR/bitrate tradeoff curve for the
// Fast transform across a range of quality factors.
func BenchmarkQualitySweep(b *testing.B) {
	raster := toRaster(resize(syntheticImage(256, 256), 320, 240))
	qualities := []float64{0.25, 0.5, 1.0, 2.0, 4.0}

	for _, q := range qualities {
		q := q
		b.Run(fmt.Sprintf("q=%.2f", q), func(b *testing.B) {
			params := &codec.Parameters{Quality: q, Transform: transform.Fast}
			var ci *codec.CompressedImage
			var err error
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				ci, err = codec.Compress(raster, params)
				if err != nil {
					b.Fatal(err)
				}
			}
			b.StopTimer()

			recon, _ := codec.Decompress(ci)
			psnr, _ := codec.PSNR(raster, recon)
			bpp, _ := codec.BitrateProxy(ci)
			b.ReportMetric(psnr, "dB/PSNR")
			b.ReportMetric(bpp, "bits/px")
		})
	}
}
