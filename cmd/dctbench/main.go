// Command dctbench compresses a PNG image through the codec and reports
// PSNR and estimated bitrate, either for a single quality/transform
// combination or for a whole suite of them.
//
// Usage:
//
//	dctbench -in photo.png -quality 1.0 -transform fast -out recon.png
//	dctbench -in photo.png -bench
//	dctbench -in photo.png -suite suite.txt
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"text/tabwriter"

	"github.com/dctlab/codec"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "dctbench: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("dctbench", flag.ContinueOnError)
	in := fs.String("in", "", "input PNG path (required)")
	out := fs.String("out", "", "reconstructed PNG output path (single-case mode only)")
	quality := fs.Float64("quality", 1.0, "quality factor (1.0 = quality-50 tables)")
	transformName := fs.String("transform", "fast", "transform: fast, matrix, approx, or identity")
	suitePath := fs.String("suite", "", "path to a suite file (overrides -quality/-transform)")
	bench := fs.Bool("bench", false, "run the embedded default suite")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("missing -in")
	}

	raster, err := readPNGAsRaster(*in)
	if err != nil {
		return err
	}

	switch {
	case *suitePath != "":
		suite, err := loadSuiteFile(*suitePath)
		if err != nil {
			return err
		}
		return runSuite(raster, suite)
	case *bench:
		suite, err := loadDefaultSuite()
		if err != nil {
			return err
		}
		return runSuite(raster, suite)
	default:
		return runSingle(raster, *quality, *transformName, *out)
	}
}

func runSingle(raster *codec.RasterImage, quality float64, transformName, out string) error {
	ch, err := parseTransform(transformName)
	if err != nil {
		return err
	}
	result, err := runCase(raster, SuiteCase{Name: "single", Quality: quality, Transform: transformName})
	if err != nil {
		return err
	}
	fmt.Printf("transform=%s quality=%.3f psnr=%.2fdB bitrate=%.3f bits/px\n", ch, quality, result.psnr, result.bitrate)

	if out != "" {
		return writeRasterAsPNG(out, result.recon)
	}
	return nil
}

func runSuite(raster *codec.RasterImage, suite Suite) error {
	if len(suite.Cases) == 0 {
		return fmt.Errorf("suite has no cases")
	}
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTRANSFORM\tQUALITY\tPSNR (dB)\tBITRATE (bits/px)")
	for _, c := range suite.Cases {
		result, err := runCase(raster, c)
		if err != nil {
			return fmt.Errorf("case %q: %w", c.Name, err)
		}
		fmt.Fprintf(w, "%s\t%s\t%.3f\t%.2f\t%.3f\n", c.Name, c.Transform, c.Quality, result.psnr, result.bitrate)
	}
	return w.Flush()
}

type caseResult struct {
	psnr    float64
	bitrate float64
	recon   *codec.RasterImage
}

func runCase(raster *codec.RasterImage, c SuiteCase) (caseResult, error) {
	ch, err := parseTransform(c.Transform)
	if err != nil {
		return caseResult{}, err
	}
	ci, err := codec.Compress(raster, &codec.Parameters{Quality: c.Quality, Transform: ch})
	if err != nil {
		return caseResult{}, fmt.Errorf("compress: %w", err)
	}
	recon, err := codec.Decompress(ci)
	if err != nil {
		return caseResult{}, fmt.Errorf("decompress: %w", err)
	}
	psnr, err := codec.PSNR(raster, recon)
	if err != nil {
		return caseResult{}, fmt.Errorf("psnr: %w", err)
	}
	bitrate, err := codec.BitrateProxy(ci)
	if err != nil {
		return caseResult{}, fmt.Errorf("bitrate: %w", err)
	}
	return caseResult{psnr: psnr, bitrate: bitrate, recon: recon}, nil
}

func readPNGAsRaster(path string) (*codec.RasterImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

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
	return &codec.RasterImage{Width: w, Height: h, Pixels: pixels}, nil
}

func writeRasterAsPNG(path string, raster *codec.RasterImage) error {
	img := image.NewRGBA(image.Rect(0, 0, raster.Width, raster.Height))
	// Fill directly through Pix to avoid a color-model round trip per pixel.
	for y := 0; y < raster.Height; y++ {
		for x := 0; x < raster.Width; x++ {
			i := (y*raster.Width + x) * 3
			off := img.PixOffset(x, y)
			img.Pix[off] = raster.Pixels[i]
			img.Pix[off+1] = raster.Pixels[i+1]
			img.Pix[off+2] = raster.Pixels[i+2]
			img.Pix[off+3] = 255
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
