package colorconv

import "testing"

func TestRoundTripGray(t *testing.T) {
	for v := 0; v <= 255; v++ {
		y, cb, cr := RGBToYCbCr(uint8(v), uint8(v), uint8(v))
		if cb != 0 || cr != 0 {
			t.Fatalf("gray input v=%d produced nonzero chroma cb=%d cr=%d", v, cb, cr)
		}
		r, g, b := YCbCrToRGB(y, cb, cr)
		if int(r)-v > 1 || v-int(r) > 1 || r != g || g != b {
			t.Fatalf("gray round trip v=%d -> (%d,%d,%d)", v, r, g, b)
		}
	}
}

func TestBatchedMatchesSinglePixel(t *testing.T) {
	const w, h = 4, 4
	rgb := make([]byte, w*h*3)
	for i := range rgb {
		rgb[i] = byte((i * 37) % 256)
	}
	y := make([]int32, w*h)
	cb := make([]int32, w*h)
	cr := make([]int32, w*h)
	RGBPlanesToYCbCr(rgb, w, h, y, cb, cr)

	for i := 0; i < w*h; i++ {
		wantY, wantCb, wantCr := RGBToYCbCr(rgb[3*i], rgb[3*i+1], rgb[3*i+2])
		if y[i] != wantY || cb[i] != wantCb || cr[i] != wantCr {
			t.Fatalf("pixel %d: batched (%d,%d,%d) != single (%d,%d,%d)", i, y[i], cb[i], cr[i], wantY, wantCb, wantCr)
		}
	}

	out := make([]byte, w*h*3)
	YCbCrPlanesToRGB(y, cb, cr, w, h, out)
	for i := 0; i < w*h; i++ {
		wantR, wantG, wantB := YCbCrToRGB(y[i], cb[i], cr[i])
		if out[3*i] != wantR || out[3*i+1] != wantG || out[3*i+2] != wantB {
			t.Fatalf("pixel %d inverse batched mismatch", i)
		}
	}
}

func TestGrayToYPlane(t *testing.T) {
	gray := []byte{0, 128, 255}
	y := make([]int32, 3)
	cb := make([]int32, 3)
	cr := make([]int32, 3)
	GrayToYPlane(gray, y, cb, cr)
	want := []int32{-128, 0, 127}
	for i := range want {
		if y[i] != want[i] {
			t.Errorf("y[%d] = %d, want %d", i, y[i], want[i])
		}
		if cb[i] != 0 || cr[i] != 0 {
			t.Errorf("chroma[%d] not zero", i)
		}
	}
}
