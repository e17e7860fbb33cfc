package tile

import "testing"

func TestCountExactMultiple(t *testing.T) {
	if got := Count(16, 8); got != 2 {
		t.Errorf("Count(16,8) = %d, want 2", got)
	}
}

func TestCountNonMultiple(t *testing.T) {
	// 9x9 -> ceil(9/8)=2 per dimension -> 4 tiles, per spec scenario 6.
	if got := Count(9, 9); got != 4 {
		t.Errorf("Count(9,9) = %d, want 4", got)
	}
}

func TestExtractZeroPadsEdges(t *testing.T) {
	const w, h = 9, 9
	plane := make([]int32, w*h)
	for i := range plane {
		plane[i] = int32(i + 1) // never zero, so padding is distinguishable
	}
	tiles := Extract(plane, w, h)
	if len(tiles) != Count(w, h)*64 {
		t.Fatalf("len(tiles) = %d, want %d", len(tiles), Count(w, h)*64)
	}

	// Tile (1,1) (bottom-right) covers rows/cols [8,16); only row 0, col 0
	// of that tile is in-bounds (source row/col 8).
	tilesX := CountDim(w)
	base := (1*tilesX + 1) * 64
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			v := tiles[base+r*8+c]
			if r == 0 && c == 0 {
				if v != plane[8*w+8] {
					t.Errorf("in-bounds corner sample = %d, want %d", v, plane[8*w+8])
				}
			} else if v != 0 {
				t.Errorf("padded sample at r=%d c=%d = %d, want 0", r, c, v)
			}
		}
	}
}

func TestRoundTripExactMultiple(t *testing.T) {
	const w, h = 16, 8
	plane := make([]int32, w*h)
	for i := range plane {
		plane[i] = int32(i*7 - 3)
	}
	tiles := Extract(plane, w, h)
	back := Reassemble(tiles, w, h)
	for i := range plane {
		if plane[i] != back[i] {
			t.Fatalf("round trip mismatch at %d: %d != %d", i, plane[i], back[i])
		}
	}
}

func TestRoundTripNonMultipleOnlyWritesInBounds(t *testing.T) {
	const w, h = 9, 9
	plane := make([]int32, w*h)
	for i := range plane {
		plane[i] = int32(100 + i)
	}
	tiles := Extract(plane, w, h)
	back := Reassemble(tiles, w, h)
	for i := range plane {
		if plane[i] != back[i] {
			t.Fatalf("round trip mismatch at %d: %d != %d", i, plane[i], back[i])
		}
	}
}
