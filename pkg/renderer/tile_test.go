package renderer

import "testing"

func TestNewTileGridClipsLastRowAndColumn(t *testing.T) {
	tiles := NewTileGrid(20, 18)

	// 20/16 -> 2 columns (16, then 4 clipped); 18/16 -> 2 rows (16, then 2 clipped).
	if len(tiles) != 4 {
		t.Fatalf("len(tiles) = %d, want 4", len(tiles))
	}

	var last Tile
	for _, tl := range tiles {
		if tl.EndX == 20 && tl.EndY == 18 {
			last = tl
		}
		if tl.EndX > 20 || tl.EndY > 18 {
			t.Fatalf("tile %+v exceeds image bounds", tl)
		}
	}
	if last.StartX != 16 || last.StartY != 16 {
		t.Errorf("clipped last tile = %+v, want StartX=16, StartY=16", last)
	}
}

func TestNewTileGridCoversEveryPixelExactlyOnce(t *testing.T) {
	const w, h = 33, 17
	tiles := NewTileGrid(w, h)

	covered := make([]bool, w*h)
	for _, tl := range tiles {
		for y := tl.StartY; y < tl.EndY; y++ {
			for x := tl.StartX; x < tl.EndX; x++ {
				idx := y*w + x
				if covered[idx] {
					t.Fatalf("pixel (%d,%d) covered by more than one tile", x, y)
				}
				covered[idx] = true
			}
		}
	}
	for i, c := range covered {
		if !c {
			t.Fatalf("pixel index %d never covered by any tile", i)
		}
	}
}
