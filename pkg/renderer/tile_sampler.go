package renderer

import "github.com/mario007/mc-pathtracer/pkg/core"

// ImageSample is a pixel coordinate paired with a jittered sub-pixel
// offset, drawn fresh for every sample.
type ImageSample struct {
	X, Y   int
	Xp, Yp float32
}

// TileSampler is a pull iterator over every pixel of a Tile, visited
// exactly once in row-major order. Constructing a new TileSampler for the
// same tile and drawing again starts a fresh pass, which is how the
// scheduler gets one sample per pixel per (tile, spp-index) job.
type TileSampler struct {
	tile Tile
	x, y int
	done bool
}

// NewTileSampler creates a sampler over tile, starting at its first pixel.
func NewTileSampler(tile Tile) *TileSampler {
	return &TileSampler{tile: tile, x: tile.StartX, y: tile.StartY, done: tile.StartX >= tile.EndX || tile.StartY >= tile.EndY}
}

// Next yields the next pixel in row-major order with a fresh jitter drawn
// from rng, or reports false once every pixel has been visited.
func (t *TileSampler) Next(rng *core.PRNG) (ImageSample, bool) {
	if t.done {
		return ImageSample{}, false
	}

	sample := ImageSample{X: t.x, Y: t.y, Xp: rng.F32(), Yp: rng.F32()}

	t.x++
	if t.x >= t.tile.EndX {
		t.x = t.tile.StartX
		t.y++
		if t.y >= t.tile.EndY {
			t.done = true
		}
	}

	return sample, true
}
