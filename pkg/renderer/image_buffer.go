package renderer

import "github.com/mario007/mc-pathtracer/pkg/core"

// PixelAccumulator holds the running color and weight sum for one pixel.
// Weight is tracked separately from color so unevenly sampled pixels
// normalize consistently, even though every estimator today contributes a
// weight of exactly 1.0 per sample.
type PixelAccumulator struct {
	ColorSum  core.Color
	WeightSum float32
}

// ImageBuffer is a width x height grid of PixelAccumulator, owned
// exclusively by the scheduler's driver thread.
type ImageBuffer struct {
	Width, Height int
	pixels        []PixelAccumulator
}

// NewImageBuffer creates a zero-initialized buffer.
func NewImageBuffer(width, height int) *ImageBuffer {
	return &ImageBuffer{Width: width, Height: height, pixels: make([]PixelAccumulator, width*height)}
}

// Add accumulates color and weight into pixel (x, y). Callers must
// guarantee exclusive-writer access per pixel; the scheduler meets this by
// only ever calling Add from the driver thread.
func (b *ImageBuffer) Add(x, y int, color core.Color, weight float32) {
	idx := y*b.Width + x
	acc := &b.pixels[idx]
	acc.ColorSum = acc.ColorSum.Add(color.Scale(weight))
	acc.WeightSum += weight
}

// Resolve returns the normalized color at (x, y), or Zero if no sample
// has been added yet.
func (b *ImageBuffer) Resolve(x, y int) core.Color {
	acc := b.pixels[y*b.Width+x]
	if acc.WeightSum == 0 {
		return core.Zero
	}
	return acc.ColorSum.Scale(1.0 / acc.WeightSum)
}

// WeightAt returns the accumulated sample weight at (x, y), letting tests
// confirm every pixel received exactly the expected number of samples.
func (b *ImageBuffer) WeightAt(x, y int) float32 {
	return b.pixels[y*b.Width+x].WeightSum
}
