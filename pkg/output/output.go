// Package output applies a tone mapping operator to a resolved image and
// encodes the result to disk. PNG (8-bit sRGB-ish) is the only supported
// encoding; the extension on the output path is otherwise ignored.
package output

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/mario007/mc-pathtracer/pkg/core"
	"github.com/mario007/mc-pathtracer/pkg/renderer"
	"github.com/mario007/mc-pathtracer/pkg/scene"
)

const invGamma = 1.0 / 2.2

// ToneMap applies op to a single linear color, matching the three
// operators a scene description can select.
func ToneMap(op scene.Tonemap, c core.Color) core.Color {
	switch op {
	case scene.TonemapGamma:
		return gammaCorrect(c)
	case scene.TonemapReinhard:
		return gammaCorrect(reinhard(c))
	default:
		return c
	}
}

func reinhard(c core.Color) core.Color {
	return core.NewColor(c.R/(1+c.R), c.G/(1+c.G), c.B/(1+c.B))
}

func gammaCorrect(c core.Color) core.Color {
	return core.NewColor(
		powf32(c.R, invGamma),
		powf32(c.G, invGamma),
		powf32(c.B, invGamma),
	)
}

func powf32(v float32, e float64) float32 {
	if v <= 0 {
		return 0
	}
	return float32(math.Pow(float64(v), e))
}

// WriteImage resolves every pixel of buf, applies op, and writes a PNG to
// path.
func WriteImage(path string, buf *renderer.ImageBuffer, op scene.Tonemap) error {
	img := image.NewRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			c := ToneMap(op, buf.Resolve(x, y))
			img.SetRGBA(x, y, color.RGBA{
				R: toByte(c.R),
				G: toByte(c.G),
				B: toByte(c.B),
				A: 255,
			})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: creating %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("output: encoding %s: %w", path, err)
	}
	return nil
}

func toByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}
