package lights

import (
	"testing"

	"github.com/mario007/mc-pathtracer/pkg/core"
	"github.com/mario007/mc-pathtracer/pkg/geometry"
)

// fakeScene is a minimal SceneAccessor backed by a single fixed shape
// sample, for testing Area.Illuminate in isolation from a real Scene.
type fakeScene struct {
	sample   geometry.ShapeSample
	sampleOK bool
	emission core.Color
}

func (f *fakeScene) GenerateShapeSample(primitiveID int, reference core.Vec3f, u1, u2 float32) (geometry.ShapeSample, bool) {
	return f.sample, f.sampleOK
}

func (f *fakeScene) GetEmission(primitiveID int) core.Color {
	return f.emission
}

func TestAreaLightIsNotDelta(t *testing.T) {
	a := NewArea(0)
	if a.IsDelta() {
		t.Errorf("Area.IsDelta() = true, want false")
	}
}

func TestAreaLightIlluminateFacingLight(t *testing.T) {
	fs := &fakeScene{
		sample: geometry.ShapeSample{
			Position: core.Vec3f{X: 0, Y: 0, Z: 5},
			Normal:   core.Vec3f{X: 0, Y: 0, Z: -1}, // faces back toward the shading point
			PDFA:     1.0,
		},
		sampleOK: true,
		emission: core.NewColor(3, 3, 3),
	}

	a := NewArea(0)
	sample, ok := a.Illuminate(core.Vec3f{X: 0, Y: 0, Z: 0}, fs, 0.5, 0.5)
	if !ok {
		t.Fatalf("expected a sample when the light faces the shading point")
	}
	if sample.Intensity != fs.emission {
		t.Errorf("Intensity = %v, want %v", sample.Intensity, fs.emission)
	}
}

func TestAreaLightIlluminateFacingAway(t *testing.T) {
	fs := &fakeScene{
		sample: geometry.ShapeSample{
			Position: core.Vec3f{X: 0, Y: 0, Z: 5},
			Normal:   core.Vec3f{X: 0, Y: 0, Z: 1}, // faces away from the shading point
			PDFA:     1.0,
		},
		sampleOK: true,
		emission: core.NewColor(3, 3, 3),
	}

	a := NewArea(0)
	if _, ok := a.Illuminate(core.Vec3f{X: 0, Y: 0, Z: 0}, fs, 0.5, 0.5); ok {
		t.Errorf("expected no sample when the light's sampled normal faces away")
	}
}

func TestAreaLightIlluminateDegenerateSample(t *testing.T) {
	fs := &fakeScene{sampleOK: false}
	a := NewArea(0)
	if _, ok := a.Illuminate(core.Vec3f{X: 0, Y: 0, Z: 0}, fs, 0.5, 0.5); ok {
		t.Errorf("expected no sample when the underlying shape sample fails")
	}
}
