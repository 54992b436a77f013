// Package lights implements the closed set of light sources — a delta
// point light and an area light wrapping an emissive primitive — behind a
// single Light interface.
package lights

import (
	"github.com/mario007/mc-pathtracer/pkg/core"
	"github.com/mario007/mc-pathtracer/pkg/geometry"
)

// SceneAccessor is the thin slice of Scene that a Light needs in order to
// sample an area light's underlying geometry and query its emission,
// without lights importing scene (which imports lights) and creating an
// import cycle.
type SceneAccessor interface {
	GenerateShapeSample(primitiveID int, reference core.Vec3f, u1, u2 float32) (geometry.ShapeSample, bool)
	GetEmission(primitiveID int) core.Color
}

// Sample is the result of illuminating a shading point from a light.
type Sample struct {
	Intensity core.Color
	Position  core.Vec3f
	Wi        core.Vec3f
	PDFA      float64
	CosTheta  float64
}

// Light is the sampling-level contract every light variant satisfies.
type Light interface {
	// Illuminate samples this light toward hit, returning false if the
	// light contributes no sample (e.g. the underlying shape sample is
	// degenerate or faces away).
	Illuminate(hit core.Vec3f, scene SceneAccessor, u1, u2 float32) (Sample, bool)

	// IsDelta reports whether this light's sampling distribution is a
	// Dirac delta (no MIS weighting against BSDF sampling is possible).
	IsDelta() bool
}
