// Package material implements the closed set of BSDFs — Matte and
// MatteEmissive — behind the Material interface. No dielectric, metal,
// mix or textured materials: reflectance is a flat diffuse albedo only.
package material

import "github.com/mario007/mc-pathtracer/pkg/core"

// Eval is the result of evaluating a BSDF for a fixed pair of directions.
type Eval struct {
	Color core.Color
	PDFW  float64
}

// Sample is the result of importance-sampling a BSDF direction.
type Sample struct {
	Direction core.Vec3f
	Color     core.Color
	PDFW      float64
}

// Material is the shading-level contract every material variant satisfies.
type Material interface {
	// Eval evaluates the BSDF for a fixed (wo, n, wi) triple.
	Eval(wo, n, wi core.Vec3f) Eval

	// Sample importance-samples a scattering direction about n given the
	// outgoing direction wo and two uniform random numbers.
	Sample(wo, n core.Vec3f, u1, u2 float32) (Sample, bool)

	// IsEmissive reports whether this material radiates light.
	IsEmissive() bool

	// Emission returns the radiance emitted by this material. Zero for
	// non-emissive materials.
	Emission() core.Color
}
