package lights

import "github.com/mario007/mc-pathtracer/pkg/core"

// Point is a delta light: an omnidirectional point source whose emitted
// intensity falls off with inverse-square distance.
type Point struct {
	Intensity core.Color
	Position  core.Vec3f
}

// NewPoint creates a point light.
func NewPoint(intensity core.Color, position core.Vec3f) *Point {
	return &Point{Intensity: intensity, Position: position}
}

// Illuminate returns a delta sample whose intensity already folds in the
// inverse-square falloff (I/||pos-hit||^2), pdfa=1 and cos_theta=1.
// Downstream estimators must not re-divide by distance squared for a
// delta light; DirectLighting divides by distance squared only for
// non-delta lights.
func (p *Point) Illuminate(hit core.Vec3f, scene SceneAccessor, u1, u2 float32) (Sample, bool) {
	toLight := p.Position.Subtract(hit)
	distSq := toLight.LengthSquared()
	wi := toLight.Normalize()

	return Sample{
		Intensity: p.Intensity.Scale(1.0 / distSq),
		Position:  p.Position,
		Wi:        wi,
		PDFA:      1.0,
		CosTheta:  1.0,
	}, true
}

// IsDelta is always true for a point light.
func (p *Point) IsDelta() bool { return true }
