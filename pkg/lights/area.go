package lights

import "github.com/mario007/mc-pathtracer/pkg/core"

// Area is a non-delta light formed from an emissive primitive already
// present in the scene's geometry; sampling delegates to the referenced
// primitive's shape sample.
type Area struct {
	PrimitiveID int
}

// NewArea wraps primitiveID (which must reference an emissive material)
// as an area light.
func NewArea(primitiveID int) *Area {
	return &Area{PrimitiveID: primitiveID}
}

// Illuminate draws a shape sample on the referenced primitive, offsets it
// along the sample normal to avoid self-shadowing, and discards samples
// whose normal faces away from the shading point.
func (a *Area) Illuminate(hit core.Vec3f, scene SceneAccessor, u1, u2 float32) (Sample, bool) {
	shapeSample, ok := scene.GenerateShapeSample(a.PrimitiveID, hit, u1, u2)
	if !ok {
		return Sample{}, false
	}

	offsetPos := core.OffsetRayOrigin(shapeSample.Position, shapeSample.Normal)
	wi := offsetPos.Subtract(hit).Normalize()

	cosTheta := shapeSample.Normal.AbsDot(wi.Negate())
	if shapeSample.Normal.Dot(wi.Negate()) < 0 {
		return Sample{}, false
	}

	return Sample{
		Intensity: scene.GetEmission(a.PrimitiveID),
		Position:  offsetPos,
		Wi:        wi,
		PDFA:      shapeSample.PDFA,
		CosTheta:  float64(cosTheta),
	}, true
}

// IsDelta is always false for an area light.
func (a *Area) IsDelta() bool { return false }
