// Package geometry implements the closed set of intersectable shapes —
// Sphere and Triangle — behind a single Geometry interface. The set is
// small and fixed by design: the hot intersection loop dispatches through
// an interface rather than an open plugin registry.
package geometry

import "github.com/mario007/mc-pathtracer/pkg/core"

// ShapeSample is the result of area-sampling a Geometry for a light.
type ShapeSample struct {
	Position core.Vec3f
	Normal   core.Vec3f
	PDFA     float64
}

// Geometry is the shape-level contract every primitive variant satisfies.
type Geometry interface {
	// Intersect solves for the closest root t in (0, tmax), in double
	// precision, or reports no hit.
	Intersect(origin, direction core.Vec3, tmax float64) (t float64, ok bool)

	// Normal returns the unit geometric normal at hitpoint (not yet
	// oriented against any ray — callers apply core.OrientNormal).
	Normal(hitpoint core.Vec3f) core.Vec3f

	// Sample draws a point on the surface for area-light importance
	// sampling given a reference point being illuminated.
	Sample(reference core.Vec3f, u1, u2 float32) (ShapeSample, bool)

	// PDFA returns the area-measure density of sampling hit from
	// reference, for converting a BSDF-sampled light hit into a light pdf
	// for MIS.
	PDFA(reference core.Vec3f, hit core.Vec3f) float64

	// BBox returns the axis-aligned bounding box of the shape.
	BBox() core.AABB
}
