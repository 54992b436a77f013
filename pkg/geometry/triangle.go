package geometry

import (
	"math"

	"github.com/mario007/mc-pathtracer/pkg/core"
)

// Triangle is a fixed CCW-wound triangle. The geometric normal is cached
// at construction time.
type Triangle struct {
	V0, V1, V2 core.Vec3f
	normal     core.Vec3f
}

// NewTriangle creates a triangle and precomputes its geometric normal.
func NewTriangle(v0, v1, v2 core.Vec3f) *Triangle {
	normal := v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	return &Triangle{V0: v0, V1: v1, V2: v2, normal: normal}
}

// Intersect solves the ray/triangle system by Cramer's rule in double
// precision, rejecting a zero determinant (degenerate triangle) and any
// barycentric coordinate outside the triangle.
func (t *Triangle) Intersect(origin, direction core.Vec3, tmax float64) (float64, bool) {
	v0 := t.V0.ToVec3()
	e1 := t.V1.ToVec3().Subtract(v0)
	e2 := t.V2.ToVec3().Subtract(v0)

	pvec := direction.Cross(e2)
	det := e1.Dot(pvec)
	if det == 0 {
		return 0, false
	}
	invDet := 1.0 / det

	tvec := origin.Subtract(v0)
	beta := tvec.Dot(pvec) * invDet
	if beta < 0 {
		return 0, false
	}

	qvec := tvec.Cross(e1)
	gamma := direction.Dot(qvec) * invDet
	if gamma < 0 || beta+gamma > 1 {
		return 0, false
	}

	hitT := e2.Dot(qvec) * invDet
	if hitT < 0 || hitT > tmax {
		return 0, false
	}
	return hitT, true
}

// Normal returns the fixed CCW geometric normal, independent of hitpoint.
func (t *Triangle) Normal(hitpoint core.Vec3f) core.Vec3f {
	return t.normal
}

// BBox returns the axis-aligned bounding box of the triangle.
func (t *Triangle) BBox() core.AABB {
	min := t.V0.Min(t.V1).Min(t.V2)
	max := t.V0.Max(t.V1).Max(t.V2)
	return core.NewAABB(min, max)
}

// Sample draws a uniform point on the triangle's area via the standard
// (1-sqrt(u1), u2*sqrt(u1)) barycentric parametrization.
func (t *Triangle) Sample(reference core.Vec3f, u1, u2 float32) (ShapeSample, bool) {
	area := t.area()
	if area <= 0 {
		return ShapeSample{}, false
	}

	su1 := float32(math.Sqrt(float64(u1)))
	b0 := 1 - su1
	b1 := u2 * su1
	b2 := 1 - b0 - b1

	position := t.V0.Multiply(b0).Add(t.V1.Multiply(b1)).Add(t.V2.Multiply(b2))
	return ShapeSample{Position: position, Normal: t.normal, PDFA: 1.0 / float64(area)}, true
}

// PDFA returns the area-measure density 1/area, independent of reference
// and hit (uniform area sampling has no positional dependence).
func (t *Triangle) PDFA(reference core.Vec3f, hit core.Vec3f) float64 {
	area := t.area()
	if area <= 0 {
		return 0
	}
	return 1.0 / float64(area)
}

func (t *Triangle) area() float32 {
	return t.V1.Subtract(t.V0).Cross(t.V2.Subtract(t.V0)).Length() * 0.5
}
