package geometry

import (
	"math"

	"github.com/mario007/mc-pathtracer/pkg/core"
)

// Sphere is a center/radius shape. Radius and Center are stored in single
// precision (the scene description's native precision); Intersect
// upconverts to double precision internally.
type Sphere struct {
	Center core.Vec3f
	Radius float32
}

// NewSphere creates a sphere.
func NewSphere(center core.Vec3f, radius float32) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

// Intersect solves (||d||^2)t^2 + 2(o-c).d t + (||o-c||^2 - r^2) = 0 in
// double precision, returning the smaller positive root within (0, tmax)
// if present, otherwise the larger. A tangent ray (zero discriminant) is
// reported as a miss.
func (s *Sphere) Intersect(origin, direction core.Vec3, tmax float64) (float64, bool) {
	center := s.Center.ToVec3()
	radius := float64(s.Radius)

	oc := origin.Subtract(center)
	a := direction.Dot(direction)
	b := 2.0 * oc.Dot(direction)
	c := oc.Dot(oc) - radius*radius

	disc := b*b - 4.0*a*c
	if disc <= 0 {
		return 0, false
	}

	e := math.Sqrt(disc)
	denom := 2.0 * a

	t := (-b - e) / denom
	if t > 0 && t < tmax {
		return t, true
	}

	t = (-b + e) / denom
	if t > 0 && t < tmax {
		return t, true
	}
	return 0, false
}

// Normal returns the normalized radial direction at hitpoint.
func (s *Sphere) Normal(hitpoint core.Vec3f) core.Vec3f {
	return hitpoint.Subtract(s.Center).Normalize()
}

// BBox returns the axis-aligned bounding box of the sphere.
func (s *Sphere) BBox() core.AABB {
	r := core.Vec3f{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return core.NewAABB(s.Center.Subtract(r), s.Center.Add(r))
}

// Sample draws a solid-angle sample of the sphere as seen from reference.
// Returns false if reference lies inside the sphere (within a small
// numerical margin), where solid-angle sampling is undefined.
func (s *Sphere) Sample(reference core.Vec3f, u1, u2 float32) (ShapeSample, bool) {
	toCenter := s.Center.Subtract(reference)
	d2 := float64(toCenter.LengthSquared())
	r := float64(s.Radius)

	if d2-r*r < 1e-4 {
		return ShapeSample{}, false
	}

	d := math.Sqrt(d2)
	onb := core.NewONB(toCenter.Multiply(float32(1.0 / d)))

	cosThetaMax := math.Sqrt(math.Max(0, 1.0-(r*r)/d2))
	cosTheta := 1.0 - float64(u1)*(1.0-cosThetaMax)
	sinTheta2 := math.Max(0, 1.0-cosTheta*cosTheta)
	sinTheta := math.Sqrt(sinTheta2)
	phi := 2.0 * math.Pi * float64(u2)

	local := core.Vec3f{
		X: float32(sinTheta * math.Cos(phi)),
		Y: float32(sinTheta * math.Sin(phi)),
		Z: float32(cosTheta),
	}
	direction := onb.ToWorld(local).Normalize()

	distance := cosTheta*d - math.Sqrt(math.Max(0, r*r-sinTheta2*d2))
	position := reference.ToVec3().Add(direction.ToVec3().Multiply(distance)).ToVec3f()

	pdfw := 1.0 / (2.0 * math.Pi * (1.0 - cosThetaMax))
	normal := position.Subtract(s.Center).Normalize()

	toRef := reference.Subtract(position)
	distSq := float64(toRef.LengthSquared())
	pdfa := pdfw * float64(normal.AbsDot(toRef.Normalize())) / distSq

	return ShapeSample{Position: position, Normal: normal, PDFA: pdfa}, true
}

// PDFA returns the solid-angle-converted area density of sampling hit
// (assumed to lie on the sphere surface) from reference, for MIS weighting
// of BSDF-sampled hits on this light.
func (s *Sphere) PDFA(reference core.Vec3f, hit core.Vec3f) float64 {
	toCenter := s.Center.Subtract(reference)
	d2 := float64(toCenter.LengthSquared())
	r := float64(s.Radius)

	if d2-r*r < 1e-4 {
		return 0
	}

	cosThetaMax := math.Sqrt(math.Max(0, 1.0-(r*r)/d2))
	pdfw := 1.0 / (2.0 * math.Pi * (1.0 - cosThetaMax))

	normal := hit.Subtract(s.Center).Normalize()
	toRef := reference.Subtract(hit)
	distSq := float64(toRef.LengthSquared())
	if distSq == 0 {
		return 0
	}
	return pdfw * float64(normal.AbsDot(toRef.Normalize())) / distSq
}
