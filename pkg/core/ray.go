package core

// Ray is a single-precision origin/direction pair. Direction is expected
// to be unit length; InvDir is the component-wise reciprocal, used by the
// AABB slab test.
type Ray struct {
	Origin    Vec3f
	Direction Vec3f
	InvDir    Vec3f
}

// NewRay creates a ray and precomputes the direction reciprocal.
func NewRay(origin, direction Vec3f) Ray {
	return Ray{
		Origin:    origin,
		Direction: direction,
		InvDir:    Vec3f{1.0 / direction.X, 1.0 / direction.Y, 1.0 / direction.Z},
	}
}

// At returns the point at parameter t along the ray, in double precision so
// that callers performing further intersection math don't reintroduce the
// error a single-precision evaluation would add.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.ToVec3().Add(r.Direction.ToVec3().Multiply(t))
}
