package core

import "math"

// AABB is an axis-aligned bounding box, stored in single precision to
// match the Ray it is tested against.
type AABB struct {
	Min, Max Vec3f
}

// NewAABB creates an AABB from its corners.
func NewAABB(min, max Vec3f) AABB {
	return AABB{Min: min, Max: max}
}

// Merge returns the smallest AABB enclosing both boxes.
func (b AABB) Merge(o AABB) AABB {
	return AABB{
		Min: Vec3f{min32(b.Min.X, o.Min.X), min32(b.Min.Y, o.Min.Y), min32(b.Min.Z, o.Min.Z)},
		Max: Vec3f{max32(b.Max.X, o.Max.X), max32(b.Max.Y, o.Max.Y), max32(b.Max.Z, o.Max.Z)},
	}
}

// Area returns the surface area of the box.
func (b AABB) Area() float32 {
	d := b.Max.Subtract(b.Min)
	return 2.0 * (d.X*d.Y + d.Y*d.Z + d.Z*d.X)
}

// Center returns the midpoint of the box.
func (b AABB) Center() Vec3f {
	return b.Min.Add(b.Max).Multiply(0.5)
}

// LongestAxis returns 0, 1 or 2 for the box's longest extent (x, y, z).
func (b AABB) LongestAxis() int {
	d := b.Max.Subtract(b.Min)
	if d.X > d.Y && d.X > d.Z {
		return 0
	}
	if d.Y > d.Z {
		return 1
	}
	return 2
}

// Intersect runs the branchless slab test with tmin=0, tmax=+Inf, returning
// only whether the ray touches the box — not the entry distance.
func (b AABB) Intersect(ray Ray) bool {
	tmin := float32(0)
	tmax := float32(math.Inf(1))

	t1 := (b.Min.X - ray.Origin.X) * ray.InvDir.X
	t2 := (b.Max.X - ray.Origin.X) * ray.InvDir.X
	tmin = min32(max32(t1, tmin), max32(t2, tmin))
	tmax = max32(min32(t1, tmax), min32(t2, tmax))

	t1 = (b.Min.Y - ray.Origin.Y) * ray.InvDir.Y
	t2 = (b.Max.Y - ray.Origin.Y) * ray.InvDir.Y
	tmin = min32(max32(t1, tmin), max32(t2, tmin))
	tmax = max32(min32(t1, tmax), min32(t2, tmax))

	t1 = (b.Min.Z - ray.Origin.Z) * ray.InvDir.Z
	t2 = (b.Max.Z - ray.Origin.Z) * ray.InvDir.Z
	tmin = min32(max32(t1, tmin), max32(t2, tmin))
	tmax = max32(min32(t1, tmax), min32(t2, tmax))

	return tmin <= tmax
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
