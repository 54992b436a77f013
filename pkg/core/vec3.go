package core

import (
	"fmt"
	"math"
)

// Vec3 is a double-precision 3-vector, used wherever intersection math
// multiplies two terms of the same magnitude (sphere/triangle solving).
// Bounding-box tests during BVH traversal are not done in Vec3: they use
// the single-precision AABB.Intersect.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) String() string {
	return fmt.Sprintf("{%.6g, %.6g, %.6g}", v.X, v.Y, v.Z)
}

// Add returns the sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Subtract returns the difference of two vectors.
func (v Vec3) Subtract(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Multiply returns the vector scaled by a scalar.
func (v Vec3) Multiply(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Negate returns the negated vector.
func (v Vec3) Negate() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// LengthSquared returns the squared magnitude of the vector.
func (v Vec3) LengthSquared() float64 { return v.Dot(v) }

// Length returns the magnitude of the vector.
func (v Vec3) Length() float64 { return math.Sqrt(v.LengthSquared()) }

// Normalize returns a unit vector in the same direction.
func (v Vec3) Normalize() Vec3 {
	invLen := 1.0 / v.Length()
	return Vec3{v.X * invLen, v.Y * invLen, v.Z * invLen}
}

// Cross returns the cross product of two vectors using compensated
// (fused multiply-add) subtraction for each component, reducing
// catastrophic cancellation when the two factors are close in magnitude.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: differenceOfProducts(v.Y, o.Z, v.Z, o.Y),
		Y: differenceOfProducts(v.Z, o.X, v.X, o.Z),
		Z: differenceOfProducts(v.X, o.Y, v.Y, o.X),
	}
}

// Min returns the component-wise minimum of two vectors.
func (v Vec3) Min(o Vec3) Vec3 {
	return Vec3{math.Min(v.X, o.X), math.Min(v.Y, o.Y), math.Min(v.Z, o.Z)}
}

// Max returns the component-wise maximum of two vectors.
func (v Vec3) Max(o Vec3) Vec3 {
	return Vec3{math.Max(v.X, o.X), math.Max(v.Y, o.Y), math.Max(v.Z, o.Z)}
}

// ToVec3f truncates to single precision, for handing intersection results
// back to the shading stage.
func (v Vec3) ToVec3f() Vec3f {
	return Vec3f{float32(v.X), float32(v.Y), float32(v.Z)}
}

// differenceOfProducts computes a*b - c*d via fused multiply-add
// compensation (Kahan's algorithm), matching the original Rust
// `difference_of_products` helper used by Vec3f.Cross.
func differenceOfProducts(a, b, c, d float64) float64 {
	cd := c * d
	err := math.FMA(-c, d, cd)
	dop := math.FMA(a, b, -cd)
	return dop + err
}

func differenceOfProductsF32(a, b, c, d float32) float32 {
	cd := float64(c) * float64(d)
	err := math.FMA(float64(-c), float64(d), cd)
	dop := math.FMA(float64(a), float64(b), -cd)
	return float32(dop + err)
}

// Vec3f is a single-precision 3-vector, used for shading, sampling and ray
// directions where double precision is not required.
type Vec3f struct {
	X, Y, Z float32
}

// NewVec3f creates a new Vec3f.
func NewVec3f(x, y, z float32) Vec3f {
	return Vec3f{X: x, Y: y, Z: z}
}

func (v Vec3f) String() string {
	return fmt.Sprintf("{%.6g, %.6g, %.6g}", v.X, v.Y, v.Z)
}

// Add returns the sum of two vectors.
func (v Vec3f) Add(o Vec3f) Vec3f { return Vec3f{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Subtract returns the difference of two vectors.
func (v Vec3f) Subtract(o Vec3f) Vec3f { return Vec3f{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Multiply returns the vector scaled by a scalar.
func (v Vec3f) Multiply(s float32) Vec3f { return Vec3f{v.X * s, v.Y * s, v.Z * s} }

// Negate returns the negated vector.
func (v Vec3f) Negate() Vec3f { return Vec3f{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product of two vectors.
func (v Vec3f) Dot(o Vec3f) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// AbsDot returns the absolute value of the dot product of two vectors.
func (v Vec3f) AbsDot(o Vec3f) float32 {
	d := v.Dot(o)
	if d < 0 {
		return -d
	}
	return d
}

// LengthSquared returns the squared magnitude of the vector.
func (v Vec3f) LengthSquared() float32 { return v.Dot(v) }

// Length returns the magnitude of the vector.
func (v Vec3f) Length() float32 { return float32(math.Sqrt(float64(v.LengthSquared()))) }

// Normalize returns a unit vector in the same direction.
func (v Vec3f) Normalize() Vec3f {
	invLen := 1.0 / v.Length()
	return Vec3f{v.X * invLen, v.Y * invLen, v.Z * invLen}
}

// Cross returns the compensated cross product of two vectors.
func (v Vec3f) Cross(o Vec3f) Vec3f {
	return Vec3f{
		X: differenceOfProductsF32(v.Y, o.Z, v.Z, o.Y),
		Y: differenceOfProductsF32(v.Z, o.X, v.X, o.Z),
		Z: differenceOfProductsF32(v.X, o.Y, v.Y, o.X),
	}
}

// ToVec3 promotes to double precision for intersection math.
func (v Vec3f) ToVec3() Vec3 {
	return Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

// Min returns the component-wise minimum of two vectors.
func (v Vec3f) Min(o Vec3f) Vec3f {
	return Vec3f{min32(v.X, o.X), min32(v.Y, o.Y), min32(v.Z, o.Z)}
}

// Max returns the component-wise maximum of two vectors.
func (v Vec3f) Max(o Vec3f) Vec3f {
	return Vec3f{max32(v.X, o.X), max32(v.Y, o.Y), max32(v.Z, o.Z)}
}
