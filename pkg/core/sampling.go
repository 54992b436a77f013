package core

import "math"

// CosineHemisphere draws a cosine-weighted direction in the local frame
// where z is up: phi = 2*pi*u1, r = sqrt(1-u2), (r*cos(phi), r*sin(phi),
// sqrt(u2)). Used by the Matte BSDF sampler.
func CosineHemisphere(u1, u2 float32) Vec3f {
	phi := 2 * math.Pi * float64(u1)
	r := float32(math.Sqrt(1 - float64(u2)))
	x := r * float32(math.Cos(phi))
	y := r * float32(math.Sin(phi))
	z := float32(math.Sqrt(float64(u2)))
	return Vec3f{x, y, z}
}

// UniformHemisphere draws a uniformly distributed direction in the local
// frame where z is up: z = u1, r = sqrt(1-u1^2), phi = 2*pi*u2. Used by
// the ambient occlusion estimator (deliberately not cosine-weighted).
func UniformHemisphere(u1, u2 float32) Vec3f {
	z := u1
	r := float32(math.Sqrt(math.Max(0, 1-float64(u1)*float64(u1))))
	phi := 2 * math.Pi * float64(u2)
	x := r * float32(math.Cos(phi))
	y := r * float32(math.Sin(phi))
	return Vec3f{x, y, z}
}

// BalanceHeuristic returns the two-sample balance-heuristic MIS weight for
// a sample drawn from the distribution with density pdfA, given the other
// strategy's density pdfB for the same direction.
func BalanceHeuristic(pdfA, pdfB float64) float64 {
	if pdfA == 0 {
		return 0
	}
	return pdfA / (pdfA + pdfB)
}
