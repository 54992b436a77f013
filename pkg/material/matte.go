package material

import (
	"math"

	"github.com/mario007/mc-pathtracer/pkg/core"
)

const invPi = 1.0 / math.Pi

// Matte is a perfectly diffuse (Lambertian) reflector: BSDF = rho/pi.
type Matte struct {
	Reflectance core.Color
}

// NewMatte creates a diffuse material with the given reflectance.
func NewMatte(reflectance core.Color) *Matte {
	return &Matte{Reflectance: reflectance}
}

// Eval returns color = rho/pi, pdfw = |n.wi|/pi.
func (m *Matte) Eval(wo, n, wi core.Vec3f) Eval {
	cosTheta := n.AbsDot(wi)
	return Eval{
		Color: m.Reflectance.Scale(float32(invPi)),
		PDFW:  float64(cosTheta) * invPi,
	}
}

// Sample draws a cosine-weighted direction about n via an orthonormal
// basis, and recomputes pdfw from the resulting world direction (which
// must equal the analytic cos(theta)/pi in exact arithmetic). Returns
// false if the resulting pdfw evaluates to zero.
func (m *Matte) Sample(wo, n core.Vec3f, u1, u2 float32) (Sample, bool) {
	onb := core.NewONB(n)
	local := core.CosineHemisphere(u1, u2)
	direction := onb.ToWorld(local).Normalize()

	cosTheta := n.AbsDot(direction)
	pdfw := float64(cosTheta) * invPi
	if pdfw == 0 {
		return Sample{}, false
	}

	return Sample{
		Direction: direction,
		Color:     m.Reflectance.Scale(float32(invPi)),
		PDFW:      pdfw,
	}, true
}

// IsEmissive reports false: a plain Matte material never emits.
func (m *Matte) IsEmissive() bool { return false }

// Emission is always zero for a non-emissive material.
func (m *Matte) Emission() core.Color { return core.Zero }

// MatteEmissive is a diffuse reflector that also radiates a fixed
// emission, used for area lights (every emissive primitive is wrapped by
// an Area light during scene preparation).
type MatteEmissive struct {
	Reflectance core.Color
	EmissionVal core.Color
}

// NewMatteEmissive creates a diffuse emissive material.
func NewMatteEmissive(reflectance, emission core.Color) *MatteEmissive {
	return &MatteEmissive{Reflectance: reflectance, EmissionVal: emission}
}

// Eval returns color = rho/pi, pdfw = |n.wi|/pi, same as Matte.
func (m *MatteEmissive) Eval(wo, n, wi core.Vec3f) Eval {
	cosTheta := n.AbsDot(wi)
	return Eval{
		Color: m.Reflectance.Scale(float32(invPi)),
		PDFW:  float64(cosTheta) * invPi,
	}
}

// Sample draws a cosine-weighted direction, identical to Matte.Sample.
func (m *MatteEmissive) Sample(wo, n core.Vec3f, u1, u2 float32) (Sample, bool) {
	onb := core.NewONB(n)
	local := core.CosineHemisphere(u1, u2)
	direction := onb.ToWorld(local).Normalize()

	cosTheta := n.AbsDot(direction)
	pdfw := float64(cosTheta) * invPi
	if pdfw == 0 {
		return Sample{}, false
	}

	return Sample{
		Direction: direction,
		Color:     m.Reflectance.Scale(float32(invPi)),
		PDFW:      pdfw,
	}, true
}

// IsEmissive reports true: MatteEmissive always radiates light.
func (m *MatteEmissive) IsEmissive() bool { return true }

// Emission returns the fixed emitted radiance.
func (m *MatteEmissive) Emission() core.Color { return m.EmissionVal }
