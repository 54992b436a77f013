package material

import (
	"math"
	"testing"

	"github.com/mario007/mc-pathtracer/pkg/core"
)

func TestMatteIsEmissive(t *testing.T) {
	m := NewMatte(core.NewColor(0.5, 0.5, 0.5))
	if m.IsEmissive() {
		t.Errorf("Matte.IsEmissive() = true, want false")
	}
	if !m.Emission().IsZero() {
		t.Errorf("Matte.Emission() = %v, want zero", m.Emission())
	}
}

func TestMatteEmissiveReportsEmission(t *testing.T) {
	emission := core.NewColor(10, 10, 10)
	m := NewMatteEmissive(core.NewColor(0.8, 0.8, 0.8), emission)
	if !m.IsEmissive() {
		t.Errorf("MatteEmissive.IsEmissive() = false, want true")
	}
	if m.Emission() != emission {
		t.Errorf("Emission() = %v, want %v", m.Emission(), emission)
	}
}

// TestMatteEnergyConservation checks the quantified invariant: the mean
// of the rendering equation estimator (f*cosTheta/pdfw) over cosine
// sampled directions converges to the reflectance.
func TestMatteEnergyConservation(t *testing.T) {
	reflectance := float32(0.7)
	m := NewMatte(core.NewColor(reflectance, reflectance, reflectance))
	n := core.Vec3f{X: 0, Y: 1, Z: 0}
	wo := core.Vec3f{X: 0, Y: 1, Z: 0}

	rng := core.NewPRNG(0x2545F4914F6CDD1D, 11)

	const samples = 1_000_000
	var sum float64
	for i := 0; i < samples; i++ {
		s, ok := m.Sample(wo, n, rng.F32(), rng.F32())
		if !ok {
			continue
		}
		eval := m.Eval(wo, n, s.Direction)
		cosTheta := float64(n.AbsDot(s.Direction))
		sum += float64(eval.Color.R) * cosTheta / s.PDFW
	}

	mean := sum / samples
	if math.Abs(mean-float64(reflectance)) > 0.01 {
		t.Errorf("mean estimator = %v, want %v +/- 0.01", mean, reflectance)
	}
}
