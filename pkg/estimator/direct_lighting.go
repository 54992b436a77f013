package estimator

import (
	"github.com/mario007/mc-pathtracer/pkg/core"
	"github.com/mario007/mc-pathtracer/pkg/scene"
)

// DirectLighting intersects the primary ray and combines the emission
// seen directly with one light-sampled and one BSDF-sampled shadow ray,
// weighted by the balance heuristic (two-sample MIS).
func DirectLighting(ray core.Ray, s *scene.Scene, rng *core.PRNG) core.Color {
	hit, ok := s.Intersect(ray, maxT)
	if !ok {
		return core.Zero
	}

	wo := ray.Direction.Negate()
	accum := s.GetEmission(hit.PrimitiveID)

	accum = accum.Add(sampleLight(hit, wo, s, rng))
	accum = accum.Add(sampleBSDF(hit, wo, s, rng))
	return accum
}

// sampleLight is the light sub-estimator: pick one of N lights uniformly,
// sample it, and weight its contribution by the balance heuristic against
// the BSDF's density for the same direction (delta lights always weight 1).
func sampleLight(hit core.ShadingPoint, wo core.Vec3f, s *scene.Scene, rng *core.PRNG) core.Color {
	n := len(s.Lights)
	if n == 0 {
		return core.Zero
	}
	light := s.Lights[int(rng.F32()*float32(n))%n]

	ls, ok := light.Illuminate(hit.Point, s, rng.F32(), rng.F32())
	if !ok {
		return core.Zero
	}
	if ls.Wi.Dot(hit.Normal) <= 0 || wo.Dot(hit.Normal) <= 0 {
		return core.Zero
	}

	origin := core.OffsetRayOrigin(hit.Point, hit.Normal)
	if !s.Visible(origin, ls.Position) {
		return core.Zero
	}

	bsdf := s.EvalBSDF(hit, wo, ls.Wi)

	pdfLight := ls.PDFA / float64(n)
	weight := 1.0
	if !light.IsDelta() {
		distSq := float64(ls.Position.Subtract(hit.Point).LengthSquared())
		pdfBSDFToArea := bsdf.PDFW * ls.CosTheta / distSq
		weight = core.BalanceHeuristic(pdfLight, pdfBSDFToArea)
	}

	cosTheta := float64(hit.Normal.AbsDot(ls.Wi))
	distSq := float64(ls.Position.Subtract(hit.Point).LengthSquared())
	denom := distSq * pdfLight
	if light.IsDelta() {
		// A delta light's Intensity already carries the inverse-square
		// falloff (see lights.Point.Illuminate).
		denom = pdfLight
	}
	if denom == 0 {
		return core.Zero
	}

	return ls.Intensity.Multiply(bsdf.Color).Scale(float32(weight * ls.CosTheta * cosTheta / denom))
}

// sampleBSDF is the BSDF sub-estimator: sample the material, trace a
// shadow ray, and weight the emission it finds against the equivalent
// light-sampling density for the same point, for the same balance
// heuristic.
func sampleBSDF(hit core.ShadingPoint, wo core.Vec3f, s *scene.Scene, rng *core.PRNG) core.Color {
	n := len(s.Lights)
	if n == 0 {
		return core.Zero
	}

	bsdf, ok := s.SampleBSDF(hit, wo, rng)
	if !ok {
		return core.Zero
	}

	origin := core.OffsetRayOrigin(hit.Point, hit.Normal)
	bounceRay := core.NewRay(origin, bsdf.Direction)
	lgtSP, hitSomething := s.Intersect(bounceRay, maxT)
	if !hitSomething {
		return core.Zero
	}
	if lgtSP.PrimitiveID == hit.PrimitiveID {
		return core.Zero
	}
	if !s.IsEmissive(lgtSP.PrimitiveID) {
		return core.Zero
	}

	emission := s.GetEmission(lgtSP.PrimitiveID)

	pdfaGeom := s.GeometryPDFA(hit.Point, lgtSP)
	distSq := float64(hit.Point.Subtract(lgtSP.Point).LengthSquared())
	cosAtLight := float64(lgtSP.Normal.AbsDot(bsdf.Direction.Negate()))
	if cosAtLight == 0 {
		return core.Zero
	}
	pdfwLightConverted := pdfaGeom * distSq / cosAtLight

	weight := core.BalanceHeuristic(bsdf.PDFW, pdfwLightConverted/float64(n))

	cosTheta := float64(hit.Normal.AbsDot(bsdf.Direction))
	return bsdf.Color.Multiply(emission).Scale(float32(weight * cosTheta / bsdf.PDFW))
}
