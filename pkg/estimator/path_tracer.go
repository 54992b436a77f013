package estimator

import (
	"github.com/mario007/mc-pathtracer/pkg/core"
	"github.com/mario007/mc-pathtracer/pkg/scene"
)

// maxDepth bounds the number of bounces the path tracer will trace before
// giving up, independent of the Russian-roulette-style luminance cutoff.
const maxDepth = 10

// minThroughputLuminance is the Russian-roulette-style termination
// threshold: once the carried throughput falls below this, its
// contribution to any future bounce is negligible and tracing stops.
const minThroughputLuminance = 1e-4

// PathTracer traces a unidirectional path up to maxDepth bounces,
// accumulating emission only on a direct camera-ray hit and on a BSDF
// bounce that lands on an emissive primitive (no MIS at interior
// vertices: emission is captured once, via the bounce that found it, or
// not at all).
func PathTracer(ray core.Ray, s *scene.Scene, rng *core.PRNG) core.Color {
	hit, ok := s.Intersect(ray, maxT)
	if !ok {
		return core.Zero
	}

	wo := ray.Direction.Negate()
	accum := s.GetEmission(hit.PrimitiveID)
	beta := core.One

	for depth := 0; depth < maxDepth; depth++ {
		bsdfSample, sampled := s.SampleBSDF(hit, wo, rng)
		if !sampled {
			break
		}

		cosTheta := hit.Normal.AbsDot(bsdfSample.Direction)
		beta = beta.Multiply(bsdfSample.Color).Scale(cosTheta / float32(bsdfSample.PDFW))

		origin := core.OffsetRayOrigin(hit.Point, hit.Normal)
		nextRay := core.NewRay(origin, bsdfSample.Direction)
		nextHit, hitSomething := s.Intersect(nextRay, maxT)
		if !hitSomething {
			break
		}

		if s.IsEmissive(nextHit.PrimitiveID) &&
			bsdfSample.Direction.Dot(hit.Normal) > 0 &&
			wo.Dot(hit.Normal) > 0 {
			accum = accum.Add(beta.Multiply(s.GetEmission(nextHit.PrimitiveID)))
			break
		}

		wo = nextRay.Direction.Negate()
		hit = nextHit

		if beta.Luminance() < minThroughputLuminance {
			break
		}
	}

	return accum
}
