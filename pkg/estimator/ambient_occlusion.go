// Package estimator implements the three pure ray-to-color estimators:
// ambient occlusion, direct lighting with MIS, and the unidirectional path
// tracer. Each is a function of (ray, scene, rng) only — no estimator
// holds state across calls, so workers can share one scene.Scene and own
// one core.PRNG each without any further synchronization.
package estimator

import (
	"math"

	"github.com/mario007/mc-pathtracer/pkg/core"
	"github.com/mario007/mc-pathtracer/pkg/scene"
)

const uniformHemispherePDFW = 1.0 / (2.0 * math.Pi)
const invPi = 1.0 / math.Pi

// maxT is the upper bound passed to Scene.Intersect for rays with no
// natural far plane (primary and shadow rays alike).
var maxT = math.Inf(1)

// AmbientOcclusion intersects the primary ray; on miss it returns Zero. On
// hit it draws a uniformly (not cosine-) distributed direction about the
// normal and traces a single shadow ray: an unoccluded direction
// contributes One*(1/pi)*(n.wi)/pdfw, an occluded one contributes Zero.
func AmbientOcclusion(ray core.Ray, s *scene.Scene, rng *core.PRNG) core.Color {
	hit, ok := s.Intersect(ray, maxT)
	if !ok {
		return core.Zero
	}

	onb := core.NewONB(hit.Normal)
	local := core.UniformHemisphere(rng.F32(), rng.F32())
	wi := onb.ToWorld(local).Normalize()

	origin := core.OffsetRayOrigin(hit.Point, hit.Normal)
	shadowRay := core.NewRay(origin, wi)
	if _, occluded := s.Intersect(shadowRay, maxT); occluded {
		return core.Zero
	}

	cosTheta := hit.Normal.AbsDot(wi)
	return core.One.Scale(float32(invPi) * cosTheta / float32(uniformHemispherePDFW))
}
