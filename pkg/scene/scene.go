// Package scene holds the frozen, read-only aggregate every estimator
// queries: primitives, materials and lights, plus the derived AABB cache
// and optional BVH built by Prepare. Once Prepare returns, a Scene is
// shared read-only across all render workers; a JSON loader is the only
// supported way to populate one.
package scene

import (
	"fmt"

	"github.com/mario007/mc-pathtracer/pkg/camera"
	"github.com/mario007/mc-pathtracer/pkg/core"
	"github.com/mario007/mc-pathtracer/pkg/geometry"
	"github.com/mario007/mc-pathtracer/pkg/lights"
	"github.com/mario007/mc-pathtracer/pkg/material"
)

// Algorithm selects which estimator a render uses.
type Algorithm string

const (
	AmbientOcclusion Algorithm = "ambient"
	DirectLighting   Algorithm = "direct_lighting"
	PathTracer       Algorithm = "path_tracer"
)

// Tonemap selects the output color transform applied by the encoder.
type Tonemap string

const (
	TonemapLinear   Tonemap = "linear"
	TonemapGamma    Tonemap = "gamma"
	TonemapReinhard Tonemap = "reinhard"
)

// bvhPrimitiveThreshold is the primitive count above which Prepare builds
// an acceleration structure instead of relying on the linear AABB-gated
// scan; small scenes (the common case in practice) skip it entirely since
// the per-primitive loop outruns the traversal overhead.
const bvhPrimitiveThreshold = 16

// Scene is the read-only aggregate produced by a loader and finalized by
// Prepare. All exported fields are meant to be populated by a loader
// before Prepare is called; after Prepare, a Scene must not be mutated.
type Scene struct {
	Width      int
	Height     int
	SPP        int
	NThreads   int
	Algorithm  Algorithm
	Tonemap    Tonemap
	OutputPath string

	Camera     *camera.Camera
	Primitives []Primitive
	Materials  []material.Material
	Lights     []lights.Light

	bboxCache []core.AABB
	bvh       *bvh
	prepared  bool
}

// Prepare finalizes the scene: builds the per-primitive AABB cache,
// validates material and (after regenerating them) area-light primitive
// references, and optionally builds an acceleration structure. It must be
// called exactly once before the scene is queried by any worker.
func (s *Scene) Prepare() error {
	s.bboxCache = make([]core.AABB, len(s.Primitives))
	for i, p := range s.Primitives {
		if p.MaterialID < 0 || p.MaterialID >= len(s.Materials) {
			return fmt.Errorf("scene: primitive %d references out-of-range material id %d", i, p.MaterialID)
		}
		s.bboxCache[i] = p.Geometry.BBox()
	}

	s.CreateAreaLights()

	for _, l := range s.Lights {
		area, ok := l.(*lights.Area)
		if !ok {
			continue
		}
		if area.PrimitiveID < 0 || area.PrimitiveID >= len(s.Primitives) {
			return fmt.Errorf("scene: area light references out-of-range primitive id %d", area.PrimitiveID)
		}
		if !s.Materials[s.Primitives[area.PrimitiveID].MaterialID].IsEmissive() {
			return fmt.Errorf("scene: area light's primitive %d is not emissive", area.PrimitiveID)
		}
	}

	if len(s.Primitives) > bvhPrimitiveThreshold {
		s.bvh = buildBVH(s.bboxCache)
	} else {
		s.bvh = nil
	}

	s.prepared = true
	return nil
}

// CreateAreaLights rebuilds the derived set of Area lights from scratch:
// every non-area light is kept, and a fresh Area light is appended for
// every primitive whose material is emissive. Idempotent: calling it
// twice in a row produces the same light set.
func (s *Scene) CreateAreaLights() {
	kept := make([]lights.Light, 0, len(s.Lights))
	for _, l := range s.Lights {
		if _, ok := l.(*lights.Area); ok {
			continue
		}
		kept = append(kept, l)
	}

	for i, p := range s.Primitives {
		if s.Materials[p.MaterialID].IsEmissive() {
			kept = append(kept, lights.NewArea(i))
		}
	}
	s.Lights = kept
}

// Intersect finds the closest primitive hit along ray within (0, tmax),
// using the BVH when one was built at Prepare time, otherwise a linear
// AABB-gated scan in primitive order.
func (s *Scene) Intersect(ray core.Ray, tmax float64) (core.ShadingPoint, bool) {
	if s.bvh != nil {
		return s.bvh.intersect(s, ray, tmax)
	}
	return s.intersectLinear(ray, tmax)
}

func (s *Scene) intersectLinear(ray core.Ray, tmax float64) (core.ShadingPoint, bool) {
	origin := ray.Origin.ToVec3()
	direction := ray.Direction.ToVec3()

	bestT := tmax
	bestIdx := -1
	for i, box := range s.bboxCache {
		if !box.Intersect(ray) {
			continue
		}
		if t, ok := s.Primitives[i].Geometry.Intersect(origin, direction, bestT); ok {
			bestT = t
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return core.ShadingPoint{}, false
	}
	return s.shadingPointAt(bestIdx, bestT, ray), true
}

func (s *Scene) shadingPointAt(idx int, t float64, ray core.Ray) core.ShadingPoint {
	hitPoint := ray.At(t).ToVec3f()
	normal := core.OrientNormal(s.Primitives[idx].Geometry.Normal(hitPoint), ray.Direction)
	return core.ShadingPoint{
		T:           t,
		Point:       hitPoint,
		Normal:      normal,
		MaterialID:  s.Primitives[idx].MaterialID,
		PrimitiveID: idx,
	}
}

// Visible reports whether p1 is visible from p0: no primitive reports a
// hit closer than the distance between them.
func (s *Scene) Visible(p0, p1 core.Vec3f) bool {
	diff := p1.Subtract(p0)
	dist := float64(diff.Length())
	if dist == 0 {
		return true
	}
	direction := diff.Multiply(1.0 / float32(dist))
	ray := core.NewRay(p0, direction)
	_, hit := s.Intersect(ray, dist)
	return !hit
}

// GenerateRay forms image-plane coordinates centered on the image and
// delegates to the camera.
func (s *Scene) GenerateRay(x, y int, xp, yp float32) core.Ray {
	px := float64(x) - float64(s.Width)/2.0 + float64(xp)
	py := float64(y) - float64(s.Height)/2.0 + float64(yp)
	return s.Camera.GenerateRay(px, py)
}

// EvalBSDF evaluates the material at sp for the fixed direction pair.
func (s *Scene) EvalBSDF(sp core.ShadingPoint, wo, wi core.Vec3f) material.Eval {
	return s.Materials[sp.MaterialID].Eval(wo, sp.Normal, wi)
}

// SampleBSDF importance-samples the material at sp given outgoing
// direction wo and a worker's PRNG.
func (s *Scene) SampleBSDF(sp core.ShadingPoint, wo core.Vec3f, rng *core.PRNG) (material.Sample, bool) {
	return s.Materials[sp.MaterialID].Sample(wo, sp.Normal, rng.F32(), rng.F32())
}

// GetEmission returns the emitted radiance of primitiveID's material.
func (s *Scene) GetEmission(primitiveID int) core.Color {
	return s.Materials[s.Primitives[primitiveID].MaterialID].Emission()
}

// IsEmissive reports whether primitiveID's material radiates light.
func (s *Scene) IsEmissive(primitiveID int) bool {
	return s.Materials[s.Primitives[primitiveID].MaterialID].IsEmissive()
}

// GenerateShapeSample draws an area-light sample on primitiveID's
// geometry, implementing lights.SceneAccessor.
func (s *Scene) GenerateShapeSample(primitiveID int, reference core.Vec3f, u1, u2 float32) (geometry.ShapeSample, bool) {
	return s.Primitives[primitiveID].Geometry.Sample(reference, u1, u2)
}

// GeometryPDFA converts a BSDF-sampled hit on sp's primitive into an
// area-measure density as seen from reference, for MIS weighting.
func (s *Scene) GeometryPDFA(reference core.Vec3f, sp core.ShadingPoint) float64 {
	return s.Primitives[sp.PrimitiveID].Geometry.PDFA(reference, sp.Point)
}

// Prepared reports whether Prepare has already run, so a scheduler can
// enforce the "Prepare exactly once before the first render" contract.
func (s *Scene) Prepared() bool { return s.prepared }
