package geometry

import (
	"math"
	"testing"

	"github.com/mario007/mc-pathtracer/pkg/core"
)

func TestTriangleIntersect(t *testing.T) {
	tri := NewTriangle(
		core.Vec3f{X: 0, Y: 0, Z: 0},
		core.Vec3f{X: 1, Y: 0, Z: 0},
		core.Vec3f{X: 0, Y: 1, Z: 0},
	)

	origin := core.NewVec3(0.25, 0.25, -1)
	direction := core.NewVec3(0, 0, 1)

	tHit, ok := tri.Intersect(origin, direction, math.Inf(1))
	if !ok {
		t.Fatalf("expected a hit")
	}
	if math.Abs(tHit-1) > 1e-9 {
		t.Errorf("t = %v, want 1", tHit)
	}
}

func TestTriangleIntersectOutsideEdgeMisses(t *testing.T) {
	tri := NewTriangle(
		core.Vec3f{X: 0, Y: 0, Z: 0},
		core.Vec3f{X: 1, Y: 0, Z: 0},
		core.Vec3f{X: 0, Y: 1, Z: 0},
	)

	// beta+gamma > 1: outside the hypotenuse edge.
	origin := core.NewVec3(0.9, 0.9, -1)
	direction := core.NewVec3(0, 0, 1)

	if _, ok := tri.Intersect(origin, direction, math.Inf(1)); ok {
		t.Errorf("expected no hit outside the triangle's hypotenuse edge")
	}
}

func TestTriangleBBox(t *testing.T) {
	tri := NewTriangle(
		core.Vec3f{X: 0, Y: 0, Z: 0},
		core.Vec3f{X: 1, Y: 0, Z: 0},
		core.Vec3f{X: 0, Y: 1, Z: 0},
	)
	box := tri.BBox()
	if box.Min != (core.Vec3f{X: 0, Y: 0, Z: 0}) || box.Max != (core.Vec3f{X: 1, Y: 1, Z: 0}) {
		t.Errorf("BBox = %v..%v, want {0,0,0}..{1,1,0}", box.Min, box.Max)
	}
}

func TestTriangleSamplePDFAConsistency(t *testing.T) {
	tri := NewTriangle(
		core.Vec3f{X: 0, Y: 0, Z: 0},
		core.Vec3f{X: 1, Y: 0, Z: 0},
		core.Vec3f{X: 0, Y: 1, Z: 0},
	)
	reference := core.Vec3f{X: 0, Y: 0, Z: 5}

	sample, ok := tri.Sample(reference, 0.3, 0.7)
	if !ok {
		t.Fatalf("expected a sample")
	}

	pdfa := tri.PDFA(reference, sample.Position)
	if math.Abs(pdfa-sample.PDFA) > 1e-9 {
		t.Errorf("PDFA() = %v, Sample().PDFA = %v, want equal (uniform area sampling)", pdfa, sample.PDFA)
	}
	wantPDFA := 1.0 / 0.5 // triangle area = 0.5
	if math.Abs(pdfa-wantPDFA) > 1e-6 {
		t.Errorf("pdfa = %v, want %v", pdfa, wantPDFA)
	}
}
