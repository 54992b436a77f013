package camera

import (
	"math"
	"testing"

	"github.com/mario007/mc-pathtracer/pkg/core"
)

func TestNewCameraOrthonormalBasis(t *testing.T) {
	c := New(
		core.Vec3f{X: 0, Y: 0, Z: 0},
		core.Vec3f{X: 0, Y: 0, Z: 5},
		core.Vec3f{X: 0, Y: 1, Z: 0},
		200,
	)

	if d := math.Abs(float64(c.u.Dot(c.v))); d > 1e-5 {
		t.Errorf("u.v = %v, want ~0", d)
	}
	if d := math.Abs(float64(c.u.Dot(c.w))); d > 1e-5 {
		t.Errorf("u.w = %v, want ~0", d)
	}
	if d := math.Abs(float64(c.v.Dot(c.w))); d > 1e-5 {
		t.Errorf("v.w = %v, want ~0", d)
	}
}

func TestNewCameraDegenerateUpFallback(t *testing.T) {
	// eye-lookAt axis is collinear with the default up vector.
	c := New(
		core.Vec3f{X: 0, Y: 0, Z: 0},
		core.Vec3f{X: 0, Y: 5, Z: 0},
		core.Vec3f{X: 0, Y: 1, Z: 0},
		200,
	)
	if math.Abs(float64(c.u.Length())-1) > 1e-5 {
		t.Errorf("u is not unit length: %v", c.u)
	}
}

func TestGenerateRayPointsTowardLookAt(t *testing.T) {
	c := New(
		core.Vec3f{X: 0, Y: 0, Z: 0},
		core.Vec3f{X: 0, Y: 0, Z: 5},
		core.Vec3f{X: 0, Y: 1, Z: 0},
		200,
	)

	ray := c.GenerateRay(0, 0)
	if ray.Direction.Z <= 0 {
		t.Errorf("center ray direction = %v, want +Z component toward lookAt", ray.Direction)
	}
}

func TestDistanceFromHFOV(t *testing.T) {
	// A 90-degree horizontal FOV over a width of 2 gives tan(45deg)=1, so
	// distance = (width/2)/1 = 1.
	d := DistanceFromHFOV(90, 2)
	if math.Abs(d-1) > 1e-9 {
		t.Errorf("DistanceFromHFOV(90, 2) = %v, want 1", d)
	}
}
