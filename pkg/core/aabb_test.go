package core

import "testing"

// TestAABBSlabInvariance checks that a box always reports a hit for a ray
// originating inside it, regardless of direction.
func TestAABBSlabInvariance(t *testing.T) {
	box := NewAABB(Vec3f{X: -1, Y: -1, Z: -1}, Vec3f{X: 1, Y: 1, Z: 1})
	origin := Vec3f{X: 0, Y: 0, Z: 0}

	rng := NewPRNG(0x1234, 9)
	for i := 0; i < 200; i++ {
		dir := randomUnitVec3f(rng)
		ray := NewRay(origin, dir)
		if !box.Intersect(ray) {
			t.Fatalf("iter %d: ray from inside box missed, dir=%v", i, dir)
		}
	}
}

func TestAABBCenterAndLongestAxis(t *testing.T) {
	box := NewAABB(Vec3f{X: 0, Y: 0, Z: 0}, Vec3f{X: 2, Y: 4, Z: 1})
	center := box.Center()
	if center != (Vec3f{X: 1, Y: 2, Z: 0.5}) {
		t.Errorf("Center() = %v, want {1,2,0.5}", center)
	}
	if axis := box.LongestAxis(); axis != 1 {
		t.Errorf("LongestAxis() = %d, want 1", axis)
	}
}
