package core

import "testing"

func TestOrientNormal(t *testing.T) {
	n := Vec3f{X: 0, Y: 0, Z: 1}
	rayDir := Vec3f{X: 0, Y: 0, Z: 1} // ray travels +Z; n=+Z faces away from it and must be flipped

	oriented := OrientNormal(n, rayDir)
	if oriented.Dot(rayDir.Negate()) < 0 {
		t.Errorf("oriented normal %v still faces away from -rayDir %v", oriented, rayDir.Negate())
	}

	// -Z already faces against a +Z ray, so it is kept as is.
	flipped := Vec3f{X: 0, Y: 0, Z: -1}
	oriented2 := OrientNormal(flipped, rayDir)
	if oriented2 != flipped {
		t.Errorf("OrientNormal(%v, %v) = %v, want %v", flipped, rayDir, oriented2, flipped)
	}
}
