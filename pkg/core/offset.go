package core

import "math"

// Implements the Wächter/Binder robust ray-origin offset: nudge the hit
// point along the normal by an integer number of float ULPs instead of a
// fixed epsilon, so the offset scales with the magnitude of the
// coordinate and self-intersection is eliminated without tuning.
const (
	offsetIntScale   = 256.0
	offsetOrigin     = 1.0 / 32.0
	offsetFloatScale = 1.0 / 65536.0
)

// OffsetRayOrigin nudges hit away from the surface along normal, returning
// a point guaranteed to lie on the outward (normal) side for any finite
// floating-point hit.
func OffsetRayOrigin(hit, normal Vec3f) Vec3f {
	ofX := int32(offsetIntScale * normal.X)
	ofY := int32(offsetIntScale * normal.Y)
	ofZ := int32(offsetIntScale * normal.Z)

	piX := offsetAxis(hit.X, ofX)
	piY := offsetAxis(hit.Y, ofY)
	piZ := offsetAxis(hit.Z, ofZ)

	rx := piX
	if abs32(hit.X) < offsetOrigin {
		rx = hit.X + offsetFloatScale*normal.X
	}
	ry := piY
	if abs32(hit.Y) < offsetOrigin {
		ry = hit.Y + offsetFloatScale*normal.Y
	}
	rz := piZ
	if abs32(hit.Z) < offsetOrigin {
		rz = hit.Z + offsetFloatScale*normal.Z
	}

	return Vec3f{rx, ry, rz}
}

// offsetAxis adds (or, for a negative coordinate, subtracts) an integer
// bit-pattern offset to a single coordinate of hit.
func offsetAxis(coord float32, intOffset int32) float32 {
	bits := int32(math.Float32bits(coord))
	if coord < 0 {
		bits -= intOffset
	} else {
		bits += intOffset
	}
	return math.Float32frombits(uint32(bits))
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
