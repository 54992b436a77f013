// Package camera implements the pinhole camera model scene.Scene embeds,
// kept separate from pkg/renderer so that pkg/scene (which holds a Camera
// value directly, per the data model) never imports the renderer package
// that drives it.
package camera

import (
	"math"

	"github.com/mario007/mc-pathtracer/pkg/core"
)

// Camera is a pinhole camera: eye, lookAt-derived UVW basis, and a
// view-plane distance expressed in pixel units so that GenerateRay can
// take raw pixel-offset coordinates directly.
type Camera struct {
	eye      core.Vec3f
	u, v, w  core.Vec3f
	distance float64
}

// New builds a pinhole camera from eye/lookAt/up and a precomputed
// view-plane distance (in pixel units). up is (0,1,0) by convention; if up
// and the eye-lookAt axis are collinear, a fallback up of (0,0,1) is used
// to avoid a degenerate cross product.
func New(eye, lookAt, up core.Vec3f, distance float64) *Camera {
	w := eye.Subtract(lookAt)
	if w.LengthSquared() == 0 {
		w = core.Vec3f{X: 0, Y: 0, Z: 1}
	}
	w = w.Normalize()

	uCandidate := up.Cross(w)
	if uCandidate.LengthSquared() < 1e-12 {
		up = core.Vec3f{X: 0, Y: 0, Z: 1}
		uCandidate = up.Cross(w)
		if uCandidate.LengthSquared() < 1e-12 {
			up = core.Vec3f{X: 1, Y: 0, Z: 0}
			uCandidate = up.Cross(w)
		}
	}
	u := uCandidate.Normalize()
	v := w.Cross(u)

	return &Camera{eye: eye, u: u, v: v, w: w, distance: distance}
}

// DistanceFromHFOV converts a horizontal field-of-view in degrees to a
// view-plane distance in pixel units for an image of the given width.
func DistanceFromHFOV(hfovDegrees float64, width int) float64 {
	halfAngle := hfovDegrees * math.Pi / 180.0 / 2.0
	return (float64(width) / 2.0) / math.Tan(halfAngle)
}

// GenerateRay forms a ray through image-plane coordinates (x, y), both
// already expressed relative to the image center in pixel units.
func (c *Camera) GenerateRay(x, y float64) core.Ray {
	direction := c.u.Multiply(float32(x)).
		Add(c.v.Multiply(float32(y))).
		Subtract(c.w.Multiply(float32(c.distance))).
		Normalize()
	return core.NewRay(c.eye, direction)
}
