package scene

import "github.com/mario007/mc-pathtracer/pkg/geometry"

// Primitive pairs a piece of geometry with an index into the scene's
// material table.
type Primitive struct {
	Geometry   geometry.Geometry
	MaterialID int
}
