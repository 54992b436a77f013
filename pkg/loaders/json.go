// Package loaders reads a scene description from disk and assembles a
// scene.Scene. JSON is the only supported format: a top-level object with
// optional "global", "camera", "materials", "shapes" and "lights"
// sections, each parsed independently and in that order so later
// sections (shapes) can resolve names defined earlier (materials).
package loaders

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mario007/mc-pathtracer/pkg/camera"
	"github.com/mario007/mc-pathtracer/pkg/core"
	"github.com/mario007/mc-pathtracer/pkg/geometry"
	"github.com/mario007/mc-pathtracer/pkg/lights"
	"github.com/mario007/mc-pathtracer/pkg/material"
	"github.com/mario007/mc-pathtracer/pkg/scene"
)

// sceneDefaults mirrors the defaults a freshly constructed scene carries
// before any section overrides them, so an empty scene description still
// produces a renderable scene.
var sceneDefaults = struct {
	width, height int
	nthreads      int
	spp           int
	algorithm     scene.Algorithm
	tonemap       scene.Tonemap
	output        string
	eye, lookAt   core.Vec3f
	distance      float64
}{
	width: 1024, height: 768,
	nthreads:  1,
	spp:       1,
	algorithm: scene.DirectLighting,
	tonemap:   scene.TonemapLinear,
	output:    "render.png",
	eye:       core.Vec3f{X: 0, Y: 0, Z: 0},
	lookAt:    core.Vec3f{X: 0, Y: 0, Z: 5},
	distance:  200,
}

// builder accumulates the pieces a JSON scene description contributes,
// ahead of constructing the final scene.Scene.
type builder struct {
	width, height int
	nthreads      int
	spp           int
	algorithm     scene.Algorithm
	tonemap       scene.Tonemap
	output        string

	eye, lookAt core.Vec3f
	hfov        float64
	haveHFOV    bool
	distance    float64

	materials   []material.Material
	materialIdx map[string]int
	primitives  []scene.Primitive
	lightList   []lights.Light
}

// LoadJSONFile reads filename and parses it as a JSON scene description.
func LoadJSONFile(filename string) (*scene.Scene, error) {
	contents, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("loaders: reading %s: %w", filename, err)
	}
	return ParseJSON(contents)
}

// ParseJSON parses a JSON scene description and builds a prepared
// scene.Scene.
func ParseJSON(contents []byte) (*scene.Scene, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(contents, &doc); err != nil {
		return nil, fmt.Errorf("loaders: invalid JSON: %w", err)
	}

	b := &builder{
		width: sceneDefaults.width, height: sceneDefaults.height,
		nthreads:    sceneDefaults.nthreads,
		spp:         sceneDefaults.spp,
		algorithm:   sceneDefaults.algorithm,
		tonemap:     sceneDefaults.tonemap,
		output:      sceneDefaults.output,
		eye:         sceneDefaults.eye,
		lookAt:      sceneDefaults.lookAt,
		distance:    sceneDefaults.distance,
		materialIdx: make(map[string]int),
	}

	if raw, ok := doc["global"]; ok {
		var section map[string]json.RawMessage
		if err := json.Unmarshal(raw, &section); err != nil {
			return nil, fmt.Errorf("loaders: global: expected an object: %w", err)
		}
		if err := b.parseGlobal(section); err != nil {
			return nil, err
		}
	}

	if raw, ok := doc["camera"]; ok {
		var section map[string]json.RawMessage
		if err := json.Unmarshal(raw, &section); err != nil {
			return nil, fmt.Errorf("loaders: camera: expected an object: %w", err)
		}
		if err := b.parseCamera(section); err != nil {
			return nil, err
		}
	}

	if raw, ok := doc["materials"]; ok {
		var entries []map[string]json.RawMessage
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("loaders: materials: expected a list: %w", err)
		}
		if err := b.parseMaterials(entries); err != nil {
			return nil, err
		}
	}

	if raw, ok := doc["shapes"]; ok {
		var entries []map[string]json.RawMessage
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("loaders: shapes: expected a list: %w", err)
		}
		if err := b.parseShapes(entries); err != nil {
			return nil, err
		}
	}

	if raw, ok := doc["lights"]; ok {
		var entries []map[string]json.RawMessage
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("loaders: lights: expected a list: %w", err)
		}
		if err := b.parseLights(entries); err != nil {
			return nil, err
		}
	}

	s := b.build()
	if err := s.Prepare(); err != nil {
		return nil, fmt.Errorf("loaders: %w", err)
	}
	return s, nil
}

func (b *builder) build() *scene.Scene {
	distance := b.distance
	if b.haveHFOV {
		distance = camera.DistanceFromHFOV(b.hfov, b.width)
	}

	return &scene.Scene{
		Width:      b.width,
		Height:     b.height,
		SPP:        b.spp,
		NThreads:   b.nthreads,
		Algorithm:  b.algorithm,
		Tonemap:    b.tonemap,
		OutputPath: b.output,
		Camera:     camera.New(b.eye, b.lookAt, core.Vec3f{X: 0, Y: 1, Z: 0}, distance),
		Primitives: b.primitives,
		Materials:  b.materials,
		Lights:     b.lightList,
	}
}

func (b *builder) parseGlobal(section map[string]json.RawMessage) error {
	if raw, ok := section["resolution"]; ok {
		width, height, err := parseResolution(raw, "global->resolution")
		if err != nil {
			return err
		}
		b.width, b.height = width, height
	}
	if raw, ok := section["spp"]; ok {
		spp, err := parseUint(raw, "global->spp")
		if err != nil {
			return err
		}
		b.spp = spp
	}
	if raw, ok := section["rendering"]; ok {
		name, err := parseString(raw, "global->rendering")
		if err != nil {
			return err
		}
		switch name {
		case "ambient":
			b.algorithm = scene.AmbientOcclusion
		case "direct_lighting":
			b.algorithm = scene.DirectLighting
		case "path_tracer":
			b.algorithm = scene.PathTracer
		default:
			return fmt.Errorf("loaders: global->rendering: unknown rendering algorithm %q", name)
		}
	}
	if raw, ok := section["tonemap"]; ok {
		name, err := parseString(raw, "global->tonemap")
		if err != nil {
			return err
		}
		switch name {
		case "linear":
			b.tonemap = scene.TonemapLinear
		case "gamma":
			b.tonemap = scene.TonemapGamma
		case "reinhard":
			b.tonemap = scene.TonemapReinhard
		default:
			return fmt.Errorf("loaders: global->tonemap: unknown tone mapping operator %q", name)
		}
	}
	if raw, ok := section["output"]; ok {
		output, err := parseString(raw, "global->output")
		if err != nil {
			return err
		}
		b.output = output
	}
	if raw, ok := section["nthreads"]; ok {
		n, err := parseUint(raw, "global->nthreads")
		if err != nil {
			return err
		}
		b.nthreads = n
	}
	return nil
}

func (b *builder) parseCamera(section map[string]json.RawMessage) error {
	if raw, ok := section["eye"]; ok {
		v, err := parseVec3f(raw, "camera->eye")
		if err != nil {
			return err
		}
		b.eye = v
	}
	if raw, ok := section["lookat"]; ok {
		v, err := parseVec3f(raw, "camera->lookat")
		if err != nil {
			return err
		}
		b.lookAt = v
	}
	if raw, ok := section["hfov"]; ok {
		hfov, err := parseFloat(raw, "camera->hfov")
		if err != nil {
			return err
		}
		b.hfov = hfov
		b.haveHFOV = true
	}
	if raw, ok := section["vp_distance"]; ok {
		distance, err := parseFloat(raw, "camera->vp_distance")
		if err != nil {
			return err
		}
		b.distance = distance
		b.haveHFOV = false
	}
	return nil
}

func (b *builder) parseMaterials(entries []map[string]json.RawMessage) error {
	for _, entry := range entries {
		nameRaw, ok := entry["name"]
		if !ok {
			return fmt.Errorf("loaders: material->name: field is required")
		}
		name, err := parseString(nameRaw, "material->name")
		if err != nil {
			return err
		}
		if _, exists := b.materialIdx[name]; exists {
			return fmt.Errorf("loaders: material %s already exists", name)
		}

		typeRaw, ok := entry["type"]
		if !ok {
			return fmt.Errorf("loaders: material->type: field is required")
		}
		typ, err := parseString(typeRaw, "material->type")
		if err != nil {
			return err
		}

		var mat material.Material
		switch typ {
		case "matte":
			diffuseRaw, ok := entry["diffuse"]
			if !ok {
				return fmt.Errorf("loaders: material:%s:diffuse: field is required", name)
			}
			diffuse, err := parseColor(diffuseRaw, fmt.Sprintf("material:%s:diffuse", name))
			if err != nil {
				return err
			}
			mat = material.NewMatte(diffuse)
		default:
			return fmt.Errorf("loaders: unknown material type %q", typ)
		}

		b.materialIdx[name] = len(b.materials)
		b.materials = append(b.materials, mat)
	}
	return nil
}

func (b *builder) parseShapes(entries []map[string]json.RawMessage) error {
	for _, entry := range entries {
		typeRaw, ok := entry["type"]
		if !ok {
			return fmt.Errorf("loaders: shape->type: field is required")
		}
		typ, err := parseString(typeRaw, "shape->type")
		if err != nil {
			return err
		}

		switch typ {
		case "sphere":
			if err := b.parseSphere(entry); err != nil {
				return err
			}
		default:
			return fmt.Errorf("loaders: unknown shape type %q", typ)
		}
	}
	return nil
}

func (b *builder) parseSphere(entry map[string]json.RawMessage) error {
	materialRaw, ok := entry["material"]
	if !ok {
		return fmt.Errorf("loaders: shape:material:name: field is required")
	}
	materialName, err := parseString(materialRaw, "shape:material:name")
	if err != nil {
		return err
	}
	materialID, ok := b.materialIdx[materialName]
	if !ok {
		return fmt.Errorf("loaders: material %s doesn't exist", materialName)
	}

	positionRaw, ok := entry["position"]
	if !ok {
		return fmt.Errorf("loaders: shape->position: field is required")
	}
	position, err := parseVec3f(positionRaw, "shape->position")
	if err != nil {
		return err
	}

	radiusRaw, ok := entry["radius"]
	if !ok {
		return fmt.Errorf("loaders: shape->radius: field is required")
	}
	radius, err := parseFloat(radiusRaw, "shape->radius")
	if err != nil {
		return err
	}

	sphere := geometry.NewSphere(position, float32(radius))
	b.primitives = append(b.primitives, scene.Primitive{Geometry: sphere, MaterialID: materialID})
	return nil
}

func (b *builder) parseLights(entries []map[string]json.RawMessage) error {
	for _, entry := range entries {
		typeRaw, ok := entry["type"]
		if !ok {
			return fmt.Errorf("loaders: light->type: field is required")
		}
		typ, err := parseString(typeRaw, "light->type")
		if err != nil {
			return err
		}

		switch typ {
		case "point":
			if err := b.parsePointLight(entry); err != nil {
				return err
			}
		default:
			return fmt.Errorf("loaders: unknown light type %q", typ)
		}
	}
	return nil
}

func (b *builder) parsePointLight(entry map[string]json.RawMessage) error {
	intensityRaw, ok := entry["intensity"]
	if !ok {
		return fmt.Errorf("loaders: light->intensity: field is required")
	}
	intensity, err := parseColor(intensityRaw, "light->intensity")
	if err != nil {
		return err
	}

	positionRaw, ok := entry["position"]
	if !ok {
		return fmt.Errorf("loaders: light->position: field is required")
	}
	position, err := parseVec3f(positionRaw, "light->position")
	if err != nil {
		return err
	}

	b.lightList = append(b.lightList, lights.NewPoint(intensity, position))
	return nil
}

func parseResolution(raw json.RawMessage, field string) (int, int, error) {
	var values []json.RawMessage
	if err := json.Unmarshal(raw, &values); err != nil || len(values) != 2 {
		return 0, 0, fmt.Errorf("loaders: %s: expected [width, height]", field)
	}
	width, err := parseUint(values[0], field)
	if err != nil {
		return 0, 0, err
	}
	height, err := parseUint(values[1], field)
	if err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

func parseVec3f(raw json.RawMessage, field string) (core.Vec3f, error) {
	var values []json.RawMessage
	if err := json.Unmarshal(raw, &values); err != nil {
		return core.Vec3f{}, fmt.Errorf("loaders: %s: expected an array of 3 numbers", field)
	}
	if len(values) != 3 {
		return core.Vec3f{}, fmt.Errorf("loaders: %s: exactly 3 values expected", field)
	}
	x, err := parseFloat(values[0], field)
	if err != nil {
		return core.Vec3f{}, err
	}
	y, err := parseFloat(values[1], field)
	if err != nil {
		return core.Vec3f{}, err
	}
	z, err := parseFloat(values[2], field)
	if err != nil {
		return core.Vec3f{}, err
	}
	return core.Vec3f{X: float32(x), Y: float32(y), Z: float32(z)}, nil
}

func parseColor(raw json.RawMessage, field string) (core.Color, error) {
	var values []json.RawMessage
	if err := json.Unmarshal(raw, &values); err != nil {
		return core.Color{}, fmt.Errorf("loaders: %s: expected an array of 3 numbers", field)
	}
	if len(values) != 3 {
		return core.Color{}, fmt.Errorf("loaders: %s: exactly 3 values expected", field)
	}
	r, err := parseFloat(values[0], field)
	if err != nil {
		return core.Color{}, err
	}
	g, err := parseFloat(values[1], field)
	if err != nil {
		return core.Color{}, err
	}
	bl, err := parseFloat(values[2], field)
	if err != nil {
		return core.Color{}, err
	}
	return core.NewColor(float32(r), float32(g), float32(bl)), nil
}

func parseUint(raw json.RawMessage, field string) (int, error) {
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil || v < 0 {
		return 0, fmt.Errorf("loaders: %s: expected a non-negative integer", field)
	}
	return int(v), nil
}

func parseFloat(raw json.RawMessage, field string) (float64, error) {
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, fmt.Errorf("loaders: %s: expected a number", field)
	}
	return v, nil
}

func parseString(raw json.RawMessage, field string) (string, error) {
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", fmt.Errorf("loaders: %s: expected a string", field)
	}
	return v, nil
}
