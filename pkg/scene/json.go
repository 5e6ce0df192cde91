package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// sceneFile is the on-disk JSON layout of a scene
type sceneFile struct {
	Name      string                  `json:"name"`
	Camera    *cameraJSON             `json:"camera"`
	Materials map[string]materialJSON `json:"materials"`
	Spheres   []sphereJSON            `json:"spheres"`
}

// cameraJSON overrides the default camera; absent fields keep their defaults
type cameraJSON struct {
	AspectRatio     *float64 `json:"aspectRatio"`
	ImageWidth      *int     `json:"imageWidth"`
	SamplesPerPixel *int     `json:"samplesPerPixel"`
	MaxDepth        *int     `json:"maxDepth"`
}

type materialJSON struct {
	Type   string          `json:"type"`
	Albedo json.RawMessage `json:"albedo"`
	Fuzz   float64         `json:"fuzz"`
}

type sphereJSON struct {
	Center   [3]float64 `json:"center"`
	Radius   float64    `json:"radius"`
	Material string     `json:"material"`
}

// LoadJSON reads a scene description from a JSON file
func LoadJSON(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer f.Close()

	s, err := ParseJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseJSON decodes a scene description. Materials are declared once by name
// and shared by every sphere that references them.
func ParseJSON(r io.Reader) (*Scene, error) {
	var file sceneFile
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}

	name := file.Name
	if name == "" {
		name = "custom"
	}
	s := NewScene(name)

	if file.Camera != nil {
		file.Camera.apply(&s.CameraConfig)
		if err := s.CameraConfig.Validate(); err != nil {
			return nil, fmt.Errorf("camera: %w", err)
		}
	}

	materials := make(map[string]material.Material, len(file.Materials))
	for key, desc := range file.Materials {
		mat, err := desc.build()
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", key, err)
		}
		materials[key] = mat
	}

	for i, desc := range file.Spheres {
		mat, ok := materials[desc.Material]
		if !ok {
			return nil, fmt.Errorf("sphere %d: unknown material %q", i, desc.Material)
		}
		center := core.NewVec3(desc.Center[0], desc.Center[1], desc.Center[2])
		s.AddSphere(center, desc.Radius, mat)
	}

	return s, nil
}

func (c *cameraJSON) apply(config *renderer.CameraConfig) {
	if c.AspectRatio != nil {
		config.AspectRatio = *c.AspectRatio
	}
	if c.ImageWidth != nil {
		config.ImageWidth = *c.ImageWidth
	}
	if c.SamplesPerPixel != nil {
		config.SamplesPerPixel = *c.SamplesPerPixel
	}
	if c.MaxDepth != nil {
		config.MaxDepth = *c.MaxDepth
	}
}

func (m materialJSON) build() (material.Material, error) {
	albedo, err := parseColor(m.Albedo)
	if err != nil {
		return nil, fmt.Errorf("albedo: %w", err)
	}

	switch strings.ToLower(m.Type) {
	case "lambertian":
		return material.NewLambertian(albedo), nil
	case "metal":
		return material.NewMetal(albedo, m.Fuzz), nil
	default:
		return nil, fmt.Errorf("unsupported material type %q", m.Type)
	}
}

// parseColor accepts either an [r, g, b] array of linear values or a CSS color name
func parseColor(raw json.RawMessage) (core.Vec3, error) {
	if len(raw) == 0 {
		return core.Vec3{}, fmt.Errorf("missing color")
	}

	var rgb []float64
	if err := json.Unmarshal(raw, &rgb); err == nil {
		if len(rgb) != 3 {
			return core.Vec3{}, fmt.Errorf("color array needs 3 components, got %d", len(rgb))
		}
		return core.NewVec3(rgb[0], rgb[1], rgb[2]), nil
	}

	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return core.Vec3{}, fmt.Errorf("color must be an [r, g, b] array or a color name, got %s", raw)
	}
	c, ok := colornames.Map[strings.ToLower(strings.ReplaceAll(name, " ", ""))]
	if !ok {
		return core.Vec3{}, fmt.Errorf("unknown color name %q", name)
	}
	return core.NewColorFromRGBA(c), nil
}
