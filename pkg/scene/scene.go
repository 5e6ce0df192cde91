package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	World        *geometry.ShapeList   // Objects in the scene
	CameraConfig renderer.CameraConfig // Camera and sampling settings
}

// NewScene creates an empty scene that renders with the default camera
func NewScene(name string) *Scene {
	return &Scene{
		Name:         name,
		World:        geometry.NewShapeList(),
		CameraConfig: renderer.DefaultCameraConfig(),
	}
}

// Add appends shapes to the scene's world
func (s *Scene) Add(shapes ...geometry.Shape) {
	for _, shape := range shapes {
		s.World.Add(shape)
	}
}

// AddSphere adds a sphere built from its parts and returns it
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) *geometry.Sphere {
	sphere := geometry.NewSphere(center, radius, mat)
	s.World.Add(sphere)
	return sphere
}

// NewRaytracer builds a raytracer for the scene, applying overrides on top of
// the scene's own camera config
func (s *Scene) NewRaytracer(overrides ...renderer.CameraConfig) (*renderer.Raytracer, error) {
	config := s.CameraConfig
	if len(overrides) > 0 {
		config = renderer.MergeCameraConfig(config, overrides[0])
	}
	return renderer.NewRaytracer(s.World, config)
}

// builtins maps preset names to their constructors
var builtins = map[string]func() *Scene{
	"default": NewDefaultScene,
	"simple":  NewSimpleScene,
	"empty":   NewEmptyScene,
}

// BuiltinSceneNames returns the names of the preset scenes in sorted order
func BuiltinSceneNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewSceneByName creates one of the preset scenes
func NewSceneByName(name string) (*Scene, error) {
	create, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, BuiltinSceneNames())
	}
	return create(), nil
}
