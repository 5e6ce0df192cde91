package renderer

import (
	"context"
	"fmt"
	"image"
	"io"
	"math"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// DefaultSeed seeds the sampler of a new Raytracer
const DefaultSeed = 42

// shadowAcneEpsilon is the lower bound of accepted hit distances
const shadowAcneEpsilon = 0.001

var (
	skyWhite = core.NewVec3(1.0, 1.0, 1.0)
	skyBlue  = core.NewVec3(0.5, 0.7, 1.0)
)

// Raytracer handles the rendering process
type Raytracer struct {
	world   geometry.Shape
	camera  *Camera
	sampler core.Sampler
	logger  core.Logger
}

// NewRaytracer creates a new raytracer for world. A nil world renders as an empty scene.
func NewRaytracer(world geometry.Shape, config CameraConfig) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if world == nil {
		world = geometry.NewShapeList()
	}
	return &Raytracer{
		world:   world,
		camera:  newCamera(config),
		sampler: core.NewSeededSampler(DefaultSeed), // Deterministic for testing
		logger:  NewNopLogger(),
	}, nil
}

// SetSeed replaces the sampler with a fresh one seeded with seed
func (rt *Raytracer) SetSeed(seed int64) {
	rt.sampler = core.NewSeededSampler(seed)
}

// SetSampler replaces the random source used for every sample
func (rt *Raytracer) SetSampler(sampler core.Sampler) {
	rt.sampler = sampler
}

// SetLogger sets the diagnostic logger
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

// Camera returns the camera
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// backgroundGradient returns the sky color for a ray that escaped the scene
func (rt *Raytracer) backgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	a := 0.5 * (unitDirection.Y + 1.0)

	return core.Lerp(skyWhite, skyBlue, a)
}

// RayColor returns the color seen along r with at most depth bounces
func (rt *Raytracer) RayColor(r core.Ray, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := rt.world.Hit(r, core.NewInterval(shadowAcneEpsilon, math.Inf(1)))
	if !isHit {
		return rt.backgroundGradient(r)
	}

	// Shapes without a material absorb everything
	if hit.Material == nil {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	scatter, didScatter := hit.Material.Scatter(r, *hit, rt.sampler)
	if !didScatter {
		return core.Vec3{X: 0, Y: 0, Z: 0} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(rt.RayColor(scatter.Scattered, depth-1))
}

// RenderTo renders the image into sink, row by row from the top, left to right.
// ctx is checked before each scanline.
func (rt *Raytracer) RenderTo(ctx context.Context, sink PixelSink) (RenderStats, error) {
	start := time.Now()
	config := rt.camera.Config()
	width, height := rt.camera.ImageWidth(), rt.camera.ImageHeight()

	stats := RenderStats{Width: width, Height: height}

	if err := sink.Begin(width, height); err != nil {
		return stats, fmt.Errorf("failed to write image header: %w", err)
	}

	for j := 0; j < height; j++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		rt.logger.Printf("Scanlines remaining: %d\n", height-j)

		for i := 0; i < width; i++ {
			var pixel PixelStats
			for sample := 0; sample < config.SamplesPerPixel; sample++ {
				ray := rt.camera.GetRay(i, j, rt.sampler)
				pixel.AddSample(rt.RayColor(ray, config.MaxDepth))
			}

			if err := sink.WritePixel(pixel.Color(rt.camera.pixelSamplesScale).ToRGBA()); err != nil {
				return stats, fmt.Errorf("failed to write pixel (%d, %d): %w", i, j, err)
			}
			stats.TotalPixels++
			stats.TotalSamples += pixel.SampleCount
		}
	}

	if err := sink.End(); err != nil {
		return stats, fmt.Errorf("failed to finish image: %w", err)
	}

	stats.Duration = time.Since(start)
	rt.logger.Printf("Done.\n")
	return stats, nil
}

// Render writes a complete P3 pixel map of the scene to w
func (rt *Raytracer) Render(ctx context.Context, w io.Writer) error {
	_, err := rt.RenderTo(ctx, NewPPMSink(w))
	return err
}

// RenderImage renders the scene into an in-memory image
func (rt *Raytracer) RenderImage(ctx context.Context) (*image.RGBA, RenderStats, error) {
	sink := NewImageSink()
	stats, err := rt.RenderTo(ctx, sink)
	if err != nil {
		return nil, stats, err
	}
	return sink.Image(), stats, nil
}
