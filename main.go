package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp(ctx, os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newApp builds the command line application. The image goes to stdout unless
// --output names a file; progress goes to stderr.
func newApp(ctx context.Context, stdout, stderr io.Writer) *cli.App {
	defaults := renderer.DefaultCameraConfig()

	app := cli.NewApp()
	app.Name = "pathtracer"
	app.Usage = "render a sphere scene to a P3 pixel map or PNG"
	app.HideVersion = true
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "scene",
			Value: "default",
			Usage: "built-in scene: " + strings.Join(scene.BuiltinSceneNames(), ", "),
		},
		cli.StringFlag{
			Name:  "scene-file",
			Usage: "load the scene from a JSON file instead of a built-in one",
		},
		cli.IntFlag{
			Name:  "width",
			Value: defaults.ImageWidth,
			Usage: "image width in pixels",
		},
		cli.Float64Flag{
			Name:  "aspect",
			Value: defaults.AspectRatio,
			Usage: "image aspect ratio (width / height)",
		},
		cli.IntFlag{
			Name:  "samples",
			Value: defaults.SamplesPerPixel,
			Usage: "samples per pixel",
		},
		cli.IntFlag{
			Name:  "depth",
			Value: defaults.MaxDepth,
			Usage: "maximum ray bounce depth",
		},
		cli.Int64Flag{
			Name:  "seed",
			Value: renderer.DefaultSeed,
			Usage: "random seed; equal seeds give identical images",
		},
		cli.StringFlag{
			Name:  "output, o",
			Usage: "output file; .png writes a PNG, anything else a P3 pixel map (default: stdout)",
		},
	}
	app.Action = func(c *cli.Context) error {
		logger := renderer.NewDefaultLogger(stderr)

		selectedScene, err := createScene(c.String("scene"), c.String("scene-file"))
		if err != nil {
			return err
		}

		config := cameraConfigFromFlags(c, selectedScene.CameraConfig)
		raytracer, err := renderer.NewRaytracer(selectedScene.World, config)
		if err != nil {
			return err
		}
		raytracer.SetSeed(c.Int64("seed"))
		raytracer.SetLogger(logger)

		logger.Printf("Rendering scene %q at %dx%d, %d samples per pixel, depth %d\n",
			selectedScene.Name, raytracer.Camera().ImageWidth(), raytracer.Camera().ImageHeight(),
			config.SamplesPerPixel, config.MaxDepth)

		return render(ctx, raytracer, c.String("output"), stdout, logger)
	}
	return app
}

// createScene resolves a scene from a JSON file when one is given, otherwise by preset name
func createScene(name, file string) (*scene.Scene, error) {
	if file != "" {
		return scene.LoadJSON(file)
	}
	return scene.NewSceneByName(name)
}

// cameraConfigFromFlags applies explicitly set flags on top of the scene's camera
func cameraConfigFromFlags(c *cli.Context, config renderer.CameraConfig) renderer.CameraConfig {
	if c.IsSet("width") {
		config.ImageWidth = c.Int("width")
	}
	if c.IsSet("aspect") {
		config.AspectRatio = c.Float64("aspect")
	}
	if c.IsSet("samples") {
		config.SamplesPerPixel = c.Int("samples")
	}
	if c.IsSet("depth") {
		config.MaxDepth = c.Int("depth")
	}
	return config
}

func render(ctx context.Context, raytracer *renderer.Raytracer, output string, stdout io.Writer, logger core.Logger) error {
	if output == "" {
		return raytracer.Render(ctx, stdout)
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	stats, err := renderFile(ctx, raytracer, file, output, logger)
	if err != nil {
		// A partial image is not an image
		file.Close()
		os.Remove(output)
		return err
	}

	logger.Printf("Render completed in %v (%d samples)\n", stats.Duration, stats.TotalSamples)
	logger.Printf("Render saved as %s\n", output)
	return nil
}

// renderFile renders into file, as PNG when output ends in .png and as a P3 pixel map otherwise
func renderFile(ctx context.Context, raytracer *renderer.Raytracer, file *os.File, output string, logger core.Logger) (renderer.RenderStats, error) {
	var stats renderer.RenderStats
	var err error
	if strings.EqualFold(filepath.Ext(output), ".png") {
		var img *image.RGBA
		img, stats, err = raytracer.RenderImage(ctx)
		if err != nil {
			return stats, err
		}
		if err := png.Encode(file, img); err != nil {
			return stats, fmt.Errorf("failed to encode PNG: %w", err)
		}
		logger.Printf("Average luminance: %.3f\n", renderer.CalculateAverageLuminance(img))
	} else {
		stats, err = raytracer.RenderTo(ctx, renderer.NewPPMSink(file))
		if err != nil {
			return stats, err
		}
	}

	if err := file.Close(); err != nil {
		return stats, fmt.Errorf("failed to close output file: %w", err)
	}
	return stats, nil
}
