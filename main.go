package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-direct-raytracer/pkg/loaders"
	"github.com/df07/go-direct-raytracer/pkg/renderer"
	"github.com/df07/go-direct-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneType string
	width     int
	height    int
	fov       float64
	workers   int
	tileSize  int
	output    string
}

func main() {
	opts, help := parseFlags(flag.CommandLine, os.Args[1:])
	if help {
		printHelp()
		return
	}

	if err := run(context.Background(), opts); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (options, bool) {
	var opts options
	fs.StringVar(&opts.sceneType, "scene", "default", "Scene name, JSON scene name from scenes/, or path to a .json scene file")
	fs.IntVar(&opts.width, "width", 0, "Override image width in pixels")
	fs.IntVar(&opts.height, "height", 0, "Override image height in pixels")
	fs.Float64Var(&opts.fov, "fov", 0, "Override field of view in degrees")
	fs.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = CPU count, 1 = single-threaded)")
	fs.IntVar(&opts.tileSize, "tile", 64, "Tile size in pixels")
	fs.StringVar(&opts.output, "output", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	help := fs.Bool("help", false, "Show help information")
	fs.Parse(args)
	return opts, *help
}

func printHelp() {
	fmt.Println("Direct Lighting Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	scenes, err := scene.ListAllScenes()
	if err != nil {
		fmt.Printf("  (failed to list scenes: %v)\n", err)
		return
	}
	for _, info := range scenes {
		fmt.Printf("  %-15s - %s\n", info.ID, info.Description)
	}
}

// createScene builds the requested scene and applies command line overrides
func createScene(opts options) (*scene.Scene, error) {
	s, err := scene.Create(opts.sceneType)
	if err != nil {
		return nil, err
	}

	if opts.width > 0 {
		s.Width = opts.width
	}
	if opts.height > 0 {
		s.Height = opts.height
	}
	if opts.fov > 0 {
		s.FOV = opts.fov
	}
	return s, nil
}

func run(ctx context.Context, opts options) error {
	fmt.Println("Starting Direct Lighting Raytracer...")

	s, err := createScene(opts)
	if err != nil {
		return err
	}
	fmt.Printf("Using scene %s (%dx%d, fov %.1f)\n", opts.sceneType, s.Width, s.Height, s.FOV)

	raytracer, err := renderer.NewRaytracer(s, renderer.RenderConfig{
		TileSize:   opts.tileSize,
		NumWorkers: opts.workers,
	}, renderer.NewDefaultLogger())
	if err != nil {
		return err
	}

	img, stats, err := raytracer.Render(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Coverage: %.1f%% of %d pixels\n", stats.Coverage()*100, stats.TotalPixels)

	filename := opts.output
	if filename == "" {
		// Create timestamped filename
		timestamp := time.Now().Format("20060102_150405")
		name := strings.TrimSuffix(filepath.Base(opts.sceneType), ".json")
		filename = filepath.Join("output", name, fmt.Sprintf("render_%s.png", timestamp))
	}

	if err := loaders.SavePNG(filename, img); err != nil {
		return err
	}

	fmt.Printf("Render saved as %s\n", filename)
	return nil
}
