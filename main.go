package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
)

func main() {
	spp := flag.Int("spp", 16, "Samples per pixel")
	width := flag.Int("width", 480, "Image width")
	height := flag.Int("height", 360, "Image height")
	workers := flag.Int("workers", 0, "Number of render workers (0 = all CPUs)")
	seed := flag.Int64("seed", 0, "Base RNG seed (0 = time-based)")
	output := flag.String("out", "image.png", "Output file (.png or .ppm)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Sphere Path Tracer")
		fmt.Println("Usage: spheretracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)

	cornell, cameraConfig := scene.NewCornellScene()

	config := renderer.Config{
		Width:           *width,
		Height:          *height,
		SamplesPerPixel: *spp,
		Workers:         *workers,
		Seed:            *seed,
	}

	r := renderer.NewRenderer(cornell, cameraConfig, config, logger)
	fb, stats := r.Render()

	logger.Printf("render completed in %v (%d samples, %.0f samples/sec, %d workers)",
		stats.Elapsed, stats.TotalSamples, stats.SamplesPerSecond(), stats.Workers)

	if err := writeOutput(fb, *output); err != nil {
		logger.Printf("error writing output: %v", err)
		os.Exit(1)
	}
	logger.Printf("render saved as %s", *output)
}

// writeOutput encodes the framebuffer as PNG or PPM based on file extension
func writeOutput(fb *renderer.Framebuffer, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	switch filepath.Ext(path) {
	case ".ppm":
		return fb.WritePPM(file, renderer.Gamma22)
	default:
		return png.Encode(file, fb.ToRGBA(renderer.Gamma22))
	}
}
