// svgrelief converts SVG and PNG images into 3D-printable STL reliefs.
// Darker colors are extruded higher; transparent areas are left out of the
// model entirely.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/forgeline/svgrelief/internal/config"
	"github.com/forgeline/svgrelief/internal/logger"
	"github.com/forgeline/svgrelief/internal/pipeline"
)

func main() {
	config.ParseFlags()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Setup(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	input := args[0]
	output := ""
	if len(args) > 1 {
		output = args[1]
	} else {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".stl"
	}

	stats, err := pipeline.Convert(input, output, pipeline.FromConfig(cfg))
	if err != nil {
		logger.Error("conversion failed", zap.Error(err))
		os.Exit(1)
	}

	size := stats.Bounds.Size()
	fmt.Printf("Created %s\n", output)
	fmt.Printf("  Size:      %.1f x %.1f x %.1f mm\n", size.X(), size.Y(), size.Z())
	fmt.Printf("  Volume:    %.2f mm3\n", stats.Volume)
	fmt.Printf("  Triangles: %d\n", stats.Triangles)
	fmt.Printf("  Elapsed:   %s\n", stats.Elapsed.Round(time.Millisecond))
}

func printUsage() {
	fmt.Println(`svgrelief - convert SVG/PNG images to 3D-printable STL reliefs

Usage:
  svgrelief [options] <input.svg|input.png> [output.stl]

Options:
  -colors N        Number of grayscale levels (default 5)
  -base-height H   Height in mm for the lightest level (default 1.0)
  -step-height H   Extra height in mm per darker level (default 0.5)
  -pixel-size S    Size of each pixel in mm (default 0.1)
  -dpi D           Rasterization resolution for SVG input (default 300)
  -width W         Output width in pixels (default: derived)
  -height H        Output height in pixels (default: derived)
  -ascii           Write ASCII STL instead of binary
  -config PATH     Path to config file
  -debug           Enable debug logging

Examples:
  svgrelief logo.svg
  svgrelief -colors 8 -step-height 0.4 logo.svg logo.stl
  svgrelief -width 512 -ascii sketch.png`)
}
