// Package pipeline runs the full conversion: rasterize the input image,
// quantize it into a heightfield grid, build the watertight mesh and write
// it out as STL.
package pipeline

import (
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/forgeline/svgrelief/internal/config"
	"github.com/forgeline/svgrelief/internal/logger"
	"github.com/forgeline/svgrelief/internal/quantize"
	"github.com/forgeline/svgrelief/internal/raster"
	"github.com/forgeline/svgrelief/pkg/heightfield"
	"github.com/forgeline/svgrelief/pkg/stl"
)

// ErrUnsupportedInput is returned for input files that are neither SVG nor PNG.
var ErrUnsupportedInput = errors.New("pipeline: unsupported input format")

// Options collects every knob of one conversion run.
type Options struct {
	Width          int     // output raster width in pixels (0 = derive)
	Height         int     // output raster height in pixels (0 = derive)
	DPI            float64 // SVG rasterization resolution
	Levels         int     // grayscale levels
	BaseHeight     float64 // mm for the lightest level
	StepHeight     float64 // mm per darker level
	CellSize       float64 // mm per pixel
	AlphaThreshold uint8   // pixels below this alpha are background
	ASCII          bool    // write ASCII STL instead of binary
	Name           string  // solid name embedded in the output
}

// FromConfig builds pipeline options from the application config.
func FromConfig(cfg *config.Config) Options {
	return Options{
		Width:          cfg.Render.Width,
		Height:         cfg.Render.Height,
		DPI:            cfg.Render.DPI,
		Levels:         cfg.Model.Levels,
		BaseHeight:     cfg.Model.BaseHeight,
		StepHeight:     cfg.Model.StepHeight,
		CellSize:       cfg.Model.PixelSize,
		AlphaThreshold: cfg.Model.AlphaThreshold,
		ASCII:          cfg.Output.Format == "ascii",
	}
}

// Stats reports what one conversion produced. It is returned by value to
// the caller; the pipeline keeps no state between runs.
type Stats struct {
	SourceWidth  int
	SourceHeight int

	ActiveCells     int
	BackgroundCells int

	Vertices  int
	Triangles int

	MinHeight float64 // mm, over active cells
	MaxHeight float64 // mm
	Bounds    heightfield.Bounds
	Volume    float64 // mm^3

	Elapsed time.Duration
}

// Convert reads the input file, converts it and writes the mesh to
// outputPath. The input format is chosen by file extension.
func Convert(inputPath, outputPath string, opts Options) (*Stats, error) {
	img, err := loadInput(inputPath, opts)
	if err != nil {
		return nil, err
	}

	if opts.Name == "" {
		base := filepath.Base(outputPath)
		opts.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return nil, errors.Wrap(err, "create output file")
	}

	stats, err := ConvertImage(img, out, opts)
	if err != nil {
		out.Close()
		os.Remove(outputPath)
		return nil, err
	}
	if err := out.Close(); err != nil {
		return nil, errors.Wrap(err, "close output file")
	}

	logger.Info("wrote mesh",
		zap.String("path", outputPath),
		zap.Int("triangles", stats.Triangles),
		zap.Duration("elapsed", stats.Elapsed))
	return stats, nil
}

// ConvertImage converts an already-loaded image and writes the mesh to w.
func ConvertImage(img image.Image, w io.Writer, opts Options) (*Stats, error) {
	start := time.Now()

	grid, err := quantize.Grid(img, quantize.Options{
		Levels:         opts.Levels,
		BaseHeight:     opts.BaseHeight,
		StepHeight:     opts.StepHeight,
		AlphaThreshold: opts.AlphaThreshold,
	})
	if err != nil {
		return nil, errors.Wrap(err, "quantize image")
	}

	stats := &Stats{
		SourceWidth:     grid.Cols(),
		SourceHeight:    grid.Rows(),
		ActiveCells:     grid.ActiveCount(),
		BackgroundCells: grid.Rows()*grid.Cols() - grid.ActiveCount(),
	}
	stats.MinHeight, stats.MaxHeight, _ = grid.HeightRange()

	logger.Info("quantized image",
		zap.Int("width", stats.SourceWidth),
		zap.Int("height", stats.SourceHeight),
		zap.Int("levels", opts.Levels),
		zap.Int("active_cells", stats.ActiveCells),
		zap.Int("background_cells", stats.BackgroundCells))

	mesh, err := heightfield.Build(grid, opts.CellSize)
	if err != nil {
		return nil, errors.Wrap(err, "build mesh")
	}

	stats.Vertices = len(mesh.Vertices)
	stats.Triangles = len(mesh.Faces)
	stats.Bounds = mesh.Bounds()
	stats.Volume = mesh.Volume()

	logger.Info("generated mesh",
		zap.Int("vertices", stats.Vertices),
		zap.Int("triangles", stats.Triangles),
		zap.Float64("volume_mm3", stats.Volume))

	name := opts.Name
	if name == "" {
		name = "relief"
	}
	if opts.ASCII {
		err = stl.WriteASCII(w, mesh, name)
	} else {
		err = stl.WriteBinary(w, mesh, name)
	}
	if err != nil {
		return nil, errors.Wrap(err, "write mesh")
	}

	stats.Elapsed = time.Since(start)
	return stats, nil
}

// loadInput rasterizes or loads the input file based on its extension.
func loadInput(path string, opts Options) (image.Image, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		logger.Info("rasterizing svg",
			zap.String("path", path),
			zap.Float64("dpi", opts.DPI))
		return raster.RenderSVG(path, opts.Width, opts.Height, opts.DPI)
	case ".png":
		img, err := raster.LoadPNG(path)
		if err != nil {
			return nil, err
		}
		return raster.Scale(img, opts.Width, opts.Height), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedInput, "%q", filepath.Ext(path))
	}
}
