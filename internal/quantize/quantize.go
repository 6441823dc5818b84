// Package quantize reduces a raster image to a discrete heightfield grid.
// Pixel luminance is snapped to a fixed set of uniformly spaced gray levels
// and each level maps to one extrusion height: the lightest level gets the
// base height, every darker level adds one step height. Pixels under the
// alpha threshold become inactive background cells.
package quantize

import (
	"errors"
	"fmt"
	"image"

	"gonum.org/v1/gonum/floats"

	"github.com/forgeline/svgrelief/pkg/heightfield"
)

// Quantization errors.
var (
	ErrLevelCount = errors.New("quantize: level count must be between 2 and 256")
	ErrNilImage   = errors.New("quantize: nil image")
)

// Options controls the raster-to-grid conversion.
type Options struct {
	Levels         int     // number of gray levels (2..256)
	BaseHeight     float64 // height of the lightest level
	StepHeight     float64 // extra height per darker level
	AlphaThreshold uint8   // pixels with alpha below this are background
}

// LevelHeights returns the extrusion height per gray level, indexed by
// ascending gray value (darkest first).
func LevelHeights(opts Options) []float64 {
	heights := make([]float64, opts.Levels)
	for k := range heights {
		heights[k] = opts.BaseHeight + float64(opts.Levels-1-k)*opts.StepHeight
	}
	return heights
}

// Grid converts an image into a heightfield grid with one cell per pixel.
// Rows follow image y, columns image x.
func Grid(img image.Image, opts Options) (*heightfield.Grid, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	if opts.Levels < 2 || opts.Levels > 256 {
		return nil, fmt.Errorf("%w: got %d", ErrLevelCount, opts.Levels)
	}

	levels := floats.Span(make([]float64, opts.Levels), 0, 255)
	heights := LevelHeights(opts)
	bounds := img.Bounds()

	cells := make([][]heightfield.Cell, bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := make([]heightfield.Cell, bounds.Dx())
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			alpha, gray := grayOverWhite(img.At(x, y).RGBA())
			if alpha < opts.AlphaThreshold {
				continue
			}
			row[x-bounds.Min.X] = heightfield.Cell{
				Active: true,
				Height: heights[nearestLevel(levels, gray)],
			}
		}
		cells[y-bounds.Min.Y] = row
	}

	return heightfield.NewGrid(cells)
}

// grayOverWhite composites an alpha-premultiplied 16-bit pixel over a white
// background and returns the 8-bit alpha and resulting luminance.
func grayOverWhite(r, g, b, a uint32) (alpha uint8, gray float64) {
	// Premultiplied components: adding the missing coverage gives the
	// composite over white.
	pad := 0xffff - a
	rr := float64(min16(r+pad)) / 257
	gg := float64(min16(g+pad)) / 257
	bb := float64(min16(b+pad)) / 257

	// ITU-R BT.601 luma, the same weights PIL uses for mode "L".
	return uint8(a >> 8), 0.299*rr + 0.587*gg + 0.114*bb
}

func min16(v uint32) uint32 {
	if v > 0xffff {
		return 0xffff
	}
	return v
}

// nearestLevel returns the index of the closest gray level.
func nearestLevel(levels []float64, gray float64) int {
	best := 0
	bestDist := 256.0
	for i, level := range levels {
		dist := gray - level
		if dist < 0 {
			dist = -dist
		}
		if dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best
}
