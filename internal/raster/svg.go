package raster

import (
	"image"

	"github.com/pkg/errors"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// referenceDPI is the CSS reference resolution: SVG user units map to
// pixels at 96 dpi.
const referenceDPI = 96.0

// RenderSVG rasterizes an SVG file with transparent background. Explicit
// width/height win over the dpi-derived size; a single explicit dimension
// keeps the document's aspect ratio.
func RenderSVG(path string, width, height int, dpi float64) (image.Image, error) {
	icon, err := oksvg.ReadIcon(path, oksvg.WarnErrorMode)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}

	vbW := icon.ViewBox.W
	vbH := icon.ViewBox.H
	if vbW <= 0 || vbH <= 0 {
		return nil, errors.Errorf("render %s: document has no usable viewbox", path)
	}

	if dpi <= 0 {
		dpi = referenceDPI
	}
	switch {
	case width > 0 && height > 0:
		// use as given
	case width > 0:
		height = int(float64(width) * vbH / vbW)
	case height > 0:
		width = int(float64(height) * vbW / vbH)
	default:
		width = int(vbW * dpi / referenceDPI)
		height = int(vbH * dpi / referenceDPI)
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	icon.SetTarget(0, 0, float64(width), float64(height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)

	return img, nil
}
