// Package raster turns vector and raster input files into RGBA pixel
// images sized for heightfield conversion.
package raster

import (
	"image"
	"image/png"
	"os"

	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"
)

// LoadPNG reads a PNG file and returns its pixels.
func LoadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open raster input")
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return img, nil
}

// Scale resamples the image to the requested size with Catmull-Rom
// interpolation. A zero width or height is derived from the other
// dimension preserving aspect ratio; if both are zero the image is
// returned unchanged.
func Scale(img image.Image, width, height int) image.Image {
	if width <= 0 && height <= 0 {
		return img
	}

	srcW := img.Bounds().Dx()
	srcH := img.Bounds().Dy()
	if width <= 0 {
		width = height * srcW / srcH
	}
	if height <= 0 {
		height = width * srcH / srcW
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if width == srcW && height == srcH {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}
