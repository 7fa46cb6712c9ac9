package overlay

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// Mosaic tiles a list of images into a grid. Every tile is resized to
// the first image's shape times scale (stretched, not cropped), padded
// on all sides by pad pixels of black, and laid out row-major into
// gridWidth columns. Grid cells past the end of the list stay black.
// A gridWidth of 0 picks ceil(sqrt(N)).
func Mosaic(items []image.Image, scale float64, pad, gridWidth int) (*image.RGBA, error) {
	n := len(items)
	if n == 0 {
		return nil, errors.New("no items to mosaic")
	}
	if gridWidth < 0 {
		return nil, errors.Errorf("grid width must be positive, got %d", gridWidth)
	}
	if pad < 0 {
		return nil, errors.Errorf("pad must be non-negative, got %d", pad)
	}
	if gridWidth == 0 {
		gridWidth = int(math.Ceil(math.Sqrt(float64(n))))
	}
	gridHeight := int(math.Ceil(float64(n) / float64(gridWidth)))

	first := items[0].Bounds()
	tileW := int(float64(first.Dx()) * scale)
	tileH := int(float64(first.Dy()) * scale)
	if tileW <= 0 || tileH <= 0 {
		return nil, errors.Errorf("scale %v yields empty %dx%d tiles", scale, tileW, tileH)
	}
	paddedW := tileW + 2*pad
	paddedH := tileH + 2*pad

	out := imaging.New(gridWidth*paddedW, gridHeight*paddedH, color.NRGBA{0, 0, 0, 255})
	for j, item := range items {
		tile := imaging.Resize(item, tileW, tileH, imaging.Linear)
		row := j / gridWidth
		col := j % gridWidth
		out = imaging.Paste(out, tile, image.Point{col*paddedW + pad, row*paddedH + pad})
	}
	return ConvertImage(out), nil
}
