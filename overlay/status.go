package overlay

import (
	"image"

	"github.com/fogleman/gg"
)

const (
	statusBarHeight  = 40
	statusTextOffset = 5
	statusFontSize   = 16
)

// PrintStatus adds a status bar at the bottom of the image with the
// provided text. The image is mutated in place and returned.
func PrintStatus(img *image.RGBA, text string) *image.RGBA {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	dc := gg.NewContextForRGBA(img)
	dc.SetColor(DarkGray.C)
	dc.DrawRectangle(0, float64(h-statusBarHeight), float64(w), statusBarHeight)
	dc.Fill()

	DrawString(dc, text, image.Point{statusTextOffset, h - statusTextOffset}, White.C, statusFontSize)
	return img
}
