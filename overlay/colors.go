// Package overlay draws perception annotations onto raster images:
// status banners, image mosaics, 2D bounding boxes and projected point
// clouds. All rendering mutates the caller's buffer in place and hands
// the same buffer back.
package overlay

import "image/color"

// Color is a named RGB value used for annotation drawing.
type Color struct {
	C    color.RGBA
	Name string
}

// RGBA implements color.Color.
func (c Color) RGBA() (uint32, uint32, uint32, uint32) {
	return c.C.RGBA()
}

var (
	Red      = Color{color.RGBA{255, 0, 0, 255}, "red"}
	Green    = Color{color.RGBA{0, 255, 0, 255}, "green"}
	Blue     = Color{color.RGBA{0, 0, 255, 255}, "blue"}
	Gray     = Color{color.RGBA{100, 100, 100, 255}, "gray"}
	DarkGray = Color{color.RGBA{50, 50, 50, 255}, "darkGray"}
	White    = Color{color.RGBA{255, 255, 255, 255}, "white"}
	Black    = Color{color.RGBA{0, 0, 0, 255}, "black"}

	// Colors indexes the named colors above.
	Colors = map[string]Color{
		"red":      Red,
		"green":    Green,
		"blue":     Blue,
		"gray":     Gray,
		"darkGray": DarkGray,
		"white":    White,
		"black":    Black,
	}
)
