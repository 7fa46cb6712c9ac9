// Package colormap provides perceptual scalar-to-color lookups for
// visualizing quantities such as inverse depth.
package colormap

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Stop is a fixed color at a position t in [0, 1].
type Stop struct {
	T float64
	C colorful.Color
}

// Map is an ordered sequence of color stops. Lookups between stops are
// blended linearly in RGB space.
type Map struct {
	name  string
	stops []Stop
}

// jet follows the classic matplotlib "jet" anchors: dark blue through
// blue, cyan, yellow and red to dark red.
var jet = Map{
	name: "jet",
	stops: []Stop{
		{0.0, colorful.Color{R: 0, G: 0, B: 0.5}},
		{0.125, colorful.Color{R: 0, G: 0, B: 1}},
		{0.375, colorful.Color{R: 0, G: 1, B: 1}},
		{0.625, colorful.Color{R: 1, G: 1, B: 0}},
		{0.875, colorful.Color{R: 1, G: 0, B: 0}},
		{1.0, colorful.Color{R: 0.5, G: 0, B: 0}},
	},
}

// Get returns the named colormap.
func Get(name string) (Map, error) {
	switch name {
	case "jet":
		return jet, nil
	default:
		return Map{}, errors.Errorf("unknown colormap %q", name)
	}
}

// Name returns the name the map was registered under.
func (m Map) Name() string {
	return m.name
}

// At maps a scalar to a color. Inputs outside [0, 1] are clamped.
func (m Map) At(t float64) color.RGBA {
	if t <= m.stops[0].T {
		return toRGBA(m.stops[0].C)
	}
	last := m.stops[len(m.stops)-1]
	if t >= last.T {
		return toRGBA(last.C)
	}
	for i := 1; i < len(m.stops); i++ {
		lo, hi := m.stops[i-1], m.stops[i]
		if t > hi.T {
			continue
		}
		frac := (t - lo.T) / (hi.T - lo.T)
		return toRGBA(lo.C.BlendRgb(hi.C, frac))
	}
	return toRGBA(last.C)
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}
}
