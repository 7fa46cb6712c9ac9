// Package bev renders bird's-eye-view scenes: a top-down raster canvas
// that accumulates point clouds and 3D bounding boxes projected
// orthogonally onto a configurable axis pair.
package bev

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/asmith9455/dgp/overlay"
)

const (
	edgeStrokeWidth  = 2
	headingWidth     = 2
	centerDotRadius  = 1
	boxLabelFontSize = 12
)

// pointGray is the value written on all three channels for rendered
// cloud points.
var pointGray = color.RGBA{128, 128, 128, 255}

// Image is a bird's-eye-view canvas. It assumes x-right, y-forward by
// default, projecting onto coordinates 0, 1 (the x-y plane). The canvas
// is created once with a polar grid pre-drawn and then accumulates
// content across render calls; it is never resized or reset. Calls are
// not safe for concurrent use.
type Image struct {
	data           *image.RGBA
	metricWidth    float64
	metricHeight   float64
	pixelsPerMeter float64
	xAxis, yAxis   int
	centerPixel    image.Point
}

// NewImage creates a BEV canvas of metricWidth x metricHeight meters at
// the given scale, with concentric range rings every polarStepMeters.
// xAxis and yAxis pick which point coordinates map to image right and
// image forward; they must differ.
func NewImage(metricWidth, metricHeight, pixelsPerMeter float64, polarStepMeters, xAxis, yAxis int) (*Image, error) {
	if xAxis == yAxis {
		return nil, errors.New("provide different x and y axis coordinates")
	}
	if xAxis < 0 || xAxis > 2 || yAxis < 0 || yAxis > 2 {
		return nil, errors.Errorf("axis indices must be in [0, 2], got %d and %d", xAxis, yAxis)
	}
	if metricWidth <= 0 || metricHeight <= 0 || pixelsPerMeter <= 0 {
		return nil, errors.Errorf("invalid view extents %vx%v at %v pixels per meter",
			metricWidth, metricHeight, pixelsPerMeter)
	}
	if polarStepMeters <= 0 {
		return nil, errors.Errorf("polar step size must be positive, got %d", polarStepMeters)
	}

	widthPx := int(metricWidth * pixelsPerMeter)
	heightPx := int(metricHeight * pixelsPerMeter)
	bev := &Image{
		data:           image.NewRGBA(image.Rect(0, 0, widthPx, heightPx)),
		metricWidth:    metricWidth,
		metricHeight:   metricHeight,
		pixelsPerMeter: pixelsPerMeter,
		xAxis:          xAxis,
		yAxis:          yAxis,
		centerPixel:    image.Point{widthPx / 2, heightPx / 2},
	}

	dc := gg.NewContextForRGBA(bev.data)
	dc.SetColor(overlay.Black.C)
	dc.Clear()

	// Draw the metric polar grid.
	maxExtent := math.Max(metricWidth, metricHeight)
	for i := 1; i < int(maxExtent)/polarStepMeters; i++ {
		dc.SetColor(overlay.DarkGray.C)
		dc.DrawCircle(float64(bev.centerPixel.X), float64(bev.centerPixel.Y),
			float64(i*polarStepMeters)*pixelsPerMeter)
		dc.SetLineWidth(1)
		dc.Stroke()
	}
	return bev, nil
}

// NewDefaultImage creates a 100m x 100m canvas at 10 pixels per meter
// with rings every 10 meters, projecting the x-y plane.
func NewDefaultImage() *Image {
	bev, err := NewImage(100., 100., 10., 10, 0, 1)
	if err != nil {
		panic(err) // impossible
	}
	return bev
}

func (b *Image) String() string {
	return fmt.Sprintf("width: %v, height: %v, data: %T", b.metricWidth, b.metricHeight, b.data)
}

// Data returns the canvas raster. Callers own the export of this buffer.
func (b *Image) Data() *image.RGBA {
	return b.data
}

// Width returns the canvas width in pixels.
func (b *Image) Width() int {
	return b.data.Bounds().Dx()
}

// Height returns the canvas height in pixels.
func (b *Image) Height() int {
	return b.data.Bounds().Dy()
}

// CenterPixel returns the pixel the metric origin maps to.
func (b *Image) CenterPixel() image.Point {
	return b.centerPixel
}

// WriteTo saves the canvas to the given path.
func (b *Image) WriteTo(path string) error {
	return overlay.WriteImageToFile(path, b.data)
}

// project maps a metric point onto the canvas using the configured axis
// pair. The vertical axis is flipped so forward maps to decreasing rows.
func (b *Image) project(p r3.Vector) (float64, float64) {
	u := float64(b.centerPixel.X) + axisValue(p, b.xAxis)*b.pixelsPerMeter
	v := float64(b.centerPixel.Y) - axisValue(p, b.yAxis)*b.pixelsPerMeter
	return u, v
}

// RenderPointCloud renders sensor-frame cloud points onto the canvas as
// mid-gray pixels. Points outside the canvas are dropped.
func (b *Image) RenderPointCloud(points []r3.Vector) {
	w := float64(b.Width())
	h := float64(b.Height())
	for _, p := range points {
		u, v := b.project(p)
		if u < 0 || v < 0 || u >= w || v >= h {
			continue
		}
		b.data.SetRGBA(int(u), int(v), pointGray)
	}
}

func axisValue(p r3.Vector, axis int) float64 {
	switch axis {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}
