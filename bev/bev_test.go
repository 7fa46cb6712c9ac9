package bev

import (
	"image"
	"image/color"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/asmith9455/dgp/overlay"
)

func TestNewImageValidation(t *testing.T) {
	_, err := NewImage(100., 100., 10., 10, 1, 1)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "different x and y axis")

	_, err = NewImage(100., 100., 10., 10, 0, 3)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = NewImage(-1., 100., 10., 10, 0, 1)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = NewImage(100., 100., 10., 0, 0, 1)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestNewDefaultImage(t *testing.T) {
	bev := NewDefaultImage()
	test.That(t, bev.Width(), test.ShouldEqual, 1000)
	test.That(t, bev.Height(), test.ShouldEqual, 1000)
	test.That(t, bev.CenterPixel(), test.ShouldResemble, image.Point{500, 500})

	// the canvas starts black with range rings; the first ring is 100px out
	test.That(t, bev.Data().RGBAAt(500, 500), test.ShouldResemble, color.RGBA{0, 0, 0, 255})
	onRing := bev.Data().RGBAAt(600, 500)
	test.That(t, onRing.R > 0, test.ShouldBeTrue)
	test.That(t, onRing.R <= 50, test.ShouldBeTrue)
}

func TestRenderPointCloud(t *testing.T) {
	bev := NewDefaultImage()
	bev.RenderPointCloud([]r3.Vector{
		{X: 0, Y: 0, Z: 0},
		{X: 10, Y: 0, Z: 0},
		{X: 0, Y: 10, Z: 0},
		{X: 1000, Y: 0, Z: 0}, // out of view, dropped
	})

	gray := color.RGBA{128, 128, 128, 255}
	test.That(t, bev.Data().RGBAAt(500, 500), test.ShouldResemble, gray)
	// x maps right, y maps up (decreasing rows)
	test.That(t, bev.Data().RGBAAt(600, 500), test.ShouldResemble, gray)
	test.That(t, bev.Data().RGBAAt(500, 400), test.ShouldResemble, gray)
}

func TestRenderPointCloudAxisSelection(t *testing.T) {
	// project the x-z plane instead
	bev, err := NewImage(100., 100., 10., 10, 0, 2)
	test.That(t, err, test.ShouldBeNil)

	bev.RenderPointCloud([]r3.Vector{{X: 2, Y: 77, Z: 3}})
	test.That(t, bev.Data().RGBAAt(520, 470), test.ShouldResemble, color.RGBA{128, 128, 128, 255})
}

// testBox is a unit-square footprint centered at the origin with the
// front edge at y = +1.
func testBox() BoundingBox3D {
	return NewBoxFromCorners([8]r3.Vector{
		{X: -1, Y: 1, Z: 0},  // 0: front left
		{X: 1, Y: 1, Z: 0},   // 1: front right
		{X: 1, Y: 1, Z: 1},   // 2
		{X: -1, Y: 1, Z: 1},  // 3
		{X: -1, Y: -1, Z: 0}, // 4: back left
		{X: 1, Y: -1, Z: 0},  // 5: back right
		{X: 1, Y: -1, Z: 1},  // 6
		{X: -1, Y: -1, Z: 1}, // 7
	})
}

func TestRenderBoundingBoxes3D(t *testing.T) {
	bev := NewDefaultImage()
	err := bev.RenderBoundingBoxes3D([]BoundingBox3D{testBox()}, nil, nil)
	test.That(t, err, test.ShouldBeNil)

	data := bev.Data()
	// front edge (corners 0-1) in red
	test.That(t, data.RGBAAt(505, 490), test.ShouldResemble, color.RGBA{255, 0, 0, 255})
	// side edges (3-4 and 1-5) in gray
	test.That(t, data.RGBAAt(490, 500), test.ShouldResemble, color.RGBA{100, 100, 100, 255})
	test.That(t, data.RGBAAt(510, 500), test.ShouldResemble, color.RGBA{100, 100, 100, 255})
	// back edge (4-5) in blue
	test.That(t, data.RGBAAt(500, 510), test.ShouldResemble, color.RGBA{0, 0, 255, 255})
	// heading line from the center toward the front edge in white
	test.That(t, data.RGBAAt(500, 495), test.ShouldResemble, color.RGBA{255, 255, 255, 255})
	// the green center dot
	center := data.RGBAAt(500, 500)
	test.That(t, center.G > center.R, test.ShouldBeTrue)
}

func TestRenderBoundingBoxes3DOverrideColor(t *testing.T) {
	bev := NewDefaultImage()
	white := overlay.White
	err := bev.RenderBoundingBoxes3D([]BoundingBox3D{testBox()}, &white, nil)
	test.That(t, err, test.ShouldBeNil)

	data := bev.Data()
	test.That(t, data.RGBAAt(505, 490), test.ShouldResemble, color.RGBA{255, 255, 255, 255})
	test.That(t, data.RGBAAt(510, 500), test.ShouldResemble, color.RGBA{255, 255, 255, 255})
	test.That(t, data.RGBAAt(500, 510), test.ShouldResemble, color.RGBA{255, 255, 255, 255})
}

func TestRenderBoundingBoxes3DTextMismatch(t *testing.T) {
	bev := NewDefaultImage()
	err := bev.RenderBoundingBoxes3D([]BoundingBox3D{testBox()}, nil, []string{"car", "truck"})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "texts")

	err = bev.RenderBoundingBoxes3D([]BoundingBox3D{testBox()}, nil, []string{"car"})
	test.That(t, err, test.ShouldBeNil)
}
