package overlay

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"go.viam.com/test"
)

func solidImage(w, h int, c color.NRGBA) image.Image {
	return imaging.New(w, h, c)
}

func TestMosaicEmpty(t *testing.T) {
	_, err := Mosaic(nil, 1.0, 3, 0)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "no items")
}

func TestMosaicBadGridWidth(t *testing.T) {
	items := []image.Image{solidImage(40, 30, color.NRGBA{255, 255, 255, 255})}
	_, err := Mosaic(items, 1.0, 3, -1)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "grid width")
}

func TestMosaicDimensions(t *testing.T) {
	white := color.NRGBA{255, 255, 255, 255}
	items := []image.Image{
		solidImage(40, 30, white),
		solidImage(40, 30, white),
		solidImage(40, 30, white),
	}

	// auto grid: ceil(sqrt(3)) = 2 wide, 2 tall; tiles 20x15 plus 2px pad
	out, err := Mosaic(items, 0.5, 2, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out.Bounds().Dx(), test.ShouldEqual, 48)
	test.That(t, out.Bounds().Dy(), test.ShouldEqual, 38)

	// explicit single-row grid
	out, err = Mosaic(items, 0.5, 2, 3)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out.Bounds().Dx(), test.ShouldEqual, 72)
	test.That(t, out.Bounds().Dy(), test.ShouldEqual, 19)
}

func TestMosaicSingle(t *testing.T) {
	white := color.NRGBA{255, 255, 255, 255}
	out, err := Mosaic([]image.Image{solidImage(40, 30, white)}, 1.0, 3, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out.Bounds().Dx(), test.ShouldEqual, 46)
	test.That(t, out.Bounds().Dy(), test.ShouldEqual, 36)

	// padding stays black, tile interior keeps its color
	test.That(t, out.RGBAAt(1, 1), test.ShouldResemble, Black.C)
	test.That(t, out.RGBAAt(23, 18), test.ShouldResemble, White.C)
}

func TestMosaicFillerTiles(t *testing.T) {
	white := color.NRGBA{255, 255, 255, 255}
	items := []image.Image{
		solidImage(10, 10, white),
		solidImage(10, 10, white),
		solidImage(10, 10, white),
	}

	// 2x2 grid with one filler cell; the filler stays black
	out, err := Mosaic(items, 1.0, 0, 2)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out.Bounds().Dx(), test.ShouldEqual, 20)
	test.That(t, out.Bounds().Dy(), test.ShouldEqual, 20)
	test.That(t, out.RGBAAt(5, 5), test.ShouldResemble, White.C)
	test.That(t, out.RGBAAt(15, 15), test.ShouldResemble, Black.C)
}
