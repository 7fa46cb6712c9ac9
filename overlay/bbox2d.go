package overlay

import (
	"image"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

const (
	bboxStrokeWidth = 2
	bboxFontSize    = 20
)

// BoundingBox2D is an axis-aligned box in pixel coordinates.
type BoundingBox2D struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Rect returns the box as an integer rectangle, truncating coordinates.
func (b BoundingBox2D) Rect() image.Rectangle {
	return image.Rect(int(b.X), int(b.Y), int(b.X+b.Width), int(b.Y+b.Height))
}

// RenderBoundingBoxes2D draws box outlines onto the image in place and
// returns it. With a nil colors slice every outline is red; otherwise
// colors must have one entry per box. texts, when non-nil, must also
// match the box count and are drawn in white at each box's top-left
// corner.
func RenderBoundingBoxes2D(img *image.RGBA, boxes []BoundingBox2D, colors []Color, texts []string) (*image.RGBA, error) {
	if colors != nil && len(colors) != len(boxes) {
		return nil, errors.Errorf("have %d boxes but %d colors", len(boxes), len(colors))
	}
	if texts != nil && len(texts) != len(boxes) {
		return nil, errors.Errorf("have %d boxes but %d texts", len(boxes), len(texts))
	}

	dc := gg.NewContextForRGBA(img)
	for i, box := range boxes {
		c := Red
		if colors != nil {
			c = colors[i]
		}
		DrawRectangleEmpty(dc, box.Rect(), c.C, bboxStrokeWidth)
	}
	if texts != nil {
		for i, box := range boxes {
			DrawString(dc, texts[i], box.Rect().Min, White.C, bboxFontSize)
		}
	}
	return img, nil
}
