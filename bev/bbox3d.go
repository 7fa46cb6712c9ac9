package bev

import (
	"image"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/asmith9455/dgp/overlay"
)

// BoundingBox3D is the contract a 3D annotation must satisfy to be
// rendered. Corner ordering is significant: corners 0 and 1 span the
// front edge, 3-4 and 1-5 the side edges, 4-5 the back edge.
type BoundingBox3D interface {
	Corners() [8]r3.Vector
}

type cornerBox struct {
	corners [8]r3.Vector
}

func (b cornerBox) Corners() [8]r3.Vector {
	return b.corners
}

// NewBoxFromCorners wraps explicit corner coordinates, in the ordering
// documented on BoundingBox3D, as a BoundingBox3D.
func NewBoxFromCorners(corners [8]r3.Vector) BoundingBox3D {
	return cornerBox{corners: corners}
}

// RenderBoundingBoxes3D renders boxes onto the canvas. The default edge
// color scheme distinguishes front (red), back (blue) and side (gray)
// edges; a non-nil override color is used for every edge instead. Each
// box gets a green center dot and a white heading line toward the front
// edge. texts, when non-nil, must have one label per box; labels are
// drawn in white near corner 0. Only the four orientation edges are
// drawn per box, not the full cuboid wireframe.
func (b *Image) RenderBoundingBoxes3D(boxes []BoundingBox3D, override *overlay.Color, texts []string) error {
	if texts != nil && len(texts) != len(boxes) {
		return errors.Errorf("have %d boxes but %d texts", len(boxes), len(texts))
	}

	colors := [4]overlay.Color{overlay.Red, overlay.Green, overlay.Blue, overlay.Gray}
	if override != nil {
		colors = [4]overlay.Color{*override, *override, *override, *override}
	}

	dc := gg.NewContextForRGBA(b.data)
	for i, box := range boxes {
		// Orthogonal projection into pixel coordinate space.
		var px [8]image.Point
		var sumU, sumV float64
		for j, corner := range box.Corners() {
			u, v := b.project(corner)
			sumU += u
			sumV += v
			px[j] = image.Point{int(u), int(v)}
		}
		center := image.Point{int(sumU / 8.), int(sumV / 8.)}

		// Object center and a line toward the front face.
		dc.SetColor(overlay.Green.C)
		dc.DrawCircle(float64(center.X), float64(center.Y), centerDotRadius)
		dc.Fill()
		frontMid := image.Point{(px[0].X + px[1].X) / 2, (px[0].Y + px[1].Y) / 2}
		overlay.DrawLine(dc, center, frontMid, overlay.White.C, headingWidth)

		// Front edge, the two side edges and the back edge.
		overlay.DrawLine(dc, px[0], px[1], colors[0].C, edgeStrokeWidth)
		overlay.DrawLine(dc, px[3], px[4], colors[3].C, edgeStrokeWidth)
		overlay.DrawLine(dc, px[1], px[5], colors[3].C, edgeStrokeWidth)
		overlay.DrawLine(dc, px[4], px[5], colors[2].C, edgeStrokeWidth)

		if texts != nil {
			overlay.DrawString(dc, texts[i], px[0], overlay.White.C, boxLabelFontSize)
		}
	}
	return nil
}
