package overlay

import (
	"image"
	"sort"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/asmith9455/dgp/camera"
	"github.com/asmith9455/dgp/colormap"
)

const (
	// depthEpsilon keeps the inverse depth finite at z == 0.
	depthEpsilon = 1e-6

	// DefaultDepthPercentile normalizes inverse depth when the caller
	// passes a zero percentile.
	DefaultDepthPercentile = 80.

	pointDilationSize = 5
)

// RenderPointCloudOnImage projects a world-frame point cloud through the
// camera, colorizes each point by normalized inverse depth and composites
// the result onto the image in place. Points that land outside the image
// or have non-positive depth in the camera frame are dropped. The image
// is returned.
func RenderPointCloudOnImage(
	img *image.RGBA,
	cam *camera.Camera,
	points []r3.Vector,
	colormapName string,
	percentile float64,
) (*image.RGBA, error) {
	cmap, err := colormap.Get(colormapName)
	if err != nil {
		return nil, err
	}
	if percentile == 0 {
		percentile = DefaultDepthPercentile
	}
	if percentile < 0 || percentile > 100 {
		return nil, errors.Errorf("percentile must be in [0, 100], got %v", percentile)
	}
	if len(points) == 0 {
		return nil, errors.New("no points to render")
	}

	// Move the point cloud into the camera's reference frame, then
	// project as if the points were already in that frame.
	camPts := cam.TransformToCameraFrame(points)
	uv := cam.Project(camPts)

	zinv := make([]float64, len(camPts))
	for i, p := range camPts {
		zinv[i] = 1. / (p.Z + depthEpsilon)
	}
	sorted := append([]float64(nil), zinv...)
	sort.Float64s(sorted)
	norm := stat.Quantile(percentile/100., stat.LinInterp, sorted, nil)
	if norm <= 0 {
		return nil, errors.Errorf("inverse depth at percentile %v is %v, cannot normalize", percentile, norm)
	}

	bounds := img.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	vis := image.NewRGBA(bounds)
	for i, p := range uv {
		if p.X < 0 || p.Y < 0 || p.X >= w || p.Y >= h || camPts[i].Z <= 0 {
			continue
		}
		t := zinv[i] / norm
		if t > 1. {
			t = 1.
		}
		vis.SetRGBA(int(p.X), int(p.Y), cmap.At(t))
	}

	// Dilate so single-pixel marks render clearly.
	vis, err = DilateSquare(vis, pointDilationSize)
	if err != nil {
		return nil, err
	}
	return MaxComposite(img, vis)
}
