package camera

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// Camera combines pinhole intrinsics with an extrinsic world-to-camera
// pose. A nil pose is treated as identity, i.e. points already in the
// camera frame.
type Camera struct {
	Intrinsics *PinholeCameraIntrinsics
	Pose       *CamPose
}

// New returns a camera with the given intrinsics and pose. Passing a nil
// pose yields a camera whose frame coincides with the world frame.
func New(intrinsics *PinholeCameraIntrinsics, pose *CamPose) (*Camera, error) {
	if err := intrinsics.CheckValid(); err != nil {
		return nil, err
	}
	if pose == nil {
		pose = NewIdentityCamPose()
	}
	return &Camera{Intrinsics: intrinsics, Pose: pose}, nil
}

// TransformToCameraFrame moves world points into this camera's frame of
// reference using the extrinsic pose.
func (c *Camera) TransformToCameraFrame(pts []r3.Vector) []r3.Vector {
	return c.Pose.TransformPoints(pts)
}

// Project maps camera-frame 3D points to pixel coordinates using only the
// intrinsic matrix; the extrinsic pose is not applied. Points with zero
// depth project to (-1, -1) so bounds filtering drops them.
func (c *Camera) Project(pts []r3.Vector) []r2.Point {
	uv := make([]r2.Point, len(pts))
	for i, p := range pts {
		x, y := c.Intrinsics.PointToPixel(p.X, p.Y, p.Z)
		uv[i] = r2.Point{X: x, Y: y}
	}
	return uv
}
