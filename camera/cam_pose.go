package camera

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// CamPose is a rigid world-to-camera transform, stored as a 3x3 rotation
// and a translation vector.
type CamPose struct {
	Rotation    *mat.Dense
	Translation r3.Vector
}

// NewIdentityCamPose returns a pose that leaves points unchanged.
func NewIdentityCamPose() *CamPose {
	rot := mat.NewDense(3, 3, nil)
	rot.Set(0, 0, 1)
	rot.Set(1, 1, 1)
	rot.Set(2, 2, 1)
	return &CamPose{Rotation: rot}
}

// NewCamPoseFromMat creates a camera pose from a 3x4 [R|t] pose matrix.
func NewCamPoseFromMat(pose *mat.Dense) (*CamPose, error) {
	r, c := pose.Dims()
	if r != 3 || c != 4 {
		return nil, errors.Errorf("pose matrix must be 3x4, got %dx%d", r, c)
	}
	rot := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			rot.Set(i, j, pose.At(i, j))
		}
	}
	t := r3.Vector{X: pose.At(0, 3), Y: pose.At(1, 3), Z: pose.At(2, 3)}
	return &CamPose{Rotation: rot, Translation: t}, nil
}

// NewCamPoseFromTranslation returns a pose that only translates points.
func NewCamPoseFromTranslation(t r3.Vector) *CamPose {
	pose := NewIdentityCamPose()
	pose.Translation = t
	return pose
}

// TransformPoint maps a world point into the camera frame.
func (cp *CamPose) TransformPoint(p r3.Vector) r3.Vector {
	r := cp.Rotation
	return r3.Vector{
		X: r.At(0, 0)*p.X + r.At(0, 1)*p.Y + r.At(0, 2)*p.Z + cp.Translation.X,
		Y: r.At(1, 0)*p.X + r.At(1, 1)*p.Y + r.At(1, 2)*p.Z + cp.Translation.Y,
		Z: r.At(2, 0)*p.X + r.At(2, 1)*p.Y + r.At(2, 2)*p.Z + cp.Translation.Z,
	}
}

// TransformPoints maps a slice of world points into the camera frame.
func (cp *CamPose) TransformPoints(pts []r3.Vector) []r3.Vector {
	out := make([]r3.Vector, len(pts))
	for i, p := range pts {
		out[i] = cp.TransformPoint(p)
	}
	return out
}

// PoseMat returns the 3x4 [R|t] matrix form of the pose.
func (cp *CamPose) PoseMat() *mat.Dense {
	pose := mat.NewDense(3, 4, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			pose.Set(i, j, cp.Rotation.At(i, j))
		}
	}
	pose.Set(0, 3, cp.Translation.X)
	pose.Set(1, 3, cp.Translation.Y)
	pose.Set(2, 3, cp.Translation.Z)
	return pose
}
