// Package pinhole implements an intrinsics-free pinhole camera model.
// Image points are normalized coordinates on the plane one unit along the optical axis,
// so a camera is fully described by its pose.
package pinhole

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/mvrobotics/sfm/spatialmath"
)

// ErrBehindCamera is returned when a point to project is at or behind the camera plane.
var ErrBehindCamera = errors.New("point is at or behind the camera plane")

// Camera is a pinhole camera with no intrinsics. Its frame has +Z forward along the
// optical axis, +X right and +Y down the image.
type Camera struct {
	pose spatialmath.Pose
}

// NewCamera returns a camera at the given pose.
func NewCamera(pose spatialmath.Pose) *Camera {
	return &Camera{pose: pose}
}

// NewLookAt returns a camera placed at eye with its optical axis pointing at target.
// The up vector fixes the roll of the image plane.
func NewLookAt(eye, target, up r3.Vector) (*Camera, error) {
	pose, err := spatialmath.NewLookAtPose(eye, target, up)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create look-at camera")
	}
	return &Camera{pose: pose}, nil
}

// Pose returns the pose of the camera in the world frame.
func (c *Camera) Pose() spatialmath.Pose {
	return c.pose
}

// Project maps a world point to normalized image coordinates. It returns an error
// wrapping ErrBehindCamera when the point does not lie strictly in front of the camera.
func (c *Camera) Project(pt r3.Vector) (r2.Point, error) {
	camPt := spatialmath.TransformPoint(spatialmath.PoseInverse(c.pose), pt)
	if camPt.Z <= 0 {
		return r2.Point{}, errors.Wrapf(ErrBehindCamera, "cannot project point %v", pt)
	}
	return r2.Point{X: camPt.X / camPt.Z, Y: camPt.Y / camPt.Z}, nil
}
