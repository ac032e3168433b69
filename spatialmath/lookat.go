package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
)

// lookAtEpsilon is the minimum norm for the viewing direction and camera axes to be well defined.
const lookAtEpsilon = 1e-12

// NewLookAtPose returns the pose of a viewer placed at eye and oriented so that its positive Z axis
// points at target. The up vector fixes the roll about the viewing direction, with the viewer's
// negative Y axis aligned to it as closely as possible. This is the usual convention for cameras
// whose image Y axis points down the image.
func NewLookAtPose(eye, target, up r3.Vector) (Pose, error) {
	forward := target.Sub(eye)
	if forward.Norm() < lookAtEpsilon {
		return nil, errLookAtCoincident
	}
	forward = forward.Normalize()

	// Negate up since the viewer's Y axis points down
	right := up.Mul(-1).Cross(forward)
	if right.Norm() < lookAtEpsilon {
		return nil, errLookAtDegenerate
	}
	right = right.Normalize()
	down := forward.Cross(right)

	return NewPose(eye, NewRotationMatrixFromCols(right, down, forward)), nil
}

// PointingError returns the angle in radians between the positive Z axis of a pose and the direction
// from the pose's position to the given target. A zero return means the pose looks directly at the target.
// If the target coincides with the pose's position every direction points at it, so zero is returned.
func PointingError(p Pose, target r3.Vector) float64 {
	dir := target.Sub(p.Point())
	if dir.Norm() < lookAtEpsilon {
		return 0
	}
	dir = dir.Normalize()
	forward := p.Orientation().RotationMatrix().Col(2)

	cosTheta := forward.Dot(dir)
	// Account for floating point error
	if cosTheta > 1 {
		cosTheta = 1
	}
	if cosTheta < -1 {
		cosTheta = -1
	}
	return math.Acos(cosTheta)
}
