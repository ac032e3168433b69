package spatialmath

import "github.com/pkg/errors"

var (
	errLookAtCoincident = errors.New("cannot create look-at pose, target is coincident with the eye position")
	errLookAtDegenerate = errors.New("cannot create look-at pose, up vector is parallel to the viewing direction")
)

// newRotationMatrixInputError returns an error if a slice of floats is the wrong length to be a rotation matrix.
func newRotationMatrixInputError(m []float64) error {
	return errors.Errorf("input slice has %d elements, need exactly 9", len(m))
}
