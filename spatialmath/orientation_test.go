package spatialmath

import (
	"math"
	"testing"

	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"
)

// represent a 45 degree rotation around the x axis in all the representations
var (
	th    = math.Pi / 4.
	q45x  = quat.Number{math.Cos(th / 2.), math.Sin(th / 2.), 0, 0} // in quaternion representation
	aa45x = &R4AA{th, 1., 0., 0.}                                   // in axis-angle representation
	ea45x = &EulerAngles{Roll: th, Pitch: 0, Yaw: 0}                // in euler angle representation
	rm45x = &RotationMatrix{[9]float64{                             // in rotation matrix representation
		1, 0, 0,
		0, math.Cos(th), -math.Sin(th),
		0, math.Sin(th), math.Cos(th),
	}}
)

func assertRotationMatrixAlmostEqual(t *testing.T, rm, expected *RotationMatrix) {
	t.Helper()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			test.That(t, rm.At(r, c), test.ShouldAlmostEqual, expected.At(r, c))
		}
	}
}

func TestZeroOrientation(t *testing.T) {
	zero := NewZeroOrientation()
	test.That(t, zero.Quaternion(), test.ShouldResemble, quat.Number{1, 0, 0, 0})
	test.That(t, zero.AxisAngles(), test.ShouldResemble, NewR4AA())
	test.That(t, zero.EulerAngles(), test.ShouldResemble, NewEulerAngles())
	test.That(t, zero.RotationMatrix(), test.ShouldResemble, &RotationMatrix{[9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}})
}

func TestQuaternions(t *testing.T) {
	qq45x := quaternion(q45x)
	test.That(t, qq45x.Quaternion().Real, test.ShouldAlmostEqual, q45x.Real)
	test.That(t, qq45x.Quaternion().Imag, test.ShouldAlmostEqual, q45x.Imag)
	test.That(t, qq45x.Quaternion().Jmag, test.ShouldAlmostEqual, q45x.Jmag)
	test.That(t, qq45x.Quaternion().Kmag, test.ShouldAlmostEqual, q45x.Kmag)
	test.That(t, qq45x.AxisAngles().Theta, test.ShouldAlmostEqual, aa45x.Theta)
	test.That(t, qq45x.AxisAngles().RX, test.ShouldAlmostEqual, aa45x.RX)
	test.That(t, qq45x.AxisAngles().RY, test.ShouldAlmostEqual, aa45x.RY)
	test.That(t, qq45x.AxisAngles().RZ, test.ShouldAlmostEqual, aa45x.RZ)
	test.That(t, qq45x.EulerAngles().Roll, test.ShouldAlmostEqual, ea45x.Roll)
	test.That(t, qq45x.EulerAngles().Pitch, test.ShouldAlmostEqual, ea45x.Pitch)
	test.That(t, qq45x.EulerAngles().Yaw, test.ShouldAlmostEqual, ea45x.Yaw)
	assertRotationMatrixAlmostEqual(t, qq45x.RotationMatrix(), rm45x)
}

func TestEulerAngles(t *testing.T) {
	test.That(t, ea45x.Quaternion().Real, test.ShouldAlmostEqual, q45x.Real)
	test.That(t, ea45x.Quaternion().Imag, test.ShouldAlmostEqual, q45x.Imag)
	test.That(t, ea45x.Quaternion().Jmag, test.ShouldAlmostEqual, q45x.Jmag)
	test.That(t, ea45x.Quaternion().Kmag, test.ShouldAlmostEqual, q45x.Kmag)
	test.That(t, ea45x.AxisAngles().Theta, test.ShouldAlmostEqual, aa45x.Theta)
	test.That(t, ea45x.AxisAngles().RX, test.ShouldAlmostEqual, aa45x.RX)
	test.That(t, ea45x.AxisAngles().RY, test.ShouldAlmostEqual, aa45x.RY)
	test.That(t, ea45x.AxisAngles().RZ, test.ShouldAlmostEqual, aa45x.RZ)
	test.That(t, ea45x.EulerAngles().Roll, test.ShouldAlmostEqual, ea45x.Roll)
	test.That(t, ea45x.EulerAngles().Pitch, test.ShouldAlmostEqual, ea45x.Pitch)
	test.That(t, ea45x.EulerAngles().Yaw, test.ShouldAlmostEqual, ea45x.Yaw)
	assertRotationMatrixAlmostEqual(t, ea45x.RotationMatrix(), rm45x)
}

func TestAxisAngles(t *testing.T) {
	test.That(t, aa45x.Quaternion().Real, test.ShouldAlmostEqual, q45x.Real)
	test.That(t, aa45x.Quaternion().Imag, test.ShouldAlmostEqual, q45x.Imag)
	test.That(t, aa45x.Quaternion().Jmag, test.ShouldAlmostEqual, q45x.Jmag)
	test.That(t, aa45x.Quaternion().Kmag, test.ShouldAlmostEqual, q45x.Kmag)
	test.That(t, aa45x.AxisAngles().Theta, test.ShouldAlmostEqual, aa45x.Theta)
	test.That(t, aa45x.AxisAngles().RX, test.ShouldAlmostEqual, aa45x.RX)
	test.That(t, aa45x.AxisAngles().RY, test.ShouldAlmostEqual, aa45x.RY)
	test.That(t, aa45x.AxisAngles().RZ, test.ShouldAlmostEqual, aa45x.RZ)
	test.That(t, aa45x.EulerAngles().Roll, test.ShouldAlmostEqual, ea45x.Roll)
	test.That(t, aa45x.EulerAngles().Pitch, test.ShouldAlmostEqual, ea45x.Pitch)
	test.That(t, aa45x.EulerAngles().Yaw, test.ShouldAlmostEqual, ea45x.Yaw)
	assertRotationMatrixAlmostEqual(t, aa45x.RotationMatrix(), rm45x)
}

func TestRotationMatrixOrientation(t *testing.T) {
	test.That(t, rm45x.Quaternion().Real, test.ShouldAlmostEqual, q45x.Real)
	test.That(t, rm45x.Quaternion().Imag, test.ShouldAlmostEqual, q45x.Imag)
	test.That(t, rm45x.Quaternion().Jmag, test.ShouldAlmostEqual, q45x.Jmag)
	test.That(t, rm45x.Quaternion().Kmag, test.ShouldAlmostEqual, q45x.Kmag)
	test.That(t, rm45x.AxisAngles().Theta, test.ShouldAlmostEqual, aa45x.Theta)
	test.That(t, rm45x.AxisAngles().RX, test.ShouldAlmostEqual, aa45x.RX)
	test.That(t, rm45x.AxisAngles().RY, test.ShouldAlmostEqual, aa45x.RY)
	test.That(t, rm45x.AxisAngles().RZ, test.ShouldAlmostEqual, aa45x.RZ)
	test.That(t, rm45x.EulerAngles().Roll, test.ShouldAlmostEqual, ea45x.Roll)
	test.That(t, rm45x.EulerAngles().Pitch, test.ShouldAlmostEqual, ea45x.Pitch)
	test.That(t, rm45x.EulerAngles().Yaw, test.ShouldAlmostEqual, ea45x.Yaw)
	assertRotationMatrixAlmostEqual(t, rm45x.RotationMatrix(), rm45x)
}

func TestOrientationBetween(t *testing.T) {
	// the difference between a 45 and a 90 degree rotation about the x axis is another 45 degrees
	between := OrientationBetween(ea45x, &R4AA{math.Pi / 2., 1., 0., 0.})
	test.That(t, OrientationAlmostEqual(between, aa45x), test.ShouldBeTrue)

	// the difference between an orientation and itself is the zero orientation
	same := OrientationBetween(aa45x, ea45x)
	test.That(t, OrientationAlmostEqual(same, NewZeroOrientation()), test.ShouldBeTrue)
}

func TestOrientationAlmostEqual(t *testing.T) {
	test.That(t, OrientationAlmostEqual(aa45x, ea45x), test.ShouldBeTrue)
	test.That(t, OrientationAlmostEqual(aa45x, NewZeroOrientation()), test.ShouldBeFalse)

	// a quaternion and its flip represent the same orientation
	flipped := quaternion(Flip(q45x))
	test.That(t, OrientationAlmostEqual(&flipped, aa45x), test.ShouldBeTrue)
}
