package sfmdata

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/mat"

	"github.com/mvrobotics/sfm/spatialmath"
	"github.com/mvrobotics/sfm/utils"
)

func TestCreatePoints(t *testing.T) {
	points := CreatePoints()
	test.That(t, points, test.ShouldResemble, []r3.Vector{
		{10, 10, 10},
		{-10, 10, 10},
		{-10, -10, 10},
		{10, -10, 10},
		{10, 10, -10},
		{-10, 10, -10},
		{-10, -10, -10},
		{10, -10, -10},
	})
}

func TestCreatePointsSet(t *testing.T) {
	seen := make(map[r3.Vector]bool)
	for _, p := range CreatePoints() {
		test.That(t, math.Abs(p.X), test.ShouldEqual, 10.)
		test.That(t, math.Abs(p.Y), test.ShouldEqual, 10.)
		test.That(t, math.Abs(p.Z), test.ShouldEqual, 10.)
		seen[p] = true
	}
	test.That(t, len(seen), test.ShouldEqual, 8)
}

func TestCreatePointsFreshSlice(t *testing.T) {
	a := CreatePoints()
	b := CreatePoints()
	test.That(t, a, test.ShouldResemble, b)

	// mutating one call's result must not leak into another's
	a[0] = r3.Vector{}
	test.That(t, b[0], test.ShouldResemble, r3.Vector{X: 10, Y: 10, Z: 10})
}

func TestCreatePoses(t *testing.T) {
	poses := CreatePoses()
	test.That(t, len(poses), test.ShouldEqual, 8)

	identity := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	for _, pose := range poses {
		pos := pose.Point()
		test.That(t, pos.Norm(), test.ShouldAlmostEqual, 30, 1e-9)
		test.That(t, pos.Z, test.ShouldAlmostEqual, 0, 1e-9)

		// every camera looks at the world origin
		test.That(t, spatialmath.PointingError(pose, r3.Vector{}), test.ShouldAlmostEqual, 0, 1e-7)

		// every rotation is orthonormal with determinant +1
		rm := pose.Orientation().RotationMatrix()
		m := mat.NewDense(3, 3, []float64{
			rm.At(0, 0), rm.At(0, 1), rm.At(0, 2),
			rm.At(1, 0), rm.At(1, 1), rm.At(1, 2),
			rm.At(2, 0), rm.At(2, 1), rm.At(2, 2),
		})
		var prod mat.Dense
		prod.Mul(m.T(), m)
		test.That(t, mat.EqualApprox(&prod, identity, 1e-9), test.ShouldBeTrue)
		test.That(t, mat.Det(m), test.ShouldAlmostEqual, 1, 1e-9)
	}
}

func TestCreatePosesSpacing(t *testing.T) {
	poses := CreatePoses()
	for k, pose := range poses {
		pos := pose.Point()
		next := poses[(k+1)%len(poses)].Point()
		h1 := utils.RadToDeg(math.Atan2(pos.Y, pos.X))
		h2 := utils.RadToDeg(math.Atan2(next.Y, next.X))
		test.That(t, utils.AngleDiffDeg(h1, h2), test.ShouldAlmostEqual, 45, 1e-9)
	}
}

func TestCreatePosesKnownPositions(t *testing.T) {
	poses := CreatePoses()
	test.That(t, spatialmath.R3VectorAlmostEqual(poses[0].Point(), r3.Vector{X: 30}, 1e-9), test.ShouldBeTrue)
	test.That(t, spatialmath.R3VectorAlmostEqual(poses[2].Point(), r3.Vector{Y: 30}, 1e-9), test.ShouldBeTrue)
	test.That(t, spatialmath.R3VectorAlmostEqual(poses[4].Point(), r3.Vector{X: -30}, 1e-9), test.ShouldBeTrue)
	test.That(t, spatialmath.R3VectorAlmostEqual(poses[6].Point(), r3.Vector{Y: -30}, 1e-9), test.ShouldBeTrue)

	// camera 0 sits on the +X axis with +Y world as image right and -Z world as image down
	rm := poses[0].Orientation().RotationMatrix()
	test.That(t, spatialmath.R3VectorAlmostEqual(rm.Col(0), r3.Vector{Y: 1}, 1e-9), test.ShouldBeTrue)
	test.That(t, spatialmath.R3VectorAlmostEqual(rm.Col(1), r3.Vector{Z: -1}, 1e-9), test.ShouldBeTrue)
	test.That(t, spatialmath.R3VectorAlmostEqual(rm.Col(2), r3.Vector{X: -1}, 1e-9), test.ShouldBeTrue)
}

func TestCreatePosesDeterministic(t *testing.T) {
	a := CreatePoses()
	b := CreatePoses()
	test.That(t, len(a), test.ShouldEqual, len(b))
	for k := range a {
		test.That(t, spatialmath.PoseAlmostEqual(a[k], b[k]), test.ShouldBeTrue)
	}
}

func TestCreateMeasurements(t *testing.T) {
	measurements, err := CreateMeasurements()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(measurements), test.ShouldEqual, 64)

	for i, m := range measurements {
		test.That(t, m.CameraIndex, test.ShouldEqual, i/8)
		test.That(t, m.LandmarkIndex, test.ShouldEqual, i%8)
		test.That(t, math.IsNaN(m.Point.X), test.ShouldBeFalse)
		test.That(t, math.IsNaN(m.Point.Y), test.ShouldBeFalse)
		test.That(t, math.IsInf(m.Point.X, 0), test.ShouldBeFalse)
		test.That(t, math.IsInf(m.Point.Y, 0), test.ShouldBeFalse)
	}
}

func TestCameraZeroMeasurements(t *testing.T) {
	measurements, err := CreateMeasurements()
	test.That(t, err, test.ShouldBeNil)

	// hand computed projections of the cube corners through the camera at (30,0,0)
	want := []r2.Point{
		{X: 0.5, Y: -0.5},
		{X: 0.25, Y: -0.25},
		{X: -0.25, Y: -0.25},
		{X: -0.5, Y: -0.5},
		{X: 0.5, Y: 0.5},
		{X: 0.25, Y: 0.25},
		{X: -0.25, Y: 0.25},
		{X: -0.5, Y: 0.5},
	}
	for j, w := range want {
		m := measurements[j]
		test.That(t, m.CameraIndex, test.ShouldEqual, 0)
		test.That(t, m.LandmarkIndex, test.ShouldEqual, j)
		test.That(t, m.Point.X, test.ShouldAlmostEqual, w.X, 1e-9)
		test.That(t, m.Point.Y, test.ShouldAlmostEqual, w.Y, 1e-9)
	}
}
