// Package sfmdata provides the ground-truth scene used by structure-from-motion
// tutorials and tests, a cube of landmarks observed by a ring of cameras.
package sfmdata

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/mvrobotics/sfm/pinhole"
	"github.com/mvrobotics/sfm/spatialmath"
)

const (
	// cubeHalfSide is half the edge length of the landmark cube.
	cubeHalfSide = 10.0
	// ringRadius is the distance from the world origin to every camera.
	ringRadius = 30.0
	// numPoses is the number of cameras on the ring.
	numPoses = 8
)

// Ordered list of cube vertices.
var cubeVertices = [8]r3.Vector{
	{1, 1, 1},
	{-1, 1, 1},
	{-1, -1, 1},
	{1, -1, 1},
	{1, 1, -1},
	{-1, 1, -1},
	{-1, -1, -1},
	{1, -1, -1},
}

// CreatePoints returns the eight landmarks of the scene, the corners of a cube of side 20
// centered on the world origin. The order is fixed, so callers may index into it.
func CreatePoints() []r3.Vector {
	points := make([]r3.Vector, 0, len(cubeVertices))
	for _, vert := range cubeVertices {
		points = append(points, vert.Mul(cubeHalfSide))
	}
	return points
}

// CreatePoses returns eight camera poses evenly spaced on a circle of radius 30 in the
// z=0 plane, each looking at the world origin with the world +Z axis up.
func CreatePoses() []spatialmath.Pose {
	target := r3.Vector{}
	up := r3.Vector{X: 0, Y: 0, Z: 1}

	poses := make([]spatialmath.Pose, 0, numPoses)
	for k := 0; k < numPoses; k++ {
		theta := 2 * math.Pi * float64(k) / numPoses
		eye := r3.Vector{X: ringRadius * math.Cos(theta), Y: ringRadius * math.Sin(theta)}
		cam, err := pinhole.NewLookAt(eye, target, up)
		if err != nil {
			// The ring keeps every viewing direction horizontal, never parallel to up
			panic(err)
		}
		poses = append(poses, cam.Pose())
	}
	return poses
}

// Measurement is one synthetic observation, the normalized image coordinates of a
// landmark seen from a camera.
type Measurement struct {
	CameraIndex   int
	LandmarkIndex int
	Point         r2.Point
}

// CreateMeasurements projects every landmark of the scene through every camera and
// returns one measurement per camera/landmark pair, ordered by camera then landmark.
// Every landmark is visible from every camera in this scene, so the result always
// has 64 entries.
func CreateMeasurements() ([]Measurement, error) {
	points := CreatePoints()
	poses := CreatePoses()

	measurements := make([]Measurement, 0, len(points)*len(poses))
	for i, pose := range poses {
		cam := pinhole.NewCamera(pose)
		for j, pt := range points {
			projected, err := cam.Project(pt)
			if err != nil {
				return nil, errors.Wrapf(err, "landmark %d is not visible from camera %d", j, i)
			}
			measurements = append(measurements, Measurement{CameraIndex: i, LandmarkIndex: j, Point: projected})
		}
	}
	return measurements, nil
}
