// Package viewer loads a 3D asset's bounds and frames a camera around it.
package viewer

import (
	"errors"
	"math"
)

// ReferenceSize is the length the largest bounding-box dimension is scaled to.
const ReferenceSize = 10.0

// ErrEmptyBounds is returned when an asset has no measurable extent.
var ErrEmptyBounds = errors.New("asset has empty bounds")

// Camera is a perspective camera. FOV is the vertical field of view in degrees.
type Camera struct {
	FOV  float64
	Near float64
	Far  float64
}

// DefaultCamera matches the page's viewer canvas.
func DefaultCamera() Camera {
	return Camera{FOV: 50, Near: 0.1, Far: 1000}
}

// FitResult describes the scene after the asset has been framed.
type FitResult struct {
	Scale       float64 // uniform factor applied to the asset
	Original    Box3    // bounds before scaling
	Box         Box3    // bounds after scaling
	Distance    float64
	Position    Vec3 // camera position
	Target      Vec3 // camera look-at point
	ModelOffset Vec3 // translation applied to recentre the asset
	Camera      Camera
}

// Size returns the fitted bounding-box extent.
func (r FitResult) Size() Vec3 { return r.Box.Size() }

// Fit scales box so its largest dimension is ReferenceSize, then places the
// camera far enough back that the whole scaled box is in view, raised and
// shifted sideways by half that distance and looking at the box centre. The
// asset is recentred on the X and Z axes.
func Fit(box Box3, cam Camera) (FitResult, error) {
	if cam.FOV <= 0 || cam.FOV >= 180 {
		cam.FOV = DefaultCamera().FOV
	}

	maxDim := box.Size().MaxComponent()
	if box.IsEmpty() || maxDim <= 0 || math.IsInf(maxDim, 0) || math.IsNaN(maxDim) {
		return FitResult{}, ErrEmptyBounds
	}

	scale := ReferenceSize / maxDim
	scaled := box.Scale(scale)
	size := scaled.Size()
	center := scaled.Center()

	fov := cam.FOV * math.Pi / 180
	halfTan := math.Tan(fov / 2)
	distance := math.Abs(size.MaxComponent() / 2 / halfTan)
	minDistance := math.Max(size.X, size.Y) / (2 * halfTan)
	distance = math.Max(minDistance, distance)

	return FitResult{
		Scale:    scale,
		Original: box,
		Box:      scaled,
		Distance: distance,
		Position: Vec3{
			X: center.X + distance*0.5,
			Y: center.Y + distance*0.5,
			Z: distance,
		},
		Target:      center,
		ModelOffset: Vec3{X: -center.X, Y: 0, Z: -center.Z},
		Camera:      cam,
	}, nil
}
