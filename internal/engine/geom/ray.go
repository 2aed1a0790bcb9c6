// Package geom provides ray casting against the dome and horizontal planes.
package geom

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrZeroDirection is returned when a ray would have no direction.
var ErrZeroDirection = errors.New("ray direction has zero length")

// parallelEpsilon is the smallest |Dir.Z| for which a plane hit is reported.
const parallelEpsilon = 1e-12

// Ray represents a ray in world space with origin and direction.
type Ray struct {
	Origin r3.Vec
	Dir    r3.Vec // Normalized direction
}

// NewRay returns the ray from origin through the given point.
func NewRay(origin, through r3.Vec) (Ray, error) {
	dir := r3.Sub(through, origin)
	if r3.Norm(dir) == 0 {
		return Ray{}, ErrZeroDirection
	}
	return Ray{Origin: origin, Dir: r3.Unit(dir)}, nil
}

// At returns the point at distance t along the ray. Negative t walks
// backwards from the origin.
func (r Ray) At(t float64) r3.Vec {
	return r3.Add(r.Origin, r3.Scale(t, r.Dir))
}

// IntersectPlaneZ intersects the ray's supporting line with the horizontal
// plane z = planeZ and returns the signed distance t from the origin.
// t < 0 means the plane lies behind the origin; callers that need a true
// half-line hit check the sign. ok is false only when the ray is parallel to
// the plane.
func (r Ray) IntersectPlaneZ(planeZ float64) (t float64, ok bool) {
	if math.Abs(r.Dir.Z) < parallelEpsilon {
		return 0, false
	}
	return (planeZ - r.Origin.Z) / r.Dir.Z, true
}
