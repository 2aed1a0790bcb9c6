// Package dome projects celestial bodies onto the dome and drops the
// projections onto the atmosphere shell as light spots.
package dome

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Faultbox/domesim/internal/engine/geom"
	"github.com/Faultbox/domesim/internal/engine/orbit"
	"github.com/Faultbox/domesim/internal/world"
	dmath "github.com/Faultbox/domesim/pkg/math"
)

// ErrDegenerateGeometry is returned when a projection has no defined
// direction. The orbital constants rule this out; seeing it means a caller
// broke the contract.
var ErrDegenerateGeometry = errors.New("degenerate geometry")

// ProjectionPoint is a point on the upper dome hemisphere.
type ProjectionPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vec returns the point as an r3 vector.
func (p ProjectionPoint) Vec() r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

// AtmosphereSpot is the light spot a body casts on the atmosphere shell.
type AtmosphereSpot struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Horizontal returns the ground-plane coordinates of the spot.
func (s AtmosphereSpot) Horizontal() dmath.Vec2 {
	return dmath.Vec2{X: s.X, Y: s.Y}
}

// ProjectToDome casts a ray from the world center through pos and returns
// where it meets the dome. The center of the dome is the ray origin, so the
// hit is always exactly DomeRadius along the ray.
//
// Only the upper hemisphere is dome surface. A ray pointing below the horizon
// is flattened onto the horizon plane (z = 0) and lands on the rim in the
// same horizontal direction.
func ProjectToDome(c world.Constants, pos orbit.CelestialPosition) (ProjectionPoint, error) {
	ray, err := geom.NewRay(r3.Vec{}, r3.Vec{X: pos.X, Y: pos.Y, Z: pos.Z})
	if err != nil {
		return ProjectionPoint{}, ErrDegenerateGeometry
	}

	hit := ray.At(c.DomeRadius)
	if hit.Z >= 0 {
		return ProjectionPoint{X: hit.X, Y: hit.Y, Z: hit.Z}, nil
	}

	rim := dmath.Vec2{X: hit.X, Y: hit.Y}
	if rim.Length() == 0 {
		// Straight down: every rim point is equally far.
		return ProjectionPoint{}, ErrDegenerateGeometry
	}
	rim = rim.Normalize().Scale(c.DomeRadius)
	return ProjectionPoint{X: rim.X, Y: rim.Y, Z: 0}, nil
}

// ProjectToAtmosphere drops a dome point straight down onto the atmosphere
// shell. The light spot falls vertically rather than reflecting.
func ProjectToAtmosphere(c world.Constants, p ProjectionPoint) AtmosphereSpot {
	return AtmosphereSpot{X: p.X, Y: p.Y, Z: c.AtmosphereHeight}
}

// ElevationDeg returns how far above the horizon a dome point sits, seen from
// the world center, in degrees.
func ElevationDeg(p ProjectionPoint) float64 {
	return dmath.RadToDeg(math.Atan2(p.Z, math.Hypot(p.X, p.Y)))
}
