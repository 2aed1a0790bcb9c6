// Package shadow implements the shadow-cast eclipse model: the magnetic rock
// at the center of the disc throws the sun's shadow onto a plane at dome
// height, and the moon is eclipsed when it passes through that shadow.
//
// This model is an alternative to the dome-projection model used by the
// engine. The two disagree about what an eclipse is and are not combined.
package shadow

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Faultbox/domesim/internal/engine/alignment"
	"github.com/Faultbox/domesim/internal/engine/geom"
	"github.com/Faultbox/domesim/internal/engine/orbit"
	"github.com/Faultbox/domesim/internal/world"
	dmath "github.com/Faultbox/domesim/pkg/math"
)

// ErrNoShadow is returned when the sun is level with the rock tip, so the
// shadow line never meets the plane.
var ErrNoShadow = errors.New("shadow never reaches the plane")

// Umbra bands as multiples of the umbra radius.
const (
	FullUmbraFactor    = 1.0
	PartialUmbraFactor = 1.5
)

// Point is the center of the shadow on the shadow plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Horizontal returns the ground-plane coordinates of the shadow center.
func (p Point) Horizontal() dmath.Vec2 {
	return dmath.Vec2{X: p.X, Y: p.Y}
}

// Position returns where the line from the sun through the rock tip meets
// the shadow plane. The plane sits above the tip, so the hit is reached by
// walking back along the line (negative t) and lands on the sun's side of
// the axis.
func Position(c world.Constants, sunPos orbit.CelestialPosition) (Point, error) {
	tip := r3.Vec{Z: c.MagneticRockHeight}
	sun := r3.Vec{X: sunPos.X, Y: sunPos.Y, Z: sunPos.Z}

	toTip, err := geom.NewRay(sun, tip)
	if err != nil {
		return Point{}, fmt.Errorf("sun sits on the rock tip: %w", err)
	}
	ray := geom.Ray{Origin: tip, Dir: toTip.Dir}

	t, ok := ray.IntersectPlaneZ(c.ShadowPlaneHeight)
	if !ok {
		return Point{}, ErrNoShadow
	}
	hit := ray.At(t)
	return Point{X: hit.X, Y: hit.Y, Z: c.ShadowPlaneHeight}, nil
}

// Classify decides the alignment in the shadow model. The angular window is
// shared with the dome model; the distance is measured from the moon itself
// to the shadow center and compared against the umbra radius.
func Classify(c world.Constants, th alignment.Thresholds, sunPos, moonPos orbit.CelestialPosition, shadow Point) alignment.Alignment {
	a := alignment.Alignment{
		AngleDiffDeg: alignment.AngleDiff(sunPos, moonPos),
		SpotDistance: moonPos.Horizontal().Distance(shadow.Horizontal()),
	}

	abs := math.Abs(a.AngleDiffDeg)
	if abs <= th.OppositionMinDeg || abs >= th.OppositionMaxDeg {
		return a
	}

	umbra := c.UmbraDiameter / 2
	switch {
	case a.SpotDistance < umbra*FullUmbraFactor:
		a.Status = alignment.FullEclipse
	case a.SpotDistance < umbra*PartialUmbraFactor:
		a.Status = alignment.PartialEclipse
	default:
		a.Status = alignment.Opposition
	}
	return a
}
