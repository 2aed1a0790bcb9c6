package orbit

import (
	"math"

	"github.com/Faultbox/domesim/internal/world"
	dmath "github.com/Faultbox/domesim/pkg/math"
)

// winterSolsticeDay is the day of year at which the sun runs its innermost
// orbit.
const winterSolsticeDay = 355

// CelestialPosition is a body's place above the disc. X and Y are the
// horizontal offset from the center axis, Z the body's fixed orbital height,
// and Radius the current orbital radius (the length of X,Y).
type CelestialPosition struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
	Radius float64 `json:"radius"`
}

// Horizontal returns the ground-plane projection of the position.
func (p CelestialPosition) Horizontal() dmath.Vec2 {
	return dmath.Vec2{X: p.X, Y: p.Y}
}

// SunPosition returns the sun's position. The orbit swings between the
// configured min radius (at the winter solstice) and max radius over the
// year, and the sun turns once around the axis per day.
func SunPosition(c world.Constants, d Domain, dayOfYear int, hourOfDay float64) CelestialPosition {
	yearAngle := dmath.DegToRad(float64(dayOfYear-winterSolsticeDay) * 360 / float64(d.DaysPerYear))
	radius := c.SunOrbitMinRadius +
		(c.SunOrbitMaxRadius-c.SunOrbitMinRadius)*(1-math.Cos(yearAngle))/2

	dailyAngle := dmath.DegToRad(hourOfDay * 360 / d.HoursPerDay)
	h := dmath.Polar(radius, dailyAngle)

	return CelestialPosition{X: h.X, Y: h.Y, Z: c.SunOrbitHeight, Radius: radius}
}

// MoonPosition returns the moon's position. The monthly angle both breathes
// the orbit between min and max radius and turns the moon ahead of the sun's
// daily rotation. dayOfYear is accepted for symmetry with SunPosition; the
// moon's orbit has no annual term.
func MoonPosition(c world.Constants, d Domain, dayOfYear int, hourOfDay, moonPhaseDay float64) CelestialPosition {
	monthlyDeg := moonPhaseDay * 360 / d.MoonCycleDays
	mid := (c.MoonOrbitMinRadius + c.MoonOrbitMaxRadius) / 2
	radius := mid + (c.MoonOrbitMaxRadius-c.MoonOrbitMinRadius)*math.Sin(dmath.DegToRad(monthlyDeg))/2

	dailyOffset := dmath.DegToRad(hourOfDay*360/d.HoursPerDay + monthlyDeg)
	h := dmath.Polar(radius, dailyOffset)

	return CelestialPosition{X: h.X, Y: h.Y, Z: c.MoonOrbitHeight, Radius: radius}
}
