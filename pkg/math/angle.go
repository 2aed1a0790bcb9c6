package math

import "math"

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * degToRad
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * radToDeg
}

// Wrap returns x folded into [0, period). Negative inputs wrap from the top,
// so Wrap(-1, 24) is 23. Period must be positive.
func Wrap(x, period float64) float64 {
	r := math.Mod(x, period)
	if r < 0 {
		r += period
	}
	// -tiny + period can round up to period itself.
	if r >= period {
		r = 0
	}
	return r
}

// WrapInt returns n folded into [lo, lo+count).
func WrapInt(n, lo, count int) int {
	r := (n - lo) % count
	if r < 0 {
		r += count
	}
	return lo + r
}

// NormalizeDegrees180 folds an angle in degrees into (-180, 180].
func NormalizeDegrees180(deg float64) float64 {
	d := Wrap(deg, 360)
	if d > 180 {
		d -= 360
	}
	return d
}
