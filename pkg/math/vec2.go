// Package math provides angle and planar vector helpers for the dome model.
package math

import "math"

// Vec2 is a point or direction in the horizontal (ground) plane.
type Vec2 struct {
	X, Y float64
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the magnitude.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit vector, or the zero vector if v has no length.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Distance returns the distance to another point.
func (v Vec2) Distance(other Vec2) float64 {
	return v.Sub(other).Length()
}

// Bearing returns the polar angle of v in degrees, in (-180, 180].
// The zero vector has bearing 0.
func (v Vec2) Bearing() float64 {
	return NormalizeDegrees180(RadToDeg(math.Atan2(v.Y, v.X)))
}

// Polar returns the point at the given radius and angle (radians).
func Polar(radius, angle float64) Vec2 {
	return Vec2{radius * math.Cos(angle), radius * math.Sin(angle)}
}
