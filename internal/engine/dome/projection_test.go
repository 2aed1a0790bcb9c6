package dome

import (
	"errors"
	"math"
	"testing"

	"github.com/Faultbox/domesim/internal/engine/orbit"
	"github.com/Faultbox/domesim/internal/world"
)

func normSq(p ProjectionPoint) float64 {
	return p.X*p.X + p.Y*p.Y + p.Z*p.Z
}

func TestProjectToDomeKnownPoint(t *testing.T) {
	c := world.Default()
	pos := orbit.CelestialPosition{X: 5000, Y: 0, Z: 3500, Radius: 5000}

	p, err := ProjectToDome(c, pos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l := math.Sqrt(5000*5000 + 3500*3500)
	wantX := 5000 / l * c.DomeRadius
	wantZ := 3500 / l * c.DomeRadius
	if math.Abs(p.X-wantX) > 1e-6 || math.Abs(p.Y) > 1e-9 || math.Abs(p.Z-wantZ) > 1e-6 {
		t.Errorf("expected (%v, 0, %v), got %+v", wantX, wantZ, p)
	}
}

func TestProjectToDomeNorm(t *testing.T) {
	c := world.Default()
	d := orbit.DefaultDomain()
	want := c.DomeRadius * c.DomeRadius

	for day := 1; day <= 365; day += 11 {
		for hour := 0.0; hour < 24; hour += 1.7 {
			for _, pos := range []orbit.CelestialPosition{
				orbit.SunPosition(c, d, day, hour),
				orbit.MoonPosition(c, d, day, hour, float64(day%30)),
			} {
				p, err := ProjectToDome(c, pos)
				if err != nil {
					t.Fatalf("unexpected error for %+v: %v", pos, err)
				}
				if math.Abs(normSq(p)-want)/want > 1e-9 {
					t.Fatalf("projection %+v off the dome: |p|^2=%v, want %v", p, normSq(p), want)
				}
				if p.Z < 0 {
					t.Fatalf("projection %+v below the horizon", p)
				}
			}
		}
	}
}

func TestProjectToDomeKeepsBearing(t *testing.T) {
	c := world.Default()
	pos := orbit.CelestialPosition{X: -3000, Y: 4000, Z: 3000}

	p, err := ProjectToDome(c, pos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := math.Atan2(p.Y, p.X), math.Atan2(pos.Y, pos.X); math.Abs(got-want) > 1e-12 {
		t.Errorf("expected bearing %v, got %v", want, got)
	}
}

func TestProjectToDomeBelowHorizon(t *testing.T) {
	c := world.Default()
	pos := orbit.CelestialPosition{X: 300, Y: 400, Z: -1000}

	p, err := ProjectToDome(c, pos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Z != 0 {
		t.Errorf("expected clamp to z=0, got %v", p.Z)
	}
	if math.Abs(p.X-0.6*c.DomeRadius) > 1e-6 || math.Abs(p.Y-0.8*c.DomeRadius) > 1e-6 {
		t.Errorf("expected rim point (12000, 16000), got (%v, %v)", p.X, p.Y)
	}
	want := c.DomeRadius * c.DomeRadius
	if math.Abs(normSq(p)-want)/want > 1e-9 {
		t.Errorf("clamped point left the dome: |p|^2=%v", normSq(p))
	}
}

func TestProjectToDomeDegenerate(t *testing.T) {
	c := world.Default()

	tests := []struct {
		name string
		pos  orbit.CelestialPosition
	}{
		{"origin", orbit.CelestialPosition{}},
		{"straight down", orbit.CelestialPosition{Z: -10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ProjectToDome(c, tt.pos)
			if !errors.Is(err, ErrDegenerateGeometry) {
				t.Errorf("expected ErrDegenerateGeometry, got %v", err)
			}
		})
	}
}

func TestProjectToAtmosphere(t *testing.T) {
	c := world.Default()

	points := []ProjectionPoint{
		{X: 0, Y: 0, Z: 20000},
		{X: 16384.7, Y: 0, Z: 11469.3},
		{X: -12000, Y: 16000, Z: 0},
	}
	for _, p := range points {
		s := ProjectToAtmosphere(c, p)
		if s.Z != c.AtmosphereHeight {
			t.Errorf("expected spot z %v, got %v", c.AtmosphereHeight, s.Z)
		}
		if s.X != p.X || s.Y != p.Y {
			t.Errorf("expected spot (%v, %v), got (%v, %v)", p.X, p.Y, s.X, s.Y)
		}
	}

	c.AtmosphereHeight = 120
	if s := ProjectToAtmosphere(c, points[0]); s.Z != 120 {
		t.Errorf("expected configured atmosphere height 120, got %v", s.Z)
	}
}

func TestElevationDeg(t *testing.T) {
	if got := ElevationDeg(ProjectionPoint{Z: 20000}); math.Abs(got-90) > 1e-9 {
		t.Errorf("expected zenith at 90, got %v", got)
	}
	if got := ElevationDeg(ProjectionPoint{X: 20000}); got != 0 {
		t.Errorf("expected horizon at 0, got %v", got)
	}
}
