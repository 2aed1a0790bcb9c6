package world

import (
	"errors"
	"testing"
)

func TestDefault(t *testing.T) {
	c := Default()

	if c.DomeRadius != 20000 {
		t.Errorf("expected dome radius 20000, got %v", c.DomeRadius)
	}
	if c.SunOrbitHeight != 3500 {
		t.Errorf("expected sun orbit height 3500, got %v", c.SunOrbitHeight)
	}
	if c.MoonOrbitHeight != 3000 {
		t.Errorf("expected moon orbit height 3000, got %v", c.MoonOrbitHeight)
	}
	if c.LightSpotSize != 800 {
		t.Errorf("expected light spot size 800, got %v", c.LightSpotSize)
	}
	if c.SunOrbitMinRadius != 5000 || c.SunOrbitMaxRadius != 14000 {
		t.Errorf("expected sun radius 5000..14000, got %v..%v", c.SunOrbitMinRadius, c.SunOrbitMaxRadius)
	}
	if c.MoonOrbitMinRadius != 8000 || c.MoonOrbitMaxRadius != 12000 {
		t.Errorf("expected moon radius 8000..12000, got %v..%v", c.MoonOrbitMinRadius, c.MoonOrbitMaxRadius)
	}

	if err := c.Validate(); err != nil {
		t.Errorf("default constants should be valid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Constants)
	}{
		{"zero dome", func(c *Constants) { c.DomeRadius = 0 }},
		{"zero sun min radius", func(c *Constants) { c.SunOrbitMinRadius = 0 }},
		{"sun min above max", func(c *Constants) { c.SunOrbitMinRadius = 15000 }},
		{"moon min above max", func(c *Constants) { c.MoonOrbitMaxRadius = 7000 }},
		{"negative moon height", func(c *Constants) { c.MoonOrbitHeight = -1 }},
		{"sun outside dome", func(c *Constants) { c.SunOrbitMaxRadius = 20000 }},
		{"moon touches dome", func(c *Constants) { c.DomeRadius = 12000; c.SunOrbitMaxRadius = 9000 }},
		{"zero light spot", func(c *Constants) { c.LightSpotSize = 0 }},
		{"negative atmosphere", func(c *Constants) { c.AtmosphereHeight = -5 }},
		{"negative umbra", func(c *Constants) { c.UmbraDiameter = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !errors.Is(err, ErrInvalidConstants) {
				t.Errorf("expected error wrapping ErrInvalidConstants, got %v", err)
			}
		})
	}
}
