// Package world defines the fixed dimensions of the domed world model.
package world

import (
	"errors"
	"fmt"
)

// Constants holds the world dimensions. Values are in world units (km in the
// reference model). A Constants value is fixed at start-up and passed by
// value; nothing mutates it afterwards.
type Constants struct {
	DomeRadius float64 `yaml:"dome_radius"`

	SunOrbitHeight    float64 `yaml:"sun_orbit_height"`
	SunOrbitMinRadius float64 `yaml:"sun_orbit_min_radius"`
	SunOrbitMaxRadius float64 `yaml:"sun_orbit_max_radius"`

	MoonOrbitHeight    float64 `yaml:"moon_orbit_height"`
	MoonOrbitMinRadius float64 `yaml:"moon_orbit_min_radius"`
	MoonOrbitMaxRadius float64 `yaml:"moon_orbit_max_radius"`

	LightSpotSize    float64 `yaml:"light_spot_size"`
	AtmosphereHeight float64 `yaml:"atmosphere_height"`

	// Shadow-cast model only.
	MagneticRockHeight   float64 `yaml:"magnetic_rock_height"`
	MagneticRockDiameter float64 `yaml:"magnetic_rock_diameter"`
	ShadowPlaneHeight    float64 `yaml:"shadow_plane_height"`
	UmbraDiameter        float64 `yaml:"umbra_diameter"`
}

// Default returns the reference world.
func Default() Constants {
	return Constants{
		DomeRadius: 20000,

		SunOrbitHeight:    3500,
		SunOrbitMinRadius: 5000,
		SunOrbitMaxRadius: 14000,

		MoonOrbitHeight:    3000,
		MoonOrbitMinRadius: 8000,
		MoonOrbitMaxRadius: 12000,

		LightSpotSize:    800,
		AtmosphereHeight: 50,

		MagneticRockHeight:   60,
		MagneticRockDiameter: 180,
		ShadowPlaneHeight:    4000,
		UmbraDiameter:        144,
	}
}

// ErrInvalidConstants is wrapped by every error returned from Validate.
var ErrInvalidConstants = errors.New("invalid world constants")

// Validate checks the constants against the orbital invariants the engine
// relies on: every orbit stays strictly away from the center axis and
// strictly inside the dome.
func (c Constants) Validate() error {
	if c.DomeRadius <= 0 {
		return fmt.Errorf("%w: dome radius must be positive, got %v", ErrInvalidConstants, c.DomeRadius)
	}
	if err := c.checkOrbit("sun", c.SunOrbitHeight, c.SunOrbitMinRadius, c.SunOrbitMaxRadius); err != nil {
		return err
	}
	if err := c.checkOrbit("moon", c.MoonOrbitHeight, c.MoonOrbitMinRadius, c.MoonOrbitMaxRadius); err != nil {
		return err
	}
	if c.LightSpotSize <= 0 {
		return fmt.Errorf("%w: light spot size must be positive, got %v", ErrInvalidConstants, c.LightSpotSize)
	}
	if c.AtmosphereHeight < 0 {
		return fmt.Errorf("%w: atmosphere height must not be negative, got %v", ErrInvalidConstants, c.AtmosphereHeight)
	}
	if c.MagneticRockHeight < 0 || c.MagneticRockDiameter < 0 || c.UmbraDiameter < 0 {
		return fmt.Errorf("%w: shadow model dimensions must not be negative", ErrInvalidConstants)
	}
	return nil
}

func (c Constants) checkOrbit(body string, height, minR, maxR float64) error {
	if minR <= 0 {
		return fmt.Errorf("%w: %s orbit min radius must be positive, got %v", ErrInvalidConstants, body, minR)
	}
	if maxR < minR {
		return fmt.Errorf("%w: %s orbit max radius %v below min radius %v", ErrInvalidConstants, body, maxR, minR)
	}
	if height < 0 {
		return fmt.Errorf("%w: %s orbit height must not be negative, got %v", ErrInvalidConstants, body, height)
	}
	if maxR*maxR+height*height >= c.DomeRadius*c.DomeRadius {
		return fmt.Errorf("%w: %s orbit reaches the dome (radius %v)", ErrInvalidConstants, body, c.DomeRadius)
	}
	return nil
}
