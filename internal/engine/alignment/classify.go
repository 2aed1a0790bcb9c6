package alignment

import (
	"fmt"
	"math"

	"github.com/Faultbox/domesim/internal/engine/dome"
	"github.com/Faultbox/domesim/internal/engine/orbit"
)

// Thresholds tune the classifier. They are empirical visualization values,
// not derived from the geometry.
type Thresholds struct {
	// |angle difference| must fall strictly inside this window (degrees)
	// for the bodies to count as opposed.
	OppositionMinDeg float64 `yaml:"opposition_min_deg"`
	OppositionMaxDeg float64 `yaml:"opposition_max_deg"`

	// Spot distance bands, as multiples of the light spot size.
	FullEclipseFactor    float64 `yaml:"full_eclipse_factor"`
	PartialEclipseFactor float64 `yaml:"partial_eclipse_factor"`
}

// DefaultThresholds returns the 170..190 degree window with half-spot and
// one-spot eclipse bands.
func DefaultThresholds() Thresholds {
	return Thresholds{
		OppositionMinDeg:     170,
		OppositionMaxDeg:     190,
		FullEclipseFactor:    0.5,
		PartialEclipseFactor: 1.0,
	}
}

// Validate checks that the window and bands are ordered.
func (th Thresholds) Validate() error {
	if th.OppositionMinDeg >= th.OppositionMaxDeg {
		return fmt.Errorf("opposition window %v..%v is empty", th.OppositionMinDeg, th.OppositionMaxDeg)
	}
	if th.FullEclipseFactor <= 0 {
		return fmt.Errorf("full eclipse factor must be positive, got %v", th.FullEclipseFactor)
	}
	if th.PartialEclipseFactor < th.FullEclipseFactor {
		return fmt.Errorf("partial eclipse factor %v below full eclipse factor %v",
			th.PartialEclipseFactor, th.FullEclipseFactor)
	}
	return nil
}

// Alignment is the classifier's verdict for one instant.
type Alignment struct {
	// AngleDiffDeg is the moon's bearing minus the sun's, in (-180, 180].
	AngleDiffDeg float64 `json:"angle_diff_deg"`
	// SpotDistance is the horizontal distance between the two light spots.
	SpotDistance float64 `json:"spot_distance"`
	Status       Status  `json:"status"`
}

// RoundedAngleDiff returns the angle difference rounded for display.
func (a Alignment) RoundedAngleDiff() int {
	return int(math.Round(a.AngleDiffDeg))
}

// AngleDiff returns the moon's bearing minus the sun's bearing around the
// center axis, in degrees, normalized into (-180, 180].
func AngleDiff(sunPos, moonPos orbit.CelestialPosition) float64 {
	sunAngle := sunPos.Horizontal().Bearing()
	moonAngle := moonPos.Horizontal().Bearing()

	// Both bearings lie in (-180, 180], so one correction suffices.
	diff := moonAngle - sunAngle
	if diff > 180 {
		diff -= 360
	} else if diff <= -180 {
		diff += 360
	}
	return diff
}

// Classify decides the alignment from the bodies' bearings and the distance
// between their light spots. lightSpotSize scales the eclipse bands.
func Classify(th Thresholds, lightSpotSize float64, sunPos, moonPos orbit.CelestialPosition, sunSpot, moonSpot dome.AtmosphereSpot) Alignment {
	a := Alignment{
		AngleDiffDeg: AngleDiff(sunPos, moonPos),
		SpotDistance: sunSpot.Horizontal().Distance(moonSpot.Horizontal()),
	}

	abs := math.Abs(a.AngleDiffDeg)
	if abs <= th.OppositionMinDeg || abs >= th.OppositionMaxDeg {
		a.Status = None
		return a
	}

	switch {
	case a.SpotDistance < lightSpotSize*th.FullEclipseFactor:
		a.Status = FullEclipse
	case a.SpotDistance < lightSpotSize*th.PartialEclipseFactor:
		a.Status = PartialEclipse
	default:
		a.Status = Opposition
	}
	return a
}
