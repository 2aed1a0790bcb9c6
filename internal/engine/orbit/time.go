// Package orbit computes sun and moon positions on their circular orbits
// above the disc for a point in the synthetic calendar.
package orbit

import (
	"fmt"

	dmath "github.com/Faultbox/domesim/pkg/math"
)

// TimeParameters is a point in the synthetic calendar.
type TimeParameters struct {
	DayOfYear    int     `json:"day_of_year"`    // 1..DaysPerYear
	HourOfDay    float64 `json:"hour_of_day"`    // [0, HoursPerDay)
	MoonPhaseDay float64 `json:"moon_phase_day"` // [0, MoonCycleDays)
}

func (tp TimeParameters) String() string {
	return fmt.Sprintf("day %d %05.2fh moon %.2fd", tp.DayOfYear, tp.HourOfDay, tp.MoonPhaseDay)
}

// Domain holds the wrap boundaries of the calendar.
//
// The moon cycle boundary is configurable because it was never pinned down:
// the phase angle uses 29.5 days, while the slider feeding it offered whole
// days up to 30.
type Domain struct {
	DaysPerYear   int     `yaml:"days_per_year"`
	HoursPerDay   float64 `yaml:"hours_per_day"`
	MoonCycleDays float64 `yaml:"moon_cycle_days"`
}

// DefaultDomain returns the 365 day, 24 hour, 29.5 day moon calendar.
func DefaultDomain() Domain {
	return Domain{
		DaysPerYear:   365,
		HoursPerDay:   24,
		MoonCycleDays: 29.5,
	}
}

// Validate reports whether every boundary is positive.
func (d Domain) Validate() error {
	if d.DaysPerYear <= 0 {
		return fmt.Errorf("days per year must be positive, got %d", d.DaysPerYear)
	}
	if d.HoursPerDay <= 0 {
		return fmt.Errorf("hours per day must be positive, got %v", d.HoursPerDay)
	}
	if d.MoonCycleDays <= 0 {
		return fmt.Errorf("moon cycle must be positive, got %v", d.MoonCycleDays)
	}
	return nil
}

// Normalize wraps every field of tp into its canonical range. The position
// calculators do not validate their inputs; hosts call this first.
func Normalize(tp TimeParameters, d Domain) TimeParameters {
	return TimeParameters{
		DayOfYear:    dmath.WrapInt(tp.DayOfYear, 1, d.DaysPerYear),
		HourOfDay:    dmath.Wrap(tp.HourOfDay, d.HoursPerDay),
		MoonPhaseDay: dmath.Wrap(tp.MoonPhaseDay, d.MoonCycleDays),
	}
}

// Advance moves tp forward by stepHours the way the animation clock does.
// Once the hour reaches the end of the day it resets to exactly 0 (the
// overshoot is dropped) and the day moves on, wrapping past the end of the
// year to 1. stepHours is expected to be shorter than a day.
//
// The moon phase only moves when advanceMoon is set, at one phase day per
// calendar day.
func Advance(tp TimeParameters, stepHours float64, advanceMoon bool, d Domain) TimeParameters {
	next := tp
	next.HourOfDay += stepHours
	if next.HourOfDay >= d.HoursPerDay {
		next.HourOfDay = 0
		next.DayOfYear++
		if next.DayOfYear > d.DaysPerYear {
			next.DayOfYear = 1
		}
	}
	if advanceMoon {
		next.MoonPhaseDay = dmath.Wrap(next.MoonPhaseDay+stepHours/d.HoursPerDay, d.MoonCycleDays)
	}
	return next
}
