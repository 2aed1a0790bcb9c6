// Package calendar maps real timestamps onto the synthetic calendar.
package calendar

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonphase"

	"github.com/Faultbox/domesim/internal/engine/orbit"
	dmath "github.com/Faultbox/domesim/pkg/math"
)

// SynodicMonth is the mean time between new moons, in days.
const SynodicMonth = 29.530588853

// monthInYears is one synodic month as a fraction of a Julian year; stepping
// moonphase.New by this much moves it exactly one lunation.
const monthInYears = SynodicMonth / 365.25

// FromTime returns the calendar point for t, read in UTC.
//
// The day of year folds into the domain (day 366 of a leap year becomes
// day 1). The moon phase day counts the days since the last real new moon,
// stretched so that one synodic month spans exactly one configured moon
// cycle.
func FromTime(t time.Time, d orbit.Domain) orbit.TimeParameters {
	t = t.UTC()
	y, m, day := t.Date()

	doy := julian.DayOfYearGregorian(y, int(m), day)
	hour := float64(t.Hour()) +
		float64(t.Minute())/60 +
		(float64(t.Second())+float64(t.Nanosecond())/1e9)/3600

	sinceNew := julian.TimeToJD(t) - lastNewMoonJDE(t)
	phase := sinceNew * d.MoonCycleDays / SynodicMonth

	return orbit.TimeParameters{
		DayOfYear:    dmath.WrapInt(doy, 1, d.DaysPerYear),
		HourOfDay:    dmath.Wrap(hour, d.HoursPerDay),
		MoonPhaseDay: dmath.Wrap(phase, d.MoonCycleDays),
	}
}

// LastNewMoon returns the most recent new moon at or before t, in UTC.
func LastNewMoon(t time.Time) time.Time {
	return julian.JDToTime(lastNewMoonJDE(t.UTC())).UTC()
}

// lastNewMoonJDE returns the JDE of the last new moon at or before t. The
// TT/UT offset (about a minute) is ignored.
func lastNewMoonJDE(t time.Time) float64 {
	jd := julian.TimeToJD(t)
	year := decimalYear(t)

	nm := moonphase.New(year)
	for nm > jd {
		year -= monthInYears
		nm = moonphase.New(year)
	}
	for {
		next := moonphase.New(year + monthInYears)
		if next > jd {
			return nm
		}
		year += monthInYears
		nm = next
	}
}

func decimalYear(t time.Time) float64 {
	start := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	return float64(t.Year()) + float64(t.Sub(start))/float64(end.Sub(start))
}
