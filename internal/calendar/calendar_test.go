package calendar

import (
	"math"
	"testing"
	"time"

	"github.com/Faultbox/domesim/internal/engine/orbit"
)

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	tm, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("failed to parse %s: %v", s, err)
	}
	return tm
}

func TestFromTimeDayAndHour(t *testing.T) {
	d := orbit.DefaultDomain()

	tests := []struct {
		at       string
		wantDay  int
		wantHour float64
	}{
		{"2025-01-01T00:00:00Z", 1, 0},
		{"2025-06-21T12:30:00Z", 172, 12.5},
		{"2025-12-21T06:15:00Z", 355, 6.25},
		{"2024-03-01T00:00:00Z", 61, 0},          // leap year
		{"2024-12-31T23:59:24Z", 1, 23.99},       // day 366 folds to 1
		{"2025-06-21T14:30:00+02:00", 172, 12.5}, // read in UTC
	}

	for _, tt := range tests {
		t.Run(tt.at, func(t *testing.T) {
			tp := FromTime(mustParse(t, tt.at), d)
			if tp.DayOfYear != tt.wantDay {
				t.Errorf("expected day %d, got %d", tt.wantDay, tp.DayOfYear)
			}
			if math.Abs(tp.HourOfDay-tt.wantHour) > 1e-9 {
				t.Errorf("expected hour %v, got %v", tt.wantHour, tp.HourOfDay)
			}
		})
	}
}

func TestFromTimeMoonPhase(t *testing.T) {
	d := orbit.DefaultDomain()

	// New moon 2024-01-11 11:57 UTC, full moon 2024-01-25 17:54 UTC.
	newMoon := FromTime(mustParse(t, "2024-01-11T12:30:00Z"), d)
	if newMoon.MoonPhaseDay > 0.1 {
		t.Errorf("expected phase near 0 just after new moon, got %v", newMoon.MoonPhaseDay)
	}

	fullMoon := FromTime(mustParse(t, "2024-01-25T17:54:00Z"), d)
	// 14d 5h57m after new moon, scaled from 29.53 to 29.5 days.
	if math.Abs(fullMoon.MoonPhaseDay-14.23) > 0.1 {
		t.Errorf("expected phase near 14.23 at full moon, got %v", fullMoon.MoonPhaseDay)
	}

	for _, tp := range []orbit.TimeParameters{newMoon, fullMoon} {
		if tp.MoonPhaseDay < 0 || tp.MoonPhaseDay >= d.MoonCycleDays {
			t.Errorf("phase %v outside [0, %v)", tp.MoonPhaseDay, d.MoonCycleDays)
		}
	}
}

func TestFromTimeMoonPhaseScalesToCycle(t *testing.T) {
	d30 := orbit.DefaultDomain()
	d30.MoonCycleDays = 30

	at := mustParse(t, "2024-01-25T17:54:00Z")
	a := FromTime(at, orbit.DefaultDomain()).MoonPhaseDay
	b := FromTime(at, d30).MoonPhaseDay
	if math.Abs(b/a-30/29.5) > 1e-9 {
		t.Errorf("expected phase to scale with the cycle, got %v and %v", a, b)
	}
}

func TestLastNewMoon(t *testing.T) {
	want := mustParse(t, "2024-01-11T11:57:00Z")

	for _, at := range []string{
		"2024-01-11T12:30:00Z",
		"2024-01-20T00:00:00Z",
		"2024-02-09T12:00:00Z", // just before the next new moon (2024-02-09 22:59)
	} {
		got := LastNewMoon(mustParse(t, at))
		if diff := got.Sub(want); diff < -10*time.Minute || diff > 10*time.Minute {
			t.Errorf("at %s: expected last new moon near %v, got %v", at, want, got)
		}
	}
}
