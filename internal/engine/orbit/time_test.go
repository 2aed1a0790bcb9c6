package orbit

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	d := DefaultDomain()

	tests := []struct {
		name string
		in   TimeParameters
		want TimeParameters
	}{
		{"in range", TimeParameters{172, 12, 15}, TimeParameters{172, 12, 15}},
		{"day past year end", TimeParameters{366, 0, 0}, TimeParameters{1, 0, 0}},
		{"day zero", TimeParameters{0, 0, 0}, TimeParameters{365, 0, 0}},
		{"hour at 24", TimeParameters{10, 24, 0}, TimeParameters{10, 0, 0}},
		{"negative hour", TimeParameters{10, -1.5, 0}, TimeParameters{10, 22.5, 0}},
		{"moon at boundary", TimeParameters{10, 0, 29.5}, TimeParameters{10, 0, 0}},
		{"moon past boundary", TimeParameters{10, 0, 30}, TimeParameters{10, 0, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in, d)
			if got.DayOfYear != tt.want.DayOfYear ||
				math.Abs(got.HourOfDay-tt.want.HourOfDay) > 1e-9 ||
				math.Abs(got.MoonPhaseDay-tt.want.MoonPhaseDay) > 1e-9 {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestNormalizeMoonBoundary30(t *testing.T) {
	// With the 30 day boundary, phase day 29.5 is a valid, unwrapped value.
	d := DefaultDomain()
	d.MoonCycleDays = 30

	got := Normalize(TimeParameters{1, 0, 29.5}, d)
	if got.MoonPhaseDay != 29.5 {
		t.Errorf("expected moon phase 29.5 with 30 day cycle, got %v", got.MoonPhaseDay)
	}
	got = Normalize(TimeParameters{1, 0, 30}, d)
	if got.MoonPhaseDay != 0 {
		t.Errorf("expected moon phase 0 at the 30 day boundary, got %v", got.MoonPhaseDay)
	}
}

func TestAdvance(t *testing.T) {
	d := DefaultDomain()

	next := Advance(TimeParameters{100, 5, 3}, 0.1, false, d)
	if next.DayOfYear != 100 || math.Abs(next.HourOfDay-5.1) > 1e-9 || next.MoonPhaseDay != 3 {
		t.Errorf("expected day 100 hour 5.1 moon 3, got %v", next)
	}

	// Crossing midnight resets the hour to exactly zero.
	next = Advance(TimeParameters{100, 23.95, 3}, 0.1, false, d)
	if next.DayOfYear != 101 || next.HourOfDay != 0 {
		t.Errorf("expected day 101 hour 0, got %v", next)
	}

	// Crossing the year end wraps the day to 1.
	next = Advance(TimeParameters{365, 23.95, 3}, 0.1, false, d)
	if next.DayOfYear != 1 || next.HourOfDay != 0 {
		t.Errorf("expected day 1 hour 0, got %v", next)
	}
}

func TestAdvanceMoon(t *testing.T) {
	d := DefaultDomain()

	next := Advance(TimeParameters{1, 0, 29.25}, 12, true, d)
	if math.Abs(next.MoonPhaseDay-0.25) > 1e-9 {
		t.Errorf("expected moon phase to wrap to 0.25, got %v", next.MoonPhaseDay)
	}
}

func TestAdvanceFullDay(t *testing.T) {
	d := DefaultDomain()

	tp := TimeParameters{DayOfYear: 1}
	for i := 0; i < 240; i++ {
		tp = Advance(tp, 0.1, false, d)
	}
	// Float accumulation may land the 240th step a hair below 24, so the
	// day has turned either at step 240 or the clock sits just before it.
	if tp.DayOfYear == 1 && tp.HourOfDay < 23.9 {
		t.Errorf("expected to reach the end of day 1, got %v", tp)
	}
	if tp.DayOfYear > 2 {
		t.Errorf("expected at most one day change, got %v", tp)
	}
}

func TestDomainValidate(t *testing.T) {
	if err := DefaultDomain().Validate(); err != nil {
		t.Errorf("default domain should be valid: %v", err)
	}
	bad := DefaultDomain()
	bad.MoonCycleDays = 0
	if err := bad.Validate(); err == nil {
		t.Error("expected error for zero moon cycle")
	}
}
