// Package scan sweeps the synthetic year for sun–moon alignments.
package scan

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/domesim/internal/cache"
	"github.com/Faultbox/domesim/internal/engine"
	"github.com/Faultbox/domesim/internal/engine/alignment"
	"github.com/Faultbox/domesim/internal/engine/orbit"
	"github.com/Faultbox/domesim/internal/logger"
)

// Options controls the sweep resolution.
type Options struct {
	// HourStep is the spacing between samples within a day.
	HourStep float64 `yaml:"hour_step"`

	// MoonStep, when positive, sweeps the moon phase across the whole cycle
	// at every sample. When zero the moon phase stays at MoonPhase.
	MoonStep  float64 `yaml:"moon_step"`
	MoonPhase float64 `yaml:"moon_phase"`

	// Workers bounds the number of days computed in parallel. Zero means
	// one per CPU.
	Workers int `yaml:"workers"`

	// CacheSize bounds the sun state memo.
	CacheSize int `yaml:"cache_size"`
}

// DefaultOptions samples every half hour at a fixed full-moon phase.
func DefaultOptions() Options {
	return Options{
		HourStep:  0.5,
		MoonStep:  0,
		MoonPhase: 15,
		Workers:   0,
		CacheSize: 365 * 48,
	}
}

// Event is one sample where the bodies were aligned.
type Event struct {
	Time      orbit.TimeParameters `json:"time"`
	Alignment alignment.Alignment  `json:"alignment"`
}

// Result is the outcome of a sweep.
type Result struct {
	Samples int                      `json:"samples"`
	Counts  map[alignment.Status]int `json:"counts"`
	Events  []Event                  `json:"events"`
}

// Run sweeps every day of the year and returns the aligned samples ordered by
// day, hour and moon phase. It stops at the first error or when ctx is done.
func Run(ctx context.Context, eng *engine.Engine, opts Options) (Result, error) {
	if opts.HourStep <= 0 {
		return Result{}, fmt.Errorf("hour step must be positive, got %v", opts.HourStep)
	}
	if opts.MoonStep < 0 {
		return Result{}, fmt.Errorf("moon step must not be negative, got %v", opts.MoonStep)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	sunCache, err := cache.NewSunCache(opts.CacheSize)
	if err != nil {
		return Result{}, err
	}

	log := logger.Named("scan")
	start := time.Now()

	domain := eng.Config().Domain
	hours := steps(opts.HourStep, domain.HoursPerDay)
	moons := []float64{opts.MoonPhase}
	if opts.MoonStep > 0 {
		moons = steps(opts.MoonStep, domain.MoonCycleDays)
	}

	perDay := make([][]Event, domain.DaysPerYear)
	samples := make([]int, domain.DaysPerYear)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for day := 1; day <= domain.DaysPerYear; day++ {
		day := day
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			events, n, err := scanDay(eng, sunCache, day, hours, moons)
			if err != nil {
				return fmt.Errorf("day %d: %w", day, err)
			}
			perDay[day-1] = events
			samples[day-1] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	res := Result{Counts: make(map[alignment.Status]int)}
	for i, events := range perDay {
		res.Samples += samples[i]
		for _, ev := range events {
			res.Counts[ev.Alignment.Status]++
		}
		res.Events = append(res.Events, events...)
	}

	hits, misses := sunCache.Stats()
	log.Debug("scan finished",
		zap.Int("samples", res.Samples),
		zap.Int("events", len(res.Events)),
		zap.Int64("sun_cache_hits", hits),
		zap.Int64("sun_cache_misses", misses),
		zap.Duration("elapsed", time.Since(start)),
	)
	return res, nil
}

func scanDay(eng *engine.Engine, sunCache *cache.SunCache, day int, hours, moons []float64) ([]Event, int, error) {
	var events []Event
	n := 0
	for _, hour := range hours {
		for _, moon := range moons {
			tp := orbit.TimeParameters{DayOfYear: day, HourOfDay: hour, MoonPhaseDay: moon}

			sun, err := sunCache.GetOrCompute(tp, eng.SunState)
			if err != nil {
				return nil, 0, err
			}
			moonState, err := eng.MoonState(tp)
			if err != nil {
				return nil, 0, err
			}
			n++

			a := eng.Align(sun, moonState)
			if a.Status != alignment.None {
				events = append(events, Event{Time: tp, Alignment: a})
			}
		}
	}
	return events, n, nil
}

// steps returns 0, step, 2*step, ... below limit. Multiplying instead of
// accumulating keeps samples exactly on the grid.
func steps(step, limit float64) []float64 {
	var out []float64
	for i := 0; ; i++ {
		v := float64(i) * step
		if v >= limit {
			return out
		}
		out = append(out, v)
	}
}
