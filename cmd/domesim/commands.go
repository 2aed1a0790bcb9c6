package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/domesim/internal/calendar"
	"github.com/Faultbox/domesim/internal/config"
	"github.com/Faultbox/domesim/internal/engine"
	"github.com/Faultbox/domesim/internal/engine/alignment"
	"github.com/Faultbox/domesim/internal/engine/orbit"
	"github.com/Faultbox/domesim/internal/engine/shadow"
	"github.com/Faultbox/domesim/internal/logger"
	"github.com/Faultbox/domesim/internal/scan"
)

// timeFlags registers the -day, -hour and -moon flags shared by several
// commands.
type timeFlags struct {
	day  *int
	hour *float64
	moon *float64
}

func addTimeFlags(fs *flag.FlagSet) timeFlags {
	return timeFlags{
		day:  fs.Int("day", 172, "Day of year"),
		hour: fs.Float64("hour", 12, "Hour of day"),
		moon: fs.Float64("moon", 15, "Moon phase in days"),
	}
}

func (f timeFlags) params() orbit.TimeParameters {
	return orbit.TimeParameters{DayOfYear: *f.day, HourOfDay: *f.hour, MoonPhaseDay: *f.moon}
}

// parseFlags parses args into fs. -h is not an error.
func parseFlags(fs *flag.FlagSet, args []string) (bool, error) {
	err := fs.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func newEngine(cfg *config.Config) (*engine.Engine, error) {
	return engine.New(cfg.Engine(), engine.WithLogger(logger.Named("engine")))
}

func cmdState(cfg *config.Config, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("state", flag.ContinueOnError)
	tf := addTimeFlags(fs)
	at := fs.String("at", "", "Derive day, hour and moon phase from an RFC3339 time")
	asJSON := fs.Bool("json", false, "Print JSON")
	if ok, err := parseFlags(fs, args); !ok {
		return err
	}

	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}

	tp := tf.params()
	if *at != "" {
		t, err := time.Parse(time.RFC3339, *at)
		if err != nil {
			return fmt.Errorf("parsing -at: %w", err)
		}
		tp = calendar.FromTime(t, cfg.Time)
	}

	frame, err := eng.ComputeNormalized(tp)
	if err != nil {
		return err
	}
	if *asJSON {
		return writeJSON(w, frame)
	}
	printFrame(w, frame)
	return nil
}

// transition is one status change seen while animating.
type transition struct {
	Tick      int                  `json:"tick"`
	Time      orbit.TimeParameters `json:"time"`
	Alignment alignment.Alignment  `json:"alignment"`
}

func cmdAnimate(cfg *config.Config, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("animate", flag.ContinueOnError)
	tf := addTimeFlags(fs)
	ticks := fs.Int("ticks", 240, "Number of ticks to run")
	step := fs.Float64("step", 0.1, "Hours advanced per tick")
	advanceMoon := fs.Bool("advance-moon", false, "Advance the moon phase with the clock")
	asJSON := fs.Bool("json", false, "Print JSON")
	if ok, err := parseFlags(fs, args); !ok {
		return err
	}
	if *step <= 0 {
		return fmt.Errorf("step must be positive, got %v", *step)
	}

	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}
	log := logger.Named("animate")

	tp := eng.Normalize(tf.params())
	var changes []transition
	last := alignment.Status(-1)
	for i := 0; i < *ticks; i++ {
		frame, err := eng.Compute(tp)
		if err != nil {
			return fmt.Errorf("tick %d (%s): %w", i, tp, err)
		}
		if frame.Alignment.Status != last {
			log.Debug("status changed",
				zap.Int("tick", i),
				zap.Stringer("time", tp),
				zap.Stringer("status", frame.Alignment.Status),
			)
			changes = append(changes, transition{Tick: i, Time: tp, Alignment: frame.Alignment})
			last = frame.Alignment.Status
		}
		tp = orbit.Advance(tp, *step, *advanceMoon, cfg.Time)
	}

	if *asJSON {
		return writeJSON(w, changes)
	}
	for _, c := range changes {
		fmt.Fprintf(w, "tick %5d  %s  %s (%d°)\n",
			c.Tick, c.Time, statusText(c.Alignment.Status), c.Alignment.RoundedAngleDiff())
	}
	fmt.Fprintf(w, "\n%d ticks, %d status changes, stopped at %s\n", *ticks, len(changes), tp)
	return nil
}

func cmdScan(cfg *config.Config, args []string, w io.Writer) error {
	opts := cfg.Scan
	fs := flag.NewFlagSet("scan", flag.ContinueOnError)
	fs.Float64Var(&opts.HourStep, "hour-step", opts.HourStep, "Hours between samples")
	fs.Float64Var(&opts.MoonStep, "moon-step", opts.MoonStep, "Sweep the moon phase with this step (0 = fixed phase)")
	fs.Float64Var(&opts.MoonPhase, "moon", opts.MoonPhase, "Fixed moon phase in days")
	fs.IntVar(&opts.Workers, "workers", opts.Workers, "Parallel workers (0 = one per CPU)")
	limit := fs.Int("n", 20, "Print at most N events (0 = all)")
	asJSON := fs.Bool("json", false, "Print JSON")
	if ok, err := parseFlags(fs, args); !ok {
		return err
	}

	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := scan.Run(ctx, eng, opts)
	if err != nil {
		return err
	}
	if *asJSON {
		return writeJSON(w, res)
	}

	fmt.Fprintf(w, "samples: %d\n", res.Samples)
	for _, s := range []alignment.Status{alignment.FullEclipse, alignment.PartialEclipse, alignment.Opposition} {
		fmt.Fprintf(w, "  %-30s %d\n", s.Label(), res.Counts[s])
	}
	if len(res.Events) == 0 {
		return nil
	}

	fmt.Fprintln(w)
	for i, ev := range res.Events {
		if *limit > 0 && i >= *limit {
			fmt.Fprintf(w, "... %d more\n", len(res.Events)-i)
			break
		}
		fmt.Fprintf(w, "%s  %-30s angle %4d°  distance %.0f\n",
			ev.Time, ev.Alignment.Status.Label(), ev.Alignment.RoundedAngleDiff(), ev.Alignment.SpotDistance)
	}
	return nil
}

// shadowReport is the shadow-cast model's output for one instant.
type shadowReport struct {
	Time      orbit.TimeParameters    `json:"time"`
	Sun       orbit.CelestialPosition `json:"sun"`
	Moon      orbit.CelestialPosition `json:"moon"`
	Shadow    shadow.Point            `json:"shadow"`
	Alignment alignment.Alignment     `json:"alignment"`
}

func cmdShadow(cfg *config.Config, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("shadow", flag.ContinueOnError)
	tf := addTimeFlags(fs)
	asJSON := fs.Bool("json", false, "Print JSON")
	if ok, err := parseFlags(fs, args); !ok {
		return err
	}

	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}
	tp := eng.Normalize(tf.params())

	r := shadowReport{
		Time: tp,
		Sun:  orbit.SunPosition(cfg.World, cfg.Time, tp.DayOfYear, tp.HourOfDay),
		Moon: orbit.MoonPosition(cfg.World, cfg.Time, tp.DayOfYear, tp.HourOfDay, tp.MoonPhaseDay),
	}
	r.Shadow, err = shadow.Position(cfg.World, r.Sun)
	if err != nil {
		return err
	}
	r.Alignment = shadow.Classify(cfg.World, cfg.Alignment, r.Sun, r.Moon, r.Shadow)

	if *asJSON {
		return writeJSON(w, r)
	}
	fmt.Fprintln(w, r.Time)
	fmt.Fprintf(w, "sun     (%9.1f, %9.1f, %7.1f)\n", r.Sun.X, r.Sun.Y, r.Sun.Z)
	fmt.Fprintf(w, "moon    (%9.1f, %9.1f, %7.1f)\n", r.Moon.X, r.Moon.Y, r.Moon.Z)
	fmt.Fprintf(w, "shadow  (%9.1f, %9.1f, %7.1f)\n", r.Shadow.X, r.Shadow.Y, r.Shadow.Z)
	fmt.Fprintf(w, "angle diff %d°, moon to shadow %.1f\n", r.Alignment.RoundedAngleDiff(), r.Alignment.SpotDistance)
	fmt.Fprintf(w, "status: %s\n", statusText(r.Alignment.Status))
	return nil
}

func cmdConfig(cfg *config.Config, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	out := fs.String("o", "", "Write the config to this file instead of stdout")
	if ok, err := parseFlags(fs, args); !ok {
		return err
	}

	if *out != "" {
		if err := cfg.SaveTo(*out); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(w, "Saved config to %s\n", *out)
		return nil
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
