// Package engine runs the full sun/moon pipeline for one instant: orbital
// positions, dome projections, atmosphere spots and the alignment verdict.
package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/domesim/internal/engine/alignment"
	"github.com/Faultbox/domesim/internal/engine/dome"
	"github.com/Faultbox/domesim/internal/engine/orbit"
	"github.com/Faultbox/domesim/internal/world"
)

// Config holds everything the engine needs. It is copied into the engine
// and never changes afterwards.
type Config struct {
	World      world.Constants
	Domain     orbit.Domain
	Thresholds alignment.Thresholds
}

// DefaultConfig returns the reference world, calendar and thresholds.
func DefaultConfig() Config {
	return Config{
		World:      world.Default(),
		Domain:     orbit.DefaultDomain(),
		Thresholds: alignment.DefaultThresholds(),
	}
}

// BodyState is one body's trip through the pipeline.
type BodyState struct {
	Position orbit.CelestialPosition `json:"position"`
	Dome     dome.ProjectionPoint     `json:"dome"`
	Spot     dome.AtmosphereSpot      `json:"spot"`
}

// Frame is the engine output for one instant.
type Frame struct {
	Time      orbit.TimeParameters `json:"time"`
	Sun       BodyState            `json:"sun"`
	Moon      BodyState            `json:"moon"`
	Alignment alignment.Alignment  `json:"alignment"`
}

// Engine computes frames. It holds no mutable state, so one Engine may be
// shared by any number of goroutines.
type Engine struct {
	cfg Config
	log *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for construction and error reporting.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// New validates cfg and returns an engine for it.
func New(cfg Config, opts ...Option) (*Engine, error) {
	e := &Engine{cfg: cfg, log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}

	if err := cfg.World.Validate(); err != nil {
		return nil, fmt.Errorf("creating engine: %w", err)
	}
	if err := cfg.Domain.Validate(); err != nil {
		return nil, fmt.Errorf("creating engine: %w", err)
	}
	if err := cfg.Thresholds.Validate(); err != nil {
		return nil, fmt.Errorf("creating engine: %w", err)
	}

	e.log.Debug("engine ready",
		zap.Float64("dome_radius", cfg.World.DomeRadius),
		zap.Float64("light_spot_size", cfg.World.LightSpotSize),
		zap.Float64("moon_cycle_days", cfg.Domain.MoonCycleDays),
	)
	return e, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Normalize wraps tp into the engine's calendar domain.
func (e *Engine) Normalize(tp orbit.TimeParameters) orbit.TimeParameters {
	return orbit.Normalize(tp, e.cfg.Domain)
}

// SunState runs the sun half of the pipeline.
func (e *Engine) SunState(tp orbit.TimeParameters) (BodyState, error) {
	pos := orbit.SunPosition(e.cfg.World, e.cfg.Domain, tp.DayOfYear, tp.HourOfDay)
	return e.bodyState("sun", pos)
}

// MoonState runs the moon half of the pipeline.
func (e *Engine) MoonState(tp orbit.TimeParameters) (BodyState, error) {
	pos := orbit.MoonPosition(e.cfg.World, e.cfg.Domain, tp.DayOfYear, tp.HourOfDay, tp.MoonPhaseDay)
	return e.bodyState("moon", pos)
}

func (e *Engine) bodyState(body string, pos orbit.CelestialPosition) (BodyState, error) {
	p, err := dome.ProjectToDome(e.cfg.World, pos)
	if err != nil {
		e.log.Error("projection failed", zap.String("body", body), zap.Any("position", pos), zap.Error(err))
		return BodyState{}, fmt.Errorf("projecting %s: %w", body, err)
	}
	return BodyState{
		Position: pos,
		Dome:     p,
		Spot:     dome.ProjectToAtmosphere(e.cfg.World, p),
	}, nil
}

// Align classifies two precomputed body states.
func (e *Engine) Align(sun, moon BodyState) alignment.Alignment {
	return alignment.Classify(e.cfg.Thresholds, e.cfg.World.LightSpotSize,
		sun.Position, moon.Position, sun.Spot, moon.Spot)
}

// Compute runs the pipeline on tp as given. Inputs outside the calendar
// domain are not rejected; use ComputeNormalized to wrap them first.
func (e *Engine) Compute(tp orbit.TimeParameters) (Frame, error) {
	sun, err := e.SunState(tp)
	if err != nil {
		return Frame{}, err
	}
	moon, err := e.MoonState(tp)
	if err != nil {
		return Frame{}, err
	}
	return Frame{
		Time:      tp,
		Sun:       sun,
		Moon:      moon,
		Alignment: e.Align(sun, moon),
	}, nil
}

// ComputeNormalized wraps tp into the calendar domain, then computes.
func (e *Engine) ComputeNormalized(tp orbit.TimeParameters) (Frame, error) {
	return e.Compute(e.Normalize(tp))
}
