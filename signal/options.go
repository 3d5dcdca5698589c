// SPDX-License-Identifier: MIT
// Package: tsalign/signal
//
// options.go — internal configuration and deterministic defaults.
//
// Design:
//   • config is the single source of truth for all generator knobs.
//   • newConfig applies options in order (later overrides earlier).
//   • Option constructors validate and panic on programmer error.
//
// Deterministic defaults:
//   • amplitude = 1.0, offset = 0.0, trend = 0.0, noise sigma = 0.0
//   • chirp sweep f0 → f1 = 0.02 → 0.25 cycles/sample
//   • pulse base frequency 0.125, duty 0.5, rectangular
//   • per-variable phase step = π/4
//   • rng = nil (local rand seeded by the seed argument)

package signal

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	defAmplitude = 1.0
	defOffset    = 0.0
	defTrend     = 0.0
	defSigma     = 0.0
	defChirpF0   = 0.02
	defChirpF1   = 0.25
	defPulseFreq = 0.125
	defDuty      = 0.5
	defPhaseStep = math.Pi / 4
)

// tau is 2π.
const tau = 2.0 * math.Pi

// config aggregates all knobs used by the generators.
type config struct {
	amplitude  float64
	offset     float64
	trend      float64
	sigma      float64
	f0, f1     float64
	pulseFreq  float64
	duty       float64
	triangular bool
	phaseStep  float64
	rng        *rand.Rand
}

// Option mutates the generator configuration.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{
		amplitude: defAmplitude,
		offset:    defOffset,
		trend:     defTrend,
		sigma:     defSigma,
		f0:        defChirpF0,
		f1:        defChirpF1,
		pulseFreq: defPulseFreq,
		duty:      defDuty,
		phaseStep: defPhaseStep,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by seed.
func rngFrom(cfg config, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}

// WithAmplitude sets the peak amplitude. Panics unless a > 0.
func WithAmplitude(a float64) Option {
	if !(a > 0) {
		panic(fmt.Sprintf("signal: WithAmplitude(%v)", a))
	}
	return func(c *config) { c.amplitude = a }
}

// WithOffset adds a constant to every coordinate.
func WithOffset(v float64) Option {
	return func(c *config) { c.offset = v }
}

// WithTrend adds trend*i to sample i.
func WithTrend(k float64) Option {
	return func(c *config) { c.trend = k }
}

// WithNoise adds Gaussian noise with standard deviation sigma. Panics if sigma < 0.
func WithNoise(sigma float64) Option {
	if sigma < 0 || math.IsNaN(sigma) {
		panic(fmt.Sprintf("signal: WithNoise(%v)", sigma))
	}
	return func(c *config) { c.sigma = sigma }
}

// WithSweep sets the chirp start and end frequencies (cycles/sample).
// Panics unless both are > 0.
func WithSweep(f0, f1 float64) Option {
	if !(f0 > 0) || !(f1 > 0) {
		panic(fmt.Sprintf("signal: WithSweep(%v, %v)", f0, f1))
	}
	return func(c *config) { c.f0, c.f1 = f0, f1 }
}

// WithPulse sets the pulse base frequency, duty cycle and shape.
// Panics unless freq > 0 and duty ∈ [0,1].
func WithPulse(freq, duty float64, triangular bool) Option {
	if !(freq > 0) || duty < 0 || duty > 1 {
		panic(fmt.Sprintf("signal: WithPulse(%v, %v)", freq, duty))
	}
	return func(c *config) { c.pulseFreq, c.duty, c.triangular = freq, duty, triangular }
}

// WithPhaseStep sets the phase offset between consecutive variables.
func WithPhaseStep(rad float64) Option {
	return func(c *config) { c.phaseStep = rad }
}

// WithRand shares one random stream across several generator calls.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("signal: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}
