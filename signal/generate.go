// SPDX-License-Identifier: MIT

// Package signal generates deterministic synthetic multivariate series for
// tests, benchmarks and demos, and applies simple time transforms (delay,
// stretch) whose effect on an alignment is known in advance.
//
// Every generator is a pure function of (n, dims, seed, options): the same
// arguments always produce the same series.
package signal

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/tsalign/series"
)

// Chirp returns n points of dims variables. Variable v is a linear chirp
// sweeping f0 → f1 with phase offset v·phaseStep:
//
//	fi    = f0 + (f1 − f0)·i/(n−1)
//	θᵢ₊₁  = θᵢ + τ·fi
//	yᵢ,v  = A·sin(θᵢ + v·phaseStep) + offset + trend·i + noise
//
// Returns nil when n < 1 or dims < 1.
func Chirp(n, dims int, seed int64, opts ...Option) series.Series {
	if n < 1 || dims < 1 {
		return nil
	}
	cfg := newConfig(opts...)
	rng := rngFrom(cfg, seed)

	cols := make([][]float64, dims)
	for v := range cols {
		cols[v] = make([]float64, n)
	}

	var theta, t, fi float64
	for i := 0; i < n; i++ {
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		fi = cfg.f0 + (cfg.f1-cfg.f0)*t
		theta += tau * fi
		for v := range cols {
			cols[v][i] = math.Sin(theta + float64(v)*cfg.phaseStep)
		}
	}

	return finish(cols, cfg, rng)
}

// Pulse returns n points of dims variables of a rectangular (duty-cycle) or
// triangular periodic wave; variable v is shifted by v·phaseStep/τ periods.
// Returns nil when n < 1 or dims < 1.
func Pulse(n, dims int, seed int64, opts ...Option) series.Series {
	if n < 1 || dims < 1 {
		return nil
	}
	cfg := newConfig(opts...)
	rng := rngFrom(cfg, seed)

	cols := make([][]float64, dims)
	for v := range cols {
		cols[v] = make([]float64, n)
		shift := float64(v) * cfg.phaseStep / tau
		for i := 0; i < n; i++ {
			_, frac := math.Modf(float64(i)*cfg.pulseFreq + shift)
			switch {
			case cfg.triangular:
				cols[v][i] = 1 - math.Abs(2*frac-1)
			case frac < cfg.duty:
				cols[v][i] = 1
			}
		}
	}

	return finish(cols, cfg, rng)
}

// finish applies amplitude, trend, noise and offset per column, then
// transposes the columns into points.
func finish(cols [][]float64, cfg config, rng interface{ NormFloat64() float64 }) series.Series {
	n := len(cols[0])
	for _, col := range cols {
		floats.Scale(cfg.amplitude, col)
		if cfg.trend != 0 {
			for i := range col {
				col[i] += cfg.trend * float64(i)
			}
		}
		if cfg.sigma > 0 {
			for i := range col {
				col[i] += cfg.sigma * rng.NormFloat64()
			}
		}
		floats.AddConst(cfg.offset, col)
	}

	out := make(series.Series, n)
	for i := range out {
		p := make(series.Point, len(cols))
		for v, col := range cols {
			p[v] = col[i]
		}
		out[i] = p
	}

	return out
}
