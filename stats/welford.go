// SPDX-License-Identifier: MIT

// Package stats implements the streaming variance estimator used to derive
// per-variable weights for the weighted Euclidean metric.
//
// Purpose:
//   - Per-variable population standard deviation over a stream of points,
//     in a single pass and without buffering the points (Welford's method).
//   - Supply the weights of the Karl Pearson (weighted Euclidean) metric.
//
// Model (per variable v, after k points):
//   mean_k = mean_{k-1} + (x − mean_{k-1}) / k
//   M2_k   = M2_{k-1}   + (x − mean_{k-1}) · (x − mean_k)
//   σ      = sqrt(M2_k / k)
//
// Determinism & Performance:
//   - O(dim) memory, O(dim) per Add; fixed variable order.
//   - No validation: callers pass points that already passed series.ValidatePair.
package stats

import (
	"math"

	"github.com/katalvlaran/tsalign/series"
)

// Accumulator holds Welford running state for a fixed number of variables.
// The zero value is not usable; construct with NewAccumulator.
type Accumulator struct {
	mean []float64 // running mean per variable
	m2   []float64 // running sum of squared deviations per variable
	k    int       // points seen
}

// NewAccumulator returns an empty accumulator for dim variables.
func NewAccumulator(dim int) *Accumulator {
	return &Accumulator{
		mean: make([]float64, dim),
		m2:   make([]float64, dim),
	}
}

// Add folds one point into the running state. p must have the accumulator's
// dimensionality.
func (a *Accumulator) Add(p series.Point) {
	a.k++
	n := float64(a.k)
	var prev, x float64
	for v := range a.mean {
		x = p[v]
		prev = a.mean[v]
		a.mean[v] = prev + (x-prev)/n
		a.m2[v] += (x - prev) * (x - a.mean[v])
	}
}

// AddSeries folds every point of s.
func (a *Accumulator) AddSeries(s series.Series) {
	for _, p := range s {
		a.Add(p)
	}
}

// Count returns the number of points folded so far.
func (a *Accumulator) Count() int { return a.k }

// Mean returns a copy of the running means.
func (a *Accumulator) Mean() []float64 {
	out := make([]float64, len(a.mean))
	copy(out, a.mean)

	return out
}

// PopStdDev returns sqrt(M2/k) per variable, or all zeros when no point has
// been added.
func (a *Accumulator) PopStdDev() []float64 {
	out := make([]float64, len(a.m2))
	if a.k == 0 {
		return out
	}
	n := float64(a.k)
	for v, s := range a.m2 {
		out[v] = math.Sqrt(s / n)
	}

	return out
}

// PooledStdDev returns the population standard deviation of every variable
// over the points of reference followed by the points of target.
// Both series must be non-empty and dimensionally consistent with each other.
func PooledStdDev(reference, target series.Series) []float64 {
	acc := NewAccumulator(reference.Dim())
	acc.AddSeries(reference)
	acc.AddSeries(target)

	return acc.PopStdDev()
}
