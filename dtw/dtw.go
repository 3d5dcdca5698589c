// SPDX-License-Identifier: MIT

package dtw

import (
	"fmt"

	"github.com/katalvlaran/tsalign/distance"
	"github.com/katalvlaran/tsalign/series"
	"github.com/katalvlaran/tsalign/stats"
)

// Compare aligns reference against target under strategy s and returns one
// record per reference index.
//
// Errors (no partial result is ever returned):
//   - series.ErrEmptySeries, series.ErrEmptyPoint,
//     series.ErrInconsistentDimensionality, series.ErrNonNumericValue —
//     all satisfy errors.Is(err, series.ErrInvalidInput).
//   - distance.ErrInvalidConfiguration — nil strategy, or a strategy whose
//     configuration does not fit the series (e.g. weight count).
//   - matrix.ErrOutOfRange / ErrIncompletePath — internal invariant violations.
//
// Example:
//
//	res, err := Compare(ref, target, distance.EuclideanStrategy{})
func Compare(reference, target series.Series, s distance.Strategy) (*Result, error) {
	if s == nil {
		return nil, fmt.Errorf("Compare: nil strategy: %w", distance.ErrInvalidConfiguration)
	}
	if err := series.ValidatePair(reference, target); err != nil {
		return nil, fmt.Errorf("Compare: %w", err)
	}

	res, err := compare(reference, target, s)
	if err != nil {
		return nil, fmt.Errorf("Compare: %w", err)
	}

	return res, nil
}

// CompareMetric is Compare with the strategy built for this comparison only.
// For distance.KarlPearson the weights are the pooled population standard
// deviations of both series (stats.PooledStdDev); a variable that is constant
// across both series yields a zero weight and fails with
// distance.ErrInvalidConfiguration.
func CompareMetric(reference, target series.Series, m distance.Metric) (*Result, error) {
	if err := series.ValidatePair(reference, target); err != nil {
		return nil, fmt.Errorf("CompareMetric: %w", err)
	}
	s, err := NewStrategy(reference, target, m)
	if err != nil {
		return nil, fmt.Errorf("CompareMetric: %w", err)
	}

	res, err := compare(reference, target, s)
	if err != nil {
		return nil, fmt.Errorf("CompareMetric: %w", err)
	}

	return res, nil
}

// NewStrategy builds a fresh strategy for one comparison of reference and
// target. Both series must already be valid.
func NewStrategy(reference, target series.Series, m distance.Metric) (distance.Strategy, error) {
	var w distance.Weights
	if m == distance.KarlPearson {
		w = stats.PooledStdDev(reference, target)
	}

	return distance.New(m, w)
}

// compare runs the pipeline on already validated input.
func compare(reference, target series.Series, s distance.Strategy) (*Result, error) {
	acc, err := accumulate(reference, target, s)
	if err != nil {
		return nil, err
	}
	path, err := Backtrack(acc)
	if err != nil {
		return nil, err
	}
	warp, err := Warping(path, len(reference))
	if err != nil {
		return nil, err
	}
	total, err := acc.At(acc.Rows()-1, acc.Cols()-1)
	if err != nil {
		return nil, err
	}

	mis := Misalignment(warp)
	deg := DegreeOfMisalignment(mis)
	records := make([]Record, len(reference))
	var d float64
	for n := range records {
		if d, err = s.Distance(reference[n], target[warp[n]]); err != nil {
			return nil, err
		}
		records[n] = Record{
			Index:                n,
			Warping:              warp[n],
			Distance:             d,
			Misalignment:         mis[n],
			DegreeOfMisalignment: deg[n],
		}
	}

	return &Result{Metric: s.Metric(), Records: records, Path: path, TotalCost: total}, nil
}
