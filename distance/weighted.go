// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tsalign/series"
)

// Weights holds one positive divisor per variable. A Weights value passed to
// NewWeightedEuclidean is copied; the strategy never mutates it afterwards.
type Weights []float64

// Validate checks that w is usable as a divisor vector. When dim > 0 the
// weight count must also equal dim.
func (w Weights) Validate(dim int) error {
	if w == nil {
		return fmt.Errorf("weights undefined: %w", ErrInvalidConfiguration)
	}
	if len(w) == 0 {
		return fmt.Errorf("weights empty: %w", ErrInvalidConfiguration)
	}
	for k, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("weight %d is not a finite number: %w", k, ErrInvalidConfiguration)
		}
		if v == 0 {
			return fmt.Errorf("weight %d is zero: %w", k, ErrInvalidConfiguration)
		}
	}
	if dim > 0 && len(w) != dim {
		return fmt.Errorf("%d weights for %d variables: %w", len(w), dim, ErrInvalidConfiguration)
	}

	return nil
}

// WeightedEuclidean divides each coordinate difference by its weight before
// taking the L2 norm.
type WeightedEuclidean struct {
	weights Weights
}

// NewWeightedEuclidean validates and copies w.
// Errors: ErrInvalidConfiguration for nil, empty, non-finite or zero weights.
func NewWeightedEuclidean(w Weights) (*WeightedEuclidean, error) {
	if err := w.Validate(0); err != nil {
		return nil, fmt.Errorf("NewWeightedEuclidean: %w", err)
	}
	cp := make(Weights, len(w))
	copy(cp, w)

	return &WeightedEuclidean{weights: cp}, nil
}

// Weights returns a copy of the configured weights.
func (s *WeightedEuclidean) Weights() Weights {
	out := make(Weights, len(s.weights))
	copy(out, s.weights)

	return out
}

// Distance implements Strategy.
// Errors: InvalidInput for bad points; ErrInvalidConfiguration when the
// weight count does not match the point dimensionality.
func (s *WeightedEuclidean) Distance(a, b series.Point) (float64, error) {
	if s == nil || len(s.weights) == 0 {
		return 0, fmt.Errorf("WeightedEuclidean.Distance: weights undefined: %w", ErrInvalidConfiguration)
	}
	if err := series.ValidatePoints(a, b); err != nil {
		return 0, err
	}
	if len(s.weights) != len(a) {
		return 0, fmt.Errorf("WeightedEuclidean.Distance: %d weights for %d variables: %w",
			len(s.weights), len(a), ErrInvalidConfiguration)
	}
	var sum, q float64
	for k := range a {
		q = (a[k] - b[k]) / s.weights[k]
		sum += q * q
	}

	return math.Sqrt(sum), nil
}

// Metric implements Strategy.
func (*WeightedEuclidean) Metric() Metric { return KarlPearson }

func (*WeightedEuclidean) sealed() {}
