// SPDX-License-Identifier: MIT

package distance

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/tsalign/series"
)

// EuclideanStrategy is the unweighted L2 distance sqrt(Σ (a_k − b_k)²).
type EuclideanStrategy struct{}

// Distance implements Strategy.
// The sum of squares is accumulated in coordinate order with no rescaling.
func (EuclideanStrategy) Distance(a, b series.Point) (float64, error) {
	if err := series.ValidatePoints(a, b); err != nil {
		return 0, err
	}
	var sum, diff float64
	for k := range a {
		diff = a[k] - b[k]
		sum += diff * diff
	}

	return math.Sqrt(sum), nil
}

// Metric implements Strategy.
func (EuclideanStrategy) Metric() Metric { return Euclidean }

func (EuclideanStrategy) sealed() {}

// ManhattanStrategy is the L1 distance Σ |a_k − b_k|.
type ManhattanStrategy struct{}

// Distance implements Strategy.
func (ManhattanStrategy) Distance(a, b series.Point) (float64, error) {
	if err := series.ValidatePoints(a, b); err != nil {
		return 0, err
	}

	return floats.Distance(a, b, 1), nil
}

// Metric implements Strategy.
func (ManhattanStrategy) Metric() Metric { return Manhattan }

func (ManhattanStrategy) sealed() {}
