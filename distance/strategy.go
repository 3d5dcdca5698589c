// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tsalign/series"
)

// Metric names a pointwise distance in the closed metric set.
type Metric string

const (
	// Euclidean is the unweighted L2 distance.
	Euclidean Metric = "euclidean"
	// Manhattan is the L1 distance.
	Manhattan Metric = "manhattan"
	// KarlPearson is the weighted Euclidean distance whose weights are the
	// pooled per-variable standard deviations of the two compared series.
	KarlPearson Metric = "karl-pearson"
)

// Metrics lists every supported metric in a stable order.
func Metrics() []Metric { return []Metric{Euclidean, Manhattan, KarlPearson} }

// ParseMetric resolves a user-supplied metric name (case-insensitive).
// "weighted" and "weighted-euclidean" are accepted as aliases of KarlPearson.
func ParseMetric(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case string(Euclidean), "":
		return Euclidean, nil
	case string(Manhattan):
		return Manhattan, nil
	case string(KarlPearson), "karlpearson", "weighted", "weighted-euclidean":
		return KarlPearson, nil
	default:
		return "", fmt.Errorf("ParseMetric(%q): %w", name, ErrUnknownMetric)
	}
}

// Strategy computes a non-negative distance between two points of equal,
// non-zero dimensionality. The implementer set is fixed to this package.
type Strategy interface {
	// Distance returns the distance between a and b, validating both points.
	Distance(a, b series.Point) (float64, error)
	// Metric reports which member of the closed set this strategy is.
	Metric() Metric

	sealed()
}

// New builds the strategy for m. Weights are required for KarlPearson and
// ignored otherwise.
func New(m Metric, weights Weights) (Strategy, error) {
	switch m {
	case Euclidean:
		return EuclideanStrategy{}, nil
	case Manhattan:
		return ManhattanStrategy{}, nil
	case KarlPearson:
		return NewWeightedEuclidean(weights)
	default:
		return nil, fmt.Errorf("New(%q): %w", m, ErrUnknownMetric)
	}
}
