// SPDX-License-Identifier: MIT

// Package distance provides the pointwise metrics used by the alignment
// engine to compare one reference point with one target point.
//
// The metric set is closed:
//
//	Euclidean          sqrt(Σ (a_k − b_k)²)
//	Manhattan          Σ |a_k − b_k|
//	WeightedEuclidean  sqrt(Σ ((a_k − b_k)/w_k)²)   ("Karl Pearson" when w_k is
//	                                                 the pooled std-dev of variable k)
//
// Every Strategy validates its two points on every call (non-empty, equal
// dimensionality, finite coordinates) and fails with an error satisfying
// errors.Is(err, series.ErrInvalidInput). WeightedEuclidean validates its
// weights at construction and fails with ErrInvalidConfiguration, so a
// weighted strategy can never be used before it is configured.
//
// Strategies hold no mutable state and are safe for concurrent use.
//
// Usage:
//
//	s, err := distance.New(distance.Manhattan, nil)
//	d, err := s.Distance(series.Point{1, 2}, series.Point{3, 5}) // 5
package distance
