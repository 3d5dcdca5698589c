// SPDX-License-Identifier: MIT
// Package: series
//
// Purpose:
//   - Single source of truth for the structural contracts of points and series.
//   - Kernels downstream (distance, stats, dtw) assume these hold and never re-check.
//
// Check order (fixed, enforced in tests):
//   empty series -> empty point -> dimensionality -> finiteness.
//
// Complexity: O(total coordinates). No allocations on success.

package series

import "math"

// Validate checks a single series: non-empty, every point non-empty, every
// point of the same dimensionality as s[0], every coordinate finite.
// role is only used to label the failure.
func Validate(s Series, role Role) error {
	if len(s) == 0 {
		return ErrEmptySeries
	}

	return validateAgainst(s, role, len(s[0]))
}

// ValidatePair checks both series of a comparison. Dimensionality is fixed by
// reference[0]; every point of both series must match it.
func ValidatePair(reference, target Series) error {
	if len(reference) == 0 || len(target) == 0 {
		return ErrEmptySeries
	}
	dim := len(reference[0])
	if err := validateAgainst(reference, Reference, dim); err != nil {
		return err
	}

	return validateAgainst(target, Target, dim)
}

// ValidatePoints checks two points for a single distance evaluation.
// Errors: ErrEmptyPoint, ErrInconsistentDimensionality, ErrNonNumericValue.
func ValidatePoints(a, b Point) error {
	if len(a) == 0 || len(b) == 0 {
		return ErrEmptyPoint
	}
	if len(a) != len(b) {
		return &DimensionError{Series: Target, Index: 0, Expected: len(a), Got: len(b)}
	}
	if k, ok := firstNonFinite(a); ok {
		return &ValueError{Series: Reference, Coordinate: k, Value: a[k]}
	}
	if k, ok := firstNonFinite(b); ok {
		return &ValueError{Series: Target, Coordinate: k, Value: b[k]}
	}

	return nil
}

// validateAgainst checks every point of s against the expected dimensionality.
func validateAgainst(s Series, role Role, dim int) error {
	if dim == 0 {
		return ErrEmptyPoint
	}
	for i, p := range s {
		if len(p) != dim {
			if len(p) == 0 {
				return ErrEmptyPoint
			}
			return &DimensionError{Series: role, Index: i, Expected: dim, Got: len(p)}
		}
	}
	for i, p := range s {
		if k, ok := firstNonFinite(p); ok {
			return &ValueError{Series: role, Index: i, Coordinate: k, Value: p[k]}
		}
	}

	return nil
}

// firstNonFinite returns the index of the first NaN/±Inf coordinate.
func firstNonFinite(p Point) (int, bool) {
	for k, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return k, true
		}
	}

	return 0, false
}
