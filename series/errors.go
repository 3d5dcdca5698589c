// SPDX-License-Identifier: MIT
// Package series: sentinel error set for the point/series input contracts.
// All validators return these sentinels (optionally inside a *DimensionError or
// *ValueError carrying the offending position) and callers MUST match them
// via errors.Is.

package series

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the umbrella for every caller-input contract violation.
// Each specific sentinel below satisfies errors.Is(err, ErrInvalidInput).
var ErrInvalidInput = errors.New("series: invalid input")

var (
	// ErrEmptySeries indicates that a series has zero points.
	ErrEmptySeries = fmt.Errorf("series: empty series: %w", ErrInvalidInput)

	// ErrEmptyPoint indicates that a point has zero coordinates.
	ErrEmptyPoint = fmt.Errorf("series: empty point: %w", ErrInvalidInput)

	// ErrInconsistentDimensionality indicates that points within or across
	// series disagree on coordinate count.
	ErrInconsistentDimensionality = fmt.Errorf("series: inconsistent dimensionality: %w", ErrInvalidInput)

	// ErrNonNumericValue indicates a NaN or ±Inf coordinate.
	ErrNonNumericValue = fmt.Errorf("series: non-numeric value: %w", ErrInvalidInput)
)

// Role names the series a failure was found in.
type Role string

const (
	// Reference is the series every output record is indexed by.
	Reference Role = "reference"
	// Target is the series reference points are matched against.
	Target Role = "target"
)

// DimensionError reports a point whose coordinate count differs from the
// dimensionality fixed by the first reference point.
type DimensionError struct {
	Series   Role // series holding the offending point
	Index    int  // point index within Series
	Expected int  // dimensionality of reference[0]
	Got      int  // dimensionality of the offending point
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("series: inconsistent dimensionality: %s[%d] has %d coordinates, expected %d",
		e.Series, e.Index, e.Got, e.Expected)
}

// Unwrap exposes ErrInconsistentDimensionality to errors.Is.
func (e *DimensionError) Unwrap() error { return ErrInconsistentDimensionality }

// ValueError reports a non-finite coordinate.
type ValueError struct {
	Series     Role
	Index      int // point index within Series
	Coordinate int // coordinate index within the point
	Value      float64
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("series: non-numeric value: %s[%d][%d] = %v",
		e.Series, e.Index, e.Coordinate, e.Value)
}

// Unwrap exposes ErrNonNumericValue to errors.Is.
func (e *ValueError) Unwrap() error { return ErrNonNumericValue }
