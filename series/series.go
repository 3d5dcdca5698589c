// SPDX-License-Identifier: MIT

// Package series defines the point and series model shared by every
// alignment component, together with the structural validator that all of
// them rely on and never re-check.
//
// A Point is a fixed-length vector of float64 coordinates; its length is the
// dimensionality. A Series is an ordered, index-addressable list of points of
// identical dimensionality. Reference and target series may differ in length
// but never in dimensionality.
//
// Validation policy:
//   - Validate / ValidatePair run once per comparison, before any matrix work.
//   - ValidatePoints runs on every distance evaluation (strategies are stateless).
//   - Coordinates must be finite: NaN and ±Inf are rejected as non-numeric.
package series

// Point is an ordered, fixed-length sequence of coordinates.
// Points are treated as immutable once built; use Clone before mutating.
type Point []float64

// Dim returns the dimensionality (coordinate count) of p.
func (p Point) Dim() int { return len(p) }

// Clone returns a deep copy of p.
func (p Point) Clone() Point {
	if p == nil {
		return nil
	}
	out := make(Point, len(p))
	copy(out, p)

	return out
}

// Equal reports whether p and q have the same coordinates elementwise.
func (p Point) Equal(q Point) bool {
	if len(p) != len(q) {
		return false
	}
	for k := range p {
		if p[k] != q[k] {
			return false
		}
	}

	return true
}

// Series is an ordered sequence of points.
type Series []Point

// Len returns the number of points in s.
func (s Series) Len() int { return len(s) }

// Dim returns the dimensionality of the first point, or 0 for an empty series.
// It does not check consistency; run Validate for that.
func (s Series) Dim() int {
	if len(s) == 0 {
		return 0
	}

	return len(s[0])
}

// Clone returns a deep copy of s.
func (s Series) Clone() Series {
	if s == nil {
		return nil
	}
	out := make(Series, len(s))
	for i, p := range s {
		out[i] = p.Clone()
	}

	return out
}

// Column returns the k-th coordinate of every point as a fresh slice.
// The caller guarantees 0 ≤ k < Dim() for every point.
func (s Series) Column(k int) []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p[k]
	}

	return out
}

// FromRows builds a Series from raw rows, copying each row.
func FromRows(rows [][]float64) Series {
	out := make(Series, len(rows))
	for i, r := range rows {
		out[i] = Point(r).Clone()
	}

	return out
}
