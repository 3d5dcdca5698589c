// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All Dense methods return these sentinels (wrapped with method context) and
// tests MUST check them via errors.Is. Neither condition is reachable from a
// correctly sized dynamic-programming loop; both signal programmer error.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside
	// [0,rows) x [0,cols). Public indexers (At/Set/Row) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
