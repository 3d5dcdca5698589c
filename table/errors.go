// SPDX-License-Identifier: MIT

package table

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tsalign/series"
)

var (
	// ErrEmptyTable indicates a table without data rows. It satisfies
	// errors.Is(err, series.ErrEmptySeries).
	ErrEmptyTable = fmt.Errorf("table: empty table: %w", series.ErrEmptySeries)

	// ErrUnknownColumn indicates a timestamp column that matches neither a
	// header nor a valid column index.
	ErrUnknownColumn = errors.New("table: unknown column")

	// ErrParse indicates a cell that could not be converted.
	ErrParse = errors.New("table: parse error")
)

// CellError reasons.
const (
	ReasonEmptyCell        = "empty cell"
	ReasonNonNumeric       = "non-numeric value"
	ReasonInvalidTimestamp = "invalid timestamp"
	ReasonMissingTimestamp = "missing timestamp"
)

// CellError locates a failed conversion. Row is the position in the input
// table (before any timestamp ordering), Column the position in the row.
type CellError struct {
	Row    int
	Column int
	Value  string
	Reason string
}

func (e *CellError) Error() string {
	return fmt.Sprintf("table: row %d, column %d: %s (%q)", e.Row, e.Column, e.Reason, e.Value)
}

// Unwrap matches ErrParse, and series.ErrNonNumericValue for value cells
// that are empty or not a finite number.
func (e *CellError) Unwrap() []error {
	switch e.Reason {
	case ReasonEmptyCell, ReasonNonNumeric:
		return []error{ErrParse, series.ErrNonNumericValue}
	}

	return []error{ErrParse}
}
