// SPDX-License-Identifier: MIT

// Package table turns tabular text data (headers plus string cells, as read
// from CSV or received over JSON) into series.Series, optionally ordering the
// rows by a timestamp column, and runs comparisons on such tables.
//
// Conversion rules:
//   - every non-timestamp cell must be a finite decimal number;
//   - empty cells are errors, reported with row and column;
//   - with a timestamp column, rows are sorted ascending by parsed time
//     (stable: equal timestamps keep input order) and the column is dropped;
//   - rows of differing width become points of differing dimensionality and
//     are rejected by series validation at comparison time.
package table

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/tsalign/series"
)

// Table is a header row plus data rows of raw cell text.
type Table struct {
	Headers []string   `json:"headers" yaml:"headers"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

// NoTimestamp selects no timestamp column.
const NoTimestamp = ""

// timeLayouts are tried in order; Unix seconds are tried last.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ColumnIndex resolves ref to a column position. A header name wins over a
// numeric index; NoTimestamp resolves to -1.
func (t Table) ColumnIndex(ref string) (int, error) {
	if ref == NoTimestamp {
		return -1, nil
	}
	for i, h := range t.Headers {
		if h == ref {
			return i, nil
		}
	}
	if i, err := strconv.Atoi(strings.TrimSpace(ref)); err == nil && i >= 0 && (len(t.Headers) == 0 || i < len(t.Headers)) {
		return i, nil
	}

	return -1, fmt.Errorf("ColumnIndex(%q): %w", ref, ErrUnknownColumn)
}

// ToSeries converts t into a series. timestamp names the timestamp column by
// header or index, or is NoTimestamp.
func (t Table) ToSeries(timestamp string) (series.Series, error) {
	if len(t.Rows) == 0 {
		return nil, ErrEmptyTable
	}
	col, err := t.ColumnIndex(timestamp)
	if err != nil {
		return nil, err
	}

	order := make([]int, len(t.Rows))
	for i := range order {
		order[i] = i
	}
	if col >= 0 {
		if order, err = t.timeOrder(col); err != nil {
			return nil, err
		}
	}

	out := make(series.Series, 0, len(t.Rows))
	for _, r := range order {
		p, err := parseRow(t.Rows[r], r, col)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}

// timeOrder returns row positions sorted by the timestamp in column col.
func (t Table) timeOrder(col int) ([]int, error) {
	stamps := make([]time.Time, len(t.Rows))
	for r, row := range t.Rows {
		if col >= len(row) {
			return nil, &CellError{Row: r, Column: col, Reason: ReasonMissingTimestamp}
		}
		ts, err := ParseTime(row[col])
		if err != nil {
			return nil, &CellError{Row: r, Column: col, Value: row[col], Reason: ReasonInvalidTimestamp}
		}
		stamps[r] = ts
	}

	order := make([]int, len(t.Rows))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return stamps[order[a]].Before(stamps[order[b]])
	})

	return order, nil
}

// parseRow converts every cell except skip into a coordinate.
func parseRow(row []string, r, skip int) (series.Point, error) {
	p := make(series.Point, 0, len(row))
	for c, cell := range row {
		if c == skip {
			continue
		}
		v := strings.TrimSpace(cell)
		if v == "" {
			return nil, &CellError{Row: r, Column: c, Value: cell, Reason: ReasonEmptyCell}
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, &CellError{Row: r, Column: c, Value: cell, Reason: ReasonNonNumeric}
		}
		p = append(p, f)
	}

	return p, nil
}

// ParseTime parses s with the first matching layout among RFC3339Nano,
// RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02", then
// as integer Unix seconds. Layouts without a zone are read as UTC.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	if sec, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(sec, 0).UTC(), nil
	}

	return time.Time{}, fmt.Errorf("ParseTime(%q): %w", s, ErrParse)
}

// FromSeries renders s as a table with headers v1..vD.
func FromSeries(s series.Series) Table {
	t := Table{Headers: make([]string, s.Dim()), Rows: make([][]string, len(s))}
	for k := range t.Headers {
		t.Headers[k] = "v" + strconv.Itoa(k+1)
	}
	for i, p := range s {
		row := make([]string, len(p))
		for k, v := range p {
			row[k] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		t.Rows[i] = row
	}

	return t
}
