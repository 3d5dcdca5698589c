// SPDX-License-Identifier: MIT

package dtw

import (
	"errors"

	"github.com/katalvlaran/tsalign/distance"
)

// ErrIncompletePath indicates a warping path that skips a reference index.
// Backtracking always reaches row 0, so this signals programmer error.
var ErrIncompletePath = errors.New("dtw: warping path misses a reference index")

// Coord is one step of a warping path: reference index I aligned to target index J.
type Coord struct {
	I int `json:"i" yaml:"i"`
	J int `json:"j" yaml:"j"`
}

// Path is a warping path in backtracking order, from (L-1,N-1) to (0,0).
// A reference index may appear in several consecutive coordinates and so may
// a target index.
type Path []Coord

// Record is the comparison outcome for one reference index.
//
// Fields:
//   - Warping              — best-matching target index, in [0, N).
//   - Distance             — d(R[Index], T[Warping]) under the comparison metric.
//   - Misalignment         — Warping − Index. Positive: the target is ahead of
//     the reference at this point; negative: the reference leads.
//   - DegreeOfMisalignment — normalised change of Misalignment, in [-1, 1].
type Record struct {
	Index                int     `json:"index" yaml:"index"`
	Warping              int     `json:"warping" yaml:"warping"`
	Distance             float64 `json:"distance" yaml:"distance"`
	Misalignment         int     `json:"misalignment" yaml:"misalignment"`
	DegreeOfMisalignment float64 `json:"degree_of_misalignment" yaml:"degree_of_misalignment"`
}

// Result is the full output of one comparison. Records has exactly one entry
// per reference index, in index order.
type Result struct {
	Metric    distance.Metric `json:"metric" yaml:"metric"`
	Records   []Record        `json:"records" yaml:"records"`
	Path      Path            `json:"path,omitempty" yaml:"path,omitempty"`
	TotalCost float64         `json:"total_cost" yaml:"total_cost"`
}

// Len returns the number of records (the reference length).
func (r *Result) Len() int { return len(r.Records) }

// Warping returns the matched target index of every reference index.
func (r *Result) Warping() []int {
	out := make([]int, len(r.Records))
	for i, rec := range r.Records {
		out[i] = rec.Warping
	}

	return out
}

// Distances returns the pointwise distance at every match.
func (r *Result) Distances() []float64 {
	out := make([]float64, len(r.Records))
	for i, rec := range r.Records {
		out[i] = rec.Distance
	}

	return out
}

// Misalignments returns the signed offset of every match.
func (r *Result) Misalignments() []int {
	out := make([]int, len(r.Records))
	for i, rec := range r.Records {
		out[i] = rec.Misalignment
	}

	return out
}

// Degrees returns the degree of misalignment of every reference index.
func (r *Result) Degrees() []float64 {
	out := make([]float64, len(r.Records))
	for i, rec := range r.Records {
		out[i] = rec.DegreeOfMisalignment
	}

	return out
}
