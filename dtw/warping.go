// SPDX-License-Identifier: MIT

package dtw

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/tsalign/matrix"
)

// Warping reduces a warping path to one best match per reference index:
// the floor of the mean of every target index paired with it.
//
// Errors: matrix.ErrOutOfRange for a coordinate outside [0,refLen)×[0,∞),
// ErrIncompletePath if some reference index has no coordinate.
// Complexity: O(len(path) + refLen).
func Warping(path Path, refLen int) ([]int, error) {
	sums := make([]int, refLen)
	counts := make([]int, refLen)
	for _, c := range path {
		if c.I < 0 || c.I >= refLen || c.J < 0 {
			return nil, fmt.Errorf("Warping: coord (%d,%d): %w", c.I, c.J, matrix.ErrOutOfRange)
		}
		sums[c.I] += c.J
		counts[c.I]++
	}

	out := make([]int, refLen)
	for n := range out {
		if counts[n] == 0 {
			return nil, fmt.Errorf("Warping: reference index %d: %w", n, ErrIncompletePath)
		}
		// Operands are non-negative, so truncation is the floor.
		out[n] = sums[n] / counts[n]
	}

	return out, nil
}

// Misalignment returns warping[n] − n for every reference index n.
// Positive values mean the matched target point lies ahead of the reference
// position; negative values mean the reference leads.
func Misalignment(warping []int) []int {
	out := make([]int, len(warping))
	for n, w := range warping {
		out[n] = w - n
	}

	return out
}

// DegreeOfMisalignment maps the acceleration of the misalignment signal onto
// [-1, 1].
//
// Model:
//   - dG[n]   = mis[n+1] − mis[n] for n < L-1, and dG[L-1] = dG[L-2];
//   - h[n]    = dG[n] / max(dG)   when dG[n] > 0;
//   - h[n]    = dG[n] / |min(dG)| when dG[n] < 0;
//   - h[n]    = 0                 when dG[n] == 0.
//
// The strongest speed-up saturates at +1 and the strongest slow-down at -1.
// A single-point series has degree 0.
func DegreeOfMisalignment(misalignment []int) []float64 {
	n := len(misalignment)
	out := make([]float64, n)
	if n < 2 {
		return out
	}

	dG := make([]float64, n)
	for k := 0; k < n-1; k++ {
		dG[k] = float64(misalignment[k+1] - misalignment[k])
	}
	dG[n-1] = dG[n-2]

	maxDG, minDG := floats.Max(dG), floats.Min(dG)
	for k, g := range dG {
		switch {
		case g > 0:
			out[k] = g / maxDG
		case g < 0:
			out[k] = g / math.Abs(minDG)
		}
	}

	return out
}
