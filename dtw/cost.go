// SPDX-License-Identifier: MIT

package dtw

import (
	"fmt"

	"github.com/katalvlaran/tsalign/distance"
	"github.com/katalvlaran/tsalign/matrix"
	"github.com/katalvlaran/tsalign/series"
)

// AccumulatedCost builds the L×N accumulated-cost matrix of reference against
// target under s. The returned matrix belongs to the caller.
//
// Recurrence:
//
//	A[0][0] = d(R0,T0)
//	A[i][0] = d(Ri,T0) + A[i-1][0]
//	A[0][j] = d(R0,Tj) + A[0][j-1]
//	A[i][j] = d(Ri,Tj) + min(A[i-1][j-1], A[i-1][j], A[i][j-1])
//
// Complexity: Θ(L·N) time and memory.
func AccumulatedCost(reference, target series.Series, s distance.Strategy) (*matrix.Dense, error) {
	if s == nil {
		return nil, fmt.Errorf("AccumulatedCost: nil strategy: %w", distance.ErrInvalidConfiguration)
	}
	if err := series.ValidatePair(reference, target); err != nil {
		return nil, fmt.Errorf("AccumulatedCost: %w", err)
	}

	return accumulate(reference, target, s)
}

// accumulate fills the matrix row by row; prev aliases row i-1.
func accumulate(reference, target series.Series, s distance.Strategy) (*matrix.Dense, error) {
	rows, cols := len(reference), len(target)
	acc, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}

	var (
		prev, cur []float64
		d         float64
	)
	for i := 0; i < rows; i++ {
		if cur, err = acc.Row(i); err != nil {
			return nil, err
		}
		for j := 0; j < cols; j++ {
			if d, err = s.Distance(reference[i], target[j]); err != nil {
				return nil, err
			}
			switch {
			case i == 0 && j == 0:
				cur[j] = d
			case i == 0:
				cur[j] = d + cur[j-1]
			case j == 0:
				cur[j] = d + prev[j]
			default:
				cur[j] = d + min3(prev[j-1], prev[j], cur[j-1])
			}
		}
		prev = cur
	}

	return acc, nil
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
