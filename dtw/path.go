// SPDX-License-Identifier: MIT

package dtw

import (
	"fmt"

	"github.com/katalvlaran/tsalign/matrix"
)

// Backtrack extracts the warping path from an accumulated-cost matrix,
// starting at (L-1, N-1) and stopping once either index drops below 0.
//
// Step rule at (i, j):
//   - i == 0: move left to (0, j-1);
//   - j == 0: move up to (i-1, 0);
//   - otherwise among A[i-1][j-1], A[i-1][j], A[i][j-1] take the minimum,
//     resolving ties diagonal first, then up, then left.
//
// The tie order decides which matches appear on plateaus of equal cost and
// is part of the output contract.
//
// Complexity: O(L+N) steps; the path has at most L+N-1 coordinates.
func Backtrack(acc *matrix.Dense) (Path, error) {
	if acc == nil {
		return nil, fmt.Errorf("Backtrack: nil matrix: %w", matrix.ErrInvalidDimensions)
	}

	i, j := acc.Rows()-1, acc.Cols()-1
	path := make(Path, 0, acc.Rows()+acc.Cols()-1)

	var (
		diag, up, left float64
		err            error
	)
	for i >= 0 && j >= 0 {
		path = append(path, Coord{I: i, J: j})
		switch {
		case i == 0:
			j--
		case j == 0:
			i--
		default:
			if diag, err = acc.At(i-1, j-1); err != nil {
				return nil, fmt.Errorf("Backtrack: %w", err)
			}
			if up, err = acc.At(i-1, j); err != nil {
				return nil, fmt.Errorf("Backtrack: %w", err)
			}
			if left, err = acc.At(i, j-1); err != nil {
				return nil, fmt.Errorf("Backtrack: %w", err)
			}
			switch best := min3(diag, up, left); best {
			case diag:
				i--
				j--
			case up:
				i--
			default:
				j--
			}
		}
	}

	return path, nil
}
