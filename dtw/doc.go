// SPDX-License-Identifier: MIT

// Package dtw aligns two multivariate time series with Dynamic Time Warping
// and reports, for every point of the reference series, its best-matching
// target point, the residual distance, the signed lead/lag and how fast that
// lead/lag is changing.
//
// 🚀 What is DTW?
//
//	DTW finds the cheapest monotone alignment between two sequences that may
//	be sampled at different rates, out of phase, or of different lengths, by
//	warping the time axis of one against the other.
//
// ✨ Pipeline (one Compare call):
//
//  1. Validate both series (series.ValidatePair).
//  2. Build the accumulated-cost matrix A (L×N, full, no banding):
//     A[0][0] = d(R0,T0)
//     A[i][0] = d(Ri,T0) + A[i-1][0]
//     A[0][j] = d(R0,Tj) + A[0][j-1]
//     A[i][j] = d(Ri,Tj) + min(A[i-1][j-1], A[i-1][j], A[i][j-1])
//  3. Backtrack from (L-1,N-1): on row 0 move left, on column 0 move up,
//     otherwise prefer diagonal, then up, then left among minimal predecessors.
//  4. Reduce the path to one match per reference index: floor(mean(targets)).
//  5. Derive distance, misalignment (match − index) and the degree of
//     misalignment (discrete derivative normalised independently on each side
//     into [-1, 1]).
//
// ⚙️ Usage:
//
//	res, err := dtw.CompareMetric(reference, target, distance.Euclidean)
//	for _, r := range res.Records {
//	  fmt.Println(r.Index, r.Warping, r.Distance, r.Misalignment, r.DegreeOfMisalignment)
//	}
//
// Concurrency: every call allocates and owns its own matrix and path; calls
// share no mutable state and may run in parallel.
//
// Performance:
//
//   - Time:   Θ(L·N) distance evaluations
//   - Memory: Θ(L·N) float64 for the cost matrix, O(L+N) for the path
package dtw
