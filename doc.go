// Package tsalign aligns multivariate time series with Dynamic Time Warping.
//
// 🚀 What is tsalign?
//
//	A small engine that takes a reference series and a target series and
//	tells you, for every reference point:
//		• which target point it matches best (warping)
//		• how far apart the two points are (distance)
//		• how far ahead or behind the target runs (misalignment)
//		• how fast that lead/lag is changing (degree of misalignment)
//
// ✨ Metrics
//
//   - euclidean    – plain L2 distance
//   - manhattan    – L1 distance
//   - karl-pearson – L2 weighted by the pooled standard deviation of each variable
//
// Under the hood, everything is organized in subpackages:
//
//	series/   — Point & Series types and input validation
//	distance/ — point metrics behind one Strategy interface
//	stats/    — Welford mean/variance for Karl Pearson weights
//	matrix/   — dense row-major cost matrix
//	dtw/      — accumulated cost, backtracking, warping & misalignment
//	signal/   — deterministic chirp/pulse generators plus delay & stretch
//	table/    — tabular input (CSV, timestamps) and the concurrent Comparator
//	cmd/tsalign — CLI: compare, generate, serve, version
//
// Quick example:
//
//	ref := series.FromRows([][]float64{{1}, {2}, {3}})
//	tgt := series.FromRows([][]float64{{1}, {1}, {2}, {3}})
//	res, err := dtw.CompareMetric(ref, tgt, distance.Euclidean)
//	// res.Warping() == [0 2 3]
//
// Install:
//
//	go install github.com/katalvlaran/tsalign/cmd/tsalign@latest
package tsalign
