package dtw_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsalign/distance"
	"github.com/katalvlaran/tsalign/dtw"
	"github.com/katalvlaran/tsalign/matrix"
	"github.com/katalvlaran/tsalign/series"
	"github.com/katalvlaran/tsalign/signal"
)

const tol = 5e-3

// TestCompare_Univariate checks every output column of a small known alignment.
func TestCompare_Univariate(t *testing.T) {
	res, err := dtw.Compare(uniRef, uniTgt, distance.EuclideanStrategy{})
	require.NoError(t, err)
	require.Equal(t, len(uniRef), res.Len())

	assert.Equal(t, distance.Euclidean, res.Metric)
	assert.Equal(t, []int{0, 1, 2, 3, 3, 4, 4}, res.Warping())
	assert.Equal(t, []int{0, 0, 0, 0, -1, -1, -2}, res.Misalignments())
	assert.InDeltaSlice(t, []float64{3.9, 7.23, 1.4, 0.07, 5.7, 10.9, 3.2}, res.Distances(), tol)
	assert.InDeltaSlice(t, []float64{0, 0, 0, -1, 0, -1, -1}, res.Degrees(), 1e-12)
	assert.InDelta(t, 32.4, res.TotalCost, 1e-9)

	want := dtw.Path{{6, 4}, {5, 4}, {4, 3}, {3, 3}, {2, 2}, {1, 1}, {0, 0}}
	assert.Equal(t, want, res.Path, "path is reported from the end cell back to the origin")

	for n, r := range res.Records {
		assert.Equal(t, n, r.Index, "records are in reference order")
	}
}

// TestCompare_ManhattanUnivariate: for one variable L1 and L2 coincide.
func TestCompare_ManhattanUnivariate(t *testing.T) {
	eu, err := dtw.Compare(uniRef, uniTgt, distance.EuclideanStrategy{})
	require.NoError(t, err)
	mh, err := dtw.Compare(uniRef, uniTgt, distance.ManhattanStrategy{})
	require.NoError(t, err)

	assert.Equal(t, eu.Warping(), mh.Warping())
	assert.InDeltaSlice(t, eu.Distances(), mh.Distances(), 1e-12)
	assert.Equal(t, distance.Manhattan, mh.Metric)
}

// TestCompare_Multivariate checks a 20×40 three-variable alignment.
func TestCompare_Multivariate(t *testing.T) {
	res, err := dtw.Compare(multiRef, multiTgt, distance.EuclideanStrategy{})
	require.NoError(t, err)

	assert.Equal(t, multiWarping, res.Warping())
	assert.Equal(t, multiMisalignment, res.Misalignments())
	assert.InDeltaSlice(t, multiEuclidean, res.Distances(), tol)
	assert.InDeltaSlice(t, multiDegree, res.Degrees(), 1e-12)
}

// TestCompareMetric_KarlPearson weights each variable by its pooled
// population standard deviation.
func TestCompareMetric_KarlPearson(t *testing.T) {
	res, err := dtw.CompareMetric(multiRef, multiTgt, distance.KarlPearson)
	require.NoError(t, err)

	assert.Equal(t, distance.KarlPearson, res.Metric)
	assert.Equal(t, multiWarping, res.Warping())
	assert.Equal(t, multiMisalignment, res.Misalignments())
	assert.InDeltaSlice(t, multiKarlPearson, res.Distances(), tol)
	assert.InDeltaSlice(t, multiDegree, res.Degrees(), 1e-12)
}

// TestCompareMetric_MatchesCompare: the convenience entry point builds the
// same strategy a caller would.
func TestCompareMetric_MatchesCompare(t *testing.T) {
	for _, m := range []distance.Metric{distance.Euclidean, distance.Manhattan} {
		s, err := distance.New(m, nil)
		require.NoError(t, err)

		direct, err := dtw.Compare(multiRef, multiTgt, s)
		require.NoError(t, err)
		viaMetric, err := dtw.CompareMetric(multiRef, multiTgt, m)
		require.NoError(t, err)

		assert.Equal(t, direct, viaMetric, "metric %s", m)
	}
}

// TestCompare_EmptySeries: an empty series on either side fails before any work.
func TestCompare_EmptySeries(t *testing.T) {
	_, err := dtw.Compare(series.Series{}, uniTgt, distance.EuclideanStrategy{})
	assert.ErrorIs(t, err, series.ErrEmptySeries)
	assert.ErrorIs(t, err, series.ErrInvalidInput)

	_, err = dtw.Compare(uniRef, nil, distance.EuclideanStrategy{})
	assert.ErrorIs(t, err, series.ErrEmptySeries)

	_, err = dtw.CompareMetric(nil, uniTgt, distance.KarlPearson)
	assert.ErrorIs(t, err, series.ErrEmptySeries)
}

// TestCompare_MixedDimensions: points of length 3 and 1 in one series.
func TestCompare_MixedDimensions(t *testing.T) {
	ref := series.Series{{1, -2, 0}, {25, 54, 4.5}, {-8.2}, {122, 1, 3}}
	tgt := series.Series{{1, -2, 0}, {25, 54, 4.5}}

	_, err := dtw.Compare(ref, tgt, distance.EuclideanStrategy{})
	require.ErrorIs(t, err, series.ErrInconsistentDimensionality)

	var de *series.DimensionError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, series.Reference, de.Series)
	assert.Equal(t, 2, de.Index)

	// Target dimension differs from the reference.
	_, err = dtw.Compare(tgt, series.Series{{1, 2}}, distance.EuclideanStrategy{})
	assert.ErrorIs(t, err, series.ErrInconsistentDimensionality)
}

// TestCompare_NonFinite rejects NaN and ±Inf coordinates.
func TestCompare_NonFinite(t *testing.T) {
	ref := series.Series{{1}, {math.NaN()}}
	_, err := dtw.Compare(ref, uniTgt, distance.EuclideanStrategy{})
	assert.ErrorIs(t, err, series.ErrNonNumericValue)
}

// TestCompare_NilStrategy is a configuration error, not a panic.
func TestCompare_NilStrategy(t *testing.T) {
	_, err := dtw.Compare(uniRef, uniTgt, nil)
	assert.ErrorIs(t, err, distance.ErrInvalidConfiguration)

	_, err = dtw.AccumulatedCost(uniRef, uniTgt, nil)
	assert.ErrorIs(t, err, distance.ErrInvalidConfiguration)
}

// TestCompare_WeightCountMismatch: two weights cannot serve three variables.
func TestCompare_WeightCountMismatch(t *testing.T) {
	s, err := distance.NewWeightedEuclidean(distance.Weights{1, 2})
	require.NoError(t, err)

	_, err = dtw.Compare(multiRef, multiTgt, s)
	assert.ErrorIs(t, err, distance.ErrInvalidConfiguration)
}

// TestCompareMetric_ConstantVariable: a variable constant across both series
// has zero spread and cannot be used as a weight.
func TestCompareMetric_ConstantVariable(t *testing.T) {
	ref := series.Series{{1, 5}, {2, 5}, {3, 5}}
	tgt := series.Series{{3, 5}, {1, 5}}

	_, err := dtw.CompareMetric(ref, tgt, distance.KarlPearson)
	assert.ErrorIs(t, err, distance.ErrInvalidConfiguration)

	// The unweighted metrics have no such restriction.
	_, err = dtw.CompareMetric(ref, tgt, distance.Euclidean)
	assert.NoError(t, err)
}

// TestCompareMetric_UnknownMetric surfaces the parse-level error.
func TestCompareMetric_UnknownMetric(t *testing.T) {
	_, err := dtw.CompareMetric(uniRef, uniTgt, distance.Metric("cosine"))
	assert.ErrorIs(t, err, distance.ErrUnknownMetric)
}

// TestCompare_SelfIdentity: a series aligned with itself matches index for index.
func TestCompare_SelfIdentity(t *testing.T) {
	s := signal.Chirp(64, 3, 7)
	res, err := dtw.Compare(s, s, distance.EuclideanStrategy{})
	require.NoError(t, err)

	for n, r := range res.Records {
		assert.Equal(t, n, r.Warping)
		assert.Zero(t, r.Distance)
		assert.Zero(t, r.Misalignment)
		assert.Zero(t, r.DegreeOfMisalignment)
	}
	assert.Zero(t, res.TotalCost)
	assert.Len(t, res.Path, len(s))
}

// TestCompare_SubsequenceMatch: duplicated target points collapse onto one
// reference index.
func TestCompare_SubsequenceMatch(t *testing.T) {
	ref := series.Series{{1}, {2}, {3}}
	tgt := series.Series{{1}, {1}, {2}, {3}, {3}}

	res, err := dtw.Compare(ref, tgt, distance.EuclideanStrategy{})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2, 3}, res.Warping())
	assert.Equal(t, []int{0, 1, 1}, res.Misalignments())
	assert.Equal(t, []float64{0, 0, 0}, res.Distances())
	assert.Equal(t, []float64{1, 0, 0}, res.Degrees())
	assert.Zero(t, res.TotalCost)
}

// TestCompare_Delay: a target that repeats its first point k times is a
// zero-cost alignment shifted by k.
func TestCompare_Delay(t *testing.T) {
	const k = 6
	ref := signal.Chirp(50, 2, 11)
	tgt := signal.Delay(ref, k)

	res, err := dtw.Compare(ref, tgt, distance.EuclideanStrategy{})
	require.NoError(t, err)

	assert.Equal(t, k/2, res.Records[0].Warping, "first point spreads over the prefix")
	for n := 1; n < len(ref); n++ {
		assert.Equal(t, n+k, res.Records[n].Warping, "index %d", n)
		assert.Equal(t, k, res.Records[n].Misalignment, "index %d", n)
	}
	assert.Zero(t, res.TotalCost)
}

// TestCompare_Invariants exercises output bounds over generated inputs.
func TestCompare_Invariants(t *testing.T) {
	cases := []struct {
		name     string
		ref, tgt series.Series
	}{
		{"chirp vs pulse", signal.Chirp(40, 3, 1), signal.Pulse(55, 3, 2)},
		{"noisy chirp", signal.Chirp(30, 2, 3), signal.Chirp(30, 2, 4, signal.WithNoise(0.3))},
		{"stretched", signal.Pulse(25, 1, 5), signal.Stretch(signal.Pulse(25, 1, 5), 1.8)},
		{"single reference point", series.Series{{0.5, 1}}, signal.Chirp(10, 2, 6)},
		{"single target point", signal.Chirp(10, 2, 6), series.Series{{0.5, 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, m := range distance.Metrics() {
				res, err := dtw.CompareMetric(tc.ref, tc.tgt, m)
				if m == distance.KarlPearson && err != nil {
					// Pulses are constant across some variables for short inputs.
					assert.ErrorIs(t, err, distance.ErrInvalidConfiguration)
					continue
				}
				require.NoError(t, err, "metric %s", m)
				require.Equal(t, len(tc.ref), res.Len())

				for n, r := range res.Records {
					assert.GreaterOrEqual(t, r.Warping, 0)
					assert.Less(t, r.Warping, len(tc.tgt))
					assert.Equal(t, r.Warping-n, r.Misalignment)
					assert.GreaterOrEqual(t, r.Distance, 0.0)
					assert.GreaterOrEqual(t, r.DegreeOfMisalignment, -1.0)
					assert.LessOrEqual(t, r.DegreeOfMisalignment, 1.0)
				}
				if len(tc.ref) == 1 {
					assert.Zero(t, res.Records[0].DegreeOfMisalignment)
				}
			}
		})
	}
}

// TestCompare_Idempotent: repeated calls with one strategy give equal results
// and leave the inputs untouched.
func TestCompare_Idempotent(t *testing.T) {
	s, err := dtw.NewStrategy(multiRef, multiTgt, distance.KarlPearson)
	require.NoError(t, err)
	refCopy, tgtCopy := multiRef.Clone(), multiTgt.Clone()

	first, err := dtw.Compare(multiRef, multiTgt, s)
	require.NoError(t, err)
	second, err := dtw.Compare(multiRef, multiTgt, s)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, refCopy, multiRef)
	assert.Equal(t, tgtCopy, multiTgt)
}

// TestAccumulatedCost_Recurrence checks border accumulation and the inner minimum.
func TestAccumulatedCost_Recurrence(t *testing.T) {
	ref := series.Series{{1}, {2}, {3}}
	tgt := series.Series{{1}, {3}}

	acc, err := dtw.AccumulatedCost(ref, tgt, distance.ManhattanStrategy{})
	require.NoError(t, err)
	require.Equal(t, 3, acc.Rows())
	require.Equal(t, 2, acc.Cols())

	// d = |r - t|:
	//   [0 2]
	//   [1 1]
	//   [2 0]
	want := [][]float64{
		{0, 2},
		{1, 1},
		{3, 1},
	}
	for i, row := range want {
		got, err := acc.Row(i)
		require.NoError(t, err)
		assert.Equal(t, row, got, "row %d", i)
	}
}

// TestBacktrack_TieBreak: on a flat plateau the diagonal wins, then up, then left.
func TestBacktrack_TieBreak(t *testing.T) {
	flat, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	path, err := dtw.Backtrack(flat)
	require.NoError(t, err)
	assert.Equal(t, dtw.Path{{2, 2}, {1, 1}, {0, 0}}, path)

	// Up and left tie below the diagonal: up is taken.
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 5))
	require.NoError(t, m.Set(0, 1, 1))
	require.NoError(t, m.Set(1, 0, 1))
	path, err = dtw.Backtrack(m)
	require.NoError(t, err)
	assert.Equal(t, dtw.Path{{1, 1}, {0, 1}, {0, 0}}, path)

	// Left strictly smallest.
	require.NoError(t, m.Set(0, 1, 2))
	path, err = dtw.Backtrack(m)
	require.NoError(t, err)
	assert.Equal(t, dtw.Path{{1, 1}, {1, 0}, {0, 0}}, path)
}

// TestBacktrack_Borders walks straight along row 0 and column 0.
func TestBacktrack_Borders(t *testing.T) {
	row, err := matrix.NewDense(1, 4)
	require.NoError(t, err)
	path, err := dtw.Backtrack(row)
	require.NoError(t, err)
	assert.Equal(t, dtw.Path{{0, 3}, {0, 2}, {0, 1}, {0, 0}}, path)

	col, err := matrix.NewDense(3, 1)
	require.NoError(t, err)
	path, err = dtw.Backtrack(col)
	require.NoError(t, err)
	assert.Equal(t, dtw.Path{{2, 0}, {1, 0}, {0, 0}}, path)

	_, err = dtw.Backtrack(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestWarping_FloorOfMean averages every target index paired with a reference index.
func TestWarping_FloorOfMean(t *testing.T) {
	path := dtw.Path{{2, 4}, {1, 3}, {1, 2}, {0, 1}, {0, 0}}
	w, err := dtw.Warping(path, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4}, w)

	path = dtw.Path{{1, 3}, {0, 2}, {0, 1}, {0, 0}, {0, 0}}
	w, err = dtw.Warping(path, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3}, w, "floor(3/4) = 0")
}

// TestWarping_Errors: coordinates outside the reference and uncovered indices.
func TestWarping_Errors(t *testing.T) {
	_, err := dtw.Warping(dtw.Path{{0, 0}, {3, 1}}, 2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = dtw.Warping(dtw.Path{{0, -1}}, 1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = dtw.Warping(dtw.Path{{2, 2}, {0, 0}}, 3)
	assert.ErrorIs(t, err, dtw.ErrIncompletePath)
}

// TestDegreeOfMisalignment_Normalisation: positive and negative steps scale
// independently.
func TestDegreeOfMisalignment_Normalisation(t *testing.T) {
	// dG = [2, -1, 1, 0, -4, -4]
	got := dtw.DegreeOfMisalignment([]int{0, 2, 1, 2, 2, -2})
	assert.InDeltaSlice(t, []float64{1, -0.25, 0.5, 0, -1, -1}, got, 1e-12)

	assert.Equal(t, []float64{0}, dtw.DegreeOfMisalignment([]int{5}))
	assert.Equal(t, []float64{0, 0, 0}, dtw.DegreeOfMisalignment([]int{3, 3, 3}))
	assert.Empty(t, dtw.DegreeOfMisalignment(nil))
}

// TestMisalignment subtracts the reference index.
func TestMisalignment(t *testing.T) {
	assert.Equal(t, []int{0, 1, -1, 0}, dtw.Misalignment([]int{0, 2, 1, 3}))
}
