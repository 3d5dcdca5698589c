// SPDX-License-Identifier: MIT
package distance_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsalign/distance"
	"github.com/katalvlaran/tsalign/series"
)

var karlPearsonWeights = distance.Weights{44.76, 56.5, 133.67}

// allStrategies returns one instance of each member of the closed set, all
// configured for 3-dimensional points where weights matter.
func allStrategies(t *testing.T) []distance.Strategy {
	t.Helper()
	w, err := distance.NewWeightedEuclidean(karlPearsonWeights)
	require.NoError(t, err)

	return []distance.Strategy{distance.EuclideanStrategy{}, distance.ManhattanStrategy{}, w}
}

// TestEuclidean_KnownValues checks 1D-4D reference distances.
func TestEuclidean_KnownValues(t *testing.T) {
	e := distance.EuclideanStrategy{}
	cases := []struct {
		a, b series.Point
		want float64
	}{
		{series.Point{5}, series.Point{3}, 2},
		{series.Point{5}, series.Point{-3}, 8},
		{series.Point{4, 25}, series.Point{97, 2}, 95.8019},
		{series.Point{53, 5, 34}, series.Point{122, 9, -9}, 81.4002},
		{series.Point{-4.78, 10.19, -11.82}, series.Point{0.14, 6.25, -13.72}, 6.58},
		{series.Point{5, -1, 3, 0}, series.Point{8, 9, 11, 35}, 37.3898},
	}
	for _, tc := range cases {
		got, err := e.Distance(tc.a, tc.b)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 5e-3, "euclidean(%v,%v)", tc.a, tc.b)
	}
}

// TestManhattan_KnownValues checks L1 against hand-computed sums.
func TestManhattan_KnownValues(t *testing.T) {
	m := distance.ManhattanStrategy{}
	got, err := m.Distance(series.Point{1, 2}, series.Point{3, 5})
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)

	got, err = m.Distance(series.Point{-1, -2, 3}, series.Point{4, -5, 6})
	require.NoError(t, err)
	assert.Equal(t, 11.0, got)
}

// TestWeightedEuclidean_KnownValues checks the Karl Pearson reference values.
func TestWeightedEuclidean_KnownValues(t *testing.T) {
	w, err := distance.NewWeightedEuclidean(karlPearsonWeights)
	require.NoError(t, err)

	d, err := w.Distance(series.Point{-64.88, 2.16, -76}, series.Point{-64.88, 2.16, -76})
	require.NoError(t, err)
	assert.InDelta(t, 0, d, 1e-12)

	d, err = w.Distance(series.Point{-64.88, 2.16, -76}, series.Point{9.34, 7.72, 96.35})
	require.NoError(t, err)
	assert.InDelta(t, 2.1, d, 5e-3)

	d, err = w.Distance(series.Point{0.56, 54.00, 1.43}, series.Point{26.44, 40.89, 65.72})
	require.NoError(t, err)
	assert.InDelta(t, 0.787, d, 5e-3)

	d, err = w.Distance(series.Point{8.73, 98.85, -23.40}, series.Point{56.90, -53.00, 7.77})
	require.NoError(t, err)
	assert.InDelta(t, 2.9, d, 5e-3)
}

// TestStrategies_SymmetricAndZero checks commutativity and the identity of
// indiscernibles for every strategy.
func TestStrategies_SymmetricAndZero(t *testing.T) {
	points := []series.Point{
		{26.44, 40.89, 65.72},
		{8.73, 98.85, -23.40},
		{0, 0, 0},
		{-1, -2, -3},
	}
	for _, s := range allStrategies(t) {
		for _, a := range points {
			self, err := s.Distance(a, a)
			require.NoError(t, err)
			assert.Zero(t, self, "%s: d(a,a) must be 0", s.Metric())
			for _, b := range points {
				ab, err := s.Distance(a, b)
				require.NoError(t, err)
				ba, err := s.Distance(b, a)
				require.NoError(t, err)
				assert.Equal(t, ab, ba, "%s: distance must commute", s.Metric())
				assert.GreaterOrEqual(t, ab, 0.0)
				if !a.Equal(b) {
					assert.Positive(t, ab, "%s: distinct points must be apart", s.Metric())
				}
			}
		}
	}
}

// TestStrategies_InvalidPoints checks the shared per-call validation.
func TestStrategies_InvalidPoints(t *testing.T) {
	for _, s := range allStrategies(t) {
		_, err := s.Distance(series.Point{}, series.Point{})
		assert.ErrorIs(t, err, series.ErrInvalidInput, "%s: empty points", s.Metric())

		_, err = s.Distance(series.Point{}, series.Point{6, 7, -1})
		assert.ErrorIs(t, err, series.ErrEmptyPoint)

		_, err = s.Distance(series.Point{1, 2, 3}, series.Point{5})
		assert.ErrorIs(t, err, series.ErrInconsistentDimensionality)

		_, err = s.Distance(series.Point{1, 2, math.NaN()}, series.Point{1, 2, 3})
		assert.ErrorIs(t, err, series.ErrNonNumericValue)
	}
}

// TestNewWeightedEuclidean_Invalid covers every construction-time guard.
func TestNewWeightedEuclidean_Invalid(t *testing.T) {
	bad := map[string]distance.Weights{
		"nil":      nil,
		"empty":    {},
		"zero":     {1, 0, 2},
		"nan":      {1, math.NaN()},
		"infinite": {math.Inf(1)},
	}
	for name, w := range bad {
		_, err := distance.NewWeightedEuclidean(w)
		assert.ErrorIs(t, err, distance.ErrInvalidConfiguration, name)
	}
}

// TestWeightedEuclidean_WeightCountMismatch is detected on use.
func TestWeightedEuclidean_WeightCountMismatch(t *testing.T) {
	w, err := distance.NewWeightedEuclidean(distance.Weights{1, 2})
	require.NoError(t, err)

	_, err = w.Distance(series.Point{1, 2, 3}, series.Point{1, 2, 3})
	assert.ErrorIs(t, err, distance.ErrInvalidConfiguration)
}

// TestWeightedEuclidean_ZeroValue guards use before configuration.
func TestWeightedEuclidean_ZeroValue(t *testing.T) {
	var w distance.WeightedEuclidean
	_, err := w.Distance(series.Point{1}, series.Point{2})
	assert.ErrorIs(t, err, distance.ErrInvalidConfiguration)
}

// TestWeightedEuclidean_CopiesWeights ensures later mutation of the caller's
// slice does not leak into the strategy.
func TestWeightedEuclidean_CopiesWeights(t *testing.T) {
	in := distance.Weights{2, 4}
	w, err := distance.NewWeightedEuclidean(in)
	require.NoError(t, err)
	in[0] = 1000

	d, err := w.Distance(series.Point{2, 0}, series.Point{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)

	got := w.Weights()
	got[1] = 0
	assert.Equal(t, distance.Weights{2, 4}, w.Weights())
}

// TestParseMetric covers names, aliases and failures.
func TestParseMetric(t *testing.T) {
	cases := map[string]distance.Metric{
		"euclidean":          distance.Euclidean,
		"":                   distance.Euclidean,
		"Manhattan":          distance.Manhattan,
		"karl-pearson":       distance.KarlPearson,
		"weighted-euclidean": distance.KarlPearson,
		" WEIGHTED ":         distance.KarlPearson,
	}
	for in, want := range cases {
		got, err := distance.ParseMetric(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := distance.ParseMetric("chebyshev")
	assert.ErrorIs(t, err, distance.ErrUnknownMetric)
}

// TestNew dispatches over the closed set.
func TestNew(t *testing.T) {
	for _, m := range distance.Metrics() {
		s, err := distance.New(m, distance.Weights{1})
		require.NoError(t, err)
		assert.Equal(t, m, s.Metric())
	}

	_, err := distance.New(distance.KarlPearson, nil)
	assert.ErrorIs(t, err, distance.ErrInvalidConfiguration)

	_, err = distance.New("cosine", nil)
	assert.ErrorIs(t, err, distance.ErrUnknownMetric)
}
