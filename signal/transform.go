// SPDX-License-Identifier: MIT

package signal

import (
	"math"

	"github.com/katalvlaran/tsalign/series"
)

// Delay returns a copy of s preceded by k repetitions of its first point, so
// every original point appears k positions later. k ≤ 0 returns a plain copy.
func Delay(s series.Series, k int) series.Series {
	if len(s) == 0 {
		return nil
	}
	if k < 0 {
		k = 0
	}
	out := make(series.Series, 0, len(s)+k)
	for i := 0; i < k; i++ {
		out = append(out, s[0].Clone())
	}
	for _, p := range s {
		out = append(out, p.Clone())
	}

	return out
}

// Stretch resamples s to round(len(s)·factor) points by nearest-index lookup,
// simulating the same signal recorded at a different rate. factor ≤ 0 or an
// empty series returns nil.
func Stretch(s series.Series, factor float64) series.Series {
	if len(s) == 0 || !(factor > 0) {
		return nil
	}
	m := int(math.Round(float64(len(s)) * factor))
	if m < 1 {
		m = 1
	}
	out := make(series.Series, m)
	for i := range out {
		src := int(math.Floor(float64(i) / factor))
		if src >= len(s) {
			src = len(s) - 1
		}
		out[i] = s[src].Clone()
	}

	return out
}
