// SPDX-License-Identifier: MIT

package distance

import "errors"

var (
	// ErrInvalidConfiguration indicates a strategy that is not fully configured:
	// missing, empty, non-finite or zero weights, a weight count that does not
	// match the point dimensionality, or a nil strategy.
	ErrInvalidConfiguration = errors.New("distance: invalid configuration")

	// ErrUnknownMetric indicates a metric name outside the closed set.
	ErrUnknownMetric = errors.New("distance: unknown metric")
)
