// SPDX-License-Identifier: MIT

package table

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tsalign/distance"
	"github.com/katalvlaran/tsalign/dtw"
)

// Envelope statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope carries either a result or an error message, never both.
// Err keeps the typed error for callers that map it (e.g. to HTTP codes).
type Envelope struct {
	Status       string      `json:"status" yaml:"status"`
	Result       *dtw.Result `json:"result,omitempty" yaml:"result,omitempty"`
	ErrorMessage string      `json:"error_message,omitempty" yaml:"error_message,omitempty"`
	Err          error       `json:"-" yaml:"-"`
}

// OK reports whether the comparison succeeded.
func (e Envelope) OK() bool { return e.Status == StatusSuccess }

func success(res *dtw.Result) Envelope {
	return Envelope{Status: StatusSuccess, Result: res}
}

func failure(err error) Envelope {
	return Envelope{Status: StatusError, ErrorMessage: err.Error(), Err: err}
}

// Observer is notified once per finished comparison.
// cells is L·N, or 0 when conversion failed before alignment.
type Observer interface {
	ObserveComparison(metric distance.Metric, cells int, elapsed time.Duration, err error)
}

// Comparator compares tables under one metric and timestamp layout.
// It is safe for concurrent use: every comparison builds its own strategy.
type Comparator struct {
	metric      distance.Metric
	refStamp    string
	targetStamp string
	concurrency int
	logger      *slog.Logger
	observer    Observer
}

// ComparatorOption configures a Comparator.
type ComparatorOption func(*Comparator)

// WithMetric selects the distance metric (default distance.Euclidean).
func WithMetric(m distance.Metric) ComparatorOption {
	return func(c *Comparator) { c.metric = m }
}

// WithReferenceTimestamp names the reference timestamp column.
func WithReferenceTimestamp(col string) ComparatorOption {
	return func(c *Comparator) { c.refStamp = col }
}

// WithTargetTimestamp names the target timestamp column.
func WithTargetTimestamp(col string) ComparatorOption {
	return func(c *Comparator) { c.targetStamp = col }
}

// WithConcurrency bounds CompareMany parallelism; n ≤ 0 means unbounded.
func WithConcurrency(n int) ComparatorOption {
	return func(c *Comparator) { c.concurrency = n }
}

// WithLogger sets the logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) ComparatorOption {
	return func(c *Comparator) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver attaches a per-comparison observer.
func WithObserver(o Observer) ComparatorOption {
	return func(c *Comparator) { c.observer = o }
}

// NewComparator returns a Comparator with opts applied over the defaults.
func NewComparator(opts ...ComparatorOption) *Comparator {
	c := &Comparator{metric: distance.Euclidean, logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Metric returns the configured metric.
func (c *Comparator) Metric() distance.Metric { return c.metric }

// Compare converts both tables and aligns them. Failures of any kind are
// reported in the envelope.
func (c *Comparator) Compare(ctx context.Context, reference, target Table) Envelope {
	start := time.Now()
	res, cells, err := c.compare(ctx, reference, target)
	elapsed := time.Since(start)

	if c.observer != nil {
		c.observer.ObserveComparison(c.metric, cells, elapsed, err)
	}
	if err != nil {
		c.logger.Warn("comparison failed",
			"metric", c.metric,
			"error", err,
		)

		return failure(err)
	}
	c.logger.Debug("comparison done",
		"metric", c.metric,
		"cells", cells,
		"elapsed", elapsed,
	)

	return success(res)
}

func (c *Comparator) compare(ctx context.Context, reference, target Table) (*dtw.Result, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	ref, err := reference.ToSeries(c.refStamp)
	if err != nil {
		return nil, 0, fmt.Errorf("reference: %w", err)
	}
	tgt, err := target.ToSeries(c.targetStamp)
	if err != nil {
		return nil, 0, fmt.Errorf("target: %w", err)
	}

	cells := len(ref) * len(tgt)
	res, err := dtw.CompareMetric(ref, tgt, c.metric)
	if err != nil {
		return nil, cells, err
	}

	return res, cells, nil
}

// CompareMany compares reference against every target concurrently and
// returns one envelope per target, in target order. A cancelled context
// fails the comparisons that have not started yet.
func (c *Comparator) CompareMany(ctx context.Context, reference Table, targets []Table) []Envelope {
	out := make([]Envelope, len(targets))

	var g errgroup.Group
	if c.concurrency > 0 {
		g.SetLimit(c.concurrency)
	}
	for i := range targets {
		i := i
		g.Go(func() error {
			out[i] = c.Compare(ctx, reference, targets[i])

			return nil
		})
	}
	_ = g.Wait()

	return out
}
