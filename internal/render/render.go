// SPDX-License-Identifier: MIT

// Package render writes comparison envelopes as JSON, YAML or an aligned
// text table.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tsalign/dtw"
	"github.com/katalvlaran/tsalign/table"
)

// ErrUnknownFormat indicates an unsupported output format.
var ErrUnknownFormat = errors.New("render: unknown format")

// Document is one comparison outcome labelled with its target.
type Document struct {
	Target         string `json:"target" yaml:"target"`
	table.Envelope `yaml:",inline"`
}

// Summary condenses a result into a few headline numbers.
type Summary struct {
	MeanDistance    float64 `json:"mean_distance" yaml:"mean_distance"`
	MaxDistance     float64 `json:"max_distance" yaml:"max_distance"`
	MaxMisalignment int     `json:"max_abs_misalignment" yaml:"max_abs_misalignment"`
	FinalLag        int     `json:"final_misalignment" yaml:"final_misalignment"`
}

// Summarize computes the Summary of res. res must have at least one record.
func Summarize(res *dtw.Result) Summary {
	d := res.Distances()
	mis := res.Misalignments()

	s := Summary{MeanDistance: stat.Mean(d, nil), FinalLag: mis[len(mis)-1]}
	for i, v := range d {
		s.MaxDistance = math.Max(s.MaxDistance, v)
		if a := abs(mis[i]); a > s.MaxMisalignment {
			s.MaxMisalignment = a
		}
	}

	return s
}

// Write renders docs to w in format (json, yaml or text).
func Write(w io.Writer, format string, docs []Document) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(docs)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(docs); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		return writeText(w, docs)
	}

	return fmt.Errorf("Write(%q): %w", format, ErrUnknownFormat)
}

func writeText(w io.Writer, docs []Document) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for k, doc := range docs {
		if k > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "# target: %s\n", doc.Target)
		if !doc.OK() {
			fmt.Fprintf(tw, "# error: %s\n", doc.ErrorMessage)
			continue
		}

		res := doc.Result
		fmt.Fprintf(tw, "# metric: %s, total cost: %.4f\n", res.Metric, res.TotalCost)
		fmt.Fprintln(tw, "index\twarping\tdistance\tmisalignment\tdegree\t")
		for _, r := range res.Records {
			fmt.Fprintf(tw, "%d\t%d\t%.4f\t%d\t%.4f\t\n",
				r.Index, r.Warping, r.Distance, r.Misalignment, r.DegreeOfMisalignment)
		}
		s := Summarize(res)
		fmt.Fprintf(tw, "# mean distance %.4f, max distance %.4f, max |misalignment| %d, final misalignment %d\n",
			s.MeanDistance, s.MaxDistance, s.MaxMisalignment, s.FinalLag)
	}

	return tw.Flush()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
