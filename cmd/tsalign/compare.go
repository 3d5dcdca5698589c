package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/tsalign/internal/metrics"
	"github.com/katalvlaran/tsalign/internal/render"
	"github.com/katalvlaran/tsalign/table"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Align a reference CSV against one or more target CSVs",
	Long: `Compare reads the reference and every target as CSV tables, aligns each
target against the reference with the configured metric and prints one
result document per target. Targets are compared concurrently.

The command fails if any comparison fails; successful results are still
printed.`,
	Example: `  tsalign compare --reference ref.csv --target run1.csv --target run2.csv
  tsalign compare --reference ref.csv --target t.csv --metric karl-pearson \
      --reference-timestamp Date --target-timestamp 0 --format text`,
	RunE: runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
	refPath, _ := cmd.Flags().GetString("reference")
	targetPaths, _ := cmd.Flags().GetStringArray("target")
	if refPath == "" || len(targetPaths) == 0 {
		return fmt.Errorf("compare: --reference and at least one --target are required")
	}

	ref, err := readTable(refPath)
	if err != nil {
		return err
	}
	// A target that cannot be read becomes a failed document, not an abort.
	targets := make([]table.Table, len(targetPaths))
	readErrs := make([]error, len(targetPaths))
	for i, p := range targetPaths {
		targets[i], readErrs[i] = readTable(p)
	}

	c := table.NewComparator(
		table.WithMetric(cfg.MetricValue()),
		table.WithReferenceTimestamp(cfg.ReferenceTimestamp),
		table.WithTargetTimestamp(cfg.TargetTimestamp),
		table.WithConcurrency(cfg.Concurrency),
		table.WithLogger(logger),
		table.WithObserver(metrics.Recorder{}),
	)
	envs := c.CompareMany(cmd.Context(), ref, targets)

	docs := make([]render.Document, len(envs))
	failed := 0
	for i, env := range envs {
		if readErrs[i] != nil {
			env = table.Envelope{Status: table.StatusError, ErrorMessage: readErrs[i].Error(), Err: readErrs[i]}
		}
		if !env.OK() {
			failed++
		}
		docs[i] = render.Document{Target: targetPaths[i], Envelope: env}
	}

	if err := render.Write(cmd.OutOrStdout(), cfg.Format, docs); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("compare: %d of %d comparisons failed", failed, len(docs))
	}
	return nil
}

// readTable loads a CSV file.
func readTable(path string) (table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return table.Table{}, err
	}
	defer f.Close()

	t, err := table.ReadCSV(f)
	if err != nil {
		return table.Table{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func init() {
	compareCmd.Flags().String("reference", "", "reference series CSV file")
	compareCmd.Flags().StringArray("target", nil, "target series CSV file (repeatable)")
	compareCmd.Flags().String("metric", "euclidean", "distance metric: euclidean, manhattan or karl-pearson")
	compareCmd.Flags().String("reference-timestamp", "", "timestamp column of the reference (header name or index)")
	compareCmd.Flags().String("target-timestamp", "", "timestamp column of the targets (header name or index)")
	compareCmd.Flags().String("format", "json", "output format: json, yaml or text")
	compareCmd.Flags().Int("concurrency", 0, "parallel comparisons (0 = GOMAXPROCS)")

	_ = viper.BindPFlag("metric", compareCmd.Flags().Lookup("metric"))
	_ = viper.BindPFlag("reference_timestamp", compareCmd.Flags().Lookup("reference-timestamp"))
	_ = viper.BindPFlag("target_timestamp", compareCmd.Flags().Lookup("target-timestamp"))
	_ = viper.BindPFlag("format", compareCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("concurrency", compareCmd.Flags().Lookup("concurrency"))

	rootCmd.AddCommand(compareCmd)
}
