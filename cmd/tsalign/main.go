// SPDX-License-Identifier: MIT

// Package main is the entry point for the tsalign CLI.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/tsalign/internal/config"
	"github.com/katalvlaran/tsalign/internal/logging"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// cfg is resolved before any subcommand runs.
	cfg config.Config
	// logger is the process logger built from cfg.Log.
	logger *slog.Logger
)

// rootCmd is the base command for the tsalign CLI.
var rootCmd = &cobra.Command{
	Use:   "tsalign",
	Short: "Align multivariate time series with Dynamic Time Warping",
	Long: `tsalign compares a reference time series against one or more targets and
reports, for every reference point, its best-matching target point, the
residual distance, the signed lead/lag and how fast that lead/lag changes.

Series are read from CSV files (first row = headers); an optional timestamp
column orders the rows. Settings come from tsalign.yaml, TSALIGN_* environment
variables and flags, in increasing precedence.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfgFile, _ := cmd.Flags().GetString("config")
		used, err := config.Init(viper.GetViper(), cfgFile)
		if err != nil {
			return err
		}
		if cfg, err = config.Load(viper.GetViper()); err != nil {
			return err
		}
		if logger, err = logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format); err != nil {
			return err
		}
		slog.SetDefault(logger)
		if used != "" {
			logger.Debug("using config file", "path", used)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./tsalign.yaml or ~/.config/tsalign/tsalign.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-format", "text", "log format: text or json")

	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
