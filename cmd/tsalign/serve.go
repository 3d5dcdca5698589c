package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/tsalign/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve comparisons over HTTP",
	Long: `Serve starts an HTTP server with POST /v1/compare, GET /healthz and
GET /metrics. It shuts down gracefully on SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.New(cfg, logger).Run(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().Int("max-cells", 25_000_000, "largest accepted reference×target size")

	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("server.max_cells", serveCmd.Flags().Lookup("max-cells"))

	rootCmd.AddCommand(serveCmd)
}
