package main

import (
	"synthink/internal/di"
	"synthink/internal/structures"

	"github.com/spf13/cobra"
)

var serveFlags structures.CliFlags

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Synthetic Ink API",
	Long: `Start the HTTP API.

Endpoints:
  GET  /                 - status and version
  POST /api/generate     - generate a poem
  GET  /api/suggestions  - suggestion lists for each field
  GET  /health           - uptime and provider
  GET  /metrics          - Prometheus metrics (when enabled)

The provider credential is read from GEMINI_API_KEY (or OPENAI_API_KEY),
optionally loaded from the env file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := di.InitApp(&serveFlags)
		if err != nil {
			return err
		}
		return app.Run(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.ConfigPath, "config", "./config.yaml", "server config file")
	serveCmd.Flags().StringVar(&serveFlags.EnvPath, "env-file", ".env.local", "file with KEY=value credentials")
	serveCmd.Flags().BoolVar(&serveFlags.DebugMode, "debug", false, "mirror logs to stderr")
}
