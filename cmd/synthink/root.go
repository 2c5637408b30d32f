package main

import (
	"synthink/internal/providers"
	"synthink/internal/render"
	"synthink/internal/structures"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	outputFormat string
	clientViper  = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "synthink",
	Short: "Generate short poems from a theme, tone, style and length",
	Long: `Synthetic Ink writes short poems with a generative language model.

"synthink serve" runs the API that holds the provider credential.
Every other command is a client of that API and keeps its history and
saved poems in a local data directory.`,
	Version:       providers.AppVersion,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "text", "output format: text, json or yaml",
	)
	rootCmd.PersistentFlags().String("server", "", "API base URL (default http://localhost:3001)")
	rootCmd.PersistentFlags().String("data-dir", "", "directory for history and saved poems")
	rootCmd.PersistentFlags().Bool("compress", false, "store history and saved poems zstd-compressed")

	_ = clientViper.BindPFlag("serverURL", rootCmd.PersistentFlags().Lookup("server"))
	_ = clientViper.BindPFlag("dataDir", rootCmd.PersistentFlags().Lookup("data-dir"))
	_ = clientViper.BindPFlag("compress", rootCmd.PersistentFlags().Lookup("compress"))

	rootCmd.AddCommand(serveCmd, versionCmd, generateCmd, historyCmd, savedCmd, showCmd,
		saveCmd, deleteCmd, feedbackCmd, suggestCmd, exportCmd, healthCmd)
}

func format() (render.Format, error) {
	return render.ParseFormat(outputFormat)
}

func clientConfig() (*structures.ClientConfig, error) {
	return providers.NewClientConfigProvider(clientViper)
}
