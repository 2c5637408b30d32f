package main

import (
	"fmt"
	"strings"
	"synthink/internal/render"

	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Show the suggestions offered for each field",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := format()
		if err != nil {
			return err
		}
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		cats, err := s.client.Suggestions(cmd.Context())
		if err != nil {
			return err
		}
		if f != render.FormatText {
			return render.Structured(cmd.OutOrStdout(), f, cats)
		}
		for _, c := range cats {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", c.Label, strings.Join(c.Suggestions, ", "))
		}
		return nil
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the API is reachable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := format()
		if err != nil {
			return err
		}
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		status, err := s.client.Health(cmd.Context())
		if err != nil {
			return err
		}
		if f != render.FormatText {
			return render.Structured(cmd.OutOrStdout(), f, status)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (version %s) at %s\n", status.Status, status.Version, s.conf.ServerURL)
		return nil
	},
}
