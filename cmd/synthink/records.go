package main

import (
	"fmt"
	"synthink/internal/composer"
	"synthink/internal/models"
	"synthink/internal/render"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List the most recent poems, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listView(cmd, composer.ViewHistory)
	},
}

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "List saved poems",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listView(cmd, composer.ViewSaved)
	},
}

func listView(cmd *cobra.Command, view composer.View) error {
	f, err := format()
	if err != nil {
		return err
	}
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	c := s.composer()
	c.SetView(view)
	return render.List(cmd.OutOrStdout(), f, c.Records())
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a stored poem",
	Args:  cobra.ExactArgs(1),
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

		r, err := s.store.FindByPrefix(args[0])
		if err != nil {
			return err
		}
		return render.Poem(cmd.OutOrStdout(), f, r, s.store.IsSaved(r.ID))
	},
}

var saveCmd = &cobra.Command{
	Use:   "save <id>",
	Short: "Save a poem, or unsave it when it is already saved",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		r, err := s.store.FindByPrefix(args[0])
		if err != nil {
			return err
		}
		saved, err := s.store.ToggleSaved(r)
		if err != nil {
			return err
		}
		if saved {
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", render.ShortID(r.ID))
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from saved\n", render.ShortID(r.ID))
		}
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a poem from saved",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		id := args[0]
		if r, err := s.store.FindByPrefix(id); err == nil {
			id = r.ID
		}
		return s.store.DeleteSaved(id)
	},
}

var feedbackCmd = &cobra.Command{
	Use:   "feedback <id> <good|bad|none>",
	Short: "Rate a poem",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fb, err := models.ParseFeedback(args[1])
		if err != nil {
			return err
		}
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		r, err := s.store.FindByPrefix(args[0])
		if err != nil {
			return err
		}
		_, err = s.store.SetFeedback(r.ID, fb)
		return err
	},
}
