package main

import (
	"errors"
	"fmt"
	"synthink/internal/composer"
	"synthink/internal/models"
	"synthink/internal/render"

	"github.com/spf13/cobra"
)

var (
	genFields = map[models.Field]*string{}
	genRandom bool
	genFrom   string
	genSave   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a poem and add it to history",
	Long: `Generate a poem from the given settings. Unset fields fall back to
Nature / Reflective / Free Verse / Short (4 lines).

Examples:
  synthink generate --theme Ocean --tone Calm --style Haiku
  synthink generate --random
  synthink generate --from 0f8fad5b --save`,
	Args: cobra.NoArgs,
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

		c := s.composer(composer.WithConfiguration(models.PoemConfiguration{}))
		switch {
		case genFrom != "":
			r, err := s.store.FindByPrefix(genFrom)
			if err != nil {
				return err
			}
			c.Select(r)
		case genRandom:
			c.Randomize(nil)
		}
		for field, value := range genFields {
			if cmd.Flags().Changed(string(field)) {
				if err := c.SetField(field, *value); err != nil {
					return err
				}
			}
		}

		rec, accepted, err := c.Generate(cmd.Context())
		if err != nil {
			return err
		}
		if !accepted {
			return errors.New("a generation is already in progress")
		}
		if genSave {
			if _, err := c.ToggleCurrentSaved(); err != nil {
				return fmt.Errorf("save poem: %w", err)
			}
		}
		return render.Poem(cmd.OutOrStdout(), f, *rec, c.IsCurrentSaved())
	},
}

func init() {
	for _, field := range models.Fields {
		genFields[field] = generateCmd.Flags().String(string(field), "", fmt.Sprintf("poem %s", field))
	}
	generateCmd.Flags().BoolVar(&genRandom, "random", false, "pick a random suggestion for every field")
	generateCmd.Flags().StringVar(&genFrom, "from", "", "reuse the settings of a stored poem (id or prefix)")
	generateCmd.Flags().BoolVar(&genSave, "save", false, "save the new poem")
}
