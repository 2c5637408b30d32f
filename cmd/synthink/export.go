package main

import (
	"fmt"
	"io"
	"os"
	"synthink/internal/composer"
	"synthink/internal/render"

	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportFrom   string
	exportFile   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export poems as Markdown or HTML",
	Long: `Export saved poems (or history with --from history) as a Markdown
or standalone HTML document.

Examples:
  synthink export > poems.md
  synthink export --format html --file poems.html`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		view, err := composer.ParseView(exportFrom)
		if err != nil {
			return err
		}
		if view == composer.ViewCanvas {
			return fmt.Errorf("nothing to export from %s", view)
		}

		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		c := s.composer()
		c.SetView(view)
		poems := c.Records()

		var w io.Writer = cmd.OutOrStdout()
		if exportFile != "" {
			f, err := os.Create(exportFile)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}

		switch exportFormat {
		case "md", "markdown":
			_, err = io.WriteString(w, render.Markdown(poems))
		case "html":
			err = render.HTML(w, poems)
		default:
			err = fmt.Errorf("unknown export format %q: want md or html", exportFormat)
		}
		return err
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "md", "md or html")
	exportCmd.Flags().StringVar(&exportFrom, "from", "saved", "saved or history")
	exportCmd.Flags().StringVarP(&exportFile, "file", "f", "", "write to file instead of stdout")
}
