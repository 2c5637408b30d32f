// Package render prints poems and collections for the command-line client.
package render

import (
	"fmt"
	"io"
	"strings"
	"synthink/internal/models"
	"time"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	}
	return FormatText, fmt.Errorf("unknown output format %q: want text, json or yaml", s)
}

// Structured writes data as JSON or YAML.
func Structured(w io.Writer, format Format, data any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(data)
	}
	return fmt.Errorf("format %q is not structured", format)
}

// Poem writes one record. Text output is the poem followed by its settings.
func Poem(w io.Writer, format Format, r models.PoemRecord, saved bool) error {
	if format != FormatText {
		return Structured(w, format, r)
	}
	_, err := fmt.Fprintf(w, "%s\n\n-- %s%s\n   id %s, %s\n",
		r.Text, describe(r.Config), marks(r, saved), r.ID, r.Date.Local().Format(time.DateTime))
	return err
}

// List writes a collection, one line per record in text mode.
func List(w io.Writer, format Format, records []models.PoemRecord) error {
	if format != FormatText {
		return Structured(w, format, records)
	}
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No poems yet.")
		return err
	}
	for _, r := range records {
		if _, err := fmt.Fprintf(w, "%-8s  %s  %-40s  %s%s\n",
			ShortID(r.ID), r.Date.Local().Format(time.DateOnly), describe(r.Config), firstLine(r.Text), marks(r, false)); err != nil {
			return err
		}
	}
	return nil
}

// ShortID abbreviates an id for listings. Commands accept any unique prefix.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func describe(c models.PoemConfiguration) string {
	return fmt.Sprintf("%s / %s / %s / %s", c.Theme, c.Tone, c.Style, c.Length)
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	if len(line) > 48 {
		return line[:45] + "..."
	}
	return line
}

func marks(r models.PoemRecord, saved bool) string {
	var b strings.Builder
	if saved {
		b.WriteString(" [saved]")
	}
	switch r.Feedback {
	case models.FeedbackGood:
		b.WriteString(" [+]")
	case models.FeedbackBad:
		b.WriteString(" [-]")
	}
	return b.String()
}
