package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"synthink/internal/models"
	"time"

	"github.com/yuin/goldmark"
)

const htmlHead = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Synthetic Ink</title></head>
<body>
`

// Markdown renders records as one section per poem. Lines end with a hard
// break so the poem keeps its shape.
func Markdown(records []models.PoemRecord) string {
	var b strings.Builder
	b.WriteString("# Synthetic Ink\n")
	for _, r := range records {
		fmt.Fprintf(&b, "\n## %s\n\n", escapeMarkdown(r.Config.Theme))
		fmt.Fprintf(&b, "*%s, %s, %s. %s*\n\n",
			escapeMarkdown(r.Config.Tone), escapeMarkdown(r.Config.Style), escapeMarkdown(r.Config.Length), r.Date.Format(time.DateOnly))

		lines := strings.Split(strings.TrimSpace(r.Text), "\n")
		for i, line := range lines {
			b.WriteString(escapeMarkdown(strings.TrimRight(line, " \t")))
			if i < len(lines)-1 {
				b.WriteString("  ")
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// HTML converts the Markdown export into a standalone page.
func HTML(w io.Writer, records []models.PoemRecord) error {
	var body bytes.Buffer
	if err := goldmark.Convert([]byte(Markdown(records)), &body); err != nil {
		return fmt.Errorf("convert markdown: %w", err)
	}
	if _, err := io.WriteString(w, htmlHead); err != nil {
		return err
	}
	if _, err := body.WriteTo(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "#", `\#`, "<", "&lt;", "[", `\[`, "]", `\]`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
