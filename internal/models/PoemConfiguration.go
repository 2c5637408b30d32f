package models

import (
	"fmt"
	"strings"
)

// Field names a member of the closed configuration field set.
type Field string

const (
	FieldTheme  Field = "theme"
	FieldTone   Field = "tone"
	FieldStyle  Field = "style"
	FieldLength Field = "length"
)

// Fields lists the configuration fields in display order.
var Fields = []Field{FieldTheme, FieldTone, FieldStyle, FieldLength}

// DefaultConfiguration fills any field left blank at generation time.
var DefaultConfiguration = PoemConfiguration{
	Theme:  "Nature",
	Tone:   "Reflective",
	Style:  "Free Verse",
	Length: "Short (4 lines)",
}

type PoemConfiguration struct {
	Theme  string `json:"theme"`
	Tone   string `json:"tone"`
	Style  string `json:"style"`
	Length string `json:"length"`
}

// Resolve trims every field and replaces blank ones with DefaultConfiguration.
func (c PoemConfiguration) Resolve() PoemConfiguration {
	return PoemConfiguration{
		Theme:  orDefault(c.Theme, DefaultConfiguration.Theme),
		Tone:   orDefault(c.Tone, DefaultConfiguration.Tone),
		Style:  orDefault(c.Style, DefaultConfiguration.Style),
		Length: orDefault(c.Length, DefaultConfiguration.Length),
	}
}

func (c PoemConfiguration) Field(f Field) (string, error) {
	switch f {
	case FieldTheme:
		return c.Theme, nil
	case FieldTone:
		return c.Tone, nil
	case FieldStyle:
		return c.Style, nil
	case FieldLength:
		return c.Length, nil
	}
	return "", fmt.Errorf("unknown configuration field %q", f)
}

func (c *PoemConfiguration) SetField(f Field, value string) error {
	switch f {
	case FieldTheme:
		c.Theme = value
	case FieldTone:
		c.Tone = value
	case FieldStyle:
		c.Style = value
	case FieldLength:
		c.Length = value
	default:
		return fmt.Errorf("unknown configuration field %q", f)
	}
	return nil
}

func orDefault(value, def string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return def
}
