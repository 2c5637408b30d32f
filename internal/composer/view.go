package composer

import "fmt"

// View is the panel the user is looking at.
type View int

const (
	ViewCanvas View = iota
	ViewSaved
	ViewHistory
)

func (v View) String() string {
	switch v {
	case ViewCanvas:
		return "canvas"
	case ViewSaved:
		return "saved"
	case ViewHistory:
		return "history"
	}
	return fmt.Sprintf("View(%d)", int(v))
}

// ParseView accepts the names produced by String, plus "generate" for the canvas.
func ParseView(s string) (View, error) {
	switch s {
	case "canvas", "generate":
		return ViewCanvas, nil
	case "saved":
		return ViewSaved, nil
	case "history":
		return ViewHistory, nil
	}
	return ViewCanvas, fmt.Errorf("unknown view %q", s)
}
