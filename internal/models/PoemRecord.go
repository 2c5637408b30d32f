package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Feedback is the user's verdict on a poem. The zero value means none given.
type Feedback string

const (
	FeedbackNone Feedback = ""
	FeedbackGood Feedback = "good"
	FeedbackBad  Feedback = "bad"
)

func ParseFeedback(s string) (Feedback, error) {
	switch f := Feedback(strings.ToLower(strings.TrimSpace(s))); f {
	case FeedbackGood, FeedbackBad:
		return f, nil
	case FeedbackNone, "none", "clear":
		return FeedbackNone, nil
	}
	return FeedbackNone, fmt.Errorf("invalid feedback %q: want good, bad or none", s)
}

func (f Feedback) Valid() bool {
	return f == FeedbackNone || f == FeedbackGood || f == FeedbackBad
}

// PoemRecord is a generated poem together with the configuration that
// produced it. Only Feedback changes after creation.
type PoemRecord struct {
	ID       string            `json:"id"`
	Text     string            `json:"text"`
	Date     time.Time         `json:"date"`
	Config   PoemConfiguration `json:"config"`
	Feedback Feedback          `json:"feedback,omitempty"`
}

// NewPoemRecord stamps a freshly generated poem with an id and creation time.
func NewPoemRecord(text string, config PoemConfiguration, now time.Time) PoemRecord {
	return PoemRecord{
		ID:     uuid.NewString(),
		Text:   text,
		Date:   now.UTC(),
		Config: config,
	}
}

// Usable reports whether a stored record has the fields every view relies on.
func (r PoemRecord) Usable() bool {
	return strings.TrimSpace(r.ID) != "" && strings.TrimSpace(r.Text) != ""
}
