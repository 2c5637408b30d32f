package models

// GenerateRequest is the body of POST /api/generate. Every field is optional.
type GenerateRequest struct {
	Theme  string `json:"theme,omitempty"`
	Tone   string `json:"tone,omitempty"`
	Style  string `json:"style,omitempty"`
	Length string `json:"length,omitempty"`
}

func (r GenerateRequest) Configuration() PoemConfiguration {
	return PoemConfiguration{Theme: r.Theme, Tone: r.Tone, Style: r.Style, Length: r.Length}
}

func NewGenerateRequest(c PoemConfiguration) GenerateRequest {
	return GenerateRequest{Theme: c.Theme, Tone: c.Tone, Style: c.Style, Length: c.Length}
}

type GenerateResponse struct {
	Text    string `json:"text"`
	Version string `json:"version,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
