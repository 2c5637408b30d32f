package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"synthink/internal/structures"

	"google.golang.org/genai"
)

type GeminiProvider struct {
	client *genai.Client
	model  string
	config *genai.GenerateContentConfig
}

func NewGeminiProvider(ctx context.Context, pc structures.ProviderConfig) (*GeminiProvider, error) {
	cc := &genai.ClientConfig{
		APIKey:  pc.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if pc.BaseURL != "" {
		cc.HTTPOptions.BaseURL = pc.BaseURL
	}
	if pc.Timeout > 0 {
		cc.HTTPClient = &http.Client{Timeout: pc.Timeout}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		model:  pc.Model,
		config: generateConfig(pc.ThinkingBudget),
	}, nil
}

// generateConfig disables extended reasoning by default. A negative budget
// leaves the model's own default in place.
func generateConfig(thinkingBudget int) *genai.GenerateContentConfig {
	if thinkingBudget < 0 {
		return &genai.GenerateContentConfig{}
	}
	return &genai.GenerateContentConfig{
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr(int32(thinkingBudget)),
		},
	}
}

func (g *GeminiProvider) Name() string { return "gemini" }

func (g *GeminiProvider) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), g.config)
	if err != nil {
		return "", normalizeGeminiError(err)
	}
	return resp.Text(), nil
}

func normalizeGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &ProviderError{StatusCode: apiErr.Code, Message: apiErr.Message, Err: err}
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return &ProviderError{StatusCode: apiErrPtr.Code, Message: apiErrPtr.Message, Err: err}
	}
	return &ProviderError{Err: err}
}
