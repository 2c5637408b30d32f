package providers

import (
	"context"
	"errors"
	"fmt"
	"synthink/internal/structures"
)

// ErrMissingCredential is returned by every call of a provider that was built
// without an API key.
var ErrMissingCredential = errors.New("provider credential missing")

// GenerativeProviderInterface turns a prompt into text with exactly one
// upstream call. Implementations never retry.
type GenerativeProviderInterface interface {
	Name() string
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ProviderError carries the HTTP status reported by the upstream service.
// StatusCode is zero when the failure happened before a response arrived.
type ProviderError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("provider error %d: %s", e.StatusCode, e.Message)
	}
	if e.Message != "" {
		return "provider error: " + e.Message
	}
	return fmt.Sprintf("provider error: %v", e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewGenerativeProvider builds the configured backend once at startup. Without
// a credential it either fails (failFast) or returns a provider that refuses
// every call, so the server can still answer with a configuration error.
func NewGenerativeProvider(conf *structures.Config, logger Logger) (GenerativeProviderInterface, error) {
	pc := conf.Provider
	if pc.APIKey == "" {
		if pc.FailFast {
			return nil, fmt.Errorf("%w: set %s", ErrMissingCredential, credentialEnv[pc.Kind])
		}
		logger.Errorf(TypeProvider, "%s API key is not set, generation requests will fail", pc.Kind)
		return &unconfiguredProvider{name: pc.Kind}, nil
	}

	logger.Infof(TypeProvider, "Using %s provider with model %s", pc.Kind, pc.Model)

	switch pc.Kind {
	case "gemini":
		return NewGeminiProvider(context.Background(), pc)
	case "openai":
		return NewOpenAIProvider(pc)
	}
	return nil, fmt.Errorf("unknown provider kind %q", pc.Kind)
}

type unconfiguredProvider struct {
	name string
}

func (p *unconfiguredProvider) Name() string { return p.name }

func (p *unconfiguredProvider) GenerateText(_ context.Context, _ string) (string, error) {
	return "", ErrMissingCredential
}
