package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"synthink/internal/models"
	"synthink/internal/providers"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	MsgGenerationFailed  = "Failed to generate poem."
	MsgQuotaExceeded     = "Quota exceeded. Please try again later."
	MsgServiceOverloaded = "Service overloaded. Please try again later."
	MsgMissingCredential = "Provider API key is missing on the server."
)

var ErrEmptyCompletion = errors.New("no poem generated")

// GenerationError is a provider failure already normalized into the HTTP
// status and the short message shown to users.
type GenerationError struct {
	Status  int
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed (%d): %s: %v", e.Status, e.Message, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

type PoemServiceInterface interface {
	Generate(ctx context.Context, conf models.PoemConfiguration) (string, error)
	ProviderName() string
}

type PoemService struct {
	provider providers.GenerativeProviderInterface
	logger   providers.Logger
	metrics  providers.MetricsProviderInterface
	tracer   providers.TracingProviderInterface
}

func NewPoemService(provider providers.GenerativeProviderInterface, logger providers.Logger, metrics providers.MetricsProviderInterface, tracer providers.TracingProviderInterface) PoemServiceInterface {
	return &PoemService{
		provider: provider,
		logger:   logger,
		metrics:  metrics,
		tracer:   tracer,
	}
}

func (ps *PoemService) ProviderName() string {
	return ps.provider.Name()
}

// Generate resolves defaults, builds the prompt and calls the provider once.
// Every failure is returned as *GenerationError.
func (ps *PoemService) Generate(ctx context.Context, conf models.PoemConfiguration) (string, error) {
	resolved := conf.Resolve()
	name := ps.provider.Name()

	ctx, span := ps.tracer.Start(ctx, "poem.generate", trace.WithAttributes(
		attribute.String("poem.provider", name),
		attribute.String("poem.theme", resolved.Theme),
		attribute.String("poem.tone", resolved.Tone),
		attribute.String("poem.style", resolved.Style),
		attribute.String("poem.length", resolved.Length),
	))
	defer span.End()

	start := time.Now()
	text, err := ps.provider.GenerateText(ctx, BuildPrompt(resolved))
	ps.metrics.ObserveProviderDuration(name, time.Since(start))

	if err == nil {
		text = strings.TrimSpace(text)
		if text == "" {
			err = ErrEmptyCompletion
		}
	}
	if err != nil {
		gerr := classifyProviderError(err)
		ps.logFailure(gerr)
		ps.metrics.IncGenerationsTotal(name, gerr.Status)
		span.RecordError(err)
		span.SetStatus(codes.Error, gerr.Message)
		return "", gerr
	}

	ps.metrics.IncGenerationsTotal(name, http.StatusOK)
	span.SetAttributes(attribute.Int("poem.chars", len(text)))
	return text, nil
}

func (ps *PoemService) logFailure(gerr *GenerationError) {
	switch gerr.Status {
	case http.StatusTooManyRequests:
		ps.logger.Warnf(providers.TypeProvider, "[429] Quota exceeded: %v", gerr.Err)
	case http.StatusServiceUnavailable:
		ps.logger.Warnf(providers.TypeProvider, "[503] Service overloaded: %v", gerr.Err)
	default:
		ps.logger.Errorf(providers.TypeProvider, "Error generating poem: %v", gerr.Err)
	}
}

// classifyProviderError passes the upstream status through when it is a valid
// error status and falls back to 500 otherwise.
func classifyProviderError(err error) *GenerationError {
	if errors.Is(err, providers.ErrMissingCredential) {
		return &GenerationError{Status: http.StatusInternalServerError, Message: MsgMissingCredential, Err: err}
	}
	if errors.Is(err, ErrEmptyCompletion) {
		return &GenerationError{Status: http.StatusInternalServerError, Message: MsgGenerationFailed, Err: err}
	}

	status := http.StatusInternalServerError
	message := ""
	var perr *providers.ProviderError
	if errors.As(err, &perr) {
		if perr.StatusCode >= 400 && perr.StatusCode <= 599 {
			status = perr.StatusCode
		}
		message = strings.TrimSpace(perr.Message)
	}

	switch status {
	case http.StatusTooManyRequests:
		message = MsgQuotaExceeded
	case http.StatusServiceUnavailable:
		message = MsgServiceOverloaded
	default:
		if message == "" {
			message = MsgGenerationFailed
		}
	}
	return &GenerationError{Status: status, Message: message, Err: err}
}
