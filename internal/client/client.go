// Package client calls the proxy endpoint on behalf of a user. It never holds
// the provider credential and never builds the prompt itself.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"synthink/internal/models"
	"synthink/internal/providers"
	"time"

	json "github.com/goccy/go-json"
)

const (
	// MsgGenerateFailed is shown when the server failed without explaining why.
	MsgGenerateFailed = "Failed to generate poem"
	// MsgTryAgain is shown for every transport or decoding failure.
	MsgTryAgain = "Failed to generate poem. Please try again."

	maxResponseBodySize = 1 << 20
)

// Error is the single user-facing failure returned by Client. Status is zero
// when no HTTP response was received.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     providers.Logger
}

func New(baseURL string, httpClient *http.Client, logger providers.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 2 * time.Minute}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// Generate sends the resolved configuration and returns the poem text as the
// server produced it.
func (c *Client) Generate(ctx context.Context, conf models.PoemConfiguration) (string, error) {
	body, err := json.Marshal(models.NewGenerateRequest(conf.Resolve()))
	if err != nil {
		return "", c.transportFailure("encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", c.transportFailure("build request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", c.transportFailure("send request", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return "", c.transportFailure("read response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := errorMessage(data)
		c.logger.Warnf(providers.TypePost, "Generate failed with status %d: %s", resp.StatusCode, msg)
		return "", &Error{Status: resp.StatusCode, Message: msg}
	}

	var out models.GenerateResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", c.transportFailure("decode response", err)
	}
	return out.Text, nil
}

// errorMessage reads the error field of a JSON body, falling back to the
// generic message when it is blank. Bodies that are not JSON are surfaced as
// text.
func errorMessage(body []byte) string {
	var payload models.ErrorResponse
	if err := json.Unmarshal(body, &payload); err == nil {
		if msg := strings.TrimSpace(payload.Error); msg != "" {
			return msg
		}
		return MsgGenerateFailed
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return MsgGenerateFailed
}

func (c *Client) transportFailure(stage string, err error) error {
	c.logger.Errorf(providers.TypePost, "Error generating poem (%s): %s", stage, err)
	return &Error{Message: MsgTryAgain}
}

// Health reads GET / from the server.
func (c *Client) Health(ctx context.Context) (models.StatusResponse, error) {
	var out models.StatusResponse
	err := c.getJSON(ctx, "/", &out)
	return out, err
}

// Suggestions reads the suggestion categories offered by the server.
func (c *Client) Suggestions(ctx context.Context) ([]models.SuggestionCategory, error) {
	var out []models.SuggestionCategory
	err := c.getJSON(ctx, "/api/suggestions", &out)
	return out, err
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		return &Error{Status: resp.StatusCode, Message: errorMessage(data)}
	}
	return json.Unmarshal(data, out)
}
