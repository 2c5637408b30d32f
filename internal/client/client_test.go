package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"synthink/internal/models"
	"synthink/internal/testutil"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *testutil.MockLogger) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	logger := &testutil.MockLogger{}
	return New(srv.URL+"/", srv.Client(), logger), logger
}

func TestGenerate_SendsResolvedConfiguration(t *testing.T) {
	var got models.GenerateRequest
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":"line1\nline2\nline3","version":"1.2.0"}`))
	})

	text, err := c.Generate(context.Background(), models.PoemConfiguration{Theme: "Ocean", Style: "Haiku"})
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2\nline3", text)
	assert.Equal(t, models.GenerateRequest{Theme: "Ocean", Tone: "Reflective", Style: "Haiku", Length: "Short (4 lines)"}, got)
}

func TestGenerate_ErrorMessageFallbacks(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"json error field", http.StatusTooManyRequests, `{"error":"Quota exceeded. Please try again later."}`, "Quota exceeded. Please try again later."},
		{"raw body", http.StatusBadGateway, "upstream gone", "upstream gone"},
		{"json without error", http.StatusInternalServerError, `{"detail":"x"}`, MsgGenerateFailed},
		{"blank json error", http.StatusInternalServerError, `{"error":""}`, MsgGenerateFailed},
		{"empty body", http.StatusInternalServerError, "", MsgGenerateFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, logger := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			text, err := c.Generate(context.Background(), models.PoemConfiguration{})
			assert.Empty(t, text)
			var cerr *Error
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, tt.status, cerr.Status)
			assert.Equal(t, tt.message, cerr.Message)
			assert.Equal(t, 1, logger.Count("warn"))
		})
	}
}

func TestGenerate_MalformedSuccessBody(t *testing.T) {
	c, logger := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})

	_, err := c.Generate(context.Background(), models.PoemConfiguration{})
	var cerr *Error
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, MsgTryAgain, cerr.Message)
	assert.Zero(t, cerr.Status)
	assert.Equal(t, 1, logger.Count("error"))
}

func TestGenerate_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	logger := &testutil.MockLogger{}
	c := New(url, nil, logger)
	_, err := c.Generate(context.Background(), models.PoemConfiguration{})
	assert.EqualError(t, err, MsgTryAgain)
	assert.Equal(t, 1, logger.Count("error"))
}

func TestHealthAndSuggestions(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			_, _ = w.Write([]byte(`{"status":"ok","version":"1.2.0"}`))
		case "/api/suggestions":
			_, _ = w.Write([]byte(`[{"id":"theme","label":"Theme","placeholder":"Enter theme","suggestions":["Nature"]}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	status, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.0", status.Version)

	cats, err := c.Suggestions(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, models.FieldTheme, cats[0].ID)
	assert.Equal(t, []string{"Nature"}, cats[0].Suggestions)
}

func TestSuggestions_NonOK(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"down"}`))
	})

	_, err := c.Suggestions(context.Background())
	var cerr *Error
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, http.StatusServiceUnavailable, cerr.Status)
	assert.Equal(t, "down", cerr.Message)
}
