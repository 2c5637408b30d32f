package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"synthink/internal/models"
	"synthink/internal/providers"
	"synthink/internal/services"
	"synthink/internal/structures"

	"github.com/cespare/xxhash/v2"
	json "github.com/goccy/go-json"
)

const (
	maxRequestBodySize = 1 << 20 // 1 MB

	MsgInvalidBody = "Invalid request body."
	statusHealthy  = "Synthetic Ink API is healthy"
)

type ApiController struct {
	logger  providers.Logger
	service services.PoemServiceInterface
	cache   providers.CacheProviderInterface
	version string
}

func NewApiController(logger providers.Logger, service services.PoemServiceInterface, cache providers.CacheProviderInterface, conf *structures.Config) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		cache:   cache,
		version: conf.Version,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	gson, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Error: message})
}

// serveFromCacheOrCompute writes the cached body for cacheKey, encoding and
// caching compute's result on a miss. The body hash doubles as an ETag, so a
// matching If-None-Match gets 304 with no body.
func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, r *http.Request, cacheKey string, compute func() (any, error)) {
	body, ok := ac.cache.Get(cacheKey)
	if !ok {
		result, err := compute()
		if err != nil {
			ac.logger.Errorf(providers.GetLogTypeByRequestType(r.Method), "Compute %s: %s", cacheKey, err)
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		if body, err = json.Marshal(result); err != nil {
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		ac.cache.Set(cacheKey, body)
	}

	etag := `"` + strconv.FormatUint(xxhash.Sum64(body), 16) + `"`
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// Root answers GET / so uptime checks can tell the API is reachable.
func (ac *ApiController) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.StatusResponse{Status: statusHealthy, Version: ac.version})
}

// Generate answers POST /api/generate. Blank or missing fields, including an
// empty body, fall back to the default configuration.
func (ac *ApiController) Generate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
		ac.logger.Debugf(providers.GetLogTypeByRequestType(r.Method), "Rejected generate body: %s", err)
		writeError(w, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	text, err := ac.service.Generate(r.Context(), payload.Configuration())
	if err != nil {
		var genErr *services.GenerationError
		if errors.As(err, &genErr) {
			writeError(w, genErr.Status, genErr.Message)
			return
		}
		ac.logger.Errorf(providers.TypePost, "Unclassified generation error: %s", err)
		writeError(w, http.StatusInternalServerError, services.MsgGenerationFailed)
		return
	}

	writeJSON(w, http.StatusOK, models.GenerateResponse{Text: text, Version: ac.version})
}

// Suggestions serves the suggestion categories used to fill the composer.
func (ac *ApiController) Suggestions(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, r, "suggestions", func() (any, error) {
		return models.Suggestions, nil
	})
}
