package controllers

import (
	"fmt"
	"net/http"
	"synthink/internal/services"
	"synthink/internal/structures"
	"time"
)

type HealthController struct {
	service   services.PoemServiceInterface
	version   string
	startTime time.Time
}

type healthResponse struct {
	Status        string  `json:"status"`
	Uptime        string  `json:"uptime"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Version       string  `json:"version"`
	Provider      string  `json:"provider"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	uptime := time.Since(hc.startTime)
	writeJSON(w, http.StatusOK, healthResponse{
		Status:        "ok",
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
		Version:       hc.version,
		Provider:      hc.service.ProviderName(),
	})
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(service services.PoemServiceInterface, conf *structures.Config) *HealthController {
	return &HealthController{
		service:   service,
		version:   conf.Version,
		startTime: time.Now(),
	}
}
