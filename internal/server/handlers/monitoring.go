package handlers

import (
	"net/http"
	"time"

	"github.com/hhpeter/blogd/internal/server/responses"
	"github.com/hhpeter/blogd/internal/version"
)

// MonitoringHandlers serves health endpoints.
type MonitoringHandlers struct{}

// NewMonitoringHandlers constructs MonitoringHandlers.
func NewMonitoringHandlers() *MonitoringHandlers {
	return &MonitoringHandlers{}
}

// Health handles GET /healthz.
func (h *MonitoringHandlers) Health(w http.ResponseWriter, r *http.Request) {
	_ = writeJSON(w, http.StatusOK, responses.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   version.Version,
	})
}
