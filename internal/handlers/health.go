package handlers

import (
	"net/http"

	"chatrelay-backend/internal/models"
)

type HealthHandler struct {
	geminiKeySet bool
}

func NewHealthHandler(geminiKeySet bool) *HealthHandler {
	return &HealthHandler{geminiKeySet: geminiKeySet}
}

// Health reports liveness. Side-effect free; safe to poll.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:       "ok",
		GeminiKeySet: h.geminiKeySet,
	})
}
