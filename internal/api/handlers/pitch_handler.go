package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/application/services"
)

// PitchHandler handles sales pitch HTTP requests
type PitchHandler struct {
	pitchService *services.PitchService
}

// NewPitchHandler creates a new pitch handler
func NewPitchHandler(pitchService *services.PitchService) *PitchHandler {
	return &PitchHandler{
		pitchService: pitchService,
	}
}

type pitchRequest struct {
	Priority string `json:"priority"`
}

// GetPitch handles POST /api/vehicles/{id}/pitch
func (h *PitchHandler) GetPitch(w http.ResponseWriter, r *http.Request) {
	vehicleID := r.PathValue("id")
	if vehicleID == "" {
		respondWithError(w, http.StatusBadRequest, "vehicle ID is required")
		return
	}

	var req pitchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pitch, err := h.pitchService.GetPitch(r.Context(), vehicleID, req.Priority)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"pitch": pitch,
	})
}
