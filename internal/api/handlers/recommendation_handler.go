package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/application/services"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/entities"
)

// RecommendationHandler handles preference matching HTTP requests
type RecommendationHandler struct {
	recommendationService *services.RecommendationService
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(recommendationService *services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationService: recommendationService,
	}
}

type recommendationRequest struct {
	Preferences entities.PreferenceQuery `json:"preferences"`
	Limit       int                      `json:"limit"`
}

// Recommend handles POST /api/recommendations
func (h *RecommendationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req recommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	results, err := h.recommendationService.Recommend(r.Context(), &req.Preferences, req.Limit)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"recommendations": results,
		"count":           len(results),
	})
}
