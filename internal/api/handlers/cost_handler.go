package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/application/services"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/entities"
)

// CostHandler handles ownership cost projection HTTP requests
type CostHandler struct {
	catalogService *services.CatalogService
	costService    *services.OwnershipCostService
}

// NewCostHandler creates a new cost handler
func NewCostHandler(catalogService *services.CatalogService, costService *services.OwnershipCostService) *CostHandler {
	return &CostHandler{
		catalogService: catalogService,
		costService:    costService,
	}
}

// ProjectCost handles POST /api/vehicles/{id}/cost
func (h *CostHandler) ProjectCost(w http.ResponseWriter, r *http.Request) {
	vehicleID := r.PathValue("id")
	if vehicleID == "" {
		respondWithError(w, http.StatusBadRequest, "vehicle ID is required")
		return
	}

	var inputs entities.OwnershipInputs
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	vehicle, err := h.catalogService.GetByID(r.Context(), vehicleID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	breakdown, err := h.costService.Project(r.Context(), vehicle, &inputs)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, breakdown)
}
