package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/application/services"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/entities"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/repositories"
	apperrors "github.com/zatekoja/Carbuyeradvisordesign/backend/pkg/errors"
)

// VehicleHandler handles vehicle catalog HTTP requests
type VehicleHandler struct {
	catalogService *services.CatalogService
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(catalogService *services.CatalogService) *VehicleHandler {
	return &VehicleHandler{
		catalogService: catalogService,
	}
}

// GetVehicle handles GET /api/vehicles/{id}
func (h *VehicleHandler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	vehicleID := r.PathValue("id")
	if vehicleID == "" {
		respondWithError(w, http.StatusBadRequest, "vehicle ID is required")
		return
	}

	vehicle, err := h.catalogService.GetByID(r.Context(), vehicleID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, vehicle)
}

// ListVehicles handles GET /api/vehicles
func (h *VehicleHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	active := true
	filter := repositories.VehicleFilter{
		Class:    query.Get("class"),
		FuelType: query.Get("fuel_type"),
		IsActive: &active,
		Limit:    parseIntParam(query.Get("limit"), 30),
		Offset:   parseIntParam(query.Get("offset"), 0),
	}

	if raw := query.Get("max_price"); raw != "" {
		if maxPrice, err := strconv.ParseFloat(raw, 64); err == nil && maxPrice > 0 {
			filter.MaxPrice = &maxPrice
		}
	}

	vehicles, err := h.catalogService.List(r.Context(), filter)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to list vehicles")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"vehicles": vehicles,
		"count":    len(vehicles),
	})
}

// SearchVehicles handles GET /api/vehicles/search
func (h *VehicleHandler) SearchVehicles(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	params := repositories.SearchParams{
		Query:    query.Get("q"),
		Class:    query.Get("class"),
		FuelType: query.Get("fuel_type"),
		Limit:    parseIntParam(query.Get("limit"), 30),
		Offset:   parseIntParam(query.Get("offset"), 0),
	}

	if raw := query.Get("max_price"); raw != "" {
		if maxPrice, err := strconv.ParseFloat(raw, 64); err == nil && maxPrice > 0 {
			params.MaxPrice = &maxPrice
		}
	}

	vehicles, err := h.catalogService.Search(r.Context(), params)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to search vehicles")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"vehicles": vehicles,
		"count":    len(vehicles),
	})
}

// CreateVehicle handles POST /api/vehicles
func (h *VehicleHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var vehicle entities.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.catalogService.Create(r.Context(), &vehicle); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, vehicle)
}

// UpdateVehicle handles PATCH /api/vehicles/{id}
func (h *VehicleHandler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	vehicleID := r.PathValue("id")
	if vehicleID == "" {
		respondWithError(w, http.StatusBadRequest, "vehicle ID is required")
		return
	}

	vehicle, err := h.catalogService.GetByID(r.Context(), vehicleID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(vehicle); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	vehicle.ID = vehicleID

	if err := h.catalogService.Update(r.Context(), vehicle); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, vehicle)
}

// DeleteVehicle handles DELETE /api/vehicles/{id}
func (h *VehicleHandler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	vehicleID := r.PathValue("id")
	if vehicleID == "" {
		respondWithError(w, http.StatusBadRequest, "vehicle ID is required")
		return
	}

	if err := h.catalogService.Delete(r.Context(), vehicleID); err != nil {
		respondWithServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseIntParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}

// Helper functions
func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*apperrors.AppError); ok {
		switch appErr.Type {
		case apperrors.ErrorTypeNotFound:
			respondWithError(w, http.StatusNotFound, appErr.Message)
		case apperrors.ErrorTypeValidation:
			respondWithError(w, http.StatusBadRequest, appErr.Message)
		case apperrors.ErrorTypeConflict:
			respondWithError(w, http.StatusConflict, appErr.Message)
		default:
			respondWithError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	respondWithError(w, http.StatusInternalServerError, "internal server error")
}
