package routes

import (
	"net/http"

	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/api/handlers"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/api/middleware"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	vehicleHandler        *handlers.VehicleHandler
	recommendationHandler *handlers.RecommendationHandler
	costHandler           *handlers.CostHandler
	pitchHandler          *handlers.PitchHandler

	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	vehicleHandler *handlers.VehicleHandler,
	recommendationHandler *handlers.RecommendationHandler,
	costHandler *handlers.CostHandler,
	pitchHandler *handlers.PitchHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		vehicleHandler:        vehicleHandler,
		recommendationHandler: recommendationHandler,
		costHandler:           costHandler,
		pitchHandler:          pitchHandler,

		cacheMiddleware: cacheMiddleware,
		metrics:         metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Vehicle catalog endpoints
	r.mux.HandleFunc("GET /api/vehicles", r.vehicleHandler.ListVehicles)
	r.mux.HandleFunc("GET /api/vehicles/search", r.vehicleHandler.SearchVehicles)
	r.mux.HandleFunc("GET /api/vehicles/{id}", r.vehicleHandler.GetVehicle)
	r.mux.HandleFunc("POST /api/vehicles", r.vehicleHandler.CreateVehicle)
	r.mux.HandleFunc("PATCH /api/vehicles/{id}", r.vehicleHandler.UpdateVehicle)
	r.mux.HandleFunc("DELETE /api/vehicles/{id}", r.vehicleHandler.DeleteVehicle)

	// Preference matching endpoint
	r.mux.HandleFunc("POST /api/recommendations", r.recommendationHandler.Recommend)

	// Ownership cost endpoint
	r.mux.HandleFunc("POST /api/vehicles/{id}/cost", r.costHandler.ProjectCost)

	// Sales pitch endpoint
	r.mux.HandleFunc("POST /api/vehicles/{id}/pitch", r.pitchHandler.GetPitch)

	// Apply middleware in reverse order (last middleware wraps first)
	// CORS must be outermost so cached responses also get CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	// Apply cache middleware if available
	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// Apply HTTP performance optimizations (compression, ETag, cache headers)
	handler = middleware.ResponseOptimization(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(handler)

	return handler
}
