package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/adapters/cache"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/adapters/database"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/adapters/events"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/adapters/providers/resale"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/adapters/search"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/api/handlers"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/api/middleware"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/api/routes"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/application/services"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/entities"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/providers"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/repositories"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/infrastructure/clients/openai"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/infrastructure/clients/redis"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/infrastructure/clients/typesense"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/infrastructure/observability"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/pkg/config"
)

func main() {

	// Load configuration

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Env)

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	var shutdown func(context.Context) error
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err = observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Printf("Warning: Failed to set up OpenTelemetry: %v", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down OpenTelemetry: %v", err)
				}
			}()
			log.Println("OpenTelemetry initialized successfully")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL client: %v", err)
	}
	defer pgClient.Close()
	log.Println("PostgreSQL client initialized successfully")

	// Initialize Redis client
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Printf("Warning: Failed to initialize Redis client: %v", err)
		// Continue without Redis - the application can work without caching
		redisClient = nil
	} else {
		defer redisClient.Close()
		log.Println("Redis client initialized successfully")
	}

	// Initialize Typesense client
	typesenseClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		log.Printf("Warning: Failed to initialize Typesense client: %v", err)
		typesenseClient = nil
	} else {
		log.Println("Typesense client initialized successfully")
	}

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	// Initialize event bus for catalog change notifications
	var eventBus providers.EventBus
	if redisClient != nil {
		eventBus = events.NewRedisEventBus(redisClient)
		log.Println("Event bus initialized successfully")
	} else {
		log.Println("Event bus disabled (Redis not available)")
	}

	// Initialize adapters

	// Create base vehicle adapter
	baseVehicleAdapter := database.NewVehicleAdapter(pgClient)

	// Wrap with caching if Redis is available (for read performance optimization)
	var vehicleRepo repositories.VehicleRepository
	if cacheProvider != nil {
		vehicleRepo = database.NewCachedVehicleAdapter(baseVehicleAdapter, cacheProvider)
		log.Println("✓ Vehicle adapter wrapped with caching layer")
	} else {
		vehicleRepo = baseVehicleAdapter
		log.Println("⚠ Vehicle adapter running without cache (Redis unavailable)")
	}

	var searchRepo repositories.VehicleSearchRepository

	if typesenseClient != nil {

		if err := typesenseClient.InitSchema(context.Background()); err != nil {

			log.Printf("Warning: Failed to init Typesense schema: %v", err)

		}

		searchRepo = search.NewTypesenseAdapter(typesenseClient)

	}

	var resaleProvider providers.ResaleValueProvider
	switch cfg.Resale.Provider {
	case "market":
		if cfg.Resale.BaseURL == "" {
			log.Println("Warning: RESALE_API_URL is not set; using depreciation resale provider")
			resaleProvider = resale.NewDepreciationProvider()
		} else {
			resaleProvider = resale.NewMarketValueProvider(cfg.Resale.BaseURL, cfg.Resale.APIKey, cacheProvider)
		}
	default:
		resaleProvider = resale.NewDepreciationProvider()
	}

	var pitchProvider providers.PitchProvider
	if cfg.OpenAI.APIKey == "" {
		log.Println("Warning: OPENAI_API_KEY is not set; sales pitches fall back to canned copy")
	} else {
		openaiClient, err := openai.NewClient(&cfg.OpenAI)
		if err != nil {
			log.Printf("Warning: Failed to initialize OpenAI client: %v", err)
		} else {
			pitchProvider = openaiClient
		}
	}

	// Initialize services

	catalogService := services.NewCatalogService(vehicleRepo, searchRepo, eventBus)
	recommendationService := services.NewRecommendationService(vehicleRepo)
	costService := services.NewOwnershipCostService(resaleProvider)
	pitchService := services.NewPitchService(vehicleRepo, pitchProvider, cacheProvider)

	// Initialize cache invalidation service
	var cacheInvalidationService *services.CacheInvalidationService
	if cacheProvider != nil && eventBus != nil {
		cacheInvalidationService = services.NewCacheInvalidationService(cacheProvider, eventBus)
		if err := cacheInvalidationService.Start(); err != nil {
			log.Printf("Warning: Failed to start cache invalidation service: %v", err)
		} else {
			log.Println("Cache invalidation service started successfully")
		}
	}

	// Start cache warming service for improved read performance
	if cacheProvider != nil {
		warmingService := services.NewCacheWarmingService(
			vehicleRepo, // Use cached adapter to warm cache
			cacheProvider,
		)
		go warmingService.StartPeriodicWarming(ctx, 5*time.Minute)
		log.Println("✓ Cache warming service started (refreshes every 5 minutes)")
	}

	// Refit the preference matcher whenever the catalog changes
	if eventBus != nil {
		catalogEvents, err := eventBus.Subscribe(ctx, entities.CatalogChannel)
		if err != nil {
			log.Printf("Warning: Failed to subscribe to catalog events: %v", err)
		} else {
			go func() {
				for event := range catalogEvents {
					log.Printf("Catalog event %s (%s), invalidating preference matcher", event.Type, event.VehicleID)
					recommendationService.Invalidate()
				}
			}()
			log.Println("Preference matcher subscribed to catalog events")
		}
	}

	// Initialize handlers

	vehicleHandler := handlers.NewVehicleHandler(catalogService)

	recommendationHandler := handlers.NewRecommendationHandler(recommendationService)

	costHandler := handlers.NewCostHandler(catalogService, costService)

	pitchHandler := handlers.NewPitchHandler(pitchService)

	// Initialize cache middleware
	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider)
		log.Println("Cache middleware initialized successfully")
	}

	// Set up router

	router := routes.NewRouter(
		vehicleHandler,
		recommendationHandler,
		costHandler,
		pitchHandler,
		cacheMiddleware,
		metrics,
	)

	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	// Close event bus
	if eventBus != nil {
		if err := eventBus.Close(); err != nil {
			log.Printf("Error closing event bus: %v", err)
		}
	}

	// Stop cache invalidation service
	if cacheInvalidationService != nil {
		cacheInvalidationService.Stop()
	}

	log.Println("Server stopped")
}
