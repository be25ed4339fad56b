package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/adapters/database"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/adapters/search"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/infrastructure/clients/typesense"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/pkg/config"
)

func main() {
	var reset bool
	var intervalFlag string
	flag.BoolVar(&reset, "reset", false, "delete existing Typesense collection before reindexing")
	flag.StringVar(&intervalFlag, "interval", "", "repeat interval for reindexing (e.g. 6h, 30m)")
	flag.Parse()

	intervalValue := strings.TrimSpace(intervalFlag)
	if intervalValue == "" {
		intervalValue = strings.TrimSpace(os.Getenv("REINDEX_INTERVAL"))
	}

	var interval time.Duration
	var err error
	if intervalValue != "" {
		interval, err = time.ParseDuration(intervalValue)
		if err != nil {
			log.Fatalf("Invalid interval %q: %v", intervalValue, err)
		}
		if interval <= 0 {
			log.Fatalf("Interval must be greater than zero")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	for {
		if err := indexOnce(ctx, reset); err != nil {
			log.Printf("Reindex failed: %v", err)
		}

		if interval <= 0 {
			break
		}

		reset = false
		log.Printf("Reindex complete. Next run in %s.", interval)

		select {
		case <-ctx.Done():
			log.Println("Reindexer shutting down")
			return
		case <-time.After(interval):
		}
	}
}

func indexOnce(ctx context.Context, reset bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		return err
	}
	defer pgClient.Close()

	vehicleRepo := database.NewVehicleAdapter(pgClient)

	tsClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		return err
	}

	if reset || os.Getenv("RESET_TYPESENSE") == "true" {
		log.Println("Deleting vehicles collection before reindex")
		_, err := tsClient.Client().Collection(typesense.VehiclesCollection).Delete(ctx)
		if err != nil {
			log.Printf("Warning: failed to delete collection: %v", err)
		}
	}

	if err := tsClient.InitSchema(ctx); err != nil {
		return err
	}

	searchAdapter := search.NewTypesenseAdapter(tsClient)

	vehicles, err := vehicleRepo.Catalog(ctx)
	if err != nil {
		return err
	}

	log.Printf("Indexing %d vehicles...", len(vehicles))

	for _, vehicle := range vehicles {
		if vehicle == nil {
			continue
		}

		if err := searchAdapter.Index(ctx, vehicle); err != nil {
			log.Printf("Failed to index vehicle %s: %v", vehicle.ID, err)
		} else {
			log.Printf("Indexed %d %s %s", vehicle.Year, vehicle.Make, vehicle.Model)
		}
	}

	log.Println("Indexing complete.")
	return nil
}
