package typesense

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/typesense/typesense-go/v2/typesense"
	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/pkg/config"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/pkg/retry"
)

const (
	VehiclesCollection = "vehicles"
)

// Client represents a Typesense client
type Client struct {
	client *typesense.Client
}

// NewClient creates a new Typesense client with exponential backoff retry
func NewClient(cfg *config.TypesenseConfig) (*Client, error) {
	client := typesense.NewClient(
		typesense.WithServer(cfg.URL),
		typesense.WithAPIKey(cfg.APIKey),
		typesense.WithConnectionTimeout(5*time.Second),
	)

	// Test connection with retry
	retryConfig := retry.DefaultConfig()
	err := retry.DoWithLog(
		context.Background(),
		retryConfig,
		"Typesense",
		func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_, err := client.Health(ctx, 2*time.Second)
			return err
		},
		func(attempt int, err error, nextDelay time.Duration) {
			log.Printf("Typesense connection attempt %d failed: %v. Retrying in %v...", attempt, err, nextDelay)
		},
	)

	if err != nil {
		return nil, fmt.Errorf("failed to connect to Typesense after retries: %w", err)
	}

	log.Println("Successfully connected to Typesense")
	return &Client{client: client}, nil
}

// Client returns the underlying Typesense client
func (c *Client) Client() *typesense.Client {
	return c.client
}

// InitSchema ensures the vehicles collection exists
func (c *Client) InitSchema(ctx context.Context) error {
	collections, err := c.client.Collections().Retrieve(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve collections: %w", err)
	}

	for _, col := range collections {
		if col.Name == VehiclesCollection {
			log.Println("Typesense collection 'vehicles' already exists")
			return nil
		}
	}

	schema := &api.CollectionSchema{
		Name: VehiclesCollection,
		Fields: []api.Field{
			{
				Name: "id",
				Type: "string",
			},
			{
				Name: "make",
				Type: "string",
			},
			{
				Name: "model",
				Type: "string",
			},
			{
				Name: "year",
				Type: "int32",
			},
			{
				Name:  "class",
				Type:  "string",
				Facet: pointer.True(),
			},
			{
				Name:  "fuel_type",
				Type:  "string",
				Facet: pointer.True(),
			},
			{
				Name:  "price",
				Type:  "float",
				Facet: pointer.True(),
			},
			{
				Name: "city_mpg",
				Type: "float",
			},
			{
				Name: "features",
				Type: "string",
			},
			{
				Name:     "review_summary",
				Type:     "string",
				Optional: pointer.True(),
			},
			{
				Name: "seats",
				Type: "int32",
			},
			{
				Name: "is_active",
				Type: "bool",
			},
			{
				Name: "created_at",
				Type: "int64",
			},
		},
		DefaultSortingField: pointer.String("created_at"),
	}

	_, err = c.client.Collections().Create(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Println("Created Typesense collection 'vehicles'")
	return nil
}
