package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/entities"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/repositories"
	tsclient "github.com/zatekoja/Carbuyeradvisordesign/backend/internal/infrastructure/clients/typesense"
)

// TypesenseAdapter implements keyword search over the vehicle catalog
type TypesenseAdapter struct {
	client *tsclient.Client
}

// Ensure TypesenseAdapter implements VehicleSearchRepository
var _ repositories.VehicleSearchRepository = (*TypesenseAdapter)(nil)

// NewTypesenseAdapter creates a new Typesense adapter
func NewTypesenseAdapter(client *tsclient.Client) *TypesenseAdapter {
	return &TypesenseAdapter{client: client}
}

// Index indexes a vehicle
func (a *TypesenseAdapter) Index(ctx context.Context, vehicle *entities.Vehicle) error {
	document := vehicleDocument(vehicle)

	_, err := a.client.Client().Collection(tsclient.VehiclesCollection).Documents().Upsert(ctx, document)
	if err != nil {
		return fmt.Errorf("failed to index vehicle: %w", err)
	}

	return nil
}

// Delete removes a vehicle from the index
func (a *TypesenseAdapter) Delete(ctx context.Context, id string) error {
	_, err := a.client.Client().Collection(tsclient.VehiclesCollection).Document(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle from index: %w", err)
	}
	return nil
}

// Search searches vehicles by free text over make, model, features and reviews
func (a *TypesenseAdapter) Search(ctx context.Context, params repositories.SearchParams) ([]*entities.Vehicle, error) {
	if params.Limit <= 0 {
		params.Limit = 20
	}

	query := params.Query
	if query == "" {
		query = "*"
	}

	searchParams := &api.SearchCollectionParams{
		Q:        pointer.String(query),
		QueryBy:  pointer.String("make,model,features,review_summary"),
		FilterBy: pointer.String(buildFilterBy(params)),
		Page:     pointer.Int(params.Offset/params.Limit + 1),
		PerPage:  pointer.Int(params.Limit),
	}

	result, err := a.client.Client().Collection(tsclient.VehiclesCollection).Documents().Search(ctx, searchParams)
	if err != nil {
		return nil, fmt.Errorf("failed to search vehicles: %w", err)
	}

	vehicles := []*entities.Vehicle{}
	if result.Hits == nil {
		return vehicles, nil
	}

	for _, hit := range *result.Hits {
		if hit.Document == nil {
			continue
		}
		vehicles = append(vehicles, vehicleFromDocument(*hit.Document))
	}

	return vehicles, nil
}

// buildFilterBy translates search params into a Typesense filter expression.
// Wildcard class/fuel values do not constrain the search.
func buildFilterBy(params repositories.SearchParams) string {
	filters := []string{"is_active:=true"}

	if params.Class != "" && params.Class != entities.VehicleClassAny {
		filters = append(filters, fmt.Sprintf("class:=%s", params.Class))
	}
	if params.FuelType != "" && params.FuelType != entities.FuelTypeAny {
		filters = append(filters, fmt.Sprintf("fuel_type:=%s", params.FuelType))
	}
	if params.MaxPrice != nil {
		filters = append(filters, fmt.Sprintf("price:<=%f", *params.MaxPrice))
	}

	return strings.Join(filters, " && ")
}

func vehicleDocument(vehicle *entities.Vehicle) map[string]interface{} {
	return map[string]interface{}{
		"id":             vehicle.ID,
		"make":           vehicle.Make,
		"model":          vehicle.Model,
		"year":           vehicle.Year,
		"class":          vehicle.Class,
		"fuel_type":      vehicle.FuelType,
		"price":          vehicle.Price,
		"city_mpg":       vehicle.CityMPG,
		"features":       vehicle.Features,
		"review_summary": vehicle.ReviewSummary,
		"seats":          vehicle.Seats,
		"is_active":      vehicle.IsActive,
		"created_at":     vehicle.CreatedAt.Unix(),
	}
}

// vehicleFromDocument reconstructs a partial entity from a search hit.
// Typesense returns map[string]interface{} with float64 numerics;
// missing fields stay zero-valued and callers hydrate full details
// from the repository when they need them.
func vehicleFromDocument(doc map[string]interface{}) *entities.Vehicle {
	vehicle := &entities.Vehicle{}

	if val, ok := doc["id"].(string); ok {
		vehicle.ID = val
	}
	if val, ok := doc["make"].(string); ok {
		vehicle.Make = val
	}
	if val, ok := doc["model"].(string); ok {
		vehicle.Model = val
	}
	if val, ok := doc["year"].(float64); ok {
		vehicle.Year = int(val)
	}
	if val, ok := doc["class"].(string); ok {
		vehicle.Class = val
	}
	if val, ok := doc["fuel_type"].(string); ok {
		vehicle.FuelType = val
	}
	if val, ok := doc["price"].(float64); ok {
		vehicle.Price = val
	}
	if val, ok := doc["city_mpg"].(float64); ok {
		vehicle.CityMPG = val
	}
	if val, ok := doc["features"].(string); ok {
		vehicle.Features = val
	}
	if val, ok := doc["review_summary"].(string); ok {
		vehicle.ReviewSummary = val
	}
	if val, ok := doc["seats"].(float64); ok {
		vehicle.Seats = int(val)
	}
	if val, ok := doc["is_active"].(bool); ok {
		vehicle.IsActive = val
	}

	return vehicle
}
