package repositories

import (
	"context"

	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/entities"
)

// VehicleRepository defines the interface for vehicle catalog data operations
type VehicleRepository interface {
	// Create creates a new vehicle
	Create(ctx context.Context, vehicle *entities.Vehicle) error

	// GetByID retrieves a vehicle by ID
	GetByID(ctx context.Context, id string) (*entities.Vehicle, error)

	// GetByIDs retrieves multiple vehicles by their IDs
	GetByIDs(ctx context.Context, ids []string) ([]*entities.Vehicle, error)

	// Update updates a vehicle
	Update(ctx context.Context, vehicle *entities.Vehicle) error

	// Delete deletes a vehicle (soft delete)
	Delete(ctx context.Context, id string) error

	// List retrieves vehicles with filters
	List(ctx context.Context, filter VehicleFilter) ([]*entities.Vehicle, error)

	// Catalog returns the full active vehicle set, in stable insertion order.
	// The preference matcher fits its transformer against this snapshot.
	Catalog(ctx context.Context) ([]*entities.Vehicle, error)
}

// VehicleSearchRepository defines keyword search over the catalog (e.g. Typesense)
type VehicleSearchRepository interface {
	// Search searches vehicles by free text over features and review summaries
	Search(ctx context.Context, params SearchParams) ([]*entities.Vehicle, error)

	// Index indexes a vehicle
	Index(ctx context.Context, vehicle *entities.Vehicle) error

	// Delete removes a vehicle from the index
	Delete(ctx context.Context, id string) error
}

// VehicleFilter defines filters for listing vehicles
type VehicleFilter struct {
	Class    string
	FuelType string
	MaxPrice *float64
	IsActive *bool
	Limit    int
	Offset   int
}

// SearchParams defines parameters for keyword search
type SearchParams struct {
	Query    string
	Class    string
	FuelType string
	MaxPrice *float64
	Limit    int
	Offset   int
}
