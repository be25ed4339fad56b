package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/entities"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/repositories"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/Carbuyeradvisordesign/backend/pkg/errors"
)

var vehicleColumns = []interface{}{
	"id", "make", "model", "year", "class", "price", "city_mpg", "hwy_mpg",
	"fuel_type", "reliability_score", "luxury_score", "fun_score", "features",
	"cargo_space", "rear_legroom", "acceleration", "review_summary",
	"driver_assist_score", "driver_assist_name", "driver_assist_link",
	"offroad_capability", "seats", "range_miles", "is_active",
	"created_at", "updated_at",
}

// VehicleAdapter implements VehicleRepository
type VehicleAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewVehicleAdapter creates a new vehicle adapter
func NewVehicleAdapter(client *postgres.Client) repositories.VehicleRepository {
	return &VehicleAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

func vehicleRecord(vehicle *entities.Vehicle) goqu.Record {
	return goqu.Record{
		"make":                vehicle.Make,
		"model":               vehicle.Model,
		"year":                vehicle.Year,
		"class":               vehicle.Class,
		"price":               vehicle.Price,
		"city_mpg":            vehicle.CityMPG,
		"hwy_mpg":             vehicle.HwyMPG,
		"fuel_type":           vehicle.FuelType,
		"reliability_score":   vehicle.ReliabilityScore,
		"luxury_score":        vehicle.LuxuryScore,
		"fun_score":           vehicle.FunScore,
		"features":            vehicle.Features,
		"cargo_space":         vehicle.CargoSpace,
		"rear_legroom":        vehicle.RearLegroom,
		"acceleration":        vehicle.Acceleration,
		"review_summary":      vehicle.ReviewSummary,
		"driver_assist_score": vehicle.DriverAssistScore,
		"driver_assist_name":  sql.NullString{String: vehicle.DriverAssistName, Valid: vehicle.DriverAssistName != ""},
		"driver_assist_link":  sql.NullString{String: vehicle.DriverAssistLink, Valid: vehicle.DriverAssistLink != ""},
		"offroad_capability":  vehicle.OffroadCapability,
		"seats":               vehicle.Seats,
		"range_miles":         sql.NullFloat64{Float64: vehicle.RangeMiles, Valid: vehicle.RangeMiles > 0},
		"is_active":           vehicle.IsActive,
		"updated_at":          vehicle.UpdatedAt,
	}
}

func scanVehicle(scan func(dest ...interface{}) error) (*entities.Vehicle, error) {
	vehicle := &entities.Vehicle{}
	var assistName, assistLink sql.NullString
	var rangeMiles sql.NullFloat64

	err := scan(
		&vehicle.ID,
		&vehicle.Make,
		&vehicle.Model,
		&vehicle.Year,
		&vehicle.Class,
		&vehicle.Price,
		&vehicle.CityMPG,
		&vehicle.HwyMPG,
		&vehicle.FuelType,
		&vehicle.ReliabilityScore,
		&vehicle.LuxuryScore,
		&vehicle.FunScore,
		&vehicle.Features,
		&vehicle.CargoSpace,
		&vehicle.RearLegroom,
		&vehicle.Acceleration,
		&vehicle.ReviewSummary,
		&vehicle.DriverAssistScore,
		&assistName,
		&assistLink,
		&vehicle.OffroadCapability,
		&vehicle.Seats,
		&rangeMiles,
		&vehicle.IsActive,
		&vehicle.CreatedAt,
		&vehicle.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	vehicle.DriverAssistName = assistName.String
	vehicle.DriverAssistLink = assistLink.String
	vehicle.RangeMiles = rangeMiles.Float64

	return vehicle, nil
}

// Create creates a new vehicle
func (a *VehicleAdapter) Create(ctx context.Context, vehicle *entities.Vehicle) error {
	record := vehicleRecord(vehicle)
	record["id"] = vehicle.ID
	record["created_at"] = vehicle.CreatedAt

	query, args, err := a.db.Insert("vehicles").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	_, err = a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create vehicle", err)
	}

	return nil
}

// GetByID retrieves a vehicle by ID
func (a *VehicleAdapter) GetByID(ctx context.Context, id string) (*entities.Vehicle, error) {
	query, args, err := a.db.Select(vehicleColumns...).
		From("vehicles").
		Where(goqu.Ex{"id": id}).
		ToSQL()

	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	row := a.client.DB().QueryRowContext(ctx, query, args...)
	vehicle, err := scanVehicle(row.Scan)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("vehicle with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get vehicle", err)
	}

	return vehicle, nil
}

// GetByIDs retrieves multiple vehicles by their IDs
func (a *VehicleAdapter) GetByIDs(ctx context.Context, ids []string) ([]*entities.Vehicle, error) {
	if len(ids) == 0 {
		return []*entities.Vehicle{}, nil
	}

	query, args, err := a.db.Select(vehicleColumns...).
		From("vehicles").
		Where(goqu.Ex{"id": ids}).
		ToSQL()

	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	return a.queryVehicles(ctx, query, args...)
}

// Update updates a vehicle
func (a *VehicleAdapter) Update(ctx context.Context, vehicle *entities.Vehicle) error {
	vehicle.UpdatedAt = time.Now()

	query, args, err := a.db.Update("vehicles").
		Set(vehicleRecord(vehicle)).
		Where(goqu.Ex{"id": vehicle.ID}).
		ToSQL()

	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update vehicle", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("vehicle with id %s not found", vehicle.ID))
	}

	return nil
}

// Delete deletes a vehicle
func (a *VehicleAdapter) Delete(ctx context.Context, id string) error {
	// Soft delete
	query, args, err := a.db.Update("vehicles").
		Set(goqu.Record{
			"is_active":  false,
			"updated_at": time.Now(),
		}).
		Where(goqu.Ex{"id": id}).
		ToSQL()

	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete vehicle", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("vehicle with id %s not found", id))
	}

	return nil
}

// List retrieves vehicles with filters
func (a *VehicleAdapter) List(ctx context.Context, filter repositories.VehicleFilter) ([]*entities.Vehicle, error) {
	ds := a.db.Select(vehicleColumns...).From("vehicles")

	if filter.Class != "" && filter.Class != entities.VehicleClassAny {
		ds = ds.Where(goqu.Ex{"class": filter.Class})
	}

	if filter.FuelType != "" && filter.FuelType != entities.FuelTypeAny {
		ds = ds.Where(goqu.Ex{"fuel_type": filter.FuelType})
	}

	if filter.MaxPrice != nil {
		ds = ds.Where(goqu.I("price").Lte(*filter.MaxPrice))
	}

	if filter.IsActive != nil {
		ds = ds.Where(goqu.Ex{"is_active": *filter.IsActive})
	}

	ds = ds.Order(goqu.I("make").Asc(), goqu.I("model").Asc())

	if filter.Limit > 0 {
		ds = ds.Limit(uint(filter.Limit))
	}

	if filter.Offset > 0 {
		ds = ds.Offset(uint(filter.Offset))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	return a.queryVehicles(ctx, query, args...)
}

// Catalog returns every active vehicle in stable insertion order. The
// recommendation transformer is fitted against this snapshot, so the
// ordering must not change between calls on an unchanged catalog.
func (a *VehicleAdapter) Catalog(ctx context.Context) ([]*entities.Vehicle, error) {
	query, args, err := a.db.Select(vehicleColumns...).
		From("vehicles").
		Where(goqu.Ex{"is_active": true}).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		ToSQL()

	if err != nil {
		return nil, apperrors.NewInternalError("failed to build catalog query", err)
	}

	return a.queryVehicles(ctx, query, args...)
}

func (a *VehicleAdapter) queryVehicles(ctx context.Context, query string, args ...interface{}) ([]*entities.Vehicle, error) {
	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to query vehicles", err)
	}
	defer rows.Close()

	var vehicles []*entities.Vehicle
	for rows.Next() {
		vehicle, err := scanVehicle(rows.Scan)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan vehicle", err)
		}
		vehicles = append(vehicles, vehicle)
	}

	if err = rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating vehicles", err)
	}

	return vehicles, nil
}
