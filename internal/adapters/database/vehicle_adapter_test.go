package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/entities"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/repositories"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/Carbuyeradvisordesign/backend/pkg/errors"
)

func setupVehicleAdapter(t *testing.T) (repositories.VehicleRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewVehicleAdapter(postgres.NewClientWithDB(db)), mock
}

func vehicleRows(vehicles ...*entities.Vehicle) *sqlmock.Rows {
	cols := make([]string, len(vehicleColumns))
	for i, c := range vehicleColumns {
		cols[i] = c.(string)
	}
	rows := sqlmock.NewRows(cols)
	for _, v := range vehicles {
		rows.AddRow(
			v.ID, v.Make, v.Model, v.Year, v.Class, v.Price, v.CityMPG, v.HwyMPG,
			v.FuelType, v.ReliabilityScore, v.LuxuryScore, v.FunScore, v.Features,
			v.CargoSpace, v.RearLegroom, v.Acceleration, v.ReviewSummary,
			v.DriverAssistScore, v.DriverAssistName, v.DriverAssistLink,
			v.OffroadCapability, v.Seats, v.RangeMiles, v.IsActive,
			v.CreatedAt, v.UpdatedAt,
		)
	}
	return rows
}

func sampleVehicle(id string) *entities.Vehicle {
	now := time.Now()
	return &entities.Vehicle{
		ID:               id,
		Make:             "Honda",
		Model:            "CR-V",
		Year:             2024,
		Class:            "SUV",
		Price:            33000,
		CityMPG:          28,
		HwyMPG:           34,
		FuelType:         entities.FuelTypeGas,
		ReliabilityScore: 8.5,
		LuxuryScore:      5,
		FunScore:         4,
		Features:         "Honda Sensing, Hands-Free Power Tailgate",
		CargoSpace:       39.3,
		RearLegroom:      41,
		Acceleration:     8.7,
		ReviewSummary:    "Pros: Roomy. Cons: Droning CVT.",
		Seats:            5,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func TestVehicleAdapter_GetByID(t *testing.T) {
	adapter, mock := setupVehicleAdapter(t)

	mock.ExpectQuery(`SELECT .+ FROM "vehicles"`).
		WillReturnRows(vehicleRows(sampleVehicle("veh-1")))

	vehicle, err := adapter.GetByID(context.Background(), "veh-1")
	require.NoError(t, err)
	assert.Equal(t, "veh-1", vehicle.ID)
	assert.Equal(t, "Honda", vehicle.Make)
	assert.Equal(t, 39.3, vehicle.CargoSpace)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleAdapter_GetByID_NotFound(t *testing.T) {
	adapter, mock := setupVehicleAdapter(t)

	mock.ExpectQuery(`SELECT .+ FROM "vehicles"`).
		WillReturnRows(vehicleRows())

	vehicle, err := adapter.GetByID(context.Background(), "missing")
	assert.Nil(t, vehicle)
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
}

func TestVehicleAdapter_Create(t *testing.T) {
	adapter, mock := setupVehicleAdapter(t)

	mock.ExpectExec(`INSERT INTO "vehicles"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := adapter.Create(context.Background(), sampleVehicle("veh-1"))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleAdapter_Delete_SoftDeletes(t *testing.T) {
	adapter, mock := setupVehicleAdapter(t)

	mock.ExpectExec(`UPDATE "vehicles" SET .*"is_active"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := adapter.Delete(context.Background(), "veh-1")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleAdapter_Delete_NotFound(t *testing.T) {
	adapter, mock := setupVehicleAdapter(t)

	mock.ExpectExec(`UPDATE "vehicles"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := adapter.Delete(context.Background(), "missing")
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
}

func TestVehicleAdapter_List_Filters(t *testing.T) {
	adapter, mock := setupVehicleAdapter(t)

	mock.ExpectQuery(`SELECT .+ FROM "vehicles" WHERE .+"class"`).
		WillReturnRows(vehicleRows(sampleVehicle("veh-1")))

	maxPrice := 40000.0
	vehicles, err := adapter.List(context.Background(), repositories.VehicleFilter{
		Class:    "SUV",
		MaxPrice: &maxPrice,
		Limit:    10,
	})
	require.NoError(t, err)
	assert.Len(t, vehicles, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleAdapter_List_WildcardsIgnored(t *testing.T) {
	adapter, mock := setupVehicleAdapter(t)

	// "Any" must not constrain the query
	mock.ExpectQuery(`SELECT .+ FROM "vehicles" ORDER BY`).
		WillReturnRows(vehicleRows(sampleVehicle("veh-1"), sampleVehicle("veh-2")))

	vehicles, err := adapter.List(context.Background(), repositories.VehicleFilter{
		Class:    entities.VehicleClassAny,
		FuelType: entities.FuelTypeAny,
	})
	require.NoError(t, err)
	assert.Len(t, vehicles, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleAdapter_Catalog_ActiveOnly(t *testing.T) {
	adapter, mock := setupVehicleAdapter(t)

	mock.ExpectQuery(`SELECT .+ FROM "vehicles" WHERE .+"is_active"`).
		WillReturnRows(vehicleRows(sampleVehicle("veh-1")))

	vehicles, err := adapter.Catalog(context.Background())
	require.NoError(t, err)
	assert.Len(t, vehicles, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleAdapter_GetByIDs_Empty(t *testing.T) {
	adapter, _ := setupVehicleAdapter(t)

	vehicles, err := adapter.GetByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, vehicles)
}
