package entities

import (
	"strconv"
	"time"
)

// Fuel types known to the catalog
const (
	FuelTypeGas      = "Gas"
	FuelTypeHybrid   = "Hybrid"
	FuelTypeElectric = "Electric"

	// FuelTypeAny is the wildcard used by preference queries, never stored.
	FuelTypeAny = "Any"
)

// VehicleClassAny is the wildcard body class for preference queries.
const VehicleClassAny = "Any"

// Vehicle represents one catalog entry in the system
type Vehicle struct {
	ID                string    `json:"id" db:"id"`
	Make              string    `json:"make" db:"make"`
	Model             string    `json:"model" db:"model"`
	Year              int       `json:"year" db:"year"`
	Class             string    `json:"class" db:"class"`
	Price             float64   `json:"price" db:"price"`
	CityMPG           float64   `json:"city_mpg" db:"city_mpg"`
	HwyMPG            float64   `json:"hwy_mpg" db:"hwy_mpg"`
	FuelType          string    `json:"fuel_type" db:"fuel_type"`
	ReliabilityScore  float64   `json:"reliability_score" db:"reliability_score"`
	LuxuryScore       float64   `json:"luxury_score" db:"luxury_score"`
	FunScore          float64   `json:"fun_score" db:"fun_score"`
	Features          string    `json:"features" db:"features"`
	CargoSpace        float64   `json:"cargo_space" db:"cargo_space"`
	RearLegroom       float64   `json:"rear_legroom" db:"rear_legroom"`
	Acceleration      float64   `json:"acceleration" db:"acceleration"`
	ReviewSummary     string    `json:"review_summary" db:"review_summary"`
	DriverAssistScore float64   `json:"driver_assist_score" db:"driver_assist_score"`
	DriverAssistName  string    `json:"driver_assist_name,omitempty" db:"driver_assist_name"`
	DriverAssistLink  string    `json:"driver_assist_link,omitempty" db:"driver_assist_link"`
	OffroadCapability float64   `json:"offroad_capability" db:"offroad_capability"`
	Seats             int       `json:"seats" db:"seats"`
	RangeMiles        float64   `json:"range_miles,omitempty" db:"range_miles"`
	IsActive          bool      `json:"is_active" db:"is_active"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}

// IsElectric reports whether the vehicle charges instead of refuels.
func (v *Vehicle) IsElectric() bool {
	return v.FuelType == FuelTypeElectric
}

// DisplayName returns the human-readable "2024 Toyota Prius" form.
func (v *Vehicle) DisplayName() string {
	return strconv.Itoa(v.Year) + " " + v.Make + " " + v.Model
}
