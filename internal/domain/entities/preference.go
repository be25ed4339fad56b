package entities

// PreferenceQuery is the target point a buyer describes. It mirrors the
// numeric and categorical feature set of a Vehicle but does not represent a
// real catalog row. Missing fields default to neutral values so a partially
// filled form still produces a usable query.
type PreferenceQuery struct {
	Class             string  `json:"class,omitempty"`
	FuelType          string  `json:"fuel_type,omitempty"`
	Price             float64 `json:"price,omitempty"`
	CityMPG           float64 `json:"city_mpg,omitempty"`
	ReliabilityScore  float64 `json:"reliability_score,omitempty"`
	LuxuryScore       float64 `json:"luxury_score,omitempty"`
	FunScore          float64 `json:"fun_score,omitempty"`
	Acceleration      float64 `json:"acceleration,omitempty"`
	RearLegroom       float64 `json:"rear_legroom,omitempty"`
	CargoSpace        float64 `json:"cargo_space,omitempty"`
	DriverAssistScore float64 `json:"driver_assist_score,omitempty"`
	OffroadCapability float64 `json:"offroad_capability,omitempty"`
	Seats             float64 `json:"seats,omitempty"`
}

// ApplyDefaults fills unset categorical fields with the "Any" wildcard.
// Unset numerics stay at zero, which is the documented neutral value.
func (q *PreferenceQuery) ApplyDefaults() {
	if q.Class == "" {
		q.Class = VehicleClassAny
	}
	if q.FuelType == "" {
		q.FuelType = FuelTypeAny
	}
}
