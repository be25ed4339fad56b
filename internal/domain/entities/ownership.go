package entities

// AcquisitionMethod is how the buyer pays for the vehicle.
type AcquisitionMethod string

const (
	MethodCash    AcquisitionMethod = "Cash"
	MethodFinance AcquisitionMethod = "Finance"
	MethodLease   AcquisitionMethod = "Lease"
)

// Commute type mix options
const (
	CommuteMostlyHighway = "Mostly Highway"
	CommuteMixed         = "Mixed"
	CommuteMostlyCity    = "Mostly City"
)

// Climate options
const (
	ClimateModerate = "Moderate"
	ClimateCold     = "Cold (Winter)"
	ClimateHot      = "Hot (Summer)"
)

// Terrain options
const (
	TerrainFlat        = "Flat"
	TerrainHilly       = "Hilly"
	TerrainMountainous = "Mountainous"
)

// OwnershipInputs is the flat usage and financing configuration for one cost
// projection. Optional numeric fields are pointers so that an omitted field
// can be told apart from an explicit zero; documented defaults are applied by
// the cost service, never stored back into the struct.
//
// When CommuteDist is present the habit-based mileage path is used and the
// flat AnnualMiles fallback is ignored. Exactly one of the two paths applies
// per call.
type OwnershipInputs struct {
	Years  *int              `json:"years,omitempty"`
	Method AcquisitionMethod `json:"method,omitempty"`

	// Finance
	APR         *float64 `json:"apr,omitempty"`
	TermMonths  *int     `json:"term,omitempty"`
	DownPayment *float64 `json:"down_payment,omitempty"`

	// Lease
	LeaseMonthly    *float64 `json:"lease_monthly,omitempty"`
	LeaseDue        *float64 `json:"lease_due,omitempty"`
	LeaseTermMonths *int     `json:"lease_term,omitempty"`

	// Driving habits (CommuteDist is the daily round trip in miles)
	CommuteDist      *float64 `json:"commute_dist,omitempty"`
	DaysPerWeek      *float64 `json:"days_week,omitempty"`
	RoadTripMiles    *float64 `json:"road_trip_miles,omitempty"`
	OtherWeeklyMiles *float64 `json:"other_miles,omitempty"`
	CommuteType      string   `json:"commute_type,omitempty"`

	// Flat fallback when no habit fields are supplied
	AnnualMiles *float64 `json:"annual_miles,omitempty"`

	// Environment
	Climate string `json:"climate,omitempty"`
	Terrain string `json:"terrain,omitempty"`

	// Energy prices
	GasPrice     *float64 `json:"gas_price,omitempty"`
	HomeKWhPrice *float64 `json:"elec_price,omitempty"`
	FastKWhPrice *float64 `json:"elec_price_road,omitempty"`

	DriverAge       *int     `json:"driver_age,omitempty"`
	CustomInsurance *float64 `json:"custom_insurance,omitempty"`
}

// CostBreakdown is the derived, immutable result of one cost projection.
// Field names on the wire match the figures the UI displays.
type CostBreakdown struct {
	BuyingMethod        AcquisitionMethod `json:"buying_method"`
	MonthlyPayment      float64           `json:"Monthly Payment"`
	MonthlyFuel         float64           `json:"Monthly Fuel"`
	MonthlyMaintenance  float64           `json:"Monthly Maint"`
	MonthlyInsurance    float64           `json:"Monthly Ins"`
	MonthlyDepreciation float64           `json:"Monthly Dep"`
	UpfrontCost         float64           `json:"Upfront Cost"`
	MonthlyCashFlow     float64           `json:"Monthly Cash Flow"`
	MonthlyTrueCost     float64           `json:"Monthly True Cost"`
	TotalFiveYearCost   float64           `json:"Total 5yr Cost"`
	AnnualMiles         float64           `json:"Calculated Annual Miles"`
	EstimatedMPG        float64           `json:"Est MPG"`
	ResaleValue         float64           `json:"Resale Value"`
}
