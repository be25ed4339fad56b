package services

import (
	"context"
	"math"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/entities"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/providers"
	apperrors "github.com/zatekoja/Carbuyeradvisordesign/backend/pkg/errors"
)

// Documented defaults for omitted ownership inputs
const (
	defaultYears           = 5
	defaultCommuteDist     = 20.0
	defaultDaysPerWeek     = 5.0
	defaultRoadTripMiles   = 1000.0
	defaultOtherWeekly     = 50.0
	defaultAnnualMiles     = 12000.0
	defaultGasPrice        = 3.50
	defaultHomeKWhPrice    = 0.16
	defaultFastKWhPrice    = 0.36
	defaultDriverAge       = 30
	defaultAPR             = 6.0
	defaultTermMonths      = 60
	defaultLeaseTermMonths = 36
	defaultEVRangeMiles    = 250.0

	// EPA gasoline energy equivalent, kWh per gallon
	mpgeToKWh = 33.7

	baseMaintRatePerMile = 0.09

	leaseMonthlyPriceRate = 0.012
	leaseDefaultUpfront   = 2000.0
)

// OwnershipCostService computes the monthly and multi-year cost breakdown
// for one vehicle under one set of usage and financing assumptions. Every
// sub-step is pure arithmetic; the only collaborator is the resale value
// provider, whose failures are masked by a closed-form fallback.
type OwnershipCostService struct {
	resale providers.ResaleValueProvider
}

// NewOwnershipCostService creates a new ownership cost service
func NewOwnershipCostService(resale providers.ResaleValueProvider) *OwnershipCostService {
	return &OwnershipCostService{resale: resale}
}

// Project computes the full cost breakdown. Missing optional inputs fall
// back to documented defaults and never produce an error.
func (s *OwnershipCostService) Project(ctx context.Context, vehicle *entities.Vehicle, inputs *entities.OwnershipInputs) (*entities.CostBreakdown, error) {
	if vehicle == nil {
		return nil, apperrors.NewValidationError("vehicle is required")
	}
	if inputs == nil {
		inputs = &entities.OwnershipInputs{}
	}

	method := inputs.Method
	if method == "" {
		method = entities.MethodCash
	}
	switch method {
	case entities.MethodCash, entities.MethodFinance, entities.MethodLease:
	default:
		return nil, apperrors.NewValidationError("unknown acquisition method: " + string(method))
	}

	years := intOr(inputs.Years, defaultYears)

	annualMiles, adjMPG, effModifier := s.mileageAndEfficiency(vehicle, inputs)
	monthlyFuel, monthlyMaint, monthlyIns := s.operationalCosts(ctx, vehicle, inputs, annualMiles, adjMPG, effModifier)
	monthlyPayment, monthlyDep, upfront, futureValue := s.financials(ctx, vehicle, inputs, method, years)

	monthlyOps := monthlyFuel + monthlyMaint + monthlyIns
	monthlyCashFlow := monthlyOps + monthlyPayment

	var monthlyTrueCost float64
	switch method {
	case entities.MethodFinance:
		// Total financing cost spread evenly over the term, not the
		// exact amortization curve
		term := intOr(inputs.TermMonths, defaultTermMonths)
		totalPaid := monthlyPayment*float64(term) + floatOr(inputs.DownPayment, 0)
		totalInterest := totalPaid - vehicle.Price
		avgMonthlyInterest := 0.0
		if term > 0 {
			avgMonthlyInterest = totalInterest / float64(term)
		}
		monthlyTrueCost = monthlyOps + monthlyDep + avgMonthlyInterest

	case entities.MethodLease:
		leaseTerm := intOr(inputs.LeaseTermMonths, defaultLeaseTermMonths)
		amortizedUpfront := 0.0
		if leaseTerm > 0 {
			amortizedUpfront = upfront / float64(leaseTerm)
		}
		monthlyTrueCost = monthlyOps + monthlyPayment + amortizedUpfront

	default: // Cash
		monthlyTrueCost = monthlyOps + monthlyDep
	}

	return &entities.CostBreakdown{
		BuyingMethod:        method,
		MonthlyPayment:      round2(monthlyPayment),
		MonthlyFuel:         round2(monthlyFuel),
		MonthlyMaintenance:  round2(monthlyMaint),
		MonthlyInsurance:    round2(monthlyIns),
		MonthlyDepreciation: round2(monthlyDep),
		UpfrontCost:         round2(upfront),
		MonthlyCashFlow:     round2(monthlyCashFlow),
		MonthlyTrueCost:     round2(monthlyTrueCost),
		TotalFiveYearCost:   round2(monthlyTrueCost * 60),
		AnnualMiles:         math.Round(annualMiles),
		EstimatedMPG:        round1(adjMPG),
		ResaleValue:         math.Round(futureValue),
	}, nil
}

// mileageAndEfficiency estimates annual mileage, the blended MPG figure
// and the environment efficiency modifier. The habit-based path is used
// whenever a commute distance is supplied; otherwise the flat annual
// mileage fallback applies with a fixed 55/45 city/highway blend.
func (s *OwnershipCostService) mileageAndEfficiency(vehicle *entities.Vehicle, inputs *entities.OwnershipInputs) (annualMiles, adjMPG, effModifier float64) {
	var avgMPG float64

	if inputs.CommuteDist != nil {
		commuteDailyRT := floatOr(inputs.CommuteDist, defaultCommuteDist)
		daysWeek := floatOr(inputs.DaysPerWeek, defaultDaysPerWeek)
		roadTripAnnual := floatOr(inputs.RoadTripMiles, defaultRoadTripMiles)
		otherWeekly := floatOr(inputs.OtherWeeklyMiles, defaultOtherWeekly)

		commuteAnnual := commuteDailyRT * daysWeek * 50
		otherAnnual := otherWeekly * 52
		annualMiles = commuteAnnual + roadTripAnnual + otherAnnual

		commuteHwyPct := 0.45
		switch inputs.CommuteType {
		case entities.CommuteMostlyHighway:
			commuteHwyPct = 0.85
		case entities.CommuteMostlyCity:
			commuteHwyPct = 0.15
		}

		hwyMiles := roadTripAnnual + commuteAnnual*commuteHwyPct + otherAnnual*0.2
		pctHwy := 0.5
		if annualMiles > 0 {
			pctHwy = hwyMiles / annualMiles
		}
		pctCity := 1.0 - pctHwy

		avgMPG = vehicle.CityMPG*pctCity + vehicle.HwyMPG*pctHwy
	} else {
		annualMiles = floatOr(inputs.AnnualMiles, defaultAnnualMiles)
		avgMPG = vehicle.CityMPG*0.55 + vehicle.HwyMPG*0.45
	}

	effModifier = 1.0
	switch inputs.Climate {
	case entities.ClimateCold:
		if vehicle.IsElectric() {
			effModifier *= 0.75
		} else {
			effModifier *= 0.85
		}
	case entities.ClimateHot:
		if vehicle.IsElectric() {
			effModifier *= 0.85
		} else {
			effModifier *= 0.90
		}
	}

	switch inputs.Terrain {
	case entities.TerrainHilly:
		effModifier *= 0.90
	case entities.TerrainMountainous:
		effModifier *= 0.80
	}

	return annualMiles, avgMPG * effModifier, effModifier
}

// operationalCosts computes monthly fuel/energy, maintenance and insurance.
func (s *OwnershipCostService) operationalCosts(ctx context.Context, vehicle *entities.Vehicle, inputs *entities.OwnershipInputs, annualMiles, adjMPG, effModifier float64) (monthlyFuel, monthlyMaint, monthlyIns float64) {
	if vehicle.IsElectric() {
		milesPerKWh := adjMPG / mpgeToKWh

		// Commute miles beyond the effective range charge at the fast
		// rate, as do road-trip miles. The road-trip figure here is the
		// user's declared value with no default, unlike the mileage step.
		fastChargeMiles := floatOr(inputs.RoadTripMiles, 0)
		rangeMiles := vehicle.RangeMiles
		if rangeMiles <= 0 {
			rangeMiles = defaultEVRangeMiles
		}
		rangeEst := rangeMiles * effModifier
		dailyCommute := floatOr(inputs.CommuteDist, defaultCommuteDist)

		if dailyCommute > rangeEst {
			overflowPerDay := dailyCommute - rangeEst
			daysDriven := floatOr(inputs.DaysPerWeek, defaultDaysPerWeek) * 50
			fastChargeMiles += overflowPerDay * daysDriven
		}

		homeChargeMiles := math.Max(0, annualMiles-fastChargeMiles)

		costHome := (homeChargeMiles / milesPerKWh) * floatOr(inputs.HomeKWhPrice, defaultHomeKWhPrice)
		costFast := (fastChargeMiles / milesPerKWh) * floatOr(inputs.FastKWhPrice, defaultFastKWhPrice)
		monthlyFuel = (costHome + costFast) / 12
	} else {
		monthlyFuel = (annualMiles / 12 / adjMPG) * floatOr(inputs.GasPrice, defaultGasPrice)
	}

	// Reliability scales maintenance from 2.0x at score 1 down to 0.8x
	// at score 10; luxury adds 5% per point.
	relMultiplier := 2.0 - (vehicle.ReliabilityScore-1)*(1.2/9)
	luxMultiplier := 1.0 + vehicle.LuxuryScore*0.05
	monthlyMaint = (annualMiles / 12) * baseMaintRatePerMile * relMultiplier * luxMultiplier

	if custom := floatOr(inputs.CustomInsurance, 0); custom > 0 {
		monthlyIns = custom
	} else {
		baseIns := (1200 + vehicle.Price*0.015) / 12
		driverAge := intOr(inputs.DriverAge, defaultDriverAge)

		ageFactor := 1.0
		switch {
		case driverAge < 18:
			ageFactor = 1.8
		case driverAge < 21:
			ageFactor = 1.5
		case driverAge < 25:
			ageFactor = 1.3
		case driverAge > 70:
			ageFactor = 1.2
		}

		monthlyIns = baseIns * ageFactor
	}

	return monthlyFuel, monthlyMaint, monthlyIns
}

// financials computes payment, depreciation, upfront cost and future value
// for the chosen acquisition method.
func (s *OwnershipCostService) financials(ctx context.Context, vehicle *entities.Vehicle, inputs *entities.OwnershipInputs, method entities.AcquisitionMethod, years int) (monthlyPayment, monthlyDep, upfront, futureValue float64) {
	price := vehicle.Price

	switch method {
	case entities.MethodCash:
		futureValue = s.predictValue(ctx, vehicle, years)
		monthlyDep = (price - futureValue) / float64(years*12)
		upfront = price

	case entities.MethodFinance:
		apr := floatOr(inputs.APR, defaultAPR)
		term := intOr(inputs.TermMonths, defaultTermMonths)
		downPayment := floatOr(inputs.DownPayment, 0)

		monthlyPayment = LoanPayment(price-downPayment, apr, term)
		upfront = downPayment

		futureValue = s.predictValue(ctx, vehicle, years)
		monthlyDep = (price - futureValue) / float64(years*12)

	case entities.MethodLease:
		userMonthly := floatOr(inputs.LeaseMonthly, 0)
		userDue := floatOr(inputs.LeaseDue, 0)
		userTerm := intOr(inputs.LeaseTermMonths, defaultLeaseTermMonths)

		if userMonthly > 0 {
			monthlyPayment = userMonthly
			upfront = userDue
			if userTerm > 0 {
				monthlyDep = userDue / float64(userTerm)
			}
		} else {
			monthlyPayment = price * leaseMonthlyPriceRate
			upfront = leaseDefaultUpfront
		}

		// A lease leaves no residual equity to the lessee
		futureValue = 0
	}

	return monthlyPayment, monthlyDep, upfront, futureValue
}

// predictValue asks the resale provider for a projection and falls back
// to the closed-form depreciation curve when the provider is missing or
// fails. Provider failures never surface to the caller.
func (s *OwnershipCostService) predictValue(ctx context.Context, vehicle *entities.Vehicle, years int) float64 {
	if s.resale != nil {
		value, err := s.resale.EstimateResaleValue(ctx, vehicle, years)
		if err == nil {
			return value
		}
		log.Warn().Err(err).Str("vehicle_id", vehicle.ID).Msg("Resale provider failed, using depreciation fallback")
	}

	depModifier := 1.0
	if vehicle.LuxuryScore > 7 {
		depModifier = 1.2
	}
	return vehicle.Price * math.Pow(1-0.12*depModifier, float64(years))
}

// LoanPayment converts a principal, annual percentage rate and term in
// months into a level monthly payment via standard amortization. A zero
// or negative rate degrades to straight principal division.
func LoanPayment(principal, annualRate float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	if annualRate <= 0 {
		return principal / float64(months)
	}

	monthlyRate := annualRate / 100 / 12
	factor := math.Pow(1+monthlyRate, float64(months))
	return principal * (monthlyRate * factor) / (factor - 1)
}

func floatOr(value *float64, fallback float64) float64 {
	if value != nil {
		return *value
	}
	return fallback
}

func intOr(value *int, fallback int) int {
	if value != nil {
		return *value
	}
	return fallback
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}
