package valuation

import "github.com/dealscout/dealscout/internal/domain"

// Heuristic valuation constants.
const (
	ExpectedMilesPerYear = 12000
	MileageAdjPerMile    = 0.06
	HeuristicValueFloor  = 2500
	// SynthesizedMSRPFactor anchors an MSRP on the asking price when the
	// table has no entry. Low confidence.
	SynthesizedMSRPFactor = 1.3
)

// retainedMultiplier is the share of value kept during year i of ownership
// (i is zero-based). The curve flattens with age.
func retainedMultiplier(i int) float64 {
	switch {
	case i == 0:
		return 0.82
	case i == 1:
		return 0.87
	case i <= 3:
		return 0.90
	case i <= 6:
		return 0.92
	case i <= 10:
		return 0.94
	default:
		return 0.97
	}
}

// RetainedValue returns the compounded share of MSRP retained after age years.
func RetainedValue(age int) float64 {
	retained := 1.0
	for i := 0; i < age; i++ {
		retained *= retainedMultiplier(i)
	}
	return retained
}

// EstimateCurrentValue depreciates msrp by age (referenceYear - modelYear,
// floored at 0) and adjusts for miles above or below 12k per year.
func EstimateCurrentValue(msrp float64, modelYear, mileage, referenceYear int) int {
	age := max(0, referenceYear-modelYear)
	base := msrp * RetainedValue(age)

	expected := age * ExpectedMilesPerYear
	adj := float64(mileage-expected) * MileageAdjPerMile

	return max(HeuristicValueFloor, int(domain.RoundHalfUp(base-adj)))
}
