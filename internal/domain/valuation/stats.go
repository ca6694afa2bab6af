// Package valuation estimates fair market value for a used vehicle, either
// from a comparable set or from an MSRP table and depreciation curve.
package valuation

import (
	"math"
	"sort"
	"strings"

	"github.com/dealscout/dealscout/internal/domain"
)

// AdjustedValueFloor is the lowest comp-adjusted value ever reported.
const AdjustedValueFloor = 1000

// DefaultSubjectMileage stands in for a subject listing with no odometer
// reading when adjusting comparable prices.
const DefaultSubjectMileage = 60000

// SubjectMileage returns the listing's mileage or DefaultSubjectMileage.
func SubjectMileage(v domain.VehicleListing) int {
	if v.Mileage == nil {
		return DefaultSubjectMileage
	}
	return *v.Mileage
}

// Percentile returns the linear-interpolation order statistic of an
// ascending slice: index = pct/100 * (n-1), interpolated between the
// closest ranks. Empty input yields 0.
func Percentile(sorted []float64, pct float64) float64 {
	switch len(sorted) {
	case 0:
		return 0
	case 1:
		return sorted[0]
	}
	idx := pct / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))
	if lo == hi {
		return sorted[lo]
	}
	return sorted[lo] + (sorted[hi]-sorted[lo])*(idx-float64(lo))
}

// MileageRatePerMile is the dollar adjustment per mile of difference between
// the subject and the average comparable. Body-on-frame Toyota/Lexus and Jeep
// SUVs lose less per mile than their body style suggests.
func MileageRatePerMile(body domain.BodyStyle, vehicleMake string) float64 {
	m := strings.ToLower(vehicleMake)

	if strings.Contains(m, "toyota") || strings.Contains(m, "lexus") {
		if body == domain.BodySUV || body == domain.BodyTruck {
			return 0.07
		}
	}
	if strings.Contains(m, "jeep") && body == domain.BodySUV {
		return 0.07
	}

	switch body {
	case domain.BodyTruck:
		return 0.08
	case domain.BodySUV:
		return 0.10
	case domain.BodyVan:
		return 0.09
	case domain.BodyCoupe:
		return 0.11
	case domain.BodySedan, domain.BodyHatchback, domain.BodyWagon:
		return 0.13
	default:
		return 0.10
	}
}

// ValidComps returns the comparables usable for statistics, in input order.
func ValidComps(comps []domain.ComparableListing) []domain.ComparableListing {
	var valid []domain.ComparableListing
	for _, c := range comps {
		if c.IsValid() {
			valid = append(valid, c)
		}
	}
	return valid
}

// ComputeCompStats reduces a comparable set to percentile statistics and a
// mileage-adjusted value. Returns nil when fewer than domain.MinComps
// comparables are valid; callers fall back to the heuristic valuation.
func ComputeCompStats(comps []domain.ComparableListing, subjectMileage int, body domain.BodyStyle, vehicleMake string) *domain.CompStats {
	valid := ValidComps(comps)
	if len(valid) < domain.MinComps {
		return nil
	}

	prices := make([]float64, 0, len(valid))
	var mileageSum float64
	for _, c := range valid {
		prices = append(prices, float64(*c.Price))
		mileageSum += float64(*c.Mileage)
	}
	sort.Float64s(prices)
	avgMileage := mileageSum / float64(len(valid))

	median := Percentile(prices, 50)
	p25 := Percentile(prices, 25)
	p75 := Percentile(prices, 75)

	rate := MileageRatePerMile(body, vehicleMake)

	// Positive delta means the subject has more miles, so it is worth less.
	delta := float64(subjectMileage) - avgMileage
	adjusted := max(AdjustedValueFloor, int(domain.RoundHalfUp(median-delta*rate)))

	return &domain.CompStats{
		Count:         len(valid),
		Median:        int(domain.RoundHalfUp(median)),
		P25:           int(domain.RoundHalfUp(p25)),
		P75:           int(domain.RoundHalfUp(p75)),
		AvgMileage:    int(domain.RoundHalfUp(avgMileage)),
		AdjustedValue: adjusted,
		RatePerMile:   rate,
	}
}

// Market position colors.
const (
	ColorGreen = "green"
	ColorAmber = "amber"
	ColorRed   = "red"
)

// CompRangeLabel places an asking price within the comparable distribution.
func CompRangeLabel(askingPrice int, stats domain.CompStats) domain.MarketPosition {
	switch {
	case askingPrice < stats.P25:
		return domain.MarketPosition{Label: "Below Market - Great Deal", Color: ColorGreen}
	case askingPrice <= stats.Median:
		return domain.MarketPosition{Label: "Good Deal", Color: ColorGreen}
	case askingPrice <= stats.P75:
		return domain.MarketPosition{Label: "Fair Price", Color: ColorAmber}
	}
	pctOver := float64(askingPrice-stats.P75) / float64(stats.P75) * 100
	if pctOver > 15 {
		return domain.MarketPosition{Label: "Overpriced", Color: ColorRed}
	}
	return domain.MarketPosition{Label: "Priced High", Color: ColorAmber}
}
