package scoring

import (
	"fmt"

	"github.com/dealscout/dealscout/internal/domain"
	"github.com/dealscout/dealscout/internal/domain/valuation"
)

// mileageNoteThreshold is the smallest subject-vs-comp mileage gap worth a
// rationale line.
const mileageNoteThreshold = 500

// DealResult is the deal sub-score plus the valuation it was measured against.
// Basis, EstimatedValue and MSRPUsed are nil when the listing has no price.
type DealResult struct {
	Breakdown      domain.ScoreBreakdown
	Basis          valuation.Basis
	EstimatedValue *int
	MSRPUsed       *int
}

// DiscountScore maps the percent the asking price sits below the estimate
// onto the deal score step function.
func DiscountScore(discountPct float64) int {
	switch {
	case discountPct >= 20:
		return 100
	case discountPct >= 10:
		return 90
	case discountPct >= 5:
		return 82
	case discountPct >= 0:
		return 72
	case discountPct >= -8:
		return 60
	case discountPct >= -15:
		return 48
	case discountPct >= -25:
		return 32
	case discountPct >= -35:
		return 18
	default:
		return 8
	}
}

// DealLabel names a deal score.
func DealLabel(score int) string {
	switch {
	case score >= 80:
		return "Great Deal"
	case score >= 65:
		return "Fair Price"
	case score >= 45:
		return "Priced High"
	default:
		return "Overpriced"
	}
}

// DiscountPct is (estimate - asking) / estimate * 100. Positive means the
// vehicle is priced below its estimated value.
func DiscountPct(estimate, asking int) float64 {
	if estimate == 0 {
		return 0
	}
	return float64(estimate-asking) / float64(estimate) * 100
}

// ScoreDeal prices the listing against comparables when stats hold at least
// domain.MinComps entries, and against the depreciation heuristic otherwise.
func ScoreDeal(v domain.VehicleListing, in domain.EvaluationInputs, stats *domain.CompStats, referenceYear int) DealResult {
	if !v.HasPrice() {
		return DealResult{Breakdown: domain.ScoreBreakdown{
			Score:   50,
			Label:   "Unknown",
			Details: []string{"No price provided"},
		}}
	}
	asking := *v.Price

	basis := valuation.ResolveBasis(v, in, stats, referenceYear)
	estimate := basis.EstimatedValue()

	var details []string
	var msrpUsed *int
	var suffix string

	switch b := basis.(type) {
	case *valuation.CompBasis:
		details = compDetails(v, b.Stats)
		suffix = "comps"
	case *valuation.HeuristicBasis:
		details = heuristicDetails(b)
		msrpUsed = domain.IntPtr(b.MSRP)
		suffix = "est."
	}

	pct := DiscountPct(estimate, asking)
	direction := "below"
	if pct < 0 {
		direction = "above"
	}
	gap := asking - estimate
	if gap < 0 {
		gap = -gap
	}
	details = append(details, fmt.Sprintf("Asking %s — %s %s %s", dollars(asking), dollars(gap), direction, suffix))

	score := DiscountScore(pct)
	return DealResult{
		Breakdown: domain.ScoreBreakdown{
			Score:   score,
			Label:   DealLabel(score),
			Details: details,
		},
		Basis:          basis,
		EstimatedValue: domain.IntPtr(estimate),
		MSRPUsed:       msrpUsed,
	}
}

func compDetails(v domain.VehicleListing, s domain.CompStats) []string {
	details := []string{
		fmt.Sprintf("%d comps · median %s · range %s–%s", s.Count, dollars(s.Median), dollars(s.P25), dollars(s.P75)),
	}

	subject := 0
	if v.Mileage != nil {
		subject = *v.Mileage
	}
	delta := subject - s.AvgMileage
	if delta > mileageNoteThreshold || delta < -mileageNoteThreshold {
		adj := int(domain.RoundHalfUp(float64(delta) * s.RatePerMile))
		if adj < 0 {
			adj = -adj
		}
		sign := "+"
		if delta > 0 {
			sign = "−"
		}
		details = append(details, fmt.Sprintf("Avg comp mileage %s mi · subject %s mi → adj %s%s @ $%.2f/mi",
			miles(s.AvgMileage), miles(subject), sign, dollars(adj), s.RatePerMile))
	}

	return append(details, "Comp-adjusted market value: "+dollars(s.AdjustedValue))
}

func heuristicDetails(b *valuation.HeuristicBasis) []string {
	var details []string
	switch b.Source {
	case valuation.MSRPFromOverride:
		details = append(details, fmt.Sprintf("MSRP: %s (user-provided)", dollars(b.MSRP)))
	case valuation.MSRPFromTable:
		details = append(details, fmt.Sprintf("Est. original MSRP: %s (%s–%s)", dollars(b.MSRP), dollars(b.Range.Base), dollars(b.Range.High)))
	default:
		details = append(details, "No MSRP data — rough estimate "+dollars(b.MSRP))
	}
	return append(details,
		fmt.Sprintf("%d yr old · %s mi → heuristic est. %s", b.Age, miles(b.Mileage), dollars(b.Value)),
		"Tip: add 3+ market comps above for a more accurate deal score.",
	)
}
