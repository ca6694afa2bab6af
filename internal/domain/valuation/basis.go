package valuation

import "github.com/dealscout/dealscout/internal/domain"

// Defaults applied by the heuristic path when the listing omits a field.
const (
	DefaultAgeYears = 5
	DefaultMileage  = 75000
)

// Basis is the valuation a deal score is measured against. It is either a
// *CompBasis or a *HeuristicBasis.
type Basis interface {
	EstimatedValue() int
	isBasis()
}

// CompBasis values the vehicle from comparable statistics.
type CompBasis struct {
	Stats domain.CompStats
}

func (b *CompBasis) EstimatedValue() int { return b.Stats.AdjustedValue }
func (*CompBasis) isBasis() {}

// MSRPSource records where the heuristic MSRP came from.
type MSRPSource string

const (
	MSRPFromOverride    MSRPSource = "override"
	MSRPFromTable       MSRPSource = "table"
	MSRPFromSynthesized MSRPSource = "synthesized"
)

// HeuristicBasis values the vehicle from an MSRP and the depreciation curve.
type HeuristicBasis struct {
	MSRP    int
	Source  MSRPSource
	Range   MSRPRange // only set when Source is MSRPFromTable
	Age     int
	Mileage int
	Value   int
}

func (b *HeuristicBasis) EstimatedValue() int { return b.Value }
func (*HeuristicBasis) isBasis() {}

// ResolveBasis chooses the valuation path once per evaluation: comparable
// statistics when at least domain.MinComps were valid, the heuristic
// otherwise. The synthesized MSRP is anchored on the asking price, so callers
// should only resolve a basis for priced listings.
func ResolveBasis(v domain.VehicleListing, in domain.EvaluationInputs, stats *domain.CompStats, referenceYear int) Basis {
	if stats != nil && stats.Count >= domain.MinComps {
		return &CompBasis{Stats: *stats}
	}

	year, ok := v.ModelYear()
	if !ok {
		year = referenceYear - DefaultAgeYears
	}
	mileage := DefaultMileage
	if v.Mileage != nil {
		mileage = *v.Mileage
	}
	asking := 0
	if v.Price != nil {
		asking = *v.Price
	}

	h := &HeuristicBasis{
		Age:     referenceYear - year,
		Mileage: mileage,
	}

	var tableRange MSRPRange
	var inTable bool
	if v.Make != "" && v.Model != "" {
		tableRange, inTable = LookupMSRP(v.Make, v.Model)
	}

	switch {
	case in.MSRPOverride != nil && *in.MSRPOverride > 0:
		h.MSRP = *in.MSRPOverride
		h.Source = MSRPFromOverride
	case inTable:
		h.MSRP = MidMSRP(tableRange)
		h.Source = MSRPFromTable
		h.Range = tableRange
	default:
		h.MSRP = int(domain.RoundHalfUp(float64(asking) * SynthesizedMSRPFactor))
		h.Source = MSRPFromSynthesized
	}

	h.Value = EstimateCurrentValue(float64(h.MSRP), year, mileage, referenceYear)
	return h
}
