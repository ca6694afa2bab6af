package scoring_test

import (
	"testing"

	"github.com/dealscout/dealscout/internal/domain"
	"github.com/dealscout/dealscout/internal/domain/scoring"
	"github.com/dealscout/dealscout/internal/domain/valuation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const refYear = 2025

func camry(price int) domain.VehicleListing {
	return domain.VehicleListing{
		Year:    domain.IntPtr(2020),
		Make:    "Toyota",
		Model:   "Camry",
		Price:   domain.IntPtr(price),
		Mileage: domain.IntPtr(60000),
	}
}

func compSet(mileage int, prices ...int) []domain.ComparableListing {
	out := make([]domain.ComparableListing, 0, len(prices))
	for _, p := range prices {
		out = append(out, domain.ComparableListing{Price: domain.IntPtr(p), Mileage: domain.IntPtr(mileage)})
	}
	return out
}

func TestDiscountScore(t *testing.T) {
	tests := []struct {
		pct  float64
		want int
	}{
		{35, 100}, {20, 100}, {19.99, 90}, {10, 90}, {5, 82}, {4.99, 72}, {0, 72},
		{-0.01, 60}, {-8, 60}, {-8.01, 48}, {-15, 48}, {-25, 32}, {-35, 18}, {-35.01, 8}, {-90, 8},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, scoring.DiscountScore(tt.pct), "pct %.2f", tt.pct)
	}
}

func TestDealLabel(t *testing.T) {
	assert.Equal(t, "Great Deal", scoring.DealLabel(80))
	assert.Equal(t, "Fair Price", scoring.DealLabel(79))
	assert.Equal(t, "Fair Price", scoring.DealLabel(65))
	assert.Equal(t, "Priced High", scoring.DealLabel(45))
	assert.Equal(t, "Overpriced", scoring.DealLabel(44))
}

func TestScoreDeal_NoPrice(t *testing.T) {
	v := camry(0)
	v.Price = nil

	got := scoring.ScoreDeal(v, domain.EvaluationInputs{}, nil, refYear)

	assert.Equal(t, domain.ScoreBreakdown{Score: 50, Label: "Unknown", Details: []string{"No price provided"}}, got.Breakdown)
	assert.Nil(t, got.EstimatedValue)
	assert.Nil(t, got.MSRPUsed)
	assert.Nil(t, got.Basis)
}

func TestScoreDeal_CompPath(t *testing.T) {
	v := camry(20000)
	v.Mileage = domain.IntPtr(50000)
	stats := valuation.ComputeCompStats(compSet(50000, 18000, 19000, 20500, 21000, 22000), 50000, domain.BodySedan, v.Make)
	require.NotNil(t, stats)

	got := scoring.ScoreDeal(v, domain.EvaluationInputs{}, stats, refYear)

	assert.Equal(t, 72, got.Breakdown.Score)
	assert.Equal(t, "Fair Price", got.Breakdown.Label)
	assert.Equal(t, []string{
		"5 comps · median $20,500 · range $19,000–$21,000",
		"Comp-adjusted market value: $20,500",
		"Asking $20,000 — $500 below comps",
	}, got.Breakdown.Details)
	require.NotNil(t, got.EstimatedValue)
	assert.Equal(t, 20500, *got.EstimatedValue)
	assert.Nil(t, got.MSRPUsed, "comp path never reports an MSRP")
	assert.IsType(t, &valuation.CompBasis{}, got.Basis)
}

func TestScoreDeal_CompPathMileageNote(t *testing.T) {
	v := domain.VehicleListing{Make: "Honda", Price: domain.IntPtr(20000), Mileage: domain.IntPtr(60000)}
	stats := valuation.ComputeCompStats(compSet(50000, 18000, 19000, 20500, 21000, 22000), 60000, domain.BodySedan, v.Make)
	require.NotNil(t, stats)

	got := scoring.ScoreDeal(v, domain.EvaluationInputs{}, stats, refYear)

	assert.Equal(t, 60, got.Breakdown.Score)
	assert.Equal(t, []string{
		"5 comps · median $20,500 · range $19,000–$21,000",
		"Avg comp mileage 50,000 mi · subject 60,000 mi → adj −$1,300 @ $0.13/mi",
		"Comp-adjusted market value: $19,200",
		"Asking $20,000 — $800 above comps",
	}, got.Breakdown.Details)
}

func TestScoreDeal_HeuristicTable(t *testing.T) {
	got := scoring.ScoreDeal(camry(20000), domain.EvaluationInputs{}, nil, refYear)

	assert.Equal(t, 32, got.Breakdown.Score)
	assert.Equal(t, "Overpriced", got.Breakdown.Label)
	assert.Equal(t, []string{
		"Est. original MSRP: $32,500 ($27,000–$38,000)",
		"5 yr old · 60,000 mi → heuristic est. $17,278",
		"Tip: add 3+ market comps above for a more accurate deal score.",
		"Asking $20,000 — $2,722 above est.",
	}, got.Breakdown.Details)
	require.NotNil(t, got.MSRPUsed)
	assert.Equal(t, 32500, *got.MSRPUsed)
	require.NotNil(t, got.EstimatedValue)
	assert.Equal(t, 17278, *got.EstimatedValue)
}

func TestScoreDeal_HeuristicOverrideAndSynthesized(t *testing.T) {
	override := scoring.ScoreDeal(camry(12000), domain.EvaluationInputs{MSRPOverride: domain.IntPtr(26000)}, nil, refYear)
	assert.Equal(t, "MSRP: $26,000 (user-provided)", override.Breakdown.Details[0])
	assert.Equal(t, 90, override.Breakdown.Score, "13822 est vs 12000 asking is 13.2% under")

	synth := scoring.ScoreDeal(domain.VehicleListing{Make: "Lada", Model: "Niva", Price: domain.IntPtr(20000)}, domain.EvaluationInputs{}, nil, refYear)
	assert.Equal(t, "No MSRP data — rough estimate $26,000", synth.Breakdown.Details[0])
	assert.Equal(t, "5 yr old · 75,000 mi → heuristic est. $12,922", synth.Breakdown.Details[1])
	require.NotNil(t, synth.MSRPUsed)
	assert.Equal(t, 26000, *synth.MSRPUsed)
}

func TestScoreDeal_ScenarioB_TwoCompsUseHeuristic(t *testing.T) {
	v := camry(20000)
	stats := valuation.ComputeCompStats(compSet(60000, 18000, 19000), 60000, domain.BodySedan, v.Make)
	require.Nil(t, stats)

	got := scoring.ScoreDeal(v, domain.EvaluationInputs{}, stats, refYear)
	assert.IsType(t, &valuation.HeuristicBasis{}, got.Basis)
	require.NotNil(t, got.MSRPUsed)
	assert.Equal(t, 32500, *got.MSRPUsed)
}

func TestScoreDeal_MonotonicInPrice(t *testing.T) {
	stats := &domain.CompStats{Count: 4, Median: 20000, P25: 18000, P75: 22000, AvgMileage: 60000, AdjustedValue: 20000, RatePerMile: 0.13}

	for _, s := range []*domain.CompStats{stats, nil} {
		prev := 101
		for price := 5000; price <= 60000; price += 250 {
			got := scoring.ScoreDeal(camry(price), domain.EvaluationInputs{}, s, refYear).Breakdown.Score
			assert.LessOrEqual(t, got, prev, "price %d", price)
			prev = got
		}
	}
}
