package valuation_test

import (
	"testing"

	"github.com/dealscout/dealscout/internal/domain"
	"github.com/dealscout/dealscout/internal/domain/valuation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func camry() domain.VehicleListing {
	return domain.VehicleListing{
		Year:    domain.IntPtr(2020),
		Make:    "Toyota",
		Model:   "Camry",
		Price:   domain.IntPtr(20000),
		Mileage: domain.IntPtr(60000),
	}
}

func TestResolveBasis_Comps(t *testing.T) {
	stats := &domain.CompStats{Count: 5, Median: 20500, AdjustedValue: 20100}

	b := valuation.ResolveBasis(camry(), domain.EvaluationInputs{}, stats, 2025)

	cb, ok := b.(*valuation.CompBasis)
	require.True(t, ok)
	assert.Equal(t, 20100, cb.EstimatedValue())
}

func TestResolveBasis_ZeroYearUsesDefaultAge(t *testing.T) {
	missing := camry()
	missing.Year = nil
	zero := camry()
	zero.Year = domain.IntPtr(0)

	want := valuation.ResolveBasis(missing, domain.EvaluationInputs{}, nil, 2025)
	got := valuation.ResolveBasis(zero, domain.EvaluationInputs{}, nil, 2025)

	h, ok := got.(*valuation.HeuristicBasis)
	require.True(t, ok)
	assert.Equal(t, valuation.DefaultAgeYears, h.Age)
	assert.Equal(t, want, got)
}

func TestResolveBasis_TooFewCompsFallsBack(t *testing.T) {
	stats := &domain.CompStats{Count: 2, AdjustedValue: 99999}

	b := valuation.ResolveBasis(camry(), domain.EvaluationInputs{}, stats, 2025)

	_, ok := b.(*valuation.HeuristicBasis)
	assert.True(t, ok)
}

func TestResolveBasis_Heuristic(t *testing.T) {
	tests := []struct {
		name       string
		vehicle    domain.VehicleListing
		inputs     domain.EvaluationInputs
		wantSource valuation.MSRPSource
		wantMSRP   int
		wantValue  int
		wantAge    int
		wantMiles  int
	}{
		{
			name:       "table",
			vehicle:    camry(),
			wantSource: valuation.MSRPFromTable,
			wantMSRP:   32500,
			wantValue:  17278,
			wantAge:    5,
			wantMiles:  60000,
		},
		{
			name:       "override wins over table",
			vehicle:    camry(),
			inputs:     domain.EvaluationInputs{MSRPOverride: domain.IntPtr(26000)},
			wantSource: valuation.MSRPFromOverride,
			wantMSRP:   26000,
			wantValue:  13822,
			wantAge:    5,
			wantMiles:  60000,
		},
		{
			name:       "zero override ignored",
			vehicle:    camry(),
			inputs:     domain.EvaluationInputs{MSRPOverride: domain.IntPtr(0)},
			wantSource: valuation.MSRPFromTable,
			wantMSRP:   32500,
			wantValue:  17278,
			wantAge:    5,
			wantMiles:  60000,
		},
		{
			name:       "synthesized with defaults",
			vehicle:    domain.VehicleListing{Make: "Lada", Model: "Niva", Price: domain.IntPtr(20000)},
			wantSource: valuation.MSRPFromSynthesized,
			wantMSRP:   26000,
			wantValue:  12922,
			wantAge:    5,
			wantMiles:  75000,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valuation.ResolveBasis(tt.vehicle, tt.inputs, nil, 2025)

			hb, ok := b.(*valuation.HeuristicBasis)
			require.True(t, ok)
			assert.Equal(t, tt.wantSource, hb.Source)
			assert.Equal(t, tt.wantMSRP, hb.MSRP)
			assert.Equal(t, tt.wantValue, hb.EstimatedValue())
			assert.Equal(t, tt.wantAge, hb.Age)
			assert.Equal(t, tt.wantMiles, hb.Mileage)
		})
	}
}
