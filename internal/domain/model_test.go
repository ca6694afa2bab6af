package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/dealscout/dealscout/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerdictFor(t *testing.T) {
	tests := []struct {
		score int
		want  domain.Verdict
	}{
		{100, domain.VerdictBuy}, {68, domain.VerdictBuy}, {67, domain.VerdictConsider},
		{42, domain.VerdictConsider}, {41, domain.VerdictPass}, {0, domain.VerdictPass},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.VerdictFor(tt.score), "score %d", tt.score)
	}
}

func TestComputeFinalScore(t *testing.T) {
	assert.Equal(t, 81, domain.ComputeFinalScore(72, 100, 60))
	assert.Equal(t, 65, domain.ComputeFinalScore(32, 100, 60))
	assert.Equal(t, 100, domain.ComputeFinalScore(100, 100, 100))
	assert.Equal(t, 0, domain.ComputeFinalScore(0, 0, 0))
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 3.0, domain.RoundHalfUp(2.5))
	assert.Equal(t, -2.0, domain.RoundHalfUp(-2.5))
	assert.Equal(t, -3.0, domain.RoundHalfUp(-2.6))
	assert.Equal(t, 2.0, domain.RoundHalfUp(2.49))
}

func TestParseUseCase(t *testing.T) {
	tests := []struct {
		in     string
		want   domain.UseCase
		wantOK bool
	}{
		{"commute", domain.UseCommute, true},
		{"Family", domain.UseFamily, true},
		{"offroad", domain.UseOffRoad, true},
		{"off-road", domain.UseOffRoad, true},
		{"mpg", domain.UseFuelEconomy, true},
		{" fuel-economy ", domain.UseFuelEconomy, true},
		{"towing", domain.UseCase("towing"), false},
	}
	for _, tt := range tests {
		got, ok := domain.ParseUseCase(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
	}
}

func TestEvaluationInputs_UnmarshalNormalizesEnums(t *testing.T) {
	var in domain.EvaluationInputs
	err := json.Unmarshal([]byte(`{"owner_count":2,"use_cases":["mpg","offroad"],"drivetrain":"awd","body_style":"SUV"}`), &in)
	require.NoError(t, err)

	assert.Equal(t, []domain.UseCase{domain.UseFuelEconomy, domain.UseOffRoad}, in.UseCases)
	assert.Equal(t, domain.DriveAWD, in.Drivetrain)
	assert.Equal(t, domain.BodySUV, in.BodyStyle)

	require.NoError(t, json.Unmarshal([]byte(`{"drivetrain":"Unknown"}`), &in))
	assert.Equal(t, domain.DriveUnknown, in.Drivetrain)
}

func TestUseCase_Label(t *testing.T) {
	assert.Equal(t, "Daily Commute", domain.UseCommute.Label())
	assert.Equal(t, "Long-Term Reliability", domain.UseReliability.Label())
	assert.Equal(t, "Fuel Economy", domain.UseFuelEconomy.Label())
}

func TestVehicleListing_DisplayName(t *testing.T) {
	assert.Equal(t, "2019 Honda Civic", domain.VehicleListing{Year: domain.IntPtr(2019), Make: "Honda", Model: "Civic"}.DisplayName())
	assert.Equal(t, "Honda Civic", domain.VehicleListing{Make: "Honda", Model: "Civic"}.DisplayName())
	assert.Equal(t, "2019", domain.VehicleListing{Year: domain.IntPtr(2019)}.DisplayName())
	assert.Equal(t, "this vehicle", domain.VehicleListing{}.DisplayName())
	assert.Equal(t, "Honda Civic", domain.VehicleListing{Year: domain.IntPtr(0), Make: "Honda", Model: "Civic"}.DisplayName())
}

func TestVehicleListing_ModelYear(t *testing.T) {
	tests := []struct {
		name   string
		year   *int
		want   int
		wantOK bool
	}{
		{"set", domain.IntPtr(2019), 2019, true},
		{"missing", nil, 0, false},
		{"zero", domain.IntPtr(0), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := domain.VehicleListing{Year: tt.year}.ModelYear()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComparableListing_IsValid(t *testing.T) {
	tests := []struct {
		name string
		c    domain.ComparableListing
		want bool
	}{
		{"valid", domain.ComparableListing{Price: domain.IntPtr(501), Mileage: domain.IntPtr(0)}, true},
		{"price at bound", domain.ComparableListing{Price: domain.IntPtr(500), Mileage: domain.IntPtr(10)}, false},
		{"no price", domain.ComparableListing{Mileage: domain.IntPtr(10)}, false},
		{"no mileage", domain.ComparableListing{Price: domain.IntPtr(9000)}, false},
		{"negative mileage", domain.ComparableListing{Price: domain.IntPtr(9000), Mileage: domain.IntPtr(-5)}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.c.IsValid(), tt.name)
	}
}

func TestScoreResults_JSONShape(t *testing.T) {
	res := domain.ScoreResults{FinalScore: 70, Verdict: domain.VerdictBuy, EstimatedValue: domain.IntPtr(20000)}

	data, err := json.Marshal(res)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "BUY", m["verdict"])
	assert.EqualValues(t, 20000, m["estimated_value"])
	assert.NotContains(t, m, "msrp_used")
	assert.NotContains(t, m, "comp_stats")
	assert.Contains(t, m, "deal_score")
}
