package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dealscout/dealscout/internal/adapters/outbound/tui"
	"github.com/dealscout/dealscout/internal/domain"
	"github.com/dealscout/dealscout/internal/domain/finance"
)

func sampleResults() domain.ScoreResults {
	return domain.ScoreResults{
		DealScore:      domain.ScoreBreakdown{Score: 72, Label: "Fair Price", Details: []string{"5 comps · median $20,500 · range $19,000–$21,000"}},
		RiskScore:      domain.ScoreBreakdown{Score: 100, Label: "Low Risk", Details: []string{"1 owner"}},
		FitScore:       domain.ScoreBreakdown{Score: 60, Label: "Not Evaluated", Details: []string{"No use cases selected"}},
		FinalScore:     81,
		Verdict:        domain.VerdictBuy,
		EstimatedValue: domain.IntPtr(20500),
		MarketPosition: &domain.MarketPosition{Label: "Good Deal", Color: "green"},
		TalkTrackShort: `"I've pulled 5 comps"`,
		TalkTrackEmail: "Subject: Ready to Move Forward on 2020 Toyota Camry\n\nHi,\n\nThank you",
	}
}

func TestRenderEvaluation(t *testing.T) {
	v := domain.VehicleListing{Year: domain.IntPtr(2020), Make: "Toyota", Model: "Camry"}
	output := tui.RenderEvaluation(v, sampleResults())

	assert.Contains(t, output, "81 / 100")
	assert.Contains(t, output, "BUY")
	assert.Contains(t, output, "2020 Toyota Camry")
	assert.Contains(t, output, "$20,500")
	assert.Contains(t, output, "Good Deal")
	assert.Contains(t, output, "Fair Price")
	assert.Contains(t, output, "Low Risk")
	assert.Contains(t, output, "No use cases selected")
	assert.Contains(t, output, "Subject: Ready to Move Forward")
}

func TestRenderEvaluation_HeuristicShowsMSRP(t *testing.T) {
	res := sampleResults()
	res.MarketPosition = nil
	res.MSRPUsed = domain.IntPtr(32500)

	output := tui.RenderEvaluation(domain.VehicleListing{}, res)
	assert.Contains(t, output, "MSRP basis $32,500")
	assert.Contains(t, output, "this vehicle")
	assert.NotContains(t, output, "Market position")
}

func TestRenderComps(t *testing.T) {
	assert.Contains(t, tui.RenderComps(nil), "No saved comps.")

	output := tui.RenderComps([]domain.ComparableListing{
		{ID: "0f8fad5b-d9cb-469f-a165-70867728950e", Price: domain.IntPtr(18500), Mileage: domain.IntPtr(41000), Source: "cars.com"},
		{ID: "short", Price: domain.IntPtr(300)},
	})
	assert.Contains(t, output, "0f8fad5b")
	assert.NotContains(t, output, "d9cb")
	assert.Contains(t, output, "$18,500")
	assert.Contains(t, output, "41,000 mi")
	assert.Contains(t, output, "cars.com")
	assert.Contains(t, output, "○")
}

func TestRenderCompStats(t *testing.T) {
	assert.Contains(t, tui.RenderCompStats(nil, 2), "2 valid comps; at least 3 are needed")

	output := tui.RenderCompStats(&domain.CompStats{Count: 5, Median: 20500, P25: 19000, P75: 21000, AvgMileage: 50000, AdjustedValue: 20500, RatePerMile: 0.13}, 5)
	assert.Contains(t, output, "$20,500")
	assert.Contains(t, output, "$19,000 – $21,000")
	assert.Contains(t, output, "$0.13")
}

func TestRenderPayment(t *testing.T) {
	output := tui.RenderPayment(finance.PaymentEstimate{MonthlyPayment: 432.44, AmountFinanced: 24733, TotalCost: 26733, TotalInterest: 6403, SalesTax: 773.97, TermMonths: 72})
	assert.Contains(t, output, "$432.44 / mo")
	assert.Contains(t, output, "72 months")
	assert.Contains(t, output, "$24,733.00")
}

func TestRenderExtraction(t *testing.T) {
	ok := tui.RenderExtraction(&domain.ExtractionResult{
		Success: true,
		Message: "Listing data extracted — please verify below.",
		Data:    domain.VehicleListing{Make: "Toyota", Price: domain.IntPtr(24995), AccidentHint: domain.BoolPtr(false)},
	})
	assert.Contains(t, ok, "Toyota")
	assert.Contains(t, ok, "$24,995")
	assert.Contains(t, ok, "no accidents reported")
	assert.NotContains(t, ok, "VIN")

	failed := tui.RenderExtraction(&domain.ExtractionResult{Partial: true, Error: "Site returned 403", Message: "Could not read the listing."})
	assert.Contains(t, failed, "Site returned 403: Could not read the listing.")
}
