// Package scoring turns a listing, the buyer questionnaire and optional
// comparable statistics into deal, risk and fit sub-scores, a verdict and a
// negotiation talk track.
package scoring

import (
	"time"

	"github.com/dealscout/dealscout/internal/domain"
	"github.com/dealscout/dealscout/internal/domain/valuation"
)

// Engine scores listings relative to a fixed reference year, so results do
// not drift with the clock.
type Engine struct {
	referenceYear int
}

// NewEngine returns an engine for the given reference year. A non-positive
// year means the current calendar year.
func NewEngine(referenceYear int) *Engine {
	if referenceYear <= 0 {
		referenceYear = time.Now().Year()
	}
	return &Engine{referenceYear: referenceYear}
}

// ReferenceYear is the year vehicle ages are computed against.
func (e *Engine) ReferenceYear() int { return e.referenceYear }

// Compute runs the full evaluation. Stats with fewer than domain.MinComps
// entries are treated as absent for valuation but still echoed back.
func (e *Engine) Compute(v domain.VehicleListing, in domain.EvaluationInputs, stats *domain.CompStats) domain.ScoreResults {
	deal := ScoreDeal(v, in, stats, e.referenceYear)
	risk := ScoreRisk(v, in)
	fit := ScoreFit(v, in, e.referenceYear)

	final := domain.ComputeFinalScore(deal.Breakdown.Score, risk.Score, fit.Score)
	verdict := domain.VerdictFor(final)
	track := BuildTalkTrack(v, verdict, deal.EstimatedValue, stats)

	res := domain.ScoreResults{
		DealScore:      deal.Breakdown,
		RiskScore:      risk,
		FitScore:       fit,
		FinalScore:     final,
		Verdict:        verdict,
		EstimatedValue: deal.EstimatedValue,
		MSRPUsed:       deal.MSRPUsed,
		CompStats:      stats,
		TalkTrackShort: track.Short,
		TalkTrackEmail: track.Email,
	}
	if stats != nil && v.HasPrice() {
		pos := valuation.CompRangeLabel(*v.Price, *stats)
		res.MarketPosition = &pos
	}
	return res
}

// ComputeScores evaluates against the current calendar year.
func ComputeScores(v domain.VehicleListing, in domain.EvaluationInputs, stats *domain.CompStats) domain.ScoreResults {
	return NewEngine(0).Compute(v, in, stats)
}

// ValuationBasis reports which valuation path produced a result: "comps",
// "heuristic" or "none" when the listing had no price.
func ValuationBasis(res domain.ScoreResults) string {
	switch {
	case res.EstimatedValue == nil:
		return "none"
	case res.MSRPUsed != nil:
		return "heuristic"
	default:
		return "comps"
	}
}
