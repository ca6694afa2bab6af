package scoring

import (
	"fmt"

	"github.com/dealscout/dealscout/internal/domain"
)

// Risk deductions in points.
const (
	SalvagePenalty           = 45
	AccidentPenalty          = 28
	AccidentOnSalvagePenalty = 5
	ExtraOwnerPenalty        = 8
	MaxOwnerPenalty          = 20
	RentalFleetPenalty       = 15
	NoServiceRecordsPenalty  = 12
	HighMileagePenalty       = 10
	ModerateMileagePenalty   = 5
	HighMileageThreshold     = 120000
	ModerateMileageThreshold = 80000
)

// RiskLabel names a risk score.
func RiskLabel(score int) string {
	switch {
	case score >= 80:
		return "Low Risk"
	case score >= 60:
		return "Moderate Risk"
	case score >= 40:
		return "Higher Risk"
	default:
		return "High Risk"
	}
}

// ScoreRisk starts at 100 and applies history deductions in a fixed order.
// Every checked condition adds one rationale line, applied or not, except
// salvage, rental and mileage which only appear when they fire.
func ScoreRisk(v domain.VehicleListing, in domain.EvaluationInputs) domain.ScoreBreakdown {
	score := 100
	var details []string

	if in.IsSalvage {
		score -= SalvagePenalty
		details = append(details, fmt.Sprintf("Salvage/rebuilt title: −%d pts", SalvagePenalty))
	}

	if in.HasAccident {
		// A salvage title already prices in most of the accident risk.
		d := AccidentPenalty
		if in.IsSalvage {
			d = AccidentOnSalvagePenalty
		}
		score -= d
		details = append(details, fmt.Sprintf("Accident reported: −%d pts", d))
	} else {
		details = append(details, "No accidents reported")
	}

	if extra := in.OwnerCount - 1; extra > 0 {
		d := min(MaxOwnerPenalty, extra*ExtraOwnerPenalty)
		score -= d
		details = append(details, fmt.Sprintf("%d owners: −%d pts", in.OwnerCount, d))
	} else {
		details = append(details, "1 owner")
	}

	if in.IsRentalFleet {
		score -= RentalFleetPenalty
		details = append(details, fmt.Sprintf("Rental/fleet use: −%d pts", RentalFleetPenalty))
	}

	if in.HasServiceRecords {
		details = append(details, "Service records available")
	} else {
		score -= NoServiceRecordsPenalty
		details = append(details, fmt.Sprintf("No service records: −%d pts", NoServiceRecordsPenalty))
	}

	if v.Mileage != nil {
		switch m := *v.Mileage; {
		case m > HighMileageThreshold:
			score -= HighMileagePenalty
			details = append(details, fmt.Sprintf("High mileage (%s mi): −%d pts", miles(m), HighMileagePenalty))
		case m > ModerateMileageThreshold:
			score -= ModerateMileagePenalty
			details = append(details, fmt.Sprintf("Moderate mileage (%s mi): −%d pts", miles(m), ModerateMileagePenalty))
		}
	}

	score = max(0, score)
	return domain.ScoreBreakdown{Score: score, Label: RiskLabel(score), Details: details}
}
