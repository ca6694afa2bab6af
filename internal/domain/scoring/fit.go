package scoring

import (
	"fmt"
	"strings"

	"github.com/dealscout/dealscout/internal/domain"
	"github.com/dealscout/dealscout/internal/domain/valuation"
)

// Stand-ins for missing listing fields when rating use cases.
const (
	fitDefaultMileage = 60000
	fitDefaultYear    = 2018
	fitDefaultPrice   = 25000
)

var (
	offRoadMakes = []string{"jeep", "toyota", "ford", "ram", "chevrolet", "gmc", "subaru"}
	hybridMakes  = []string{"toyota", "honda", "hyundai", "kia", "ford"}
)

// FitLabel names a fit score.
func FitLabel(score int) string {
	switch {
	case score >= 80:
		return "Great Fit"
	case score >= 60:
		return "Good Fit"
	case score >= 40:
		return "Partial Fit"
	default:
		return "Poor Fit"
	}
}

type fitContext struct {
	body    domain.BodyStyle
	drive   domain.Drivetrain
	make    string
	mileage int
	price   int
	age     int
}

func newFitContext(v domain.VehicleListing, in domain.EvaluationInputs, referenceYear int) fitContext {
	c := fitContext{
		body:    in.BodyStyle,
		drive:   in.Drivetrain,
		make:    v.Make,
		mileage: fitDefaultMileage,
		price:   fitDefaultPrice,
	}
	if v.Mileage != nil {
		c.mileage = *v.Mileage
	}
	if v.HasPrice() {
		c.price = *v.Price
	}
	year, ok := v.ModelYear()
	if !ok {
		year = fitDefaultYear
	}
	c.age = referenceYear - year
	return c
}

func makeIn(vehicleMake string, makes []string) bool {
	m := strings.ToLower(vehicleMake)
	for _, candidate := range makes {
		if strings.Contains(m, candidate) {
			return true
		}
	}
	return false
}

// ScoreUseCase rates how well the vehicle suits a single use case.
func ScoreUseCase(uc domain.UseCase, v domain.VehicleListing, in domain.EvaluationInputs, referenceYear int) int {
	c := newFitContext(v, in, referenceYear)

	switch uc {
	case domain.UseCommute:
		s := 70
		if c.body.OneOf(domain.BodySedan, domain.BodyHatchback, domain.BodyWagon) {
			s += 15
		}
		if c.drive.OneOf(domain.DriveFWD, domain.DriveAWD) {
			s += 5
		}
		if c.mileage < 60000 {
			s += 10
		}
		if c.body == domain.BodyTruck {
			s -= 15
		}
		return min(100, s)

	case domain.UseFamily:
		s := 60
		if c.body.OneOf(domain.BodySUV, domain.BodyVan) {
			s += 25
		}
		if c.body == domain.BodyTruck {
			s += 5
		}
		if c.drive.OneOf(domain.DriveAWD, domain.Drive4WD) {
			s += 10
		}
		if c.mileage < 80000 {
			s += 5
		}
		if c.body.OneOf(domain.BodySedan, domain.BodyCoupe) {
			s -= 10
		}
		return min(100, s)

	case domain.UseOffRoad:
		s := 20
		if c.drive.OneOf(domain.Drive4WD, domain.DriveAWD) {
			s += 40
		}
		if c.drive == domain.Drive4WD {
			s += 10
		}
		if c.body.OneOf(domain.BodySUV, domain.BodyTruck) {
			s += 20
		}
		if makeIn(c.make, offRoadMakes) {
			s += 10
		}
		return min(100, s)

	case domain.UseReliability:
		s := valuation.ReliabilityScore(c.make)
		if c.mileage < 50000 {
			s = min(100, s+5)
		} else if c.mileage > 120000 {
			s = max(0, s-15)
		}
		if c.age < 5 {
			s = min(100, s+5)
		} else if c.age > 10 {
			s = max(0, s-10)
		}
		return s

	case domain.UseBudget:
		switch {
		case c.price <= 10000:
			return 100
		case c.price <= 15000:
			return 90
		case c.price <= 20000:
			return 78
		case c.price <= 28000:
			return 65
		case c.price <= 38000:
			return 50
		case c.price <= 50000:
			return 35
		default:
			return 20
		}

	case domain.UseFuelEconomy:
		s := 60
		switch c.body {
		case domain.BodySedan, domain.BodyHatchback:
			s += 25
		case domain.BodyWagon:
			s += 15
		case domain.BodySUV:
			s += 5
		case domain.BodyVan:
			s -= 5
		case domain.BodyTruck:
			s -= 15
		}
		switch c.drive {
		case domain.DriveAWD:
			s -= 5
		case domain.Drive4WD:
			s -= 10
		}
		if makeIn(c.make, hybridMakes) {
			s += 5
		}
		return domain.Clamp(s, 0, 100)

	default:
		return 60
	}
}

// ScoreFit averages the per-use-case scores. With no use cases selected the
// fit is neutral and unevaluated.
func ScoreFit(v domain.VehicleListing, in domain.EvaluationInputs, referenceYear int) domain.ScoreBreakdown {
	if len(in.UseCases) == 0 {
		return domain.ScoreBreakdown{Score: 60, Label: "Not Evaluated", Details: []string{"No use cases selected"}}
	}

	details := make([]string, 0, len(in.UseCases))
	total := 0
	for _, uc := range in.UseCases {
		s := ScoreUseCase(uc, v, in, referenceYear)
		total += s
		details = append(details, fmt.Sprintf("%s: %d", uc.Label(), s))
	}

	avg := int(domain.RoundHalfUp(float64(total) / float64(len(in.UseCases))))
	return domain.ScoreBreakdown{Score: avg, Label: FitLabel(avg), Details: details}
}
