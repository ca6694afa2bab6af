package domain

import (
	"math"
	"strconv"
	"strings"
)

// BodyStyle is the coarse body classification used by rate tables and fit rules.
type BodyStyle string

const (
	BodySedan     BodyStyle = "sedan"
	BodySUV       BodyStyle = "suv"
	BodyTruck     BodyStyle = "truck"
	BodyVan       BodyStyle = "van"
	BodyCoupe     BodyStyle = "coupe"
	BodyHatchback BodyStyle = "hatchback"
	BodyWagon     BodyStyle = "wagon"
	BodyUnknown   BodyStyle = "unknown"
)

// ValidBodyStyles enumerates all recognized body styles.
var ValidBodyStyles = []BodyStyle{
	BodySedan, BodySUV, BodyTruck, BodyVan,
	BodyCoupe, BodyHatchback, BodyWagon, BodyUnknown,
}

// UnmarshalText lowercases the value so "SUV" and "suv" are the same style.
func (b *BodyStyle) UnmarshalText(text []byte) error {
	*b = BodyStyle(strings.ToLower(strings.TrimSpace(string(text))))
	return nil
}

// OneOf reports whether b equals any of the given styles.
func (b BodyStyle) OneOf(styles ...BodyStyle) bool {
	for _, s := range styles {
		if b == s {
			return true
		}
	}
	return false
}

// Drivetrain is the driven-wheels category.
type Drivetrain string

const (
	DriveFWD     Drivetrain = "FWD"
	DriveRWD     Drivetrain = "RWD"
	DriveAWD     Drivetrain = "AWD"
	Drive4WD     Drivetrain = "4WD"
	DriveUnknown Drivetrain = "unknown"
)

// ValidDrivetrains enumerates all recognized drivetrains.
var ValidDrivetrains = []Drivetrain{DriveFWD, DriveRWD, DriveAWD, Drive4WD, DriveUnknown}

// UnmarshalText uppercases wheel codes ("awd" -> "AWD") and keeps "unknown".
func (d *Drivetrain) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if strings.EqualFold(s, string(DriveUnknown)) {
		*d = DriveUnknown
		return nil
	}
	*d = Drivetrain(strings.ToUpper(s))
	return nil
}

// OneOf reports whether d equals any of the given drivetrains.
func (d Drivetrain) OneOf(drives ...Drivetrain) bool {
	for _, v := range drives {
		if d == v {
			return true
		}
	}
	return false
}

// UseCase is a buyer-selected usage tag scored by the fit scorer.
type UseCase string

const (
	UseCommute     UseCase = "commute"
	UseFamily      UseCase = "family"
	UseOffRoad     UseCase = "off-road"
	UseReliability UseCase = "reliability"
	UseBudget      UseCase = "budget"
	UseFuelEconomy UseCase = "fuel-economy"
)

// ValidUseCases enumerates use cases in display order.
var ValidUseCases = []UseCase{
	UseCommute, UseFamily, UseOffRoad, UseReliability, UseBudget, UseFuelEconomy,
}

var useCaseAliases = map[string]UseCase{
	"offroad":      UseOffRoad,
	"off_road":     UseOffRoad,
	"mpg":          UseFuelEconomy,
	"fuel":         UseFuelEconomy,
	"fuel_economy": UseFuelEconomy,
}

// ParseUseCase resolves a tag or one of its aliases.
func ParseUseCase(s string) (UseCase, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if uc, ok := useCaseAliases[s]; ok {
		return uc, true
	}
	for _, uc := range ValidUseCases {
		if string(uc) == s {
			return uc, true
		}
	}
	return UseCase(s), false
}

// UnmarshalText accepts aliases such as "mpg" and "offroad".
func (u *UseCase) UnmarshalText(text []byte) error {
	*u, _ = ParseUseCase(string(text))
	return nil
}

// Label returns the human-readable name shown in fit rationale.
func (u UseCase) Label() string {
	switch u {
	case UseCommute:
		return "Daily Commute"
	case UseFamily:
		return "Family Use"
	case UseOffRoad:
		return "Off-Road"
	case UseReliability:
		return "Long-Term Reliability"
	case UseBudget:
		return "Budget-Friendly"
	case UseFuelEconomy:
		return "Fuel Economy"
	default:
		return string(u)
	}
}

// VehicleListing is the subject vehicle. Pointer fields distinguish
// "not extracted" from zero.
type VehicleListing struct {
	Title        string `json:"title,omitempty"`
	Year         *int   `json:"year,omitempty"         validate:"omitempty,gte=1900,lte=2100"`
	Make         string `json:"make,omitempty"`
	Model        string `json:"model,omitempty"`
	Trim         string `json:"trim,omitempty"`
	Price        *int   `json:"price,omitempty"        validate:"omitempty,gte=0"`
	Mileage      *int   `json:"mileage,omitempty"      validate:"omitempty,gte=0"`
	VIN          string `json:"vin,omitempty"`
	Description  string `json:"description,omitempty"`
	ListingURL   string `json:"listing_url,omitempty"`
	Source       string `json:"source,omitempty"       validate:"omitempty,oneof=extracted manual"`
	AccidentHint *bool  `json:"accident_hint,omitempty"`
	OwnerHint    *int   `json:"owner_hint,omitempty"   validate:"omitempty,gte=1"`
}

// DisplayName joins year, make and model, dropping empty parts.
func (v VehicleListing) DisplayName() string {
	var parts []string
	if year, ok := v.ModelYear(); ok {
		parts = append(parts, strconv.Itoa(year))
	}
	if v.Make != "" {
		parts = append(parts, v.Make)
	}
	if v.Model != "" {
		parts = append(parts, v.Model)
	}
	if len(parts) == 0 {
		return "this vehicle"
	}
	return strings.Join(parts, " ")
}

// ModelYear returns the model year. A zero year counts as not extracted.
func (v VehicleListing) ModelYear() (int, bool) {
	if v.Year == nil || *v.Year == 0 {
		return 0, false
	}
	return *v.Year, true
}

// HasPrice reports whether a usable (non-zero) asking price is present.
func (v VehicleListing) HasPrice() bool { return v.Price != nil && *v.Price != 0 }

// ComparableListing is one market comparable supplied by the caller.
type ComparableListing struct {
	ID      string `json:"id,omitempty"`
	URL     string `json:"url,omitempty"`
	Source  string `json:"source,omitempty"`
	Price   *int   `json:"price,omitempty"   validate:"omitempty,gte=0"`
	Mileage *int   `json:"mileage,omitempty" validate:"omitempty,gte=0"`
	Year    *int   `json:"year,omitempty"`
}

// MinCompPrice is the exclusive lower price bound for a usable comparable.
const MinCompPrice = 500

// IsValid reports whether the comparable can take part in statistics.
func (c ComparableListing) IsValid() bool {
	return c.Price != nil && *c.Price > MinCompPrice && c.Mileage != nil && *c.Mileage >= 0
}

// EvaluationInputs holds the buyer questionnaire answers.
type EvaluationInputs struct {
	MSRPOverride      *int       `json:"msrp_override,omitempty" validate:"omitempty,gte=0"`
	HasAccident       bool       `json:"has_accident"`
	IsSalvage         bool       `json:"is_salvage"`
	OwnerCount        int        `json:"owner_count"             validate:"gte=1"`
	IsRentalFleet     bool       `json:"is_rental_fleet"`
	HasServiceRecords bool       `json:"has_service_records"`
	UseCases          []UseCase  `json:"use_cases"               validate:"dive,oneof=commute family off-road reliability budget fuel-economy"`
	Drivetrain        Drivetrain `json:"drivetrain"              validate:"omitempty,oneof=FWD RWD AWD 4WD unknown"`
	BodyStyle         BodyStyle  `json:"body_style"              validate:"omitempty,oneof=sedan suv truck van coupe hatchback wagon unknown"`
}

// CompStats summarizes a valid comparable set. Only exists for 3+ comps.
type CompStats struct {
	Count         int     `json:"count"`
	Median        int     `json:"median"`
	P25           int     `json:"p25"`
	P75           int     `json:"p75"`
	AvgMileage    int     `json:"avg_mileage"`
	AdjustedValue int     `json:"adjusted_value"`
	RatePerMile   float64 `json:"rate_per_mile"`
}

// MinComps is the smallest comparable set that yields statistics.
const MinComps = 3

// ScoreBreakdown is one sub-score with its label and ordered rationale.
type ScoreBreakdown struct {
	Score   int      `json:"score"`
	Label   string   `json:"label"`
	Details []string `json:"details"`
}

// MarketPosition places the asking price inside the comparable range.
type MarketPosition struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Verdict is the three-way recommendation.
type Verdict string

const (
	VerdictBuy      Verdict = "BUY"
	VerdictConsider Verdict = "CONSIDER"
	VerdictPass     Verdict = "PASS"
)

// Verdict thresholds on the final score.
const (
	BuyThreshold      = 68
	ConsiderThreshold = 42
)

func VerdictFor(finalScore int) Verdict {
	switch {
	case finalScore >= BuyThreshold:
		return VerdictBuy
	case finalScore >= ConsiderThreshold:
		return VerdictConsider
	default:
		return VerdictPass
	}
}

// Sub-score weights in the final score.
const (
	DealWeight = 0.4
	RiskWeight = 0.4
	FitWeight  = 0.2
)

// ComputeFinalScore combines the three sub-scores with fixed weights.
func ComputeFinalScore(deal, risk, fit int) int {
	total := float64(deal)*DealWeight + float64(risk)*RiskWeight + float64(fit)*FitWeight
	return Clamp(int(RoundHalfUp(total)), 0, 100)
}

// ScoreResults is the complete evaluation output.
type ScoreResults struct {
	DealScore      ScoreBreakdown  `json:"deal_score"`
	RiskScore      ScoreBreakdown  `json:"risk_score"`
	FitScore       ScoreBreakdown  `json:"fit_score"`
	FinalScore     int             `json:"final_score"`
	Verdict        Verdict         `json:"verdict"`
	EstimatedValue *int            `json:"estimated_value,omitempty"`
	MSRPUsed       *int            `json:"msrp_used,omitempty"`
	CompStats      *CompStats      `json:"comp_stats,omitempty"`
	MarketPosition *MarketPosition `json:"market_position,omitempty"`
	TalkTrackShort string          `json:"talk_track_short"`
	TalkTrackEmail string          `json:"talk_track_email"`
}

// RoundHalfUp rounds to the nearest integer with halves going toward +Inf,
// so -12.5 becomes -12.
func RoundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int { return &v }

// BoolPtr returns a pointer to v.
func BoolPtr(v bool) *bool { return &v }
