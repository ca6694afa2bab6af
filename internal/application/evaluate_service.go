package application

import (
	"fmt"
	"log/slog"

	"github.com/dealscout/dealscout/internal/domain"
	"github.com/dealscout/dealscout/internal/domain/scoring"
	"github.com/dealscout/dealscout/internal/domain/valuation"
)

// EvaluationRequest is the document accepted by `dealscout evaluate` and the
// dealscout_evaluate tool. Comps are not validated; unusable ones are skipped.
type EvaluationRequest struct {
	Vehicle domain.VehicleListing      `json:"vehicle"`
	Inputs  domain.EvaluationInputs    `json:"inputs"`
	Comps   []domain.ComparableListing `json:"comps,omitempty"`
}

// Normalize fills defaults a questionnaire would have shown: one owner and
// unknown drivetrain and body style.
func (r *EvaluationRequest) Normalize() {
	if r.Inputs.OwnerCount == 0 {
		r.Inputs.OwnerCount = 1
	}
	if r.Inputs.Drivetrain == "" {
		r.Inputs.Drivetrain = domain.DriveUnknown
	}
	if r.Inputs.BodyStyle == "" {
		r.Inputs.BodyStyle = domain.BodyUnknown
	}
}

// EvaluateOptions controls where saved state is read from.
type EvaluateOptions struct {
	Dir        string
	SavedComps bool
}

// Evaluation is the engine result plus how it was produced.
type Evaluation struct {
	domain.ScoreResults
	ValuationBasis string `json:"valuation_basis"`
	ReferenceYear  int    `json:"reference_year"`
	CompsUsed      int    `json:"comps_used"`
	SkippedComps   int    `json:"skipped_comps"`
}

// EvaluateService orchestrates one evaluation:
// load config → merge saved comps → validate → comp stats → engine.
type EvaluateService struct {
	configLoader domain.ConfigLoader
	compStore    domain.CompStore
	validator    *Validator
	log          *slog.Logger
}

func NewEvaluateService(
	configLoader domain.ConfigLoader,
	compStore domain.CompStore,
	log *slog.Logger,
) *EvaluateService {
	return &EvaluateService{
		configLoader: configLoader,
		compStore:    compStore,
		validator:    NewValidator(),
		log:          log,
	}
}

func (s *EvaluateService) Evaluate(req EvaluationRequest, opts EvaluateOptions) (*Evaluation, error) {
	// 0. Load config
	cfg, err := s.configLoader.Load(opts.Dir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	// 1. Validate the request
	req.Normalize()
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	// 2. Merge saved comps after the inline ones
	comps := req.Comps
	if opts.SavedComps {
		saved, err := s.compStore.Load(CompsDir(cfg, opts.Dir))
		if err != nil {
			return nil, fmt.Errorf("loading saved comps: %w", err)
		}
		comps = append(append([]domain.ComparableListing(nil), comps...), saved...)
	}

	// 3. Comparable statistics
	valid := valuation.ValidComps(comps)
	skipped := len(comps) - len(valid)
	if skipped > 0 {
		s.log.Warn("skipping invalid comps", "skipped", skipped, "total", len(comps))
	}
	stats := valuation.ComputeCompStats(valid, valuation.SubjectMileage(req.Vehicle), req.Inputs.BodyStyle, req.Vehicle.Make)

	// 4. Score
	engine := scoring.NewEngine(cfg.ReferenceYear)
	res := engine.Compute(req.Vehicle, req.Inputs, stats)
	basis := scoring.ValuationBasis(res)

	s.log.Info("evaluation_complete",
		"vehicle", req.Vehicle.DisplayName(),
		"verdict", string(res.Verdict),
		"final_score", res.FinalScore,
		"valuation_basis", basis,
		"comps", len(valid),
	)

	return &Evaluation{
		ScoreResults:   res,
		ValuationBasis: basis,
		ReferenceYear:  engine.ReferenceYear(),
		CompsUsed:      len(valid),
		SkippedComps:   skipped,
	}, nil
}

// CompsDir is the directory saved comps live under: comps_dir from config
// when set, otherwise dir.
func CompsDir(cfg domain.EvaluatorConfig, dir string) string {
	if cfg.CompsDir != "" {
		return cfg.CompsDir
	}
	return dir
}
