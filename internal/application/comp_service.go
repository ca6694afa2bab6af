package application

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dealscout/dealscout/internal/domain"
	"github.com/dealscout/dealscout/internal/domain/valuation"
)

// CompSummary describes a comparable set and its statistics. Stats is nil
// when fewer than domain.MinComps comps are valid.
type CompSummary struct {
	Total int               `json:"total"`
	Valid int               `json:"valid"`
	Stats *domain.CompStats `json:"stats,omitempty"`
}

// Summarize computes statistics for comps against a subject listing.
func Summarize(comps []domain.ComparableListing, subject domain.VehicleListing, body domain.BodyStyle) CompSummary {
	valid := valuation.ValidComps(comps)
	return CompSummary{
		Total: len(comps),
		Valid: len(valid),
		Stats: valuation.ComputeCompStats(valid, valuation.SubjectMileage(subject), body, subject.Make),
	}
}

// CompService manages the saved comparable set.
type CompService struct {
	configLoader domain.ConfigLoader
	store        domain.CompStore
	validator    *Validator
	log          *slog.Logger
}

func NewCompService(configLoader domain.ConfigLoader, store domain.CompStore, log *slog.Logger) *CompService {
	return &CompService{
		configLoader: configLoader,
		store:        store,
		validator:    NewValidator(),
		log:          log,
	}
}

func (s *CompService) dir(dir string) (string, error) {
	cfg, err := s.configLoader.Load(dir)
	if err != nil {
		return "", fmt.Errorf("loading config: %w", err)
	}
	return CompsDir(cfg, dir), nil
}

// Add appends comps to the saved set and returns them with their new ids.
func (s *CompService) Add(dir string, comps ...domain.ComparableListing) ([]domain.ComparableListing, error) {
	for i, c := range comps {
		if err := s.validator.Struct(c); err != nil {
			return nil, fmt.Errorf("comp %d: %w", i+1, err)
		}
		if !c.IsValid() {
			s.log.Warn("saving comp that cannot be used for statistics", "index", i+1)
		}
	}

	storeDir, err := s.dir(dir)
	if err != nil {
		return nil, err
	}
	existing, err := s.store.Load(storeDir)
	if err != nil {
		return nil, fmt.Errorf("loading saved comps: %w", err)
	}

	all := append(existing, comps...)
	for i := len(existing); i < len(all); i++ {
		all[i].ID = ""
	}
	if err := s.store.Save(storeDir, all); err != nil {
		return nil, fmt.Errorf("saving comps: %w", err)
	}

	s.log.Info("comps_saved", "added", len(comps), "total", len(all))
	return all[len(existing):], nil
}

// List returns the saved comps in insertion order.
func (s *CompService) List(dir string) ([]domain.ComparableListing, error) {
	storeDir, err := s.dir(dir)
	if err != nil {
		return nil, err
	}
	comps, err := s.store.Load(storeDir)
	if err != nil {
		return nil, fmt.Errorf("loading saved comps: %w", err)
	}
	return comps, nil
}

// Remove deletes the comp whose id equals or uniquely starts with id.
func (s *CompService) Remove(dir, id string) (domain.ComparableListing, error) {
	if strings.TrimSpace(id) == "" {
		return domain.ComparableListing{}, fmt.Errorf("comp id is required")
	}

	storeDir, err := s.dir(dir)
	if err != nil {
		return domain.ComparableListing{}, err
	}
	comps, err := s.store.Load(storeDir)
	if err != nil {
		return domain.ComparableListing{}, fmt.Errorf("loading saved comps: %w", err)
	}

	idx := -1
	for i, c := range comps {
		if c.ID == id {
			idx = i
			break
		}
		if strings.HasPrefix(c.ID, id) {
			if idx >= 0 {
				return domain.ComparableListing{}, fmt.Errorf("comp id %q is ambiguous", id)
			}
			idx = i
		}
	}
	if idx < 0 {
		return domain.ComparableListing{}, fmt.Errorf("no saved comp with id %q", id)
	}

	removed := comps[idx]
	comps = append(comps[:idx], comps[idx+1:]...)
	if err := s.store.Save(storeDir, comps); err != nil {
		return domain.ComparableListing{}, fmt.Errorf("saving comps: %w", err)
	}
	return removed, nil
}

// Clear deletes the saved set.
func (s *CompService) Clear(dir string) error {
	storeDir, err := s.dir(dir)
	if err != nil {
		return err
	}
	if err := s.store.Clear(storeDir); err != nil {
		return fmt.Errorf("clearing comps: %w", err)
	}
	return nil
}

// Stats summarizes the saved set against a subject listing.
func (s *CompService) Stats(dir string, subject domain.VehicleListing, body domain.BodyStyle) (CompSummary, error) {
	comps, err := s.List(dir)
	if err != nil {
		return CompSummary{}, err
	}
	return Summarize(comps, subject, body), nil
}
