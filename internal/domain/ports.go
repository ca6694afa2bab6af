package domain

import "context"

// ConfigLoader loads evaluator configuration from a working directory.
type ConfigLoader interface {
	Load(dir string) (EvaluatorConfig, error)
}

// CompStore persists the user's saved comparable set between runs.
type CompStore interface {
	Load(dir string) ([]ComparableListing, error)
	Save(dir string, comps []ComparableListing) error
	Clear(dir string) error
}

// ListingFetcher retrieves a listing page and extracts what it can from it.
type ListingFetcher interface {
	Fetch(ctx context.Context, rawURL string) (*ExtractionResult, error)
}

// ExtractionResult is the best-effort output of listing extraction.
// All fields of Data are optional and unverified.
type ExtractionResult struct {
	Success bool           `json:"success"`
	Partial bool           `json:"partial,omitempty"`
	Error   string         `json:"error,omitempty"`
	Message string         `json:"message,omitempty"`
	Data    VehicleListing `json:"data"`
}
