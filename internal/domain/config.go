package domain

import "fmt"

// EvaluatorConfig holds settings loaded from .dealscout.yaml.
type EvaluatorConfig struct {
	// ReferenceYear pins the "current year" used for vehicle age. Zero means
	// the wall-clock year at evaluation time.
	ReferenceYear int             `yaml:"reference_year" json:"reference_year,omitempty"`
	CompsDir      string          `yaml:"comps_dir"      json:"comps_dir,omitempty"`
	Finance       FinanceDefaults `yaml:"finance"        json:"finance"`
}

// FinanceDefaults seeds the payment estimate when a flag is not given.
type FinanceDefaults struct {
	DownPayment  float64 `yaml:"down_payment"  json:"down_payment"`
	TaxRate      float64 `yaml:"tax_rate"      json:"tax_rate"`
	DocFee       float64 `yaml:"doc_fee"       json:"doc_fee"`
	NonDocFee    float64 `yaml:"non_doc_fee"   json:"non_doc_fee"`
	InterestRate float64 `yaml:"interest_rate" json:"interest_rate"`
	TermMonths   int     `yaml:"term_months"   json:"term_months"`
}

// DefaultConfig returns the built-in configuration (North Carolina fees).
func DefaultConfig() EvaluatorConfig {
	return EvaluatorConfig{
		Finance: FinanceDefaults{
			DownPayment:  2000,
			TaxRate:      3,
			DocFee:       799,
			NonDocFee:    160,
			InterestRate: 7.9,
			TermMonths:   72,
		},
	}
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c EvaluatorConfig) Validate() error {
	if c.ReferenceYear != 0 && (c.ReferenceYear < 1980 || c.ReferenceYear > 2100) {
		return fmt.Errorf("reference_year = %d (must be 0 or between 1980 and 2100)", c.ReferenceYear)
	}

	f := c.Finance
	for _, field := range []struct {
		name  string
		value float64
	}{
		{"finance.down_payment", f.DownPayment},
		{"finance.doc_fee", f.DocFee},
		{"finance.non_doc_fee", f.NonDocFee},
	} {
		if field.value < 0 {
			return fmt.Errorf("%s must be >= 0 (got %.2f)", field.name, field.value)
		}
	}
	if f.TaxRate < 0 || f.TaxRate > 25 {
		return fmt.Errorf("finance.tax_rate must be between 0 and 25 (got %.2f)", f.TaxRate)
	}
	if f.InterestRate < 0 || f.InterestRate > 50 {
		return fmt.Errorf("finance.interest_rate must be between 0 and 50 (got %.2f)", f.InterestRate)
	}
	if f.TermMonths < 1 || f.TermMonths > 120 {
		return fmt.Errorf("finance.term_months must be between 1 and 120 (got %d)", f.TermMonths)
	}
	return nil
}

// EffectiveYear resolves ReferenceYear against the supplied wall-clock year.
func (c EvaluatorConfig) EffectiveYear(now int) int {
	if c.ReferenceYear != 0 {
		return c.ReferenceYear
	}
	return now
}
