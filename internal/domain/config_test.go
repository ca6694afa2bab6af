package domain_test

import (
	"testing"

	"github.com/dealscout/dealscout/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Zero(t, cfg.ReferenceYear)
	assert.Empty(t, cfg.CompsDir)
	assert.Equal(t, 2000.0, cfg.Finance.DownPayment)
	assert.Equal(t, 3.0, cfg.Finance.TaxRate)
	assert.Equal(t, 799.0, cfg.Finance.DocFee)
	assert.Equal(t, 160.0, cfg.Finance.NonDocFee)
	assert.Equal(t, 7.9, cfg.Finance.InterestRate)
	assert.Equal(t, 72, cfg.Finance.TermMonths)
	require.NoError(t, cfg.Validate())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.EvaluatorConfig)
		wantErr string
	}{
		{"year too old", func(c *domain.EvaluatorConfig) { c.ReferenceYear = 1950 }, "reference_year"},
		{"negative down", func(c *domain.EvaluatorConfig) { c.Finance.DownPayment = -1 }, "finance.down_payment"},
		{"negative doc fee", func(c *domain.EvaluatorConfig) { c.Finance.DocFee = -10 }, "finance.doc_fee"},
		{"tax too high", func(c *domain.EvaluatorConfig) { c.Finance.TaxRate = 30 }, "finance.tax_rate"},
		{"apr negative", func(c *domain.EvaluatorConfig) { c.Finance.InterestRate = -0.5 }, "finance.interest_rate"},
		{"zero term", func(c *domain.EvaluatorConfig) { c.Finance.TermMonths = 0 }, "finance.term_months"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEffectiveYear(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Equal(t, 2026, cfg.EffectiveYear(2026))

	cfg.ReferenceYear = 2024
	assert.Equal(t, 2024, cfg.EffectiveYear(2026))
}
