package application

import (
	"fmt"

	"github.com/dealscout/dealscout/internal/domain"
	"github.com/dealscout/dealscout/internal/domain/finance"
)

// PaymentRequest is a purchase price plus optional overrides of the
// configured finance defaults. Nil fields use the defaults.
type PaymentRequest struct {
	Price        float64  `json:"price"`
	DownPayment  *float64 `json:"down_payment,omitempty"`
	TradeValue   *float64 `json:"trade_value,omitempty"`
	TradePayoff  *float64 `json:"trade_payoff,omitempty"`
	TaxRate      *float64 `json:"tax_rate,omitempty"`
	DocFee       *float64 `json:"doc_fee,omitempty"`
	NonDocFee    *float64 `json:"non_doc_fee,omitempty"`
	InterestRate *float64 `json:"interest_rate,omitempty"`
	TermMonths   *int     `json:"term_months,omitempty"`
}

// PaymentService estimates monthly payments using configured defaults.
type PaymentService struct {
	configLoader domain.ConfigLoader
	validator    *Validator
}

func NewPaymentService(configLoader domain.ConfigLoader) *PaymentService {
	return &PaymentService{
		configLoader: configLoader,
		validator:    NewValidator(),
	}
}

// Estimate computes the payment for req, reading defaults from dir.
func (s *PaymentService) Estimate(dir string, req PaymentRequest) (finance.PaymentEstimate, error) {
	cfg, err := s.configLoader.Load(dir)
	if err != nil {
		return finance.PaymentEstimate{}, fmt.Errorf("loading config: %w", err)
	}

	in := finance.InputFromDefaults(req.Price, cfg.Finance)
	overrideFloat(&in.DownPayment, req.DownPayment)
	overrideFloat(&in.TradeValue, req.TradeValue)
	overrideFloat(&in.TradePayoff, req.TradePayoff)
	overrideFloat(&in.TaxRate, req.TaxRate)
	overrideFloat(&in.DocFee, req.DocFee)
	overrideFloat(&in.NonDocFee, req.NonDocFee)
	overrideFloat(&in.InterestRate, req.InterestRate)
	if req.TermMonths != nil {
		in.TermMonths = *req.TermMonths
	}

	if err := s.validator.Struct(in); err != nil {
		return finance.PaymentEstimate{}, fmt.Errorf("invalid payment input: %w", err)
	}
	return finance.ComputePayment(in), nil
}

func overrideFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
