// Package finance estimates the monthly payment for a financed vehicle
// purchase, including sales tax, dealer fees and trade equity.
package finance

import (
	"github.com/dealscout/dealscout/internal/domain"
	"github.com/shopspring/decimal"
)

// PaymentInput describes one purchase. Rates are percentages: 7.9 means 7.9%.
type PaymentInput struct {
	Price        float64 `json:"price"         validate:"gte=0"`
	DownPayment  float64 `json:"down_payment"  validate:"gte=0"`
	TradeValue   float64 `json:"trade_value"   validate:"gte=0"`
	TradePayoff  float64 `json:"trade_payoff"  validate:"gte=0"`
	TaxRate      float64 `json:"tax_rate"      validate:"gte=0,lte=25"`
	DocFee       float64 `json:"doc_fee"       validate:"gte=0"`
	NonDocFee    float64 `json:"non_doc_fee"   validate:"gte=0"`
	InterestRate float64 `json:"interest_rate" validate:"gte=0,lte=50"`
	TermMonths   int     `json:"term_months"   validate:"gte=0,lte=120"`
}

// InputFromDefaults seeds an input for price with the configured fees.
func InputFromDefaults(price float64, d domain.FinanceDefaults) PaymentInput {
	return PaymentInput{
		Price:        price,
		DownPayment:  d.DownPayment,
		TaxRate:      d.TaxRate,
		DocFee:       d.DocFee,
		NonDocFee:    d.NonDocFee,
		InterestRate: d.InterestRate,
		TermMonths:   d.TermMonths,
	}
}

// PaymentEstimate is the computed payment. AmountFinanced, TotalInterest and
// TotalCost are whole dollars; MonthlyPayment is rounded to cents.
type PaymentEstimate struct {
	SalesTax       float64 `json:"sales_tax"`
	AmountFinanced float64 `json:"amount_financed"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalInterest  float64 `json:"total_interest"`
	TotalCost      float64 `json:"total_cost"`
	TermMonths     int     `json:"term_months"`
}

var hundred = decimal.NewFromInt(100)

// ComputePayment applies tax to price plus the doc fee, adds the untaxed fee,
// subtracts the down payment and trade equity, and amortizes the remainder.
// A zero balance or zero APR splits the balance evenly over the term.
func ComputePayment(in PaymentInput) PaymentEstimate {
	price := decimal.NewFromFloat(in.Price)
	docFee := decimal.NewFromFloat(in.DocFee)
	nonDocFee := decimal.NewFromFloat(in.NonDocFee)

	tax := price.Add(docFee).Mul(decimal.NewFromFloat(in.TaxRate)).Div(hundred)
	totalCash := price.Add(tax).Add(docFee).Add(nonDocFee)

	equity := decimal.NewFromFloat(in.TradeValue).Sub(decimal.NewFromFloat(in.TradePayoff))
	financed := decimal.Max(decimal.Zero, totalCash.Sub(decimal.NewFromFloat(in.DownPayment)).Sub(equity))

	est := PaymentEstimate{
		SalesTax:       tax.Round(2).InexactFloat64(),
		AmountFinanced: financed.Round(0).InexactFloat64(),
		TotalCost:      totalCash.Round(0).InexactFloat64(),
		TermMonths:     in.TermMonths,
	}

	if financed.IsZero() || in.InterestRate == 0 {
		term := decimal.NewFromInt(int64(max(in.TermMonths, 1)))
		est.MonthlyPayment = financed.Div(term).Round(2).InexactFloat64()
		return est
	}

	n := decimal.NewFromInt(int64(max(in.TermMonths, 1)))
	r := decimal.NewFromFloat(in.InterestRate).Div(decimal.NewFromInt(1200))
	growth := decimal.NewFromInt(1).Add(r).Pow(n)
	monthly := financed.Mul(r).Mul(growth).Div(growth.Sub(decimal.NewFromInt(1)))

	est.MonthlyPayment = monthly.Round(2).InexactFloat64()
	est.TotalInterest = monthly.Mul(n).Sub(financed).Round(0).InexactFloat64()
	return est
}
