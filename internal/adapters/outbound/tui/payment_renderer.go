package tui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/dealscout/dealscout/internal/domain"
	"github.com/dealscout/dealscout/internal/domain/finance"
)

// RenderPayment formats a payment estimate.
func RenderPayment(est finance.PaymentEstimate) string {
	var b strings.Builder

	monthly := headerStyle.Render("$" + humanize.FormatFloat("#,###.##", est.MonthlyPayment) + " / mo")
	b.WriteString(boxStyle.Render(monthly + "\n" + dimStyle.Render(fmt.Sprintf("%d months", est.TermMonths))))
	b.WriteString("\n\n")

	rows := []struct {
		name  string
		value float64
	}{
		{"Sales tax", est.SalesTax},
		{"Amount financed", est.AmountFinanced},
		{"Total interest", est.TotalInterest},
		{"Total cash price", est.TotalCost},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "  %s %s\n", catNameStyle.Render(padRight(r.name, 20)), titleStyle.Render("$"+humanize.FormatFloat("#,###.##", r.value)))
	}
	return b.String()
}

// RenderExtraction shows what was pulled from a listing page.
func RenderExtraction(res *domain.ExtractionResult) string {
	var b strings.Builder
	b.WriteString("\n")
	if res.Success {
		b.WriteString("  " + passStyle.Render(res.Message) + "\n\n")
	} else {
		msg := res.Message
		if res.Error != "" {
			msg = res.Error + ": " + msg
		}
		b.WriteString("  " + missingStyle.Render(msg) + "\n\n")
	}

	v := res.Data
	rows := []struct {
		name  string
		value string
	}{
		{"Title", v.Title},
		{"Year", intOrEmpty(v.Year)},
		{"Make", v.Make},
		{"Model", v.Model},
		{"Price", moneyOrEmpty(v.Price)},
		{"Mileage", milesOrEmpty(v.Mileage)},
		{"VIN", v.VIN},
		{"Accident hint", boolOrEmpty(v.AccidentHint)},
		{"Owner hint", intOrEmpty(v.OwnerHint)},
		{"URL", v.ListingURL},
	}
	for _, r := range rows {
		if r.value == "" {
			continue
		}
		fmt.Fprintf(&b, "  %s %s\n", catNameStyle.Render(padRight(r.name, 20)), dimStyle.Render(r.value))
	}
	return b.String()
}

func intOrEmpty(v *int) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%d", *v)
}

func moneyOrEmpty(v *int) string {
	if v == nil {
		return ""
	}
	return money(*v)
}

func milesOrEmpty(v *int) string {
	if v == nil {
		return ""
	}
	return humanize.Comma(int64(*v)) + " mi"
}

func boolOrEmpty(v *bool) string {
	switch {
	case v == nil:
		return ""
	case *v:
		return "accident reported"
	default:
		return "no accidents reported"
	}
}
