package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/dealscout/dealscout/internal/domain"
)

var missingStyle = lipgloss.NewStyle().Foreground(danger)

// RenderComps lists saved comparables with their validity.
func RenderComps(comps []domain.ComparableListing) string {
	if len(comps) == 0 {
		return "  " + dimStyle.Render("No saved comps.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Saved comps") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 64)) + "\n\n")

	for _, c := range comps {
		icon := passStyle.Render("●")
		if !c.IsValid() {
			icon = missingStyle.Render("○")
		}
		id := c.ID
		if len(id) > 8 {
			id = id[:8]
		}

		price := "—"
		if c.Price != nil {
			price = money(*c.Price)
		}
		miles := "—"
		if c.Mileage != nil {
			miles = humanize.Comma(int64(*c.Mileage)) + " mi"
		}
		year := ""
		if c.Year != nil {
			year = fmt.Sprintf("%d", *c.Year)
		}

		fmt.Fprintf(&b, "  %s %s  %s %s %s  %s\n",
			icon,
			faintStyle.Render(padRight(id, 8)),
			titleStyle.Render(padRight(price, 10)),
			dimStyle.Render(padRight(miles, 12)),
			dimStyle.Render(padRight(year, 4)),
			faintStyle.Render(c.Source),
		)
	}
	return b.String()
}

// RenderCompStats summarizes comparable statistics, or explains why none
// exist.
func RenderCompStats(stats *domain.CompStats, valid int) string {
	var b strings.Builder
	b.WriteString("\n")
	if stats == nil {
		fmt.Fprintf(&b, "  %s\n", dimStyle.Render(fmt.Sprintf("%d valid comps; at least %d are needed for statistics.", valid, domain.MinComps)))
		return b.String()
	}

	rows := []struct {
		name  string
		value string
	}{
		{"Comps", fmt.Sprintf("%d", stats.Count)},
		{"Median", money(stats.Median)},
		{"Range (p25-p75)", money(stats.P25) + " – " + money(stats.P75)},
		{"Avg mileage", humanize.Comma(int64(stats.AvgMileage)) + " mi"},
		{"Rate per mile", fmt.Sprintf("$%.2f", stats.RatePerMile)},
		{"Adjusted value", money(stats.AdjustedValue)},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "  %s %s\n", catNameStyle.Render(padRight(r.name, 20)), titleStyle.Render(r.value))
	}
	return b.String()
}
