package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/dealscout/dealscout/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	lime    = lipgloss.Color("#A3E635")
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	verdictColors = map[domain.Verdict]lipgloss.Color{
		domain.VerdictBuy:      success,
		domain.VerdictConsider: warning,
		domain.VerdictPass:     danger,
	}

	marketColors = map[string]lipgloss.Color{
		"green": success,
		"amber": warning,
		"red":   danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	catNameStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderEvaluation formats a scored listing for the terminal.
func RenderEvaluation(v domain.VehicleListing, res domain.ScoreResults) string {
	var b strings.Builder

	// ── Header ──
	color := verdictColor(res.Verdict)
	title := headerStyle.Render("dealscout")
	subtitle := dimStyle.Render(v.DisplayName())
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(color).
		Render(fmt.Sprintf("%d / 100", res.FinalScore))
	verdictStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(color).
		Render(string(res.Verdict))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + verdictStyled))
	b.WriteString("\n\n")

	// ── Valuation ──
	if res.EstimatedValue != nil {
		fmt.Fprintf(&b, "  %s %s", catNameStyle.Render(padRight("Estimated value", 20)), titleStyle.Render(money(*res.EstimatedValue)))
		if res.MSRPUsed != nil {
			b.WriteString("  " + dimStyle.Render("MSRP basis "+money(*res.MSRPUsed)))
		}
		b.WriteString("\n")
	}
	if res.MarketPosition != nil {
		pos := lipgloss.NewStyle().Foreground(marketColor(res.MarketPosition.Color)).Render(res.MarketPosition.Label)
		fmt.Fprintf(&b, "  %s %s\n", catNameStyle.Render(padRight("Market position", 20)), pos)
	}
	if res.EstimatedValue != nil || res.MarketPosition != nil {
		b.WriteString("\n")
	}

	// ── Sub-scores ──
	renderBreakdown(&b, "Deal", 40, res.DealScore)
	b.WriteString("\n")
	renderBreakdown(&b, "Risk", 40, res.RiskScore)
	b.WriteString("\n")
	renderBreakdown(&b, "Fit", 20, res.FitScore)

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Talk track ──
	b.WriteString("  " + titleStyle.Render("Talk track") + "\n\n")
	b.WriteString("    " + res.TalkTrackShort + "\n\n")
	for _, line := range strings.Split(res.TalkTrackEmail, "\n") {
		if line == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString("    " + dimStyle.Render(line) + "\n")
	}

	b.WriteString("\n")
	return b.String()
}

func renderBreakdown(b *strings.Builder, name string, weightPct int, sb domain.ScoreBreakdown) {
	color := scoreColor(sb.Score)
	scoreText := lipgloss.NewStyle().Bold(true).Foreground(color).Render(fmt.Sprintf("%d", sb.Score))
	bar := coloredBar(sb.Score, 20)
	weight := dimStyle.Render(fmt.Sprintf("%d%%", weightPct))
	label := lipgloss.NewStyle().Foreground(color).Render(sb.Label)

	fmt.Fprintf(b, "  %s %s  %s %s  %s\n", catNameStyle.Render(padRight(name, 20)), bar, scoreText, weight, label)
	for _, d := range sb.Details {
		fmt.Fprintf(b, "    %s %s\n", faintStyle.Render("·"), dimStyle.Render(d))
	}
}

func coloredBar(score, width int) string {
	filled := max(0, min(score*width/100, width))
	empty := width - filled

	color := scoreColor(score)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return success
	case score >= 60:
		return lime
	case score >= 40:
		return warning
	default:
		return danger
	}
}

func verdictColor(v domain.Verdict) lipgloss.Color {
	if c, ok := verdictColors[v]; ok {
		return c
	}
	return fg
}

func marketColor(name string) lipgloss.Color {
	if c, ok := marketColors[name]; ok {
		return c
	}
	return fg
}

func money(v int) string {
	return "$" + humanize.Comma(int64(v))
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
