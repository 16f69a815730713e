// Package render prints a wallet analysis to a terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/wallet-health/pkg/analysis"
)

const gaugeWidth = 20

var accentColors = map[string]lipgloss.Color{
	"solana-purple": lipgloss.Color("#9945FF"),
	"solana-green":  lipgloss.Color("#14F195"),
	"solana-blue":   lipgloss.Color("#00C2FF"),
	"warn":          lipgloss.Color("#F59E0B"),
	"danger":        lipgloss.Color("#EF4444"),
}

var impactColors = map[analysis.Impact]*color.Color{
	analysis.ImpactHigh:   color.New(color.FgRed, color.Bold),
	analysis.ImpactMedium: color.New(color.FgYellow),
	analysis.ImpactLow:    color.New(color.FgHiBlack),
}

// View writes the title, address, gauge, metric table and recommendation
// table for v.
func View(w io.Writer, v analysis.View) error {
	title := color.New(color.FgHiMagenta, color.Bold)
	if _, err := title.Fprintln(w, v.Title); err != nil {
		return err
	}
	fmt.Fprintf(w, "Address: %s", v.Wallet.Address)
	if v.Wallet.Address != "" {
		fmt.Fprintf(w, " [%s]", v.Chain)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)

	fmt.Fprintln(w, Gauge(v.Gauge))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Metrics Breakdown")
	metrics := tablewriter.NewWriter(w)
	metrics.SetHeader([]string{"Metric", "Score", "Summary"})
	metrics.SetAutoWrapText(false)
	for _, m := range v.Wallet.Metrics {
		metrics.Append([]string{m.Name, fmt.Sprintf("%d", m.Score), m.Description})
	}
	metrics.Render()
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Recommendations")
	recs := tablewriter.NewWriter(w)
	recs.SetHeader([]string{"#", "Impact", "Recommendation"})
	recs.SetAutoWrapText(false)
	for i, r := range v.Wallet.Recommendations {
		recs.Append([]string{fmt.Sprintf("%d", i+1), impactLabel(r.Impact), r.Title})
	}
	recs.Render()
	return nil
}

// Gauge draws the score as a fixed-width bar.
func Gauge(g analysis.Gauge) string {
	filled := g.Clamped * gaugeWidth / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", gaugeWidth-filled)

	style := lipgloss.NewStyle().Bold(true)
	if c, ok := accentColors[g.Accent]; ok {
		style = style.Foreground(c)
	}
	return fmt.Sprintf("Health %s %d/100 %s", style.Render(bar), g.Score, g.Tier)
}

func impactLabel(i analysis.Impact) string {
	label := strings.ToUpper(string(i))
	if c, ok := impactColors[i]; ok {
		return c.Sprint(label)
	}
	return label
}
