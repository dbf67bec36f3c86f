package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"stockswipe/internal/models"
	"stockswipe/internal/sparkline"
)

const (
	sparkWidth  = 120
	sparkHeight = 36
)

// Styles.
var (
	tickerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	priceStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	gainStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	lossStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	buyStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	sellStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8"))
)

var blocks = []rune("▁▂▃▄▅▆▇█")

func formatPrice(p *float64) string {
	if p == nil {
		return "--"
	}
	return fmt.Sprintf("%.2f", *p)
}

func formatChange(c *float64) string {
	if c == nil {
		return "--"
	}
	return fmt.Sprintf("%+.2f%%", *c)
}

// changeStyle colours a change by sign; missing values are dimmed.
func changeStyle(c *float64) lipgloss.Style {
	switch {
	case c == nil:
		return dimStyle
	case *c < 0:
		return lossStyle
	default:
		return gainStyle
	}
}

func styledPrice(p *float64) string {
	if p == nil {
		return dimStyle.Render(formatPrice(p))
	}
	return priceStyle.Render(formatPrice(p))
}

func styledChange(c *float64) string {
	return changeStyle(c).Render(formatChange(c))
}

// renderBlocks draws the series as one row of block characters, sampled to
// at most width columns.
func renderBlocks(series []float64, width int) string {
	pts := sparkline.Points(series, float64(len(blocks)-1), float64(len(blocks)-1))
	if len(pts) == 0 || width <= 0 {
		return ""
	}
	step := 1
	if len(pts) > width {
		step = (len(pts) + width - 1) / width
	}
	var sb strings.Builder
	for i := 0; i < len(pts); i += step {
		// Points puts the high end at y=0.
		level := len(blocks) - 1 - int(pts[i].Y+0.5)
		sb.WriteRune(blocks[level])
	}
	return sb.String()
}

func renderCard(n int, card models.StockCard, snap models.MarketSnapshot, loaded bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d  %s  %s\n\n", n, tickerStyle.Render(card.Ticker), card.Name)
	if !loaded {
		b.WriteString(dimStyle.Render("  loading quote...") + "\n")
		return b.String()
	}

	fmt.Fprintf(&b, "  price %s   change %s\n", styledPrice(snap.Price), styledChange(snap.ChangePct))
	if line := renderBlocks(snap.Spark, 60); line != "" {
		fmt.Fprintf(&b, "  %s\n", changeStyle(snap.ChangePct).Render(line))
		fmt.Fprintf(&b, "  %s\n", dimStyle.Render("path "+sparkline.BuildPath(snap.Spark, sparkWidth, sparkHeight)))
	}
	if snap.YahooDesc != "" {
		fmt.Fprintf(&b, "\n  %s\n", truncate(snap.YahooDesc, 160))
	}
	if snap.Error != "" {
		fmt.Fprintf(&b, "  %s\n", dimStyle.Render("("+snap.Error+")"))
	}
	return b.String()
}

func renderInsight(in *models.AIInsight) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %s\n", in.CompanyDescription)
	fmt.Fprintf(&b, "  %s %5.1f%%  %s\n", buyStyle.Render("BUY "), in.BuyProbability, in.Buy)
	fmt.Fprintf(&b, "  %s %5.1f%%  %s\n", sellStyle.Render("SELL"), in.SellProbability, in.Sell)
	return b.String()
}

func renderPicks(picks []models.DailyPick) string {
	if len(picks) == 0 {
		return dimStyle.Render("  no priced picks today") + "\n"
	}
	var b strings.Builder
	for i, p := range picks {
		fmt.Fprintf(&b, "%3d. %s %s  %s  score %d\n", i+1, tickerStyle.Render(fmt.Sprintf("%-6s", p.Ticker)),
			priceStyle.Render(fmt.Sprintf("%.2f", p.Price)), styledChange(p.ChangePct), p.BuySellScore)
		fmt.Fprintf(&b, "     %s\n", p.Name)
		if p.Reason != "" {
			fmt.Fprintf(&b, "     %s\n", dimStyle.Render(truncate(p.Reason, 120)))
		}
	}
	return b.String()
}

// padOrTrunc fits s to exactly width runes.
func padOrTrunc(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
