package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	ColorBorder    = lipgloss.Color("#3B4252")
	ColorText      = lipgloss.Color("#ECEFF4")
	ColorTextMuted = lipgloss.Color("#7B8394")
	ColorAccent    = lipgloss.Color("#1F77B4")
	ColorGreen     = lipgloss.Color("#2CA02C")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorText)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	labelStyle  = lipgloss.NewStyle().Foreground(ColorTextMuted)
	valueStyle  = lipgloss.NewStyle().Foreground(ColorText)
	kpiStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorGreen)
	dimStyle    = lipgloss.NewStyle().Foreground(ColorBorder)
)

// Table is a bordered text table for terminal output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a title in a rounded box.
func RenderTitle(title string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)
	return box.Render(titleStyle.Render(title))
}

// RenderKPI renders one label/value line.
func RenderKPI(label, value string) string {
	return "  " + labelStyle.Render(label) + "  " + kpiStyle.Render(value)
}

// RenderTable renders headers and rows with box-drawing borders. Widths
// are measured in terminal cells so Hangul and ₩ line up.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i := 0; i < numCols && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	line := func(left, mid, right string) string {
		var b strings.Builder
		b.WriteString(left)
		for i, w := range widths {
			b.WriteString(strings.Repeat("─", w+2))
			if i < numCols-1 {
				b.WriteString(mid)
			}
		}
		b.WriteString(right)
		return dimStyle.Render(b.String()) + "\n"
	}
	pad := func(s string, w int, right bool) string {
		fill := strings.Repeat(" ", max(w-lipgloss.Width(s), 0))
		if right {
			return " " + fill + s + " "
		}
		return " " + s + fill + " "
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  " + headerStyle.Render(t.Title) + "\n")
	}

	b.WriteString(line("╭", "┬", "╮"))
	b.WriteString(dimStyle.Render("│"))
	for i, h := range t.Headers {
		b.WriteString(headerStyle.Render(pad(h, widths[i], false)))
		b.WriteString(dimStyle.Render("│"))
	}
	b.WriteString("\n")
	b.WriteString(line("├", "┼", "┤"))

	for _, row := range t.Rows {
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			// Right-align every column except the first.
			b.WriteString(valueStyle.Render(pad(cell, widths[i], i > 0)))
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
	}
	b.WriteString(line("╰", "┴", "╯"))

	return b.String()
}

func formatRange(from, to string) string {
	return fmt.Sprintf("%s ~ %s", from, to)
}
