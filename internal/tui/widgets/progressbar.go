// ABOUTME: Compact progress bars for shares and confidence scores
// ABOUTME: Renders block characters colored by the caller or by tone

package widgets

import (
	"strings"

	"github.com/balungpisah/balungpisah-admin/internal/format"
	"github.com/charmbracelet/lipgloss"
)

// EmptyColor fills the unfilled part of every bar
var EmptyColor = lipgloss.Color("#374151")

// barCells returns how many of width cells a 0..1 ratio fills
func barCells(ratio float64, width int) int {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return int(ratio * float64(width))
}

// CompactProgressBar renders a minimal progress bar for tight spaces
func CompactProgressBar(ratio float64, width int, color lipgloss.Color) string {
	if width <= 0 {
		width = 10
	}
	filled := barCells(ratio, width)

	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("▓", filled)) +
		lipgloss.NewStyle().Foreground(EmptyColor).Render(strings.Repeat("░", width-filled))
}

// ShareBar renders part of total as a bar followed by its percentage
func ShareBar(part, total, width int, color lipgloss.Color) string {
	ratio := 0.0
	if total > 0 {
		ratio = float64(part) / float64(total)
	}
	return CompactProgressBar(ratio, width, color) + " " + format.Percent(ratio)
}

// ConfidenceBar renders an extraction confidence ratio, 0.73 -> "▓▓▓▓▓▓▓░░░ 73%"
func ConfidenceBar(ratio float64, width int) string {
	bg, _ := levelColors(ConfidenceLevel(ratio))
	return CompactProgressBar(ratio, width, bg) + " " + format.Percent(ratio)
}
