package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/lentoflow/internal/algorithm"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorOrange = lipgloss.Color("#fe8019")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleOrange = lipgloss.NewStyle().Foreground(ColorOrange)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// UrgencyColor returns the lipgloss style for an urgency band (spec §4.2).
func UrgencyColor(level algorithm.UrgencyLevel) lipgloss.Style {
	switch level {
	case algorithm.Critical:
		return StyleRed
	case algorithm.High:
		return StyleOrange
	case algorithm.Normal:
		return StyleYellow
	case algorithm.Low:
		return StyleGreen
	default:
		return StyleDim
	}
}

// UrgencyIndicator renders a colored urgency indicator such as "● CRITICAL".
func UrgencyIndicator(level algorithm.UrgencyLevel) string {
	return UrgencyColor(level).Render("● " + strings.ToUpper(string(level)))
}

// HealthColor returns a style banded by a 0-100 health score: green at 80
// and above, yellow from 50, red below 50. It uses three colors, not the
// four overall-health bands (80/60/40) of algorithm.Aggregate.
func HealthColor(score float64) lipgloss.Style {
	switch {
	case score >= 80:
		return StyleGreen
	case score >= 50:
		return StyleYellow
	default:
		return StyleRed
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
