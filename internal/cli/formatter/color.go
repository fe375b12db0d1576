package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ClassificationStyle colors a classification marking by sensitivity.
func ClassificationStyle(level string) lipgloss.Style {
	switch level {
	case "TOP SECRET":
		return StyleRed.Bold(true)
	case "SECRET":
		return StyleRed
	case "CONFIDENTIAL":
		return StyleBlue
	case "UNCLASSIFIED":
		return StyleGreen
	default:
		return StyleDim
	}
}

// ClassificationBanner returns a bracketed marking such as "[ SECRET ]".
func ClassificationBanner(level string) string {
	return ClassificationStyle(level).Render("[ " + level + " ]")
}

// OpsecIndicator renders an OPSEC level as a three-step meter.
func OpsecIndicator(level int, label string) string {
	if level < 1 {
		level = 1
	}
	if level > 3 {
		level = 3
	}
	meter := strings.Repeat("■", level) + strings.Repeat("□", 3-level)
	style := StyleGreen
	switch level {
	case 2:
		style = StyleYellow
	case 3:
		style = StyleRed
	}
	return style.Render(meter) + " " + label
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
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
