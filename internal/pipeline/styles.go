package pipeline

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#59c2ff"}
	colorPass    = lipgloss.AdaptiveColor{Light: "#86b300", Dark: "#aad94c"}
	colorWarn    = lipgloss.AdaptiveColor{Light: "#f2ae49", Dark: "#ffb454"}
	colorFail    = lipgloss.AdaptiveColor{Light: "#f07171", Dark: "#f07178"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#8a9199", Dark: "#565b66"}
	colorHeading = lipgloss.Color("15")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorHeading).
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(14)

	goodStyle = lipgloss.NewStyle().
			Foreground(colorPass)

	warnStyle = lipgloss.NewStyle().
			Foreground(colorWarn)

	badStyle = lipgloss.NewStyle().
			Foreground(colorFail).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)
)

// severityStyle colours a dosha by how strongly it applies
func severityStyle(sev string) lipgloss.Style {
	switch sev {
	case "severe":
		return badStyle
	case "moderate":
		return warnStyle
	case "mild":
		return mutedStyle
	default:
		return goodStyle
	}
}
