package cli

import "github.com/charmbracelet/lipgloss"

var (
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#59c2ff"})

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#8a9199", Dark: "#565b66"})

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#86b300", Dark: "#aad94c"})

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#f07171", Dark: "#f07178"})
)
