package config

import "github.com/charmbracelet/lipgloss"

// Color constants for component log prefixes
const (
	ColorGreen   = lipgloss.Color("2")
	ColorBlue    = lipgloss.Color("4")
	ColorMagenta = lipgloss.Color("5")
	ColorCyan    = lipgloss.Color("6")
	ColorYellow  = lipgloss.Color("3")
)
