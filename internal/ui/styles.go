package ui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	ColorPrimary = lipgloss.Color("212")
	ColorAccent  = lipgloss.Color("86")
	ColorText    = lipgloss.Color("252")
	ColorMuted   = lipgloss.Color("241")
	ColorError   = lipgloss.Color("196")
	ColorSuccess = lipgloss.Color("82")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	// Chat bubbles, one style per sender.
	ChatOwnerStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)
	ChatWalkerStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)
	ChatSystemStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)
)
