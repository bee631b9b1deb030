// Copyright (c) 2026 Calcmaster Team
// Calcmaster - terminal four-function calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package calculator

import "github.com/charmbracelet/lipgloss"

const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // A nice teal/cyan
	colorSpecial   = lipgloss.Color("208") // An orange for operators
	colorError     = lipgloss.Color("196") // A bright red
	colorWhite     = lipgloss.Color("231")
	colorButton    = lipgloss.Color("237") // Dark gray
)

var (
	screenStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorHighlight).
			Padding(0, 1).
			Align(lipgloss.Right).
			Bold(true)

	screenErrorStyle = screenStyle.
				Foreground(colorError)

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorButton).
			Width(5).
			Align(lipgloss.Center).
			MarginRight(1)

	operatorButtonStyle = buttonStyle.
				Foreground(colorSpecial)

	selectedButtonStyle = buttonStyle.
				Background(colorHighlight).
				Underline(true)

	statusStyle = lipgloss.NewStyle().Foreground(colorSubtle)
)
