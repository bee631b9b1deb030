// Copyright (c) 2026 Calcmaster Team
// Calcmaster - terminal four-function calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/calcmaster/ui/tui/models/views/calculator"
	"github.com/toeirei/calcmaster/ui/tui/models/views/root"
)

// Options configures the TUI program.
type Options struct {
	AltScreen bool
	Width     int
}

func Run(opts Options) error {
	var programOpts []tea.ProgramOption
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	var viewOpts []calculator.Option
	if opts.Width > 0 {
		viewOpts = append(viewOpts, calculator.WithWidth(opts.Width))
	}

	_, err := tea.NewProgram(root.New(viewOpts...), programOpts...).Run()
	return err
}
