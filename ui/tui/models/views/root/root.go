// Copyright (c) 2026 Calcmaster Team
// Calcmaster - terminal four-function calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/calcmaster/buildvars"
	"github.com/toeirei/calcmaster/internal/i18n"
	"github.com/toeirei/calcmaster/ui/tui/models/components/header"
	windowtitle "github.com/toeirei/calcmaster/ui/tui/models/helpers/title"
	"github.com/toeirei/calcmaster/ui/tui/models/views/calculator"
	"github.com/toeirei/calcmaster/ui/tui/models/views/footer"
	"github.com/toeirei/calcmaster/ui/tui/util"
)

type Model struct {
	keys         KeyMap
	header       *header.Model
	calculator   *calculator.Model
	footer       *footer.Model
	titleHandler *windowtitle.TitleHandler
}

func New(opts ...calculator.Option) *Model {
	keys := NewBaseKeyMap()
	version := buildvars.VersionOrDefault("dev")

	return &Model{
		keys:         keys,
		header:       header.New(version),
		calculator:   calculator.New(opts...),
		footer:       footer.New(keys),
		titleHandler: windowtitle.NewHandler(fmt.Sprintf("%s %s", i18n.T("app.title"), version), " | "),
	}
}

func (m Model) Init() tea.Cmd {
	titleCmd := m.titleHandler.Init()
	focusCmd, keyMap := m.calculator.Focus()
	keyMapCmd := util.AnnounceKeyMapCmd(keyMap)

	return tea.Sequence(titleCmd, m.calculator.Init(), focusCmd, keyMapCmd)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Exit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.footer.ToggleExpanded()
			return m, nil
		}
		return m, m.calculator.Update(msg)
	case util.AnnounceKeyMapMsg:
		return m, m.footer.Update(msg)
	case tea.WindowSizeMsg:
		return m, tea.Batch(m.header.Update(msg), m.footer.Update(msg))
	}

	if cmd, handled := m.titleHandler.Handle(msg); handled {
		return m, cmd
	}
	return m, m.calculator.Update(msg)
}

func (m Model) View() string {
	body := lipgloss.NewStyle().Margin(1, 2).Render(m.calculator.View())
	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), body, m.footer.View())
}

// Calculator exposes the hosted calculator view.
func (m Model) Calculator() *calculator.Model {
	return m.calculator
}

// Footer exposes the footer, mostly for tests.
func (m Model) Footer() *footer.Model {
	return m.footer
}

var _ tea.Model = (*Model)(nil)
