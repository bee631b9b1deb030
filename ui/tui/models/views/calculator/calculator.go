// Copyright (c) 2026 Calcmaster Team
// Calcmaster - terminal four-function calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package calculator is the TUI view of the calculator: a display line and
// a button grid. Buttons are pressed with the cursor or by typing their key.
package calculator

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/calcmaster/internal/calc"
	"github.com/toeirei/calcmaster/internal/display"
	"github.com/toeirei/calcmaster/internal/i18n"
	"github.com/toeirei/calcmaster/internal/logging"
	windowtitle "github.com/toeirei/calcmaster/ui/tui/models/helpers/title"
	"github.com/toeirei/calcmaster/ui/tui/util"
)

const minWidth = 8

type Model struct {
	machine *calc.Machine
	screen  *display.Mirror
	keys    KeyMap
	row     int
	col     int
	width   int
	status  string
	copy    func(string) error
}

type Option func(*Model)

// WithWidth sets the display width in cells.
func WithWidth(width int) Option {
	return func(m *Model) {
		m.width = max(width, minWidth)
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(m *Model) {
		m.copy = write
	}
}

func New(opts ...Option) *Model {
	screen := &display.Mirror{}
	m := &Model{
		machine: calc.New(screen),
		screen:  screen,
		keys:    NewKeyMap(),
		width:   28,
		copy:    clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.move(-1, 0)
	case key.Matches(keyMsg, m.keys.Down):
		m.move(1, 0)
	case key.Matches(keyMsg, m.keys.Left):
		m.move(0, -1)
	case key.Matches(keyMsg, m.keys.Right):
		m.move(0, 1)
	case key.Matches(keyMsg, m.keys.Press):
		return m.press(buttons[m.row][m.col])
	case key.Matches(keyMsg, m.keys.Clear):
		return m.press('C')
	case key.Matches(keyMsg, m.keys.Copy):
		m.copyDisplay()
	case keyMsg.Type == tea.KeyRunes && len(keyMsg.Runes) == 1 && strings.ContainsRune(buttonKeys, keyMsg.Runes[0]):
		r := keyMsg.Runes[0]
		if row, col, found := locate(r); found {
			m.row, m.col = row, col
		}
		return m.press(r)
	}
	return nil
}

// press feeds r to the machine and announces the new display as window title.
func (m *Model) press(r rune) tea.Cmd {
	m.status = ""
	if err := m.machine.Press(r); err != nil {
		logging.Warnf("tui: %v", err)
		return nil
	}
	return windowtitle.Set(m.screen.Text())
}

func (m *Model) move(dRow, dCol int) {
	m.row = util.Clamp(0, m.row+dRow, len(buttons)-1)
	m.col = util.Clamp(0, m.col+dCol, len(buttons[m.row])-1)
}

func (m *Model) copyDisplay() {
	text := m.screen.Text()
	if text == "" {
		return
	}
	if err := m.copy(text); err != nil {
		logging.Warnf("tui: clipboard: %v", err)
		m.status = i18n.T("tui.copy_failed", err)
		return
	}
	m.status = i18n.T("tui.copied", text)
}

func (m Model) View() string {
	text := m.screen.Text()
	style := screenStyle
	if text == calc.ErrorText {
		style = screenErrorStyle
	}
	// border and padding take four cells
	inner := m.width - 4
	screen := style.Width(m.width - 2).Render(fitDisplay(text, inner))

	rows := make([]string, 0, len(buttons))
	for i, line := range buttons {
		cells := make([]string, 0, len(line))
		for j, b := range line {
			st := buttonStyle
			switch {
			case i == m.row && j == m.col:
				st = selectedButtonStyle
			case isOperatorButton(b):
				st = operatorButtonStyle
			}
			cells = append(cells, st.Render(string(b)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	parts := []string{screen, lipgloss.JoinVertical(lipgloss.Left, rows...)}
	if m.status != "" {
		parts = append(parts, statusStyle.Render(m.status))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// fitDisplay keeps the right end of text, which holds the digits being
// typed, when it does not fit into width cells.
func fitDisplay(text string, width int) string {
	r := []rune(text)
	if width <= 0 || len(r) <= width {
		return text
	}
	return "…" + string(r[len(r)-width+1:])
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, m.keys
}

func (m *Model) Blur() {}

// Machine exposes the state machine behind the view.
func (m *Model) Machine() *calc.Machine {
	return m.machine
}

// Selected returns the button under the cursor.
func (m Model) Selected() rune {
	return buttons[m.row][m.col]
}

// Screen returns the current display text.
func (m Model) Screen() string {
	return m.screen.Text()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
