// Copyright (c) 2026 Calcmaster Team
// Calcmaster - terminal four-function calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package calculator

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/calcmaster/internal/i18n"
)

type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Press key.Binding
	Clear key.Binding
	Copy  key.Binding
	Type  key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Type, km.Press, km.Clear, km.Copy}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.Left, km.Right},
		{km.Type, km.Press, km.Clear, km.Copy},
	}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

// NewKeyMap builds the bindings with help text in the active language.
func NewKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", i18n.T("tui.help_move")),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", i18n.T("tui.help_move")),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", i18n.T("tui.help_move")),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", i18n.T("tui.help_move")),
		),
		Press: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter", i18n.T("tui.help_press")),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc", "c", "C"),
			key.WithHelp("esc/c", i18n.T("tui.help_clear")),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", i18n.T("tui.help_copy")),
		),
		// help entry only; typed keys are matched against buttonKeys
		Type: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ".", "+", "-", "*", "/", "="),
			key.WithHelp("0-9 . + - * / =", i18n.T("tui.help_keys")),
		),
	}
}
