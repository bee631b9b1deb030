// Copyright (c) 2026 Calcmaster Team
// Calcmaster - terminal four-function calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keyhelp renders key binding help for the footer.
package keyhelp

import (
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// ShortHelpView renders bindings on one line. help.Model.ShortHelpView
// miscounts separators when bindings are disabled, so we render ourselves.
func ShortHelpView(m help.Model, bindings []key.Binding) string {
	separator := m.Styles.ShortSeparator.Inline(true).Render(m.ShortSeparator)

	var items []string
	for _, kb := range bindings {
		if !kb.Enabled() {
			continue
		}
		item := m.Styles.ShortKey.Inline(true).Render(kb.Help().Key) + " " +
			m.Styles.ShortDesc.Inline(true).Render(kb.Help().Desc)
		if len(items) > 0 {
			item = separator + item
		}
		items = append(items, item)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, fit(m, items)...)
}

// FullHelpView renders one column per binding group.
func FullHelpView(m help.Model, groups [][]key.Binding) string {
	separator := m.Styles.FullSeparator.Inline(true).Render(m.FullSeparator)

	var cols []string
	for _, group := range groups {
		enabled := slices.DeleteFunc(slices.Clone(group), func(kb key.Binding) bool {
			return !kb.Enabled()
		})
		if len(enabled) == 0 {
			continue
		}

		keys := make([]string, len(enabled))
		descs := make([]string, len(enabled))
		for i, kb := range enabled {
			keys[i], descs[i] = kb.Help().Key, kb.Help().Desc
		}

		var sep string
		if len(cols) > 0 {
			sep = separator
		}
		cols = append(cols, lipgloss.JoinHorizontal(lipgloss.Top,
			sep,
			m.Styles.FullKey.Render(lipgloss.JoinVertical(lipgloss.Left, keys...)),
			" ",
			m.Styles.FullDesc.Render(lipgloss.JoinVertical(lipgloss.Left, descs...)),
		))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, fit(m, cols)...)
}

// fit keeps as many leading items as fit into m.Width. When something had
// to be dropped an ellipsis is appended if there is room for it.
func fit(m help.Model, items []string) []string {
	if m.Width <= 0 {
		return items
	}
	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)
	tailLen := lipgloss.Width(tail)

	var used int
	for i, item := range items {
		w := lipgloss.Width(item)
		last := i == len(items)-1
		if (last && used+w <= m.Width) || (!last && used+w+tailLen <= m.Width) {
			used += w
			continue
		}
		out := items[:i:i]
		if used+tailLen <= m.Width {
			out = append(out, tail)
		}
		return out
	}
	return items
}
