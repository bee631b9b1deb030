// Copyright (c) 2026 Calcmaster Team
// Calcmaster - terminal four-function calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package windowtitle

import tea "github.com/charmbracelet/bubbletea"

type titleMsg string

// Set asks the root model to show title after the base title.
func Set(title string) tea.Cmd {
	return func() tea.Msg { return titleMsg(title) }
}
