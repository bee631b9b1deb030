// Copyright (c) 2026 Calcmaster Team
// Calcmaster - terminal four-function calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package display

import (
	"sync"

	"github.com/toeirei/calcmaster/internal/calc"
)

// Mirror is a concurrency-safe holder for the last text shown. It lets a
// reader on another goroutine (the TUI render loop, a test) see what the
// machine pushed without touching the machine itself.
type Mirror struct {
	mu      sync.RWMutex
	text    string
	updates int
}

// Show stores text and counts the update.
func (m *Mirror) Show(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.updates++
}

// Text returns the last text shown.
func (m *Mirror) Text() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.text
}

// Updates returns how many times Show was called.
func (m *Mirror) Updates() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.updates
}

var _ calc.Display = (*Mirror)(nil)
