// Copyright (c) 2026 Calcmaster Team
// Calcmaster - terminal four-function calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package display

import (
	"fmt"
	"io"

	"github.com/gosuri/uilive"
	"github.com/toeirei/calcmaster/internal/calc"
	"github.com/toeirei/calcmaster/internal/logging"
)

// Live redraws the display in place on a terminal, one line that changes
// with every update. Each Live owns the lines it printed; start a new one
// to keep earlier output on screen.
type Live struct {
	w     *uilive.Writer
	Blank string
}

// NewLive returns a Live drawing to out.
func NewLive(out io.Writer) *Live {
	w := uilive.New()
	w.Out = out
	return &Live{w: w}
}

// Show replaces the previously drawn text. It flushes synchronously, so no
// refresh goroutine is needed.
func (l *Live) Show(text string) {
	if text == "" {
		text = l.Blank
	}
	fmt.Fprintln(l.w, text)
	if err := l.w.Flush(); err != nil {
		logging.Warnf("display: live flush failed: %v", err)
	}
}

var _ calc.Display = (*Live)(nil)
