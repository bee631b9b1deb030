// Copyright (c) 2026 Calcmaster Team
// Calcmaster - terminal four-function calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package display

import (
	"fmt"
	"io"

	"github.com/toeirei/calcmaster/internal/calc"
	"github.com/toeirei/calcmaster/internal/logging"
)

// Writer prints every update as one line. Blank updates are printed as
// Blank so a cleared display stays visible in a trace.
type Writer struct {
	W      io.Writer
	Prefix string
	Blank  string
}

// Show writes text as one line, or Blank when text is empty.
func (w *Writer) Show(text string) {
	if text == "" {
		text = w.Blank
	}
	if _, err := fmt.Fprintf(w.W, "%s%s\n", w.Prefix, text); err != nil {
		logging.Warnf("display: write failed: %v", err)
	}
}

// Tee fans an update out to several sinks in order. Nil sinks are skipped.
type Tee []calc.Display

// Show forwards text to every sink.
func (t Tee) Show(text string) {
	for _, d := range t {
		if d != nil {
			d.Show(text)
		}
	}
}

var (
	_ calc.Display = (*Writer)(nil)
	_ calc.Display = Tee(nil)
)
