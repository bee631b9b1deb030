// Copyright (c) 2026 Calcmaster Team
// Calcmaster - terminal four-function calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package windowtitle

import "testing"

func TestTitleHandler(t *testing.T) {
	h := NewHandler("Calcmaster dev", " | ")
	if h.Title() != "Calcmaster dev" {
		t.Fatalf("unexpected base title %q", h.Title())
	}

	msg := Set("42")()
	cmd, handled := h.Handle(msg)
	if !handled || cmd == nil {
		t.Fatalf("expected title message to be handled with a command")
	}
	if h.Title() != "Calcmaster dev | 42" {
		t.Fatalf("unexpected title %q", h.Title())
	}

	// same title again: handled, nothing to do
	if cmd, handled := h.Handle(msg); !handled || cmd != nil {
		t.Fatalf("repeated title should be swallowed without a command")
	}

	if _, handled := h.Handle("other"); handled {
		t.Fatalf("foreign messages must not be handled")
	}
}
