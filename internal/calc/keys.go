// Copyright (c) 2026 Calcmaster Team
// Calcmaster - terminal four-function calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package calc

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrUnknownKey is returned by Press for runes that map to no button.
var ErrUnknownKey = errors.New("unknown key")

// Press maps one key onto the entry points: 0-9 and '.' enter symbols,
// + - * / select operators, '=' evaluates and 'c' or 'C' clears.
func (m *Machine) Press(r rune) error {
	switch {
	case isSymbol(r):
		return m.EnterSymbol(r)
	case Operator(r).Valid():
		return m.SelectOperator(Operator(r))
	case r == '=':
		m.Evaluate()
	case r == 'c' || r == 'C':
		m.Clear()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, r)
	}
	return nil
}

// PressAll presses every key in keys in order, skipping whitespace. It
// stops at the first unknown key and reports its byte offset.
func (m *Machine) PressAll(keys string) error {
	for i, r := range keys {
		if unicode.IsSpace(r) {
			continue
		}
		if err := m.Press(r); err != nil {
			return fmt.Errorf("offset %d: %w", i, err)
		}
	}
	return nil
}
