// Copyright (c) 2026 Calcmaster Team
// Calcmaster - terminal four-function calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package calc

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/toeirei/calcmaster/internal/logging"
)

// ErrInvalidSymbol is returned by EnterSymbol for anything but 0-9 and '.'.
var ErrInvalidSymbol = errors.New("invalid symbol")

// Display receives the display text after every entry-point call.
// Show is called with the machine locked and must not call back into it.
type Display interface {
	Show(text string)
}

// DisplayFunc adapts a function to Display.
type DisplayFunc func(text string)

func (f DisplayFunc) Show(text string) { f(text) }

// State is a copy of the machine's fields. The zero State is the idle state.
type State struct {
	// Operand is the text typed for the operand being built.
	Operand string
	// Operator is the operator waiting to be applied.
	Operator Operator
	// Accumulator is the running left-hand value; only meaningful when
	// HasAccumulator is set.
	Accumulator    Value
	HasAccumulator bool
	// AwaitingOperand is set right after an operator until the first
	// symbol of the next operand arrives.
	AwaitingOperand bool
	// Display mirrors the text last pushed to the Display.
	Display string
}

// Machine is the calculator state machine. All methods are safe for
// concurrent use; calls are serialized.
type Machine struct {
	mu      sync.Mutex
	display Display
	st      State
}

// New returns an idle machine pushing updates to display. display may be nil.
func New(display Display) *Machine {
	return &Machine{display: display}
}

// EnterSymbol appends a digit or decimal point to the current operand.
// A second decimal point in the same operand is ignored. If the display
// shows an error, the machine is reset first.
func (m *Machine) EnterSymbol(r rune) error {
	if !isSymbol(r) {
		return fmt.Errorf("%w: %q", ErrInvalidSymbol, r)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	defer m.publish()

	if m.st.Display == ErrorText {
		m.reset()
	}

	switch {
	case m.st.AwaitingOperand:
		m.st.Operand = string(r)
		m.st.AwaitingOperand = false
	case r == '.' && strings.ContainsRune(m.st.Operand, '.'):
		return nil
	default:
		m.st.Operand += string(r)
	}
	m.st.Display = m.st.Operand
	return nil
}

// SelectOperator records op as the pending operator. If a second operand
// was typed since the last operator, the previous operator is applied
// first and the intermediate result is displayed.
func (m *Machine) SelectOperator(op Operator) error {
	if !op.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownOperator, rune(op))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	defer m.publish()

	// nothing typed since the last operator: the user changed their mind
	if m.st.Operand == "" && m.st.HasAccumulator {
		logging.Debugf("calc: operator %s replaced by %s", m.st.Operator, op)
		m.st.Operator = op
		return nil
	}

	if !m.st.HasAccumulator {
		m.st.Accumulator = ParseOperand(m.st.Operand)
		m.st.HasAccumulator = true
	} else if !m.st.AwaitingOperand {
		result := Apply(m.st.Accumulator, ParseOperand(m.st.Operand), m.st.Operator)
		logging.Debugf("calc: chained %s %s %s = %s", m.st.Accumulator, m.st.Operator, m.st.Operand, result)
		m.logFault(result)
		m.st.Display = result.String()
		m.st.Accumulator = result
	}

	m.st.AwaitingOperand = true
	m.st.Operator = op
	m.st.Operand = ""
	return nil
}

// Evaluate applies the pending operator to the accumulator and the current
// operand. The result stays in the accumulator and in the operand text, so
// it can be chained with an operator or extended with more digits.
func (m *Machine) Evaluate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	defer m.publish()

	if m.st.Operand == "" && !m.st.HasAccumulator {
		return
	}

	// no operator was ever chosen
	if !m.st.HasAccumulator {
		v := ParseOperand(m.st.Operand)
		m.logFault(v)
		m.st.Display = v.String()
		return
	}

	result := Apply(m.st.Accumulator, ParseOperand(m.st.Operand), m.st.Operator)
	logging.Debugf("calc: evaluated %s %s %q = %s", m.st.Accumulator, m.st.Operator, m.st.Operand, result)
	m.logFault(result)

	m.st.Display = result.String()
	m.st.Accumulator = result
	m.st.Operator = None
	m.st.Operand = result.String()
	m.st.AwaitingOperand = false
}

// Clear resets the machine to the idle state and blanks the display.
func (m *Machine) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	defer m.publish()

	m.reset()
}

// Display returns the text currently shown.
func (m *Machine) Display() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.st.Display
}

// Snapshot returns a copy of the current state.
func (m *Machine) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.st
}

func (m *Machine) reset() {
	m.st = State{}
}

func (m *Machine) publish() {
	if m.display != nil {
		m.display.Show(m.st.Display)
	}
}

func (m *Machine) logFault(v Value) {
	if err := v.Err(); err != nil {
		logging.Debugf("calc: fault: %v", err)
	}
}

func isSymbol(r rune) bool {
	return r == '.' || (r >= '0' && r <= '9')
}
