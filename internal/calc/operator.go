// Copyright (c) 2026 Calcmaster Team
// Calcmaster - terminal four-function calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package calc

import (
	"errors"
	"fmt"
)

// Operator is one of the four binary operators, or None.
type Operator rune

const (
	None     Operator = 0
	Add      Operator = '+'
	Subtract Operator = '-'
	Multiply Operator = '*'
	Divide   Operator = '/'
)

// ErrUnknownOperator is returned for operators outside + - * /.
var ErrUnknownOperator = errors.New("unknown operator")

// ParseOperator maps a rune to its Operator.
func ParseOperator(r rune) (Operator, error) {
	switch op := Operator(r); op {
	case Add, Subtract, Multiply, Divide:
		return op, nil
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownOperator, r)
}

// Valid reports whether op is one of the four operators.
func (op Operator) Valid() bool {
	switch op {
	case Add, Subtract, Multiply, Divide:
		return true
	}
	return false
}

func (op Operator) String() string {
	if op == None {
		return ""
	}
	return string(rune(op))
}

// Apply combines a and b with op. A fault in either operand is passed
// through, dividing by zero yields ErrDivisionByZero, and None (or any
// unrecognized operator) returns b unchanged.
func Apply(a, b Value, op Operator) Value {
	if !op.Valid() {
		return b
	}
	x, err := a.Float()
	if err != nil {
		return a
	}
	y, err := b.Float()
	if err != nil {
		return b
	}

	switch op {
	case Add:
		return Number(x + y)
	case Subtract:
		return Number(x - y)
	case Multiply:
		return Number(x * y)
	default:
		if y == 0 {
			return Fault(ErrDivisionByZero)
		}
		return Number(x / y)
	}
}
