// Copyright (c) 2026 Calcmaster Team
// Calcmaster - terminal four-function calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package calc

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrorText is what the display shows in place of a faulted value.
const ErrorText = "Error"

var (
	// ErrDivisionByZero is the fault produced by dividing by exactly zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNotANumber is the fault produced by an operand that does not parse,
	// e.g. an empty operand or a lone decimal point.
	ErrNotANumber = errors.New("not a number")
)

// Value is either a number or a fault. The zero Value is the number 0.
type Value struct {
	num   float64
	fault error
}

// Number wraps a float64. NaN becomes an ErrNotANumber fault.
func Number(f float64) Value {
	if math.IsNaN(f) {
		return Fault(ErrNotANumber)
	}
	return Value{num: f}
}

// Fault returns a faulted Value carrying err.
func Fault(err error) Value {
	return Value{fault: err}
}

// Float returns the number, or the fault if v is faulted.
func (v Value) Float() (float64, error) {
	if v.fault != nil {
		return 0, v.fault
	}
	return v.num, nil
}

// Err returns the fault, nil for numbers.
func (v Value) Err() error { return v.fault }

// IsFault reports whether v carries a fault.
func (v Value) IsFault() bool { return v.fault != nil }

// String renders v for the display.
func (v Value) String() string {
	if v.fault != nil {
		return ErrorText
	}
	return FormatNumber(v.num)
}

// FormatNumber renders f the way the display shows numbers: the shortest
// decimal that round-trips, in exponent form outside [1e-6, 1e21).
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		// covers -0
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mant + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// numericPrefix matches the longest leading run of text that reads as a
// number. Anything after it is ignored, so "12.5e" parses as 12.5.
var numericPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// ParseOperand turns operand text into a Value. Text with no numeric
// prefix (including "" and ".") yields an ErrNotANumber fault.
func ParseOperand(text string) Value {
	prefix := numericPrefix.FindString(strings.TrimSpace(text))
	if prefix == "" {
		return Fault(ErrNotANumber)
	}
	switch strings.TrimLeft(prefix, "+-") {
	case "Infinity":
		if strings.HasPrefix(prefix, "-") {
			return Number(math.Inf(-1))
		}
		return Number(math.Inf(1))
	}
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		// out-of-range literals come back as ±Inf with ErrRange
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return Number(f)
		}
		return Fault(ErrNotANumber)
	}
	return Number(f)
}
