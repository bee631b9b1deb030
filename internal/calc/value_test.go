// Copyright (c) 2026 Calcmaster Team
// Calcmaster - terminal four-function calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package calc

import (
	"errors"
	"math"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	// computed at run time; a constant expression would fold to exactly 0.3
	a, b := 0.1, 0.2
	tests := []struct {
		in   float64
		want string
	}{
		{20, "20"},
		{-3, "-3"},
		{0.5, "0.5"},
		{a + b, "0.30000000000000004"},
		{1234567, "1234567"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{1.5e-7, "1.5e-7"},
		{0.000001, "0.000001"},
		{math.Copysign(0, -1), "0"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseOperand(t *testing.T) {
	tests := []struct {
		in    string
		want  float64
		fault error
	}{
		{"42", 42, nil},
		{"5.", 5, nil},
		{".25", 0.25, nil},
		{"-7.5", -7.5, nil},
		{"1e+21", 1e21, nil},
		{"1e+215", 1e215, nil},
		{"12.5e", 12.5, nil},
		{"Infinity5", math.Inf(1), nil},
		{"", 0, ErrNotANumber},
		{".", 0, ErrNotANumber},
		{"Error", 0, ErrNotANumber},
	}
	for _, tt := range tests {
		got := ParseOperand(tt.in)
		f, err := got.Float()
		if tt.fault != nil {
			if !errors.Is(err, tt.fault) {
				t.Errorf("ParseOperand(%q) fault = %v, want %v", tt.in, err, tt.fault)
			}
			continue
		}
		if err != nil || f != tt.want {
			t.Errorf("ParseOperand(%q) = %v, %v; want %v", tt.in, f, err, tt.want)
		}
	}
}

func TestValue_NaNBecomesFault(t *testing.T) {
	v := Number(math.NaN())
	if !v.IsFault() || !errors.Is(v.Err(), ErrNotANumber) {
		t.Fatalf("expected NaN to become a not-a-number fault, got %#v", v)
	}
	if v.String() != ErrorText {
		t.Fatalf("faulted value should render as %q, got %q", ErrorText, v.String())
	}
}
