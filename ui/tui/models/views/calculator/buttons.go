// Copyright (c) 2026 Calcmaster Team
// Calcmaster - terminal four-function calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package calculator

import "strings"

// buttons is the on-screen layout, one rune per button.
var buttons = [][]rune{
	[]rune("789/"),
	[]rune("456*"),
	[]rune("123-"),
	[]rune("0.=+"),
	[]rune("C"),
}

// buttonKeys are the runes that can be typed to press a button directly.
const buttonKeys = "0123456789.+-*/=cC"

func isOperatorButton(r rune) bool {
	return strings.ContainsRune("+-*/=", r)
}

// locate returns the grid position of r.
func locate(r rune) (row, col int, ok bool) {
	if r == 'c' {
		r = 'C'
	}
	for i, line := range buttons {
		for j, b := range line {
			if b == r {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}
