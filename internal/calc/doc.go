// Copyright (c) 2026 Calcmaster Team
// Calcmaster - terminal four-function calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package calc implements the calculator state machine. Key presses are
// assembled into operands, operators are applied lazily when the next
// operator or "=" arrives, and every change is pushed to a Display sink.
//
// The package has no knowledge of terminals or command lines; the TUI and
// CLI in ui/ drive a Machine through its four entry points.
package calc
