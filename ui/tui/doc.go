// Copyright (c) 2026 Calcmaster Team
// Calcmaster - terminal four-function calculator
// This source code is licensed under the MIT license found in the LICENSE file.
// Package tui implements the terminal UI for Calcmaster. Presentation and
// key handling live here; the arithmetic state machine is internal/calc.
package tui
