// Copyright (c) 2026 Calcmaster Team
// Calcmaster - terminal four-function calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package display provides calc.Display sinks shared by the CLI, the TUI
// and tests.
package display
