// Copyright (c) 2026 Calcmaster Team
// Calcmaster - terminal four-function calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cli wires the Calcmaster command line: configuration, logging and
// language setup, the interactive TUI and the non-interactive eval command.
package cli
