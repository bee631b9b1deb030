// Copyright (c) 2026 Calcmaster Team
// Calcmaster - terminal four-function calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Calcmaster.
//
// Usage:
//
//	go run . [flags]
//	./calcmaster [flags]
//	echo "6+4*2=" | ./calcmaster
//
// This launches the Calcmaster CLI. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/calcmaster/internal/logging"
	"github.com/toeirei/calcmaster/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("calcmaster: %v", err)
		os.Exit(1)
	}
}
