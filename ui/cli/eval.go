// Copyright (c) 2026 Calcmaster Team
// Calcmaster - terminal four-function calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/toeirei/calcmaster/internal/calc"
	"github.com/toeirei/calcmaster/internal/display"
	"github.com/toeirei/calcmaster/internal/i18n"
	"github.com/toeirei/calcmaster/internal/logging"
)

var errNoInput = errors.New("no input")

type evalOptions struct {
	// Trace prints every display update, not just the final display.
	Trace bool
	// Live redraws each line's display in place while its keys are pressed.
	Live bool
	// Keep carries calculator state from one line to the next.
	Keep bool
}

func newEvalCmd() *cobra.Command {
	var opts evalOptions
	var file string

	cmd := &cobra.Command{
		Use:   "eval [keys...]",
		Short: i18n.T("cli.eval_short"),
		Long: `Feeds key sequences through the calculator and prints the display.

Keys are the characters of the calculator face: 0-9 and "." build an
operand, + - * / pick an operator, "=" evaluates and "c" clears.
Whitespace is ignored. Arguments are joined into a single line; with
"-" or --file, input is read line by line and every line starts from a
cleared calculator unless --keep is given. Lines starting with "#" are
comments.`,
		Example: `  calcmaster eval "6+4*2="
  echo "8/0=" | calcmaster eval -
  calcmaster eval --trace --file sums.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, closeFn, err := evalInput(cmd, args, file)
			if err != nil {
				return err
			}
			defer closeFn()
			return runEval(cmd.OutOrStdout(), r, opts)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read key sequences from this file")
	cmd.Flags().BoolVar(&opts.Trace, "trace", false, "Print every display update")
	cmd.Flags().BoolVar(&opts.Live, "live", false, "Redraw the display in place while keys are pressed")
	cmd.Flags().BoolVar(&opts.Keep, "keep", false, "Keep calculator state across lines")
	cmd.MarkFlagsMutuallyExclusive("trace", "live")

	return cmd
}

// evalInput picks the input source: --file, a lone "-" for stdin, the
// joined arguments, or stdin when it is not a terminal.
func evalInput(cmd *cobra.Command, args []string, file string) (io.Reader, func(), error) {
	noop := func() {}
	switch {
	case file != "":
		f, err := os.Open(file)
		if err != nil {
			return nil, noop, fmt.Errorf("open %s: %w", file, err)
		}
		return f, func() { _ = f.Close() }, nil
	case len(args) == 1 && args[0] == "-":
		return cmd.InOrStdin(), noop, nil
	case len(args) > 0:
		return strings.NewReader(strings.Join(args, " ")), noop, nil
	case !stdinIsTerminal(cmd):
		return cmd.InOrStdin(), noop, nil
	}
	return nil, noop, fmt.Errorf("%w: %s", errNoInput, i18n.T("cli.eval_no_input"))
}

// runEval presses the keys of every line of r and prints the display after
// each line. The first bad key aborts with the line number.
func runEval(w io.Writer, r io.Reader, opts evalOptions) error {
	var machine *calc.Machine
	var live *display.Live
	mirror := &display.Mirror{}
	var sink calc.Display = mirror
	switch {
	case opts.Trace:
		sink = display.Tee{&display.Writer{W: w, Prefix: "  ", Blank: "(blank)"}, mirror}
	case opts.Live:
		// the machine may outlive a line with --keep, so it writes through
		// to whichever Live the current line owns
		sink = display.Tee{calc.DisplayFunc(func(text string) { live.Show(text) }), mirror}
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if machine == nil || !opts.Keep {
			machine = calc.New(sink)
		}
		if opts.Live {
			live = display.NewLive(w)
		}
		logging.Debugf("eval line %d: %q", lineNo, line)
		if err := machine.PressAll(line); err != nil {
			return fmt.Errorf("%s: %w", i18n.T("cli.eval_line", lineNo), err)
		}
		if opts.Live {
			// the last frame already shows the result
			continue
		}
		if _, err := fmt.Fprintln(w, mirror.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
