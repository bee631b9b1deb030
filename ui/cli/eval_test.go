// Copyright (c) 2026 Calcmaster Team
// Calcmaster - terminal four-function calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/toeirei/calcmaster/internal/calc"
	"github.com/toeirei/calcmaster/internal/i18n"
)

// newTestRoot returns a root command whose config lives in a temp dir.
func newTestRoot(t *testing.T, stdin string, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() { i18n.Init("en") })

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return &out, err
}

func TestRunEval_Lines(t *testing.T) {
	in := `6 + 4 * 2 =
# comments and blank lines are skipped

5+-3=
8/0=
9=
8+=
`
	var out bytes.Buffer
	if err := runEval(&out, strings.NewReader(in), evalOptions{}); err != nil {
		t.Fatalf("runEval: %v", err)
	}
	want := "20\n2\nError\n9\nError\n"
	if out.String() != want {
		t.Fatalf("got %q want %q", out.String(), want)
	}
}

func TestRunEval_Keep(t *testing.T) {
	var out bytes.Buffer
	if err := runEval(&out, strings.NewReader("2+3=\n+10=\n"), evalOptions{Keep: true}); err != nil {
		t.Fatalf("runEval: %v", err)
	}
	if out.String() != "5\n15\n" {
		t.Fatalf("unexpected output %q", out.String())
	}

	out.Reset()
	if err := runEval(&out, strings.NewReader("2+3=\n+10=\n"), evalOptions{}); err != nil {
		t.Fatalf("runEval: %v", err)
	}
	// a fresh machine ignores the leading operator's empty operand
	if out.String() != "5\nError\n" {
		t.Fatalf("unexpected output without --keep %q", out.String())
	}
}

func TestRunEval_Trace(t *testing.T) {
	var out bytes.Buffer
	if err := runEval(&out, strings.NewReader("2*3=c\n"), evalOptions{Trace: true}); err != nil {
		t.Fatalf("runEval: %v", err)
	}
	want := "  2\n  2\n  3\n  6\n  (blank)\n\n"
	if out.String() != want {
		t.Fatalf("got %q want %q", out.String(), want)
	}
}

func TestRunEval_LiveKeepsOneFramePerLine(t *testing.T) {
	var out bytes.Buffer
	if err := runEval(&out, strings.NewReader("1+1=\n2*3=\n"), evalOptions{Live: true}); err != nil {
		t.Fatalf("runEval: %v", err)
	}
	got := out.String()
	if !strings.HasSuffix(got, "6\n") || !strings.Contains(got, "2\n") {
		t.Fatalf("unexpected live output %q", got)
	}
}

func TestEvalCmd_TraceAndLiveExclusive(t *testing.T) {
	if _, err := newTestRoot(t, "", "eval", "--trace", "--live", "1"); err == nil {
		t.Fatal("expected --trace and --live to be rejected together")
	}
}

func TestRunEval_BadKeyReportsLine(t *testing.T) {
	i18n.Init("en")
	var out bytes.Buffer
	err := runEval(&out, strings.NewReader("1+1=\n\n2x\n"), evalOptions{})
	if !errors.Is(err, calc.ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "line 3: ") {
		t.Fatalf("expected line number in %q", err.Error())
	}
	if out.String() != "2\n" {
		t.Fatalf("lines before the error should be printed, got %q", out.String())
	}
}

func TestEvalCmd_Args(t *testing.T) {
	out, err := newTestRoot(t, "", "eval", "6+4", "*2=")
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if out.String() != "20\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestEvalCmd_StdinAndFile(t *testing.T) {
	out, err := newTestRoot(t, "1.5*2=\n", "eval", "-")
	if err != nil {
		t.Fatalf("eval -: %v", err)
	}
	if out.String() != "3\n" {
		t.Fatalf("unexpected stdin output %q", out.String())
	}

	file := filepath.Join(t.TempDir(), "sums.txt")
	if err := os.WriteFile(file, []byte("0.1+0.2=\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err = newTestRoot(t, "", "eval", "--file", file)
	if err != nil {
		t.Fatalf("eval --file: %v", err)
	}
	if out.String() != "0.30000000000000004\n" {
		t.Fatalf("unexpected file output %q", out.String())
	}
}

func TestEvalCmd_LocalizedLineError(t *testing.T) {
	_, err := newTestRoot(t, "", "--language", "de", "eval", "1?")
	if err == nil || !strings.HasPrefix(err.Error(), "Zeile 1: ") {
		t.Fatalf("expected german line prefix, got %v", err)
	}
}

func TestRootCmd_PipedStdinEvaluates(t *testing.T) {
	out, err := newTestRoot(t, "9=\n8/0=1\n")
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	if out.String() != "9\n1\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRootCmd_WritesDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", t.TempDir())

	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"eval", "1"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "calcmaster", "calcmaster.yaml")); err != nil {
		t.Fatalf("expected default config to be written: %v", err)
	}
}

func TestRootCmd_MissingExplicitConfig(t *testing.T) {
	_, err := newTestRoot(t, "", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "eval", "1")
	if err == nil {
		t.Fatal("expected an error for a missing --config file")
	}
}

func TestRootCmd_VersionFlagAndCommand(t *testing.T) {
	out, err := newTestRoot(t, "", "-V")
	if err != nil {
		t.Fatalf("-V: %v", err)
	}
	v, c, d := resolveBuildVersion(nil)
	if out.String() != compositeVersion(v, c, d)+"\n" {
		t.Fatalf("unexpected -V output %q", out.String())
	}

	out, err = newTestRoot(t, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out.String(), "version: "+v+"\n") {
		t.Fatalf("unexpected version output %q", out.String())
	}
}
