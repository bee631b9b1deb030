// Copyright (c) 2026 Calcmaster Team
// Calcmaster - terminal four-function calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"

	clog "github.com/charmbracelet/log"
)

// swapLogger replaces L with a buffer-backed logger for the duration of the test.
func swapLogger(t *testing.T, level clog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	L.SetLevel(level)
	t.Cleanup(func() { L = prev })
	return &buf
}

func TestLoggingHelpers_WriteToBuffer(t *testing.T) {
	buf := swapLogger(t, clog.DebugLevel)

	Debugf("hello %s", "dbg")
	Infof("info %d", 1)
	Warnf("warn")
	Errorf("err %v", "E")

	out := buf.String()
	for _, want := range []string{"hello dbg", "info 1", "warn", "err E"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output; got: %s", want, out)
		}
	}
}

func TestSetLevel(t *testing.T) {
	buf := swapLogger(t, clog.DebugLevel)

	if err := SetLevel("WARN"); err != nil {
		t.Fatalf("SetLevel: %v", err)
	}
	Infof("quiet")
	Warnf("loud")
	if out := buf.String(); strings.Contains(out, "quiet") || !strings.Contains(out, "loud") {
		t.Fatalf("unexpected output at warn level: %s", out)
	}

	if err := SetLevel(""); err != nil {
		t.Fatalf("empty level should be a no-op, got %v", err)
	}
	if L.GetLevel() != clog.WarnLevel {
		t.Fatalf("empty level changed the level to %v", L.GetLevel())
	}

	if err := SetLevel("chatty"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestSetDebugAndOutput(t *testing.T) {
	swapLogger(t, clog.InfoLevel)

	var other bytes.Buffer
	SetOutput(&other)
	SetDebug(true)
	Debugf("now visible")
	if !strings.Contains(other.String(), "now visible") {
		t.Fatalf("expected debug output on redirected writer, got: %q", other.String())
	}
}

func TestDefaultLogger_IsUsableAndRedirectable(t *testing.T) {
	if L == nil {
		t.Fatal("package logger must be initialized")
	}
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stderr) })

	Warnf("default logger %d", 1)
	if !strings.Contains(buf.String(), "default logger 1") {
		t.Fatalf("expected output from the default logger, got: %q", buf.String())
	}
}
