// Copyright (c) 2026 Calcmaster Team
// Calcmaster - terminal four-function calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadKeysFromLocale_FlatAndNested(t *testing.T) {
	dir := t.TempDir()
	flat := filepath.Join(dir, "flat.yaml")
	nested := filepath.Join(dir, "nested.yaml")
	writeFile(t, flat, "tui.help_quit: quit\ncli.eval_line: \"line %d\"\n")
	writeFile(t, nested, "tui:\n  help_quit: beenden\ncli:\n  eval_line: \"Zeile %d\"\n")

	a, err := loadKeysFromLocale(flat)
	if err != nil {
		t.Fatalf("flat: %v", err)
	}
	b, err := loadKeysFromLocale(nested)
	if err != nil {
		t.Fatalf("nested: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected equal key sets, got %v and %v", a, b)
	}
}

func TestLint(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "ui", "a.go"), `package ui
func f() {
	_ = i18n.T("tui.help_quit")
	_ = i18n.T("cli.eval_line", 3)
	_ = i18n.T("tui.not_defined")
}`)
	// tests and tools are not scanned
	writeFile(t, filepath.Join(root, "ui", "a_test.go"), `package ui
var _ = i18n.T("test.only")`)
	writeFile(t, filepath.Join(root, "tools", "x", "main.go"), `package main
var _ = i18n.T("tool.only")`)

	locales := filepath.Join(root, "locales")
	writeFile(t, filepath.Join(locales, "en.yaml"), "tui.help_quit: quit\ncli.eval_line: \"line %d\"\napp.unused: x\n")
	writeFile(t, filepath.Join(locales, "de.yaml"), "tui.help_quit: beenden\n")

	r, err := lint(root, locales)
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if r.Used != 3 {
		t.Fatalf("expected 3 used keys, got %d", r.Used)
	}
	if !reflect.DeepEqual(r.Undefined, []string{"tui.not_defined"}) {
		t.Fatalf("unexpected undefined keys %v", r.Undefined)
	}
	if !reflect.DeepEqual(r.Orphaned, []string{"app.unused"}) {
		t.Fatalf("unexpected orphaned keys %v", r.Orphaned)
	}
	if !reflect.DeepEqual(r.Missing["de.yaml"], []string{"app.unused", "cli.eval_line"}) {
		t.Fatalf("unexpected missing keys %v", r.Missing)
	}
	if !r.failed() {
		t.Fatal("expected the report to fail")
	}
}

func TestLint_RepositoryLocalesAreConsistent(t *testing.T) {
	r, err := lint(filepath.Join("..", ".."), filepath.Join("..", "..", localesDir))
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if r.failed() {
		t.Fatalf("locale problems: undefined %v, missing %v", r.Undefined, r.Missing)
	}
}
