// Copyright (c) 2026 Calcmaster Team
// Calcmaster - terminal four-function calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package i18n

import (
	"testing"
	"testing/fstest"
)

func TestInitAndAvailableLocales(t *testing.T) {
	Init("en")
	if GetLang() != "en" {
		t.Fatalf("expected lang 'en', got %q", GetLang())
	}

	av := GetAvailableLocales()
	for _, k := range []string{"en", "de"} {
		if _, ok := av[k]; !ok {
			t.Fatalf("expected available locale %q to be present, got %v", k, av)
		}
	}
	if av["de"] != "Deutsch" {
		t.Fatalf("unexpected display name for de: %q", av["de"])
	}
	if !Supported("DE") || Supported("xx") {
		t.Fatalf("Supported gave wrong answers")
	}
	if codes := Codes(); len(codes) != 2 || codes[0] != "de" || codes[1] != "en" {
		t.Fatalf("unexpected codes %v", codes)
	}
}

func TestT_BasicAndFormatting(t *testing.T) {
	Init("en")

	if got := T("tui.help_quit"); got != "quit" {
		t.Fatalf("expected 'quit', got %q", got)
	}
	if got := T("cli.eval_line", 3); got != "line 3" {
		t.Fatalf("unexpected formatted translation: %q", got)
	}
	if got := T("no.such.id"); got != "no.such.id" {
		t.Fatalf("unknown ids should fall back to the id, got %q", got)
	}

	SetLang("de")
	defer Init("en")
	if GetLang() != "de" {
		t.Fatalf("expected lang 'de', got %q", GetLang())
	}
	if got := T("tui.help_quit"); got != "beenden" {
		t.Fatalf("expected German 'beenden', got %q", got)
	}

	// unknown language falls back to English
	SetLang("fr")
	if got := T("tui.help_quit"); got != "quit" {
		t.Fatalf("expected English fallback, got %q", got)
	}
}

func TestLoadBundle(t *testing.T) {
	if _, err := loadBundle(fstest.MapFS{}); err == nil {
		t.Fatal("expected an error when the locales directory is missing")
	}

	broken := fstest.MapFS{
		"locales/en.yaml": {Data: []byte("tui.help_quit: [unclosed\n")},
	}
	if _, err := loadBundle(broken); err == nil {
		t.Fatal("expected an error for an unparsable locale")
	}

	ok := fstest.MapFS{
		"locales/en.yaml": {Data: []byte("tui.help_quit: quit\n")},
		"locales/de.yaml": {Data: []byte("tui.help_quit: beenden\n")},
	}
	b, err := loadBundle(ok)
	if err != nil {
		t.Fatalf("loadBundle: %v", err)
	}
	if n := len(b.LanguageTags()); n != 2 {
		t.Fatalf("expected 2 languages, got %d", n)
	}

	embedded, err := loadBundle(localeFS)
	if err != nil {
		t.Fatalf("embedded locales must load: %v", err)
	}
	if n := len(embedded.LanguageTags()); n != 2 {
		t.Fatalf("expected en and de embedded, got %d", n)
	}
}
