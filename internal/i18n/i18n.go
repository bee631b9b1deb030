// Copyright (c) 2026 Calcmaster Team
// Calcmaster - terminal four-function calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// package i18n provides translated UI and CLI strings for Calcmaster.
// It uses the go-i18n library to load the embedded YAML locale files.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files from the 'locales' directory
// into the application binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

var (
	mu        sync.RWMutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	current   string
)

// Init loads every embedded locale and activates lang. Unknown languages
// fall back to English.
func Init(lang string) {
	b, err := loadBundle(localeFS)
	if err != nil {
		// the locales are embedded, so this is a build defect
		panic(fmt.Sprintf("i18n: %v", err))
	}

	mu.Lock()
	defer mu.Unlock()
	bundle = b
	localizer = i18n.NewLocalizer(b, lang)
	current = lang
}

// loadBundle parses every file under locales/ in fsys.
func loadBundle(fsys fs.FS) (*i18n.Bundle, error) {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.ReadDir(fsys, "locales")
	if err != nil {
		return nil, fmt.Errorf("reading locales: %w", err)
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := fs.ReadFile(fsys, "locales/"+f.Name())
		if err != nil {
			return nil, fmt.Errorf("reading locale %s: %w", f.Name(), err)
		}
		if _, err := b.ParseMessageFileBytes(data, f.Name()); err != nil {
			return nil, fmt.Errorf("embedded locale %s: %w", f.Name(), err)
		}
	}
	return b, nil
}

// T translates messageID. With args the translation is used as a
// fmt format string. Unknown IDs are returned unchanged.
func T(messageID string, args ...any) string {
	mu.RLock()
	loc := localizer
	mu.RUnlock()
	if loc == nil {
		Init("en")
		mu.RLock()
		loc = localizer
		mu.RUnlock()
	}

	msg, err := loc.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// SetLang changes the active language.
func SetLang(lang string) {
	Init(lang)
}

// GetLang returns the language passed to the last Init.
func GetLang() string {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// GetAvailableLocales maps each embedded locale code to its name in that
// language, e.g. "de" -> "Deutsch".
func GetAvailableLocales() map[string]string {
	mu.RLock()
	b := bundle
	mu.RUnlock()
	if b == nil {
		Init("en")
		mu.RLock()
		b = bundle
		mu.RUnlock()
	}

	out := make(map[string]string)
	for _, tag := range b.LanguageTags() {
		name := display.Self.Name(tag)
		if name == "" {
			name = tag.String()
		}
		out[tag.String()] = name
	}
	return out
}

// Codes returns the available locale codes sorted.
func Codes() []string {
	av := GetAvailableLocales()
	codes := make([]string, 0, len(av))
	for c := range av {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// Supported reports whether lang names an embedded locale.
func Supported(lang string) bool {
	_, ok := GetAvailableLocales()[strings.ToLower(lang)]
	return ok
}
