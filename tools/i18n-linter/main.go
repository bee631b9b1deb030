// Copyright (c) 2026 Calcmaster Team
// Calcmaster - terminal four-function calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the embedded locale files against the source tree.
// It reports keys used in code but missing from the primary locale, keys
// the other locales lack, and orphaned keys nothing references.
//
// Run it from the repository root:
//
//	go run ./tools/i18n-linter
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

// report collects everything the linter found. Undefined and Missing fail
// the run; Orphaned is a warning.
type report struct {
	Used      int
	Undefined []string
	Missing   map[string][]string
	Orphaned  []string
}

func (r report) failed() bool {
	return len(r.Undefined) > 0 || len(r.Missing) > 0
}

func main() {
	fmt.Println("🔍 Running i18n linter...")

	r, err := lint(projectRoot, localesDir)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ Found %d unique translation keys used in source code.\n\n", r.Used)

	section("Undefined Keys (used in code but not in "+primaryLocale+")", r.Undefined)
	files := make([]string, 0, len(r.Missing))
	for f := range r.Missing {
		files = append(files, f)
	}
	sort.Strings(files)
	for _, f := range files {
		section("Missing Keys in "+f, r.Missing[f])
	}
	section("Orphaned Keys (in "+primaryLocale+" but not used in code)", r.Orphaned)

	fmt.Println("--- Linter Finished ---")
	switch {
	case r.failed():
		fmt.Println("❌ Found issues that need to be addressed.")
		os.Exit(1)
	case len(r.Orphaned) > 0:
		fmt.Println("⚠️  Found orphaned keys. Please consider removing them.")
	default:
		fmt.Println("✅ All translation files are consistent!")
	}
}

func section(title string, keys []string) {
	fmt.Printf("--- %s ---\n", title)
	if len(keys) == 0 {
		fmt.Println("  ✨ None found.")
	}
	for _, k := range keys {
		fmt.Printf("  - %s\n", k)
	}
	fmt.Println()
}

// lint compares the keys used under root with the locale files in dir.
func lint(root, dir string) (report, error) {
	var r report

	used, err := findUsedKeys(root)
	if err != nil {
		return r, fmt.Errorf("finding used keys: %w", err)
	}
	r.Used = len(used)

	primary, err := loadKeysFromLocale(filepath.Join(dir, primaryLocale))
	if err != nil {
		return r, fmt.Errorf("loading primary locale %s: %w", primaryLocale, err)
	}

	r.Undefined = difference(used, primary)
	r.Orphaned = difference(primary, used)

	localeFiles, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return r, fmt.Errorf("finding locale files: %w", err)
	}
	r.Missing = make(map[string][]string)
	for _, file := range localeFiles {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return r, fmt.Errorf("loading %s: %w", file, err)
		}
		if missing := difference(primary, keys); len(missing) > 0 {
			r.Missing[filepath.Base(file)] = missing
		}
	}
	return r, nil
}

// difference returns the sorted keys of a that b lacks.
func difference(a, b map[string]struct{}) []string {
	var out []string
	for k := range a {
		if _, ok := b[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

var usedKeyRe = regexp.MustCompile(`i18n\.T\("([a-z_]+\.[a-z_.]+)"`)

// findUsedKeys scans non-test .go files for i18n.T("key") calls.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			// the linter itself and reference trees are not part of the app
			if path != root && (info.Name() == "tools" || strings.HasPrefix(info.Name(), "_") || strings.HasPrefix(info.Name(), ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range usedKeyRe.FindAllStringSubmatch(string(content), -1) {
			keys[m[1]] = struct{}{}
		}
		return nil
	})
	return keys, err
}

// loadKeysFromLocale reads a YAML locale and returns its keys. Nested maps
// are flattened with dots, so flat and nested files compare equal.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	m, ok := node.(map[string]any)
	if !ok {
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
		return
	}
	for k, val := range m {
		if prefix != "" {
			k = prefix + "." + k
		}
		flattenYAML(k, val, keys)
	}
}
