// Copyright (c) 2026 Calcmaster Team
// Calcmaster - terminal four-function calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads Calcmaster settings from defaults, config files,
// environment variables and command-line flags, and writes default config
// files for first runs.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the full set of user settings.
type Config struct {
	Language string    `mapstructure:"language" yaml:"language"`
	Log      LogConfig `mapstructure:"log" yaml:"log"`
	TUI      TUIConfig `mapstructure:"tui" yaml:"tui"`
}

type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level" yaml:"level"`
	// File receives log output while the TUI owns the terminal. Empty
	// discards it.
	File string `mapstructure:"file" yaml:"file"`
}

type TUIConfig struct {
	AltScreen bool `mapstructure:"altscreen" yaml:"altscreen"`
	// Width is the width of the calculator display in cells.
	Width int `mapstructure:"width" yaml:"width"`
}

// Defaults returns the built-in defaults keyed the way viper expects them.
func Defaults() map[string]any {
	return map[string]any{
		"language":      "en",
		"log.level":     "info",
		"log.file":      "",
		"tui.altscreen": true,
		"tui.width":     28,
	}
}

// DefaultConfig is Defaults as a Config, the content of a freshly written
// config file.
func DefaultConfig() Config {
	return Config{
		Language: "en",
		Log:      LogConfig{Level: "info"},
		TUI:      TUIConfig{AltScreen: true, Width: 28},
	}
}

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Calcmaster")
		default: // Linux, macOS, etc.
			configDir = "/etc/calcmaster"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "calcmaster")
	}

	return filepath.Join(configDir, "calcmaster.yaml"), nil
}

// LoadConfig layers defaults, the first calcmaster.yaml found (or the
// explicit file), CALCMASTER_* environment variables and the flags of cmd,
// in increasing precedence. A missing config file is reported as
// viper.ConfigFileNotFoundError alongside a usable config.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, additionalConfigFilePath *string) (T, error) {
	var c T
	v := viper.New()

	// 1. Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. Set up file search paths
	v.SetConfigName("calcmaster")
	v.SetConfigType("yaml")

	// 3. An explicit --config file wins over the search paths.
	if additionalConfigFilePath != nil {
		v.SetConfigFile(*additionalConfigFilePath)
	}

	// 4. Add standard config locations
	if userConfigPath, err := getConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := getConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	// 5. Read in the primary config file.
	var notFound error
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
		notFound = err
	}

	// 6. Read from environment variables
	v.SetEnvPrefix("calcmaster")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 7. Flags, only those the user actually set override lower layers.
	if cmd != nil {
		if err := bindChangedFlags(v, cmd); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, notFound
}

// flagKeys maps command-line flag names onto config keys.
var flagKeys = map[string]string{
	"language":  "language",
	"log-level": "log.level",
	"log-file":  "log.file",
	"width":     "tui.width",
}

func bindChangedFlags(v *viper.Viper, cmd *cobra.Command) error {
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// ConfigPath returns where WriteConfigFile will write.
func ConfigPath(system bool) (string, error) {
	return getConfigPath(system)
}

// WriteConfigFile persists c as YAML to the user (or system) config path.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := getConfigPath(system)
	if err != nil {
		return err
	}
	return WriteConfigFileTo(c, path)
}

// WriteConfigFileTo persists c as YAML to path, creating parent directories.
func WriteConfigFileTo[T any](c *T, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}

	return nil
}
