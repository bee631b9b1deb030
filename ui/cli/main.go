// Copyright (c) 2026 Calcmaster Team
// Calcmaster - terminal four-function calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface for Calcmaster using Cobra.
// It defines the root command, which launches the TUI, the eval and version
// subcommands, and the shared configuration bootstrap.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/calcmaster/buildvars"
	"github.com/toeirei/calcmaster/internal/config"
	"github.com/toeirei/calcmaster/internal/i18n"
	"github.com/toeirei/calcmaster/internal/logging"
	"github.com/toeirei/calcmaster/ui/tui"
	"golang.org/x/term"
)

const modulePath = "github.com/toeirei/calcmaster"

var cfgFile string
var verbose bool

var appConfig config.Config

// setupDefaultServices loads the configuration and initializes logging and
// i18n. It runs before every command.
func setupDefaultServices(cmd *cobra.Command, args []string) error {
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), optionalConfigPath)
	// A missing file is expected on first run; the loaded config is usable.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		writeDefaultConfig()
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if err := logging.SetLevel(appConfig.Log.Level); err != nil {
		logging.Warnf("%v", err)
	}
	logging.SetDebug(verbose)

	if appConfig.Language == "" {
		appConfig.Language = "en"
	}
	if !i18n.Supported(appConfig.Language) {
		logging.Warnf("%s", i18n.T("cli.unsupported_language", appConfig.Language))
		appConfig.Language = "en"
	}
	i18n.Init(appConfig.Language)

	return nil
}

func writeDefaultConfig() {
	path, err := config.ConfigPath(false)
	if err != nil {
		logging.Warnf("%s", i18n.T("cli.config_write_failed", err))
		return
	}
	defaults := config.DefaultConfig()
	if err := config.WriteConfigFileTo(&defaults, path); err != nil {
		// not fatal, the app runs on defaults
		logging.Warnf("%s", i18n.T("cli.config_write_failed", err))
		return
	}
	logging.Debugf("%s", i18n.T("cli.config_written", path))
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	// Make sure the user-provided file exists to avoid unwanted behavior.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "calcmaster",
		Short:             i18n.T("app.short"),
		Long:              i18n.T("app.long"),
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: setupDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !stdinIsTerminal(cmd) {
				return runEval(cmd.OutOrStdout(), cmd.InOrStdin(), evalOptions{})
			}
			return runTUI()
		},
	}

	v, c, d := resolveBuildVersion(nil)
	cmd.Version = compositeVersion(v, c, d)
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.Flags().BoolP("version", "V", false, "Print version and exit")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `UI language ("en", "de")`)
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-file", "", "Write logs to this file while the TUI runs")
	cmd.PersistentFlags().Int("width", 28, "Width of the calculator display in the TUI")

	cmd.AddCommand(newEvalCmd(), newVersionCmd())

	return cmd
}

func stdinIsTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// runTUI hands the terminal to the TUI. Logs would corrupt the screen, so
// they go to the configured file or nowhere.
func runTUI() error {
	var out io.Writer = io.Discard
	if appConfig.Log.File != "" {
		f, err := os.OpenFile(appConfig.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}
	logging.SetOutput(out)
	defer logging.SetOutput(os.Stderr)

	logging.Infof("starting TUI (language %s)", appConfig.Language)
	return tui.Run(tui.Options{
		AltScreen: appConfig.TUI.AltScreen,
		Width:     appConfig.TUI.Width,
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: i18n.T("cli.version_short"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

func compositeVersion(v, c, d string) string {
	out := v
	if c != "" && c != "dev" {
		out += " (" + c + ")"
	}
	if d != "" {
		out += " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault("dev")
	resolvedCommit := buildvars.Commit
	if resolvedCommit == "" {
		resolvedCommit = "dev"
	}
	resolvedDate := buildvars.BuildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}

	if info != nil {
		if resolvedVersion == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// Some build paths only record our version as a dependency.
		if resolvedVersion == "dev" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" && resolvedCommit == "dev" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" && resolvedDate == "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort show the commit to aid support.
	if resolvedVersion == "dev" && resolvedCommit != "dev" {
		resolvedVersion = resolvedCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
