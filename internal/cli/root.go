package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/yildizm/mahoraga/internal/config"
	"github.com/yildizm/mahoraga/internal/emoji"
	"github.com/yildizm/mahoraga/internal/logger"
	"github.com/yildizm/mahoraga/internal/ui"
)

const defaultLogFile = "mahoraga.log"

var (
	cfgFile  string
	verbose  bool
	noColor  bool
	noEmoji  bool
	logLevel string
	logFile  string
	theme    string
)

// runTUI starts the interactive analyzer; tests replace it
var runTUI = ui.Run

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mahoraga",
		Short: "Prompt quality analyzer",
		Long: `Mahoraga scores how well a prompt communicates its intent to a language model.

Running it without a subcommand opens the interactive analyzer. Type a prompt and
press Enter to get a 0-100 score with concrete improvements and the parts a model
would find unclear. Type / to open the command menu.

Azure OpenAI, OpenAI and Anthropic are supported as analysis backends.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Auto-disable emojis on Windows if not explicitly set
			if runtime.GOOS == "windows" && !cmd.Flag("no-emoji").Changed {
				noEmoji = true
			}
			emoji.SetEmojiDisabled(noEmoji)

			return setupLogging()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(version)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default is the user config directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&noEmoji, "no-emoji", false, "disable emoji output (useful for Windows terminals)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "write logs at this level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "log file path (default is mahoraga.log in the config directory)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "gold", "interactive color theme (gold, high-contrast)")

	rootCmd.AddCommand(newSummonCommand(version))
	rootCmd.AddCommand(newAnalyzeCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version number, build commit, date, and runtime information",
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Mahoraga %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// setupLogging routes logs to a file once a level is chosen by flag or
// environment. The terminal belongs to the TUI.
func setupLogging() error {
	level := logLevel
	if level == "" {
		level = os.Getenv(logger.LevelEnvVar)
	}
	path := logFile
	if path == "" {
		path = os.Getenv(logger.FileEnvVar)
	}

	if level != "" && path == "" {
		dir, err := config.GetConfigDir()
		if err != nil {
			return fmt.Errorf("failed to resolve log directory: %w", err)
		}
		path = filepath.Join(dir, defaultLogFile)
	}

	return logger.Initialize(level, path)
}

// runInteractive loads the configuration and hands the terminal to the TUI.
// A malformed config file aborts before anything is drawn.
func runInteractive(version string) error {
	if !ui.SetThemeByName(theme) {
		return fmt.Errorf("unknown theme: %s (use gold or high-contrast)", theme)
	}

	store, err := config.NewLoader().ResolveStore(cfgFile)
	if err != nil {
		return err
	}

	cfg, err := store.Load()
	if err != nil {
		return err
	}

	log := logger.NewWithCallback("cli", isVerbose)
	log.Info("starting interactive session with provider %s (config %s)", cfg.Provider.Active, store.Path())

	return runTUI(cfg, store, ui.Options{
		Version: version,
		Logger:  logger.New("ui", nil),
		NoColor: noColor,
	})
}

// Global helpers
func isVerbose() bool {
	return verbose
}
