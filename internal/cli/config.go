package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yildizm/mahoraga/internal/config"
	"github.com/yildizm/mahoraga/internal/emoji"
)

// newConfigCommand creates the config command with subcommands
func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage Mahoraga configuration",
		Long: `Manage the Mahoraga configuration file.

The same file is edited interactively through /settings, /provider and /default.`,
	}

	configCmd.AddCommand(newConfigShowCommand())
	configCmd.AddCommand(newConfigPathCommand())
	configCmd.AddCommand(newConfigValidateCommand())
	configCmd.AddCommand(newConfigResetCommand())

	return configCmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	var (
		format string
		reveal bool
	)

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long: `Display the effective configuration: the config file merged over the
defaults, with MAHORAGA_* environment overrides applied. API keys are masked
unless --reveal is given.`,
		Example: `  # Show config in YAML format
  mahoraga config show

  # Show config in JSON format
  mahoraga config show --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewLoader().LoadConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			shown := *cfg
			if !reveal {
				shown.Azure.APIKey = maskSecret(shown.Azure.APIKey)
				shown.OpenAI.APIKey = maskSecret(shown.OpenAI.APIKey)
				shown.Anthropic.APIKey = maskSecret(shown.Anthropic.APIKey)
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				data, err := json.MarshalIndent(&shown, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal config to JSON: %w", err)
				}
				fmt.Fprintln(out, string(data))
			case "yaml":
				data, err := yaml.Marshal(&shown)
				if err != nil {
					return fmt.Errorf("failed to marshal config to YAML: %w", err)
				}
				fmt.Fprint(out, string(data))
			default:
				return fmt.Errorf("unsupported format: %s (use json or yaml)", format)
			}

			return nil
		},
	}

	showCmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format (yaml, json)")
	showCmd.Flags().BoolVar(&reveal, "reveal", false, "print API keys in full")

	return showCmd
}

// newConfigPathCommand creates the config path subcommand
func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := config.NewLoader().ResolveStore(cfgFile)
			if err != nil {
				return err
			}

			state := "not found, defaults are used"
			if store.Exists() {
				state = "exists"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", emoji.GetEmoji("folder"), store.Path(), state)
			return nil
		},
	}
}

// newConfigValidateCommand creates the config validate subcommand
func newConfigValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validate the configuration file syntax and provider name, then report
which settings the active provider is still missing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := config.NewLoader().LoadConfig(cfgFile)
			if err != nil {
				fmt.Fprintf(out, "%s Configuration validation failed:\n", emoji.GetEmoji("error"))
				fmt.Fprintf(out, "   %v\n", err)
				return err
			}

			fmt.Fprintf(out, "%s Configuration is valid\n", emoji.GetEmoji("success"))
			fmt.Fprintf(out, "   Provider: %s\n", cfg.Provider.Active.DisplayName())

			if missing := cfg.MissingFields(); len(missing) > 0 {
				fmt.Fprintf(out, "%s %s is not configured (missing: %s)\n",
					emoji.GetEmoji("warning"), cfg.Provider.Active.DisplayName(), strings.Join(missing, ", "))
			}

			return nil
		},
	}
}

// newConfigResetCommand creates the config reset subcommand
func newConfigResetCommand() *cobra.Command {
	var force bool

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default configuration",
		Long:  "Overwrite the configuration file with defaults. Stored API keys are lost.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return errors.New("refusing to reset the configuration without --force")
			}

			store, err := config.NewLoader().ResolveStore(cfgFile)
			if err != nil {
				return err
			}
			if _, err := store.Reset(); err != nil {
				return fmt.Errorf("failed to reset config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Configuration reset to defaults at %s\n", emoji.GetEmoji("success"), store.Path())
			return nil
		},
	}

	resetCmd.Flags().BoolVarP(&force, "force", "f", false, "confirm overwriting the config file")

	return resetCmd
}

// maskSecret hides all but the last four characters of longer keys
func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	if len(r) <= 8 {
		return "****"
	}
	return "****" + string(r[len(r)-4:])
}
