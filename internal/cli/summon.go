package cli

import (
	"github.com/spf13/cobra"
)

func newSummonCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "summon",
		Short: "Open the interactive analyzer",
		Long: `Open the interactive analyzer. This is what running mahoraga without a
subcommand does.

Keys:
  Enter      analyze the prompt, or run the highlighted command
  Esc        close the menu or results, abandon a running analysis
  Tab        complete the highlighted command
  /          open the command menu (/settings, /provider, /clear, /default, /exit)
  Ctrl+U     delete to the start of the line
  Ctrl+C     quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(version)
		},
	}
}
