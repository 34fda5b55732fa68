package cmd

import (
	"github.com/spf13/cobra"

	"github.com/headlinehq/headline/internal/cli"
	"github.com/headlinehq/headline/internal/cli/heredoc"
)

// NewRoot returns a root cobra.Command for the whole headline CLI.
func NewRoot() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   cli.Name,
		Short: "Headline-style title casing",
		Long: heredoc.WithCLIName(`
        <cli> - Headline-style title casing

        A utility that rewrites titles, headlines and labels into
        English headline-style capitalization.

        Quick Start:

            $ <cli> title "a tale of two cities"     # Prints: A Tale of Two Cities
            $ <cli> csv --file in.csv --column name  # Rewrites one CSV column
            `, cli.Name),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(
		NewTitle(),
		NewCSV(),
		NewVersion(),
	)

	return rootCmd
}
