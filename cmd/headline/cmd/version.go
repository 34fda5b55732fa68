package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/headlinehq/headline/pkg/version"
)

// NewVersion returns a cobra.Command that prints version details.
func NewVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			details := version.Info()
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Version: %s\nGit commit: %s\nBuild date: %s\n",
				details.Version, details.GitCommitID, details.BuildDate)
			return err
		},
	}
}
