package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/headlinehq/headline/internal/cli"
	"github.com/headlinehq/headline/internal/cli/heredoc"
	"github.com/headlinehq/headline/internal/loggerx"
	"github.com/headlinehq/headline/pkg/config"
	"github.com/headlinehq/headline/pkg/csvx"
)

type csvOptions struct {
	file      string
	column    string
	blacklist []string
}

// NewCSV returns a cobra.Command that rewrites one column of a CSV file
// into headline-style capitalization.
func NewCSV() *cobra.Command {
	var opts csvOptions

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Title-case one column of a CSV file",
		Example: heredoc.WithCLIName(`
            # Rewrite the "name" column, print the result to stdout
            <cli> csv --file books.csv --column name

            # Read the CSV from stdin
            cat books.csv | <cli> csv --column name
            `, cli.Name),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := loggerx.New(cfg.Logger)

			caser, err := newCaser(opts.blacklist)
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if opts.file != "" {
				f, err := os.Open(opts.file)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			log.WithField("column", opts.column).Debug("Rewriting CSV column")
			return csvx.TitleCaseStream(in, cmd.OutOrStdout(), opts.column, caser)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.file, "file", "f", "", "Path of the CSV file to read. Defaults to stdin.")
	flags.StringVarP(&opts.column, "column", "c", "", "Name of the column to title-case.")
	flags.StringSliceVar(&opts.blacklist, "blacklist", nil, "Comma-separated minor words kept lowercase mid-clause. Defaults to the built-in set.")
	_ = cmd.MarkFlagRequired("column")

	return cmd
}
