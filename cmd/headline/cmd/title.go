package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/headlinehq/headline/internal/cli"
	"github.com/headlinehq/headline/internal/cli/heredoc"
	"github.com/headlinehq/headline/internal/loggerx"
	"github.com/headlinehq/headline/pkg/config"
	"github.com/headlinehq/headline/pkg/english"
	"github.com/headlinehq/headline/pkg/title"
)

type titleOptions struct {
	blacklist []string
}

// NewTitle returns a cobra.Command for converting titles given as
// arguments or on stdin.
func NewTitle() *cobra.Command {
	var opts titleOptions

	cmd := &cobra.Command{
		Use:   "title [text]...",
		Short: "Convert text into headline-style capitalization",
		Long: heredoc.Docf(`
            Convert text into headline-style capitalization.

            Major words are capitalized; minor words stay lowercase
            unless they open or close a clause. The default minor-word
            set is %s.
            `, english.FormatList(title.DefaultWords)),
		Example: heredoc.WithCLIName(`
            # Convert arguments
            <cli> title "the quick brown fox"

            # Convert each stdin line
            cat titles.txt | <cli> title

            # Override the minor-word set
            <cli> title --blacklist a,an,the "a scanner darkly"
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

			if len(args) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), caser.Convert(strings.Join(args, " ")))
				return nil
			}

			var lines int
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				fmt.Fprintln(cmd.OutOrStdout(), caser.Convert(scanner.Text()))
				lines++
			}
			log.WithField("lines", lines).Debug("Converted stdin input")
			return scanner.Err()
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVar(&opts.blacklist, "blacklist", nil, "Comma-separated minor words kept lowercase mid-clause. Defaults to the built-in set.")

	return cmd
}

func newCaser(words []string) (*title.Caser, error) {
	if len(words) == 0 {
		return title.NewCaser()
	}
	return title.NewCaser(title.WithWords(words...))
}
