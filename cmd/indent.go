package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eykd/taskmark-go/internal/listedit"
	"github.com/eykd/taskmark-go/internal/page"
)

// NewIndentCmd creates the indent subcommand.
func NewIndentCmd(reader PageReader) *cobra.Command {
	var (
		from    int
		to      int
		outdent bool
	)

	cmd := &cobra.Command{
		Use:          "indent <page-path>",
		Short:        "Shift a range of lines by one indent unit",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := reader.ReadPage(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("reading page: %w", err)
			}
			if !cmd.Flags().Changed("to") {
				to = from
			}
			if to < from {
				return fmt.Errorf("--to (%d) must not precede --from (%d)", to, from)
			}

			mode := listedit.ModeIndent
			if outdent {
				mode = listedit.ModeOutdent
			}

			doc := page.ParseDocument(string(raw))
			doc.Indent(from, to, mode)

			if _, err := fmt.Fprint(cmd.OutOrStdout(), doc.Text()); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&from, "from", 0, "First line of the range (0-based)")
	cmd.Flags().IntVar(&to, "to", 0, "Last line of the range, inclusive (defaults to --from)")
	cmd.Flags().BoolVar(&outdent, "outdent", false, "Remove one leading tab instead of adding one")

	return cmd
}
