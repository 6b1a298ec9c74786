package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eykd/taskmark-go/internal/page"
)

// NewSortCmd creates the sort subcommand. Sorting is stable: notes,
// headings, and nested children keep their place relative to the tasks they
// belong with.
func NewSortCmd(reader PageReader) *cobra.Command {
	return &cobra.Command{
		Use:          "sort <page-path>",
		Short:        "Sort a page's tasks by due date and status",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := reader.ReadPage(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("reading page: %w", err)
			}

			doc := page.ParseDocument(string(raw))
			doc.SortTasks()

			if _, err := fmt.Fprint(cmd.OutOrStdout(), doc.Text()); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			return nil
		},
	}
}
