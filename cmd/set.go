package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eykd/taskmark-go/internal/dateutil"
	"github.com/eykd/taskmark-go/internal/page"
)

// statusNames maps the --status flag values onto task statuses.
var statusNames = map[string]page.Status{
	"incomplete": page.StatusIncomplete,
	"completed":  page.StatusCompleted,
	"inProgress": page.StatusInProgress,
	"important":  page.StatusImportant,
	"question":   page.StatusQuestion,
}

// typeNames maps the --type flag values onto item types.
var typeNames = map[string]page.ItemType{
	"note":    page.ItemNote,
	"heading": page.ItemHeading,
	"task":    page.ItemTask,
}

// NewSetCmd creates the set subcommand, the CLI surface over the mutation
// engine. Exactly the three writable properties are exposed; the mutated
// page is written to stdout.
func NewSetCmd(reader PageReader) *cobra.Command {
	var (
		line       int
		statusFlag string
		typeFlag   string
		dueFlag    string
		clearDue   bool
	)

	cmd := &cobra.Command{
		Use:          "set <page-path>",
		Short:        "Set the type, status, or due date of one line",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := reader.ReadPage(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("reading page: %w", err)
			}

			doc := page.ParseDocument(string(raw))
			if line < 0 || line >= doc.LineCount() {
				return fmt.Errorf("line %d out of range (page has %d lines)", line, doc.LineCount())
			}

			err = doc.MutateLine(line, func(w *page.Writable) error {
				if typeFlag != "" {
					t, ok := typeNames[typeFlag]
					if !ok {
						return fmt.Errorf("unknown type %q", typeFlag)
					}
					w.SetType(t)
				}
				if statusFlag != "" {
					s, ok := statusNames[statusFlag]
					if !ok {
						return fmt.Errorf("unknown status %q", statusFlag)
					}
					w.SetStatus(s)
				}
				if clearDue {
					w.SetDueDate(nil)
				} else if dueFlag != "" {
					d, err := dateutil.ParseISO(dueFlag)
					if err != nil {
						return fmt.Errorf("invalid due date %q: %w", dueFlag, err)
					}
					w.SetDueDate(&d)
				}
				return nil
			})
			if err != nil {
				return err
			}

			if _, err := fmt.Fprint(cmd.OutOrStdout(), doc.Text()); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&line, "line", 0, "Line to mutate (0-based, counted after any frontmatter)")
	cmd.Flags().StringVar(&typeFlag, "type", "", "New item type: note, heading, or task")
	cmd.Flags().StringVar(&statusFlag, "status", "", "New task status: incomplete, completed, inProgress, important, or question")
	cmd.Flags().StringVar(&dueFlag, "due", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&clearDue, "clear-due", false, "Remove the due date")

	return cmd
}
