package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eykd/taskmark-go/internal/dateutil"
	"github.com/eykd/taskmark-go/internal/page"
)

// parseOutput is the JSON output schema for the parse command.
type parseOutput struct {
	Version     string           `json:"version"`
	Frontmatter *frontmatterJSON `json:"frontmatter,omitempty"`
	Items       []itemJSON       `json:"items"`
}

type frontmatterJSON struct {
	Title   string   `json:"title,omitempty"`
	Created string   `json:"created,omitempty"`
	Updated string   `json:"updated,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

type itemJSON struct {
	Line    int         `json:"line"`
	Raw     string      `json:"raw"`
	Type    string      `json:"type"`
	Status  string      `json:"status,omitempty"`
	DueDate string      `json:"dueDate,omitempty"`
	Tokens  []tokenJSON `json:"tokens,omitempty"`
}

type tokenJSON struct {
	Type  string `json:"type"`
	Match string `json:"match"`
	Text  string `json:"text,omitempty"`
}

// NewParseCmd creates the parse subcommand.
func NewParseCmd(reader PageReader) *cobra.Command {
	return &cobra.Command{
		Use:          "parse <page-path>",
		Short:        "Parse a task page and output JSON",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := reader.ReadPage(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("reading page: %w", err)
			}

			doc := page.ParseDocument(string(raw))
			out := parseOutput{
				Version: "1",
				Items:   make([]itemJSON, 0, doc.LineCount()),
			}
			if fm := doc.Frontmatter(); !fm.IsZero() {
				out.Frontmatter = &frontmatterJSON{
					Title:   fm.Title,
					Created: fm.Created,
					Updated: fm.Updated,
					Tags:    fm.Tags,
				}
			}
			for i := 0; i < doc.LineCount(); i++ {
				out.Items = append(out.Items, itemToJSON(i, doc.ItemAt(i)))
			}

			if err := json.NewEncoder(cmd.OutOrStdout()).Encode(out); err != nil {
				return fmt.Errorf("encoding output: %w", err)
			}
			return nil
		},
	}
}

func itemToJSON(line int, it page.Item) itemJSON {
	out := itemJSON{
		Line:   line,
		Raw:    it.Raw,
		Type:   string(it.Type),
		Status: string(it.Status),
	}
	if it.Due != nil {
		out.DueDate = dateutil.FormatISO(*it.Due)
	}
	for _, tok := range it.Tokens {
		out.Tokens = append(out.Tokens, tokenJSON{
			Type:  string(tok.Type),
			Match: tok.Match,
			Text:  tok.Text,
		})
	}
	return out
}
