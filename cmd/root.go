// Package cmd implements the tmk CLI commands.
package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root tmk command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tmk",
		Short:         "tmk - taskmark CLI for plain-text task pages",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE:          rootRunE,
	}
	root.AddCommand(NewParseCmd(newDefaultPageReader()))
	root.AddCommand(NewSortCmd(newDefaultPageReader()))
	root.AddCommand(NewIndentCmd(newDefaultPageReader()))
	root.AddCommand(NewSetCmd(newDefaultPageReader()))
	return root
}

func rootRunE(cmd *cobra.Command, _ []string) error {
	return cmd.Help()
}
