package main

import (
	"github.com/spf13/cobra"

	"github.com/barun-bash/uic/internal/cmdutil"
)

func newSyntaxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "syntax [section]",
		Short: "Show the .def/.view language reference",
		Long: "Show the language reference. With a section (components, styling,\n" +
			"attributes, content, events, values, variables, views) only that part\n" +
			"is shown, with examples. --search finds patterns by keyword.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			search, _ := cmd.Flags().GetString("search")
			section := ""
			if len(args) == 1 {
				section = args[0]
			}
			return cmdutil.RunSyntax(cmd.OutOrStdout(), section, search)
		},
	}
	cmd.Flags().StringP("search", "s", "", "search patterns by keyword")
	return cmd
}
