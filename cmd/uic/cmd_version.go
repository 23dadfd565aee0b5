package main

import (
	"github.com/spf13/cobra"

	"github.com/barun-bash/uic/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the uic version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printf(cmd.OutOrStdout(), "%s\n", version.Line())
		},
	}
}
