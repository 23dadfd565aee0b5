package main

import (
	"github.com/spf13/cobra"

	"github.com/barun-bash/uic/internal/cli"
	"github.com/barun-bash/uic/internal/cmdutil"
)

func newInitCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create uic.yaml and sample sources in the project directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			written, err := cmdutil.InitProject(opts.projectDir)
			for _, path := range written {
				printf(cmd.OutOrStdout(), "%s\n", cli.Muted("  created "+path))
			}
			if err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "%s\n", cli.Success("Project ready. Run uic build."))
			return nil
		},
	}
}
