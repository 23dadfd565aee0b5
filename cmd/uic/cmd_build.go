package main

import (
	"github.com/spf13/cobra"

	"github.com/barun-bash/uic/internal/cli"
	"github.com/barun-bash/uic/internal/cmdutil"
)

func newBuildCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Check the sources and write the React App",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			progress := cli.NewProgress(cmd.OutOrStdout(), opts.verbose)
			if err := cmdutil.Build(cfg, progress); err != nil {
				return report(cmd.ErrOrStderr(), err)
			}
			printf(cmd.OutOrStdout(), "%s\n", cli.Success("Wrote "+cfg.Output))
			return nil
		},
	}
	addSourceFlags(cmd, opts, true)
	return cmd
}
