package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barun-bash/uic/internal/cli"
	"github.com/barun-bash/uic/internal/cmdutil"
)

func newCheckCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Parse and check the sources without writing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			progress := cli.NewProgress(cmd.OutOrStdout(), opts.verbose)
			src, prog, err := cmdutil.Compile(cfg, progress)
			if err != nil {
				return report(cmd.ErrOrStderr(), err)
			}
			printf(cmd.OutOrStdout(), "%s\n", cli.Success(cmdutil.CheckSummary(prog, src.DefName())))
			if missing := cmdutil.MissingDefaultView(prog); missing != "" {
				printf(cmd.OutOrStdout(), "%s\n", cli.Warn(fmt.Sprintf("default view %s not found; build will fail", missing)))
			}
			return nil
		},
	}
	addSourceFlags(cmd, opts, false)
	return cmd
}
