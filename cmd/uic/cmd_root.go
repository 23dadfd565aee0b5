package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/barun-bash/uic/internal/cli"
	"github.com/barun-bash/uic/internal/cmdutil"
	"github.com/barun-bash/uic/internal/config"
)

// errReported marks a failure whose details were already printed.
var errReported = errors.New("failed")

// options holds the flags shared by the subcommands.
type options struct {
	projectDir  string
	noColor     bool
	verbose     bool
	input       string
	output      string
	defaultView string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "uic",
		Short: "Compile .def/.view UI sources into a React App",
		Long: "uic reads one .def file (component templates and variables) and the\n" +
			".view files of a project, checks them, and writes a single React App.\n\n" +
			"Settings come from uic.yaml in the project directory, then UIC_INPUT,\n" +
			"UIC_OUTPUT and UIC_DEFAULT_VIEW, then command-line flags.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				cli.SetColor(false)
			}
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringVarP(&opts.projectDir, "config", "C", ".",
		"project directory holding "+config.FileName)
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "print each compilation stage")

	root.AddCommand(newBuildCmd(opts))
	root.AddCommand(newCheckCmd(opts))
	root.AddCommand(newInitCmd(opts))
	root.AddCommand(newSyntaxCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// addSourceFlags registers the flags that override uic.yaml.
func addSourceFlags(cmd *cobra.Command, opts *options, withOutput bool) {
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "directory holding the .def and .view files")
	cmd.Flags().StringVar(&opts.defaultView, "default-view", "", "view shown when the app starts")
	if withOutput {
		cmd.Flags().StringVarP(&opts.output, "output", "o", "", "generated App file (.jsx or .js)")
	}
}

// loadConfig resolves the settings for one command run.
func (o *options) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.projectDir)
	if err != nil {
		return nil, err
	}
	cfg.Override(o.input, o.output, o.defaultView)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// report prints checker diagnostics to w. Other errors are returned
// unchanged for main to print.
func report(w io.Writer, err error) error {
	var ce *cmdutil.CheckError
	if errors.As(err, &ce) {
		cmdutil.PrintDiagnostics(w, ce)
		return errReported
	}
	return err
}

func printf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}
