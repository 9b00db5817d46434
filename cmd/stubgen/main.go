package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/toyz/stubgen/internal/cli"
	"github.com/toyz/stubgen/internal/utils"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

// globalOptions are the flags shared by every command
type globalOptions struct {
	verbose bool
	quiet   bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "stubgen",
		Short: "JAX-WS wrapper class generator",
		Long: `stubgen reads service interface descriptions (.svc IDL or YAML) and
writes the JAX-WS request, response and exception bean wrapper classes
for every method into a flat destination directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output and detailed error reporting")
	root.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Only show errors and final results")
	root.MarkFlagsMutuallyExclusive("verbose", "quiet")

	root.AddCommand(
		newGenerateCmd(opts),
		newCleanCmd(opts),
		newVersionCmd(),
	)
	return root
}

// diagnostics builds the diagnostic system for the selected verbosity and
// binds it to the command's writers
func (o *globalOptions) diagnostics(cmd *cobra.Command) *utils.DiagnosticSystem {
	var d *utils.DiagnosticSystem
	switch {
	case o.quiet:
		d = utils.NewQuietDiagnostics()
	case o.verbose:
		d = utils.NewVerboseDiagnostics()
	default:
		d = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}

	if cmd.OutOrStdout() != os.Stdout || cmd.ErrOrStderr() != os.Stderr {
		d.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
	}
	return d
}

// reporter builds an error reporter on the command's error writer
func (o *globalOptions) reporter(cmd *cobra.Command) *cli.DiagnosticReporter {
	if cmd.ErrOrStderr() == os.Stderr {
		return cli.NewDiagnosticReporter(o.verbose)
	}
	return cli.NewDiagnosticReporterTo(o.verbose, cmd.ErrOrStderr())
}

// reportedError marks an error that was already printed in full
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error {
	return e.error
}

func reported(reporter *cli.DiagnosticReporter, err error) error {
	reporter.ReportError(err)
	return reportedError{err}
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		var done reportedError
		if !stderrors.As(err, &done) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
