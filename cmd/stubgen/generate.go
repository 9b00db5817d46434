package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/toyz/stubgen/internal/cli"
	"github.com/toyz/stubgen/internal/errors"
	"github.com/toyz/stubgen/internal/utils"
)

type generateOptions struct {
	*globalOptions
	out        string
	configPath string
	strict     bool
	watch      bool
}

func newGenerateCmd(global *globalOptions) *cobra.Command {
	opts := &generateOptions{globalOptions: global}

	cmd := &cobra.Command{
		Use:   "generate [paths...]",
		Short: "Generate wrapper classes from service descriptions",
		Long: `Generate reads every service description named by the arguments or by
the services list of stubgen.yaml and writes its wrapper classes.

Paths may be description files, directories, or directories followed by
"/..." to scan all subdirectories.`,
		Example: `  stubgen generate ./api/calc.svc
  stubgen generate --out ./src/main/java/com/example/jaxws ./api/...
  stubgen generate --config build/stubgen.yaml --strict
  stubgen generate --watch ./api/...`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Destination directory (default from config, else "+cli.DefaultOutput+")")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Configuration file (default ./"+cli.DefaultConfigFile+" when present)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail when two units would be written to the same file")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Regenerate whenever a description file changes")
	return cmd
}

func (o *generateOptions) run(cmd *cobra.Command, args []string) error {
	diagnostics := o.diagnostics(cmd)
	reporter := o.reporter(cmd)

	cfg, err := cli.LoadConfig(o.configPath)
	if err != nil {
		return reported(reporter, err)
	}
	cfg.Apply(cli.Overrides{
		Output:   o.out,
		Services: args,
		Strict:   o.strict,
		Verbose:  o.verbose,
	})
	if len(cfg.Services) == 0 {
		return reported(reporter, errors.ConfigurationError("services", "no service descriptions given").
			WithSuggestion("Pass description files or directories as arguments").
			WithSuggestion("List them under 'services' in "+cli.DefaultConfigFile))
	}
	if err := cfg.Validate(); err != nil {
		return reported(reporter, err)
	}

	if cfg.Source != "" {
		diagnostics.Verbose("Using configuration %s", cfg.Source)
	}
	diagnostics.Header("JAX-WS wrapper generation")

	generator := cli.NewGenerator(diagnostics, reporter)
	runErr := runOnce(cmd.Context(), generator, cfg, diagnostics)
	if !o.watch {
		if runErr != nil {
			return reported(reporter, runErr)
		}
		return nil
	}
	if runErr != nil {
		reporter.ReportError(runErr)
	}

	dirs, err := generator.Scanner().WatchDirectories(cfg.Services)
	if err != nil {
		return reported(reporter, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := cli.NewWatcher(dirs, cli.DefaultDebounce, diagnostics, func(ctx context.Context) error {
		if err := runOnce(ctx, generator, cfg, diagnostics); err != nil {
			reporter.ReportError(err)
		}
		return nil
	})
	if err != nil {
		return reported(reporter, err)
	}

	diagnostics.Info("Watching %d directories for changes, press Ctrl+C to stop", len(dirs))
	return watcher.Watch(ctx)
}

// runOnce performs one generation run and prints its summary on success.
// In watch mode a failed run is reported and the watcher keeps going.
func runOnce(ctx context.Context, generator *cli.Generator, cfg *cli.Config, diagnostics *utils.DiagnosticSystem) error {
	if err := generator.Run(ctx, cfg); err != nil {
		return err
	}

	summary := generator.GetSummary()
	diagnostics.Summary("Generation Complete!", summary.Stats())

	if cfg.Verbose && len(summary.GeneratedFiles) > 0 {
		diagnostics.Subsection("Generated Files")
		for _, file := range summary.GeneratedFiles {
			diagnostics.List("%s", file)
		}
	}
	if len(summary.Warnings) > 0 {
		diagnostics.Warn("%d warnings, see above", len(summary.Warnings))
	}

	diagnostics.GenerationComplete()
	return nil
}
