package main

import (
	"github.com/spf13/cobra"

	"github.com/toyz/stubgen/internal/cli"
)

func newCleanCmd(global *globalOptions) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "clean [dirs...]",
		Short: "Delete generated wrapper classes",
		Long: `Clean removes .java files that carry the stubgen banner. Hand-written
classes in the same directories are left alone. Without arguments the
configured output directory is cleaned; "dir/..." cleans recursively.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			diagnostics := global.diagnostics(cmd)
			reporter := global.reporter(cmd)

			dirs := args
			if len(dirs) == 0 {
				cfg, err := cli.LoadConfig(configPath)
				if err != nil {
					return reported(reporter, err)
				}
				dirs = []string{cfg.Output}
			}

			diagnostics.StartProgress("Cleaning generated files")
			removed, err := cli.NewCleaner().CleanGeneratedFiles(dirs)
			if err != nil {
				diagnostics.EndProgress("Cleaning generated files", false, "")
				return reported(reporter, err)
			}
			diagnostics.EndProgress("Cleaning generated files", true, "")

			for _, path := range removed {
				diagnostics.Verbose("Removed %s", path)
			}
			diagnostics.Success("Removed %d generated files", len(removed))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Configuration file naming the output directory")
	return cmd
}
