package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/commitlint/internal/config"
)

// createValidateCommand creates the validate command.
func createValidateCommand(env *environment, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate configuration file",
		Long: `Validate a configuration file against the schema and rule constraints.

Without a path the file selected by --config, or found in --cwd, is checked.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath := opts.configPath
			if len(args) == 1 {
				configPath = args[0]
			}

			cfg, path, err := config.Load(env.fs, opts.cwd, configPath)
			if err != nil {
				return fmt.Errorf("validation error: %w", err)
			}

			source := path
			if source == "" {
				source = "built-in defaults"
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s Configuration is valid: %s (%d active rules)\n",
				color.GreenString("✔"), source, len(cfg.Rules.Active()))
			return err
		},
	}
}
