package main

import (
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/commitlint/internal/config"
)

// createSchemaCommand creates the schema command.
func createSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the configuration JSON schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := cmd.OutOrStdout().Write(config.Schema())
			return err
		},
	}
}
