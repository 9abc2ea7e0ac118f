package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/commitlint/internal/config"
	"github.com/wizzomafizzo/commitlint/internal/constants"
	"github.com/wizzomafizzo/commitlint/internal/prompt"
	"github.com/wizzomafizzo/commitlint/internal/rules"
	"gopkg.in/yaml.v3"
)

var errConfigExists = errors.New("configuration file already exists")

var conventionalTypes = []string{
	"build", "chore", "ci", "docs", "feat", "fix", "perf", "refactor", "revert", "style", "test",
}

// createInitCommand creates the init command.
func createInitCommand(env *environment, opts *rootOptions) *cobra.Command {
	var interactive, force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		Long:  "Write a starter " + constants.DefaultConfigFilename + " to the working directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := filepath.Join(opts.cwd, constants.DefaultConfigFilename)

			if !force {
				if _, err := env.fs.Stat(path); err == nil {
					return fmt.Errorf("%w: %s (use --force to overwrite)", errConfigExists, path)
				} else if !errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("failed to check %s: %w", path, err)
				}
			}

			cfg := starterConfig()
			if interactive {
				p := env.newPrompter()
				defer func() { _ = p.Close() }()

				var err error
				if cfg, err = promptConfig(p); err != nil {
					return err
				}
			}

			if err := writeConfig(env.fs, path, cfg); err != nil {
				return err
			}

			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s\n", color.GreenString("✔"), path); err != nil {
				return err
			}

			// An earlier name in the search order wins over the file just written.
			if found, ok := config.FindConfigFile(env.fs, opts.cwd); ok && found != path {
				_, err := fmt.Fprintf(cmd.ErrOrStderr(), "%s %s takes precedence over %s; remove it to use the new file\n",
					color.YellowString("⚠"), found, path)
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for allowed types and scopes")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")

	return cmd
}

func starterConfig() *config.Config {
	cfg := config.Default()
	cfg.Rules.Type = &rules.Type{Options: conventionalTypes}
	length := rules.DefaultMaxLength
	warning := rules.LevelWarning
	cfg.Rules.DescriptionMaxLength = &rules.DescriptionMaxLength{Length: &length, Level: &warning}
	return cfg
}

func promptConfig(p prompt.Prompter) (*config.Config, error) {
	cfg := starterConfig()

	types, err := prompt.ListInput(p, "Allowed types (comma separated)", conventionalTypes)
	if err != nil {
		return nil, err
	}
	cfg.Rules.Type = &rules.Type{Options: types}

	scopes, err := prompt.ListInput(p, "Allowed scopes (comma separated, empty for any)", nil)
	if err != nil {
		return nil, err
	}
	if len(scopes) > 0 {
		optional, err := prompt.Confirm(p, "Allow commits without a scope?", true)
		if err != nil {
			return nil, err
		}
		cfg.Rules.Scope = &rules.Scope{Options: scopes, Optional: optional}
	}

	answer, err := prompt.TextInput(p, "Maximum description length", strconv.Itoa(rules.DefaultMaxLength))
	if err != nil {
		return nil, err
	}
	length, err := strconv.Atoi(answer)
	if err != nil || length < 0 {
		return nil, fmt.Errorf("invalid description length %q: must be a non-negative integer", answer)
	}
	cfg.Rules.DescriptionMaxLength.Length = &length

	return cfg, nil
}

// writeConfig renders cfg as YAML and checks it loads back before writing.
func writeConfig(fs afero.Fs, path string, cfg *config.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}

	if _, err := config.Parse(data, config.FormatYAML); err != nil {
		return fmt.Errorf("generated config is invalid: %w", err)
	}

	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
