package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/commitlint/internal/config"
	"github.com/wizzomafizzo/commitlint/internal/database"
	"github.com/wizzomafizzo/commitlint/internal/history"
	"github.com/wizzomafizzo/commitlint/internal/input"
	"github.com/wizzomafizzo/commitlint/internal/lint"
	"github.com/wizzomafizzo/commitlint/internal/logging"
	"github.com/wizzomafizzo/commitlint/internal/output"
	"github.com/wizzomafizzo/commitlint/internal/project"
	"github.com/wizzomafizzo/commitlint/internal/prompt"
	"github.com/wizzomafizzo/commitlint/internal/storage"
)

// environment holds the process resources commands touch, so tests can swap them.
type environment struct {
	fs           afero.Fs
	stdin        io.Reader
	logWriter    io.Writer
	newPrompter  func() prompt.Prompter
	databasePath func() (string, error)
}

func defaultEnvironment() *environment {
	fs := afero.NewOsFs()
	return &environment{
		fs:           fs,
		stdin:        os.Stdin,
		newPrompter:  prompt.NewLinerPrompter,
		databasePath: storage.New(fs).GetDatabasePath,
	}
}

// rootOptions are the flag values shared by every command.
type rootOptions struct {
	configPath  string
	cwd         string
	logLevel    string
	edit        string
	from        string
	to          string
	projectRoot string
	noColor     bool
	printConfig bool
	noHistory   bool
}

func createNewRootCommand() *cobra.Command {
	return newRootCommand(defaultEnvironment())
}

func newRootCommand(env *environment) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "commitlint",
		Short: "Lint commit messages against the conventional commits format",
		Long: `Lint commit messages against the conventional commits format.

Messages are read from the --edit file, piped stdin, the git range given by
--from/--to, or .git/COMMIT_EDITMSG, in that order.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd, env, opts)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLint(cmd, env, opts)
		},
	}

	pflags := rootCmd.PersistentFlags()
	pflags.StringVarP(&opts.configPath, "config", "g", "", "Path to the config file")
	pflags.StringVarP(&opts.cwd, "cwd", "d", ".", "Directory to execute in")
	pflags.StringVar(&opts.logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	pflags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.edit, "edit", "e", "", "Read the commit message from the specified file")
	flags.StringVarP(&opts.from, "from", "f", "", "Lower end of the commit range to lint")
	flags.StringVarP(&opts.to, "to", "t", "", "Upper end of the commit range to lint")
	flags.BoolVar(&opts.printConfig, "print-config", false, "Print the resolved config and exit")
	flags.BoolVar(&opts.noHistory, "no-history", false, "Do not record this run in the lint history")

	rootCmd.AddCommand(
		createValidateCommand(env, opts),
		createSchemaCommand(),
		createInitCommand(env, opts),
		createHistoryCommand(env, opts),
	)

	return rootCmd
}

// setup attaches the logger to the command context and resolves the project root.
func setup(cmd *cobra.Command, env *environment, opts *rootOptions) error {
	if opts.noColor {
		color.NoColor = true
	}

	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}

	root, err := project.FindRoot(env.fs, opts.cwd)
	if err != nil {
		return fmt.Errorf("failed to find project root: %w", err)
	}
	opts.projectRoot = root

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, err = logging.New(ctx, env.fs, logging.Config{
		Writer:    env.logWriter,
		ProjectID: root,
		Level:     level,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	cmd.SetContext(ctx)
	return nil
}

func runLint(cmd *cobra.Command, env *environment, opts *rootOptions) error {
	ctx := cmd.Context()
	log := logging.Get(ctx)

	cfg, cfgPath, err := config.Load(env.fs, opts.cwd, opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log.Debug().Str("config", cfgPath).Msg("loaded configuration")

	if opts.printConfig {
		_, err := fmt.Fprint(cmd.OutOrStdout(), cfg.String())
		return err
	}

	raws, source, err := input.NewReader(env.fs, env.stdin).Read(ctx, input.Options{
		Edit: opts.edit,
		From: opts.from,
		To:   opts.to,
		Dir:  opts.cwd,
	})
	if err != nil {
		return err
	}

	results, err := lint.New(&cfg.Rules).Lint(ctx, raws)
	if err != nil {
		return fmt.Errorf("lint interrupted: %w", err)
	}

	summary := output.NewPrinter(cmd.OutOrStdout()).Print(results)

	if !opts.noHistory {
		if err := recordHistory(ctx, env, opts.projectRoot, string(source), results); err != nil {
			log.Warn().Err(err).Msg("failed to record lint history")
		}
	}

	if summary.Failed() {
		return &LintFailedError{Errors: summary.Errors}
	}
	return nil
}

func openHistory(ctx context.Context, env *environment) (*history.Store, func(), error) {
	path, err := env.databasePath()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get database path: %w", err)
	}

	manager, err := database.NewManager(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	return history.NewStore(manager), func() { _ = manager.Close() }, nil
}

func recordHistory(ctx context.Context, env *environment, projectRoot, source string, results []lint.Result) error {
	store, closeStore, err := openHistory(ctx, env)
	if err != nil {
		return err
	}
	defer closeStore()

	runID, err := store.Record(ctx, projectRoot, source, results)
	if err != nil {
		return err
	}
	logging.Get(ctx).Debug().Int64("run_id", runID).Msg("recorded lint run")
	return nil
}
