package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jenniferntran/gitlet/cmd/ui"
	"github.com/jenniferntran/gitlet/pkg/common/logger"
	"github.com/jenniferntran/gitlet/pkg/config"
	"github.com/jenniferntran/gitlet/pkg/engine"
	"github.com/jenniferntran/gitlet/pkg/repository/gitletrepo"
	"github.com/jenniferntran/gitlet/pkg/repository/scpath"
)

// app carries what the commands share: where the repository lives, where
// output goes and the resolved configuration.
type app struct {
	v      *viper.Viper
	getwd  func() (string, error)
	clock  func() time.Time
	stdout io.Writer
	stderr io.Writer
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		v:      config.NewViper(),
		getwd:  os.Getwd,
		stdout: stdout,
		stderr: stderr,
	}
}

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gitlet",
		Short:         "Gitlet - a small local version-control system",
		Version:       fmt.Sprintf("%s (built: %s, commit: %s)", Version, BuildTime, CommitSHA),
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errNoCommand()
			}
			if err := a.requireRepository(); err != nil {
				return err
			}
			return errUnknownCommand(args[0])
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	flags := root.PersistentFlags()
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	flags.String("log-format", "", "Log format (text, json)")
	flags.String("color", "", "Colour output (auto, always, never)")
	flags.BoolP("verbose", "v", false, "Enable verbose output (sets log level to debug)")
	_ = a.v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = a.v.BindPFlag(config.KeyLogFormat, flags.Lookup("log-format"))
	_ = a.v.BindPFlag(config.KeyUIColor, flags.Lookup("color"))
	_ = a.v.BindPFlag("verbose", flags.Lookup("verbose"))

	root.AddCommand(
		a.newInitCmd(),
		a.newAddCmd(),
		a.newCommitCmd(),
		a.newRmCmd(),
		a.newLogCmd(),
		a.newGlobalLogCmd(),
		a.newFindCmd(),
		a.newStatusCmd(),
		a.newCheckoutCmd(),
		a.newBranchCmd(),
		a.newRmBranchCmd(),
		a.newResetCmd(),
	)
	return root
}

// setup resolves the configuration and applies logging and colour settings.
func (a *app) setup() error {
	var cfgPath scpath.SourcePath
	if path, err := a.repoPath(); err == nil {
		candidate := path.SourcePath().ConfigPath()
		if _, statErr := os.Stat(candidate.String()); statErr == nil {
			cfgPath = candidate
		}
	}

	cfg, err := config.Load(a.v, cfgPath)
	if err != nil {
		return err
	}

	level, _ := logger.ParseLevel(cfg.Log.Level)
	if a.v.GetBool("verbose") {
		level = logger.LevelDebug
	}
	format, _ := logger.ParseFormat(cfg.Log.Format)
	logger.Default = logger.New(logger.Config{
		Level:  level,
		Format: format,
		Output: a.stderr,
	})

	ui.SetColorMode(cfg.UI.Color, a.stdout)
	return nil
}

func (a *app) repoPath() (scpath.RepositoryPath, error) {
	cwd, err := a.getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return scpath.NewRepositoryPath(cwd)
}

// requireRepository fails with the not-initialized error unless the current
// directory holds a repository. Parent directories are not searched.
func (a *app) requireRepository() error {
	path, err := a.repoPath()
	if err != nil {
		return err
	}
	exists, err := gitletrepo.RepositoryExists(path)
	if err != nil {
		return err
	}
	if !exists {
		return gitletrepo.NewNotInitializedError(path)
	}
	return nil
}

// repoArgs checks for a repository first and then for exactly n operands.
func (a *app) repoArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := a.requireRepository(); err != nil {
			return err
		}
		if len(args) != n || cmd.ArgsLenAtDash() != -1 {
			return errIncorrectOperands()
		}
		return nil
	}
}

// operandArgs is repoArgs for commands that take their operands verbatim.
// Those commands run with flag parsing off so that "-fix typo" stays a
// message; one leading "--" is still accepted and dropped.
func (a *app) operandArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := a.requireRepository(); err != nil {
			return err
		}
		if len(operands(args)) != n {
			return errIncorrectOperands()
		}
		return nil
	}
}

func operands(args []string) []string {
	if len(args) > 0 && args[0] == "--" {
		return args[1:]
	}
	return args
}

func (a *app) engineOptions() []engine.Option {
	opts := []engine.Option{engine.WithLogger(logger.With("component", "engine"))}
	if a.clock != nil {
		opts = append(opts, engine.WithClock(a.clock))
	}
	return opts
}

// withEngine opens the repository, runs fn and persists the result. Nothing
// is written when fn fails.
func (a *app) withEngine(ctx context.Context, fn func(ctx context.Context, e *engine.Engine) error) error {
	e, err := a.openEngine(ctx)
	if err != nil {
		return err
	}
	if err := fn(ctx, e); err != nil {
		return err
	}
	return e.Save(ctx)
}

func (a *app) openEngine(ctx context.Context) (*engine.Engine, error) {
	path, err := a.repoPath()
	if err != nil {
		return nil, err
	}
	return engine.Open(ctx, path, a.engineOptions()...)
}
