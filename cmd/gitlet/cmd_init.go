package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jenniferntran/gitlet/pkg/config"
	"github.com/jenniferntran/gitlet/pkg/engine"
)

func (a *app) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create an empty repository in the current directory",
		Long: `Create a new repository in the current directory.
The repository starts with a single commit, "initial commit", on branch master.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return errIncorrectOperands()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd.Context())
		},
	}
}

func (a *app) runInit(ctx context.Context) error {
	path, err := a.repoPath()
	if err != nil {
		return err
	}

	e, err := engine.Init(ctx, path, a.engineOptions()...)
	if err != nil {
		return err
	}
	if err := config.Write(e.Repository().ConfigPath(), config.Default()); err != nil {
		return fmt.Errorf("write default config: %w", err)
	}
	return nil
}
