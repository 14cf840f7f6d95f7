package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jenniferntran/gitlet/pkg/engine"
)

func (a *app) newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "add <file>",
		Short:              "Stage a file for the next commit",
		DisableFlagParsing: true,
		Args:               a.operandArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := operands(args)[0]
			return a.withEngine(cmd.Context(), func(ctx context.Context, e *engine.Engine) error {
				return e.Add(ctx, arg)
			})
		},
	}
}

func (a *app) newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "rm <file>",
		Short:              "Unstage a file, or stage a tracked file for removal and delete it",
		DisableFlagParsing: true,
		Args:               a.operandArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := operands(args)[0]
			return a.withEngine(cmd.Context(), func(ctx context.Context, e *engine.Engine) error {
				return e.Remove(ctx, arg)
			})
		},
	}
}

func (a *app) newCommitCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "commit <message>",
		Short:              "Record the staged changes",
		DisableFlagParsing: true,
		Args:               a.operandArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := operands(args)[0]
			return a.withEngine(cmd.Context(), func(ctx context.Context, e *engine.Engine) error {
				_, err := e.Commit(ctx, arg)
				return err
			})
		},
	}
}
