package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jenniferntran/gitlet/pkg/engine"
)

func (a *app) newCheckoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkout (-- <file> | <commit> -- <file> | <branch>)",
		Short: "Restore a file or switch branches",
		Long: `checkout -- <file>            restore file from the head commit
checkout <commit> -- <file>   restore file from a commit (id or unique prefix)
checkout <branch>             switch to branch`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRepository(); err != nil {
				return err
			}
			if checkoutForm(cmd.ArgsLenAtDash(), len(args)) == checkoutInvalid {
				return errIncorrectOperands()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			form := checkoutForm(cmd.ArgsLenAtDash(), len(args))
			return a.withEngine(cmd.Context(), func(ctx context.Context, e *engine.Engine) error {
				switch form {
				case checkoutHeadFile:
					return e.CheckoutFile(ctx, args[0])
				case checkoutCommitFile:
					return e.CheckoutFileFrom(ctx, args[0], args[1])
				default:
					return e.CheckoutBranch(ctx, args[0])
				}
			})
		},
	}
}

type checkoutKind int

const (
	checkoutInvalid checkoutKind = iota
	checkoutBranch
	checkoutHeadFile
	checkoutCommitFile
)

// checkoutForm classifies an invocation by where "--" sits among n operands.
func checkoutForm(dashAt, n int) checkoutKind {
	switch {
	case dashAt == -1 && n == 1:
		return checkoutBranch
	case dashAt == 0 && n == 1:
		return checkoutHeadFile
	case dashAt == 1 && n == 2:
		return checkoutCommitFile
	default:
		return checkoutInvalid
	}
}

func (a *app) newBranchCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "branch <name>",
		Short:              "Create a branch at the current head",
		DisableFlagParsing: true,
		Args:               a.operandArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := operands(args)[0]
			return a.withEngine(cmd.Context(), func(ctx context.Context, e *engine.Engine) error {
				return e.Branch(ctx, arg)
			})
		},
	}
}

func (a *app) newRmBranchCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "rm-branch <name>",
		Short:              "Delete a branch pointer",
		DisableFlagParsing: true,
		Args:               a.operandArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := operands(args)[0]
			return a.withEngine(cmd.Context(), func(ctx context.Context, e *engine.Engine) error {
				return e.RemoveBranch(ctx, arg)
			})
		},
	}
}

func (a *app) newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "reset <commit>",
		Short:              "Move the current branch to a commit and restore its files",
		DisableFlagParsing: true,
		Args:               a.operandArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := operands(args)[0]
			return a.withEngine(cmd.Context(), func(ctx context.Context, e *engine.Engine) error {
				return e.Reset(ctx, arg)
			})
		},
	}
}
