package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/jenniferntran/gitlet/cmd/ui"
	"github.com/jenniferntran/gitlet/pkg/engine"
	"github.com/jenniferntran/gitlet/pkg/objects/commit"
)

func (a *app) newLogCmd() *cobra.Command {
	var (
		useTable bool
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the history of the current branch",
		Long: `Show the commit history starting from the current head and following
parent links back to the initial commit.`,
		Args: a.repoArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.openEngine(cmd.Context())
			if err != nil {
				return err
			}
			history, err := e.Log(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return a.printCommits(history, "Commit History", useTable)
		},
	}

	cmd.Flags().BoolVarP(&useTable, "table", "t", false, "Display commits in table format")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most this many commits (0 for all)")
	return cmd
}

func (a *app) newGlobalLogCmd() *cobra.Command {
	var useTable bool

	cmd := &cobra.Command{
		Use:   "global-log",
		Short: "Show every commit ever made",
		Args:  a.repoArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.openEngine(cmd.Context())
			if err != nil {
				return err
			}
			return a.printCommits(e.GlobalLog(), "All Commits", useTable)
		},
	}

	cmd.Flags().BoolVarP(&useTable, "table", "t", false, "Display commits in table format")
	return cmd
}

func (a *app) newFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "find <message>",
		Short:              "Print the ids of commits with exactly this message",
		DisableFlagParsing: true,
		Args:               a.operandArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := operands(args)[0]
			e, err := a.openEngine(cmd.Context())
			if err != nil {
				return err
			}
			ids, err := e.Find(cmd.Context(), arg)
			if err != nil {
				return err
			}
			return engine.WriteIDs(a.stdout, ids)
		},
	}
}

func (a *app) printCommits(commits []*commit.Commit, title string, useTable bool) error {
	if useTable {
		return writeCommitTable(a.stdout, title, commits)
	}
	return engine.WriteLog(a.stdout, commits)
}

func writeCommitTable(w io.Writer, title string, commits []*commit.Commit) error {
	rows := make([]ui.CommitRow, len(commits))
	for i, c := range commits {
		rows[i] = ui.CommitRow{ID: c.ID.String(), Date: c.Timestamp, Message: c.Message}
	}
	return ui.CommitTable(w, title, rows)
}

