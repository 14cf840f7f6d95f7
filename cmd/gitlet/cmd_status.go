package main

import (
	"github.com/spf13/cobra"
)

func (a *app) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show branches and staged changes",
		Args:  a.repoArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.openEngine(cmd.Context())
			if err != nil {
				return err
			}
			_, err = e.Status().WriteTo(a.stdout)
			return err
		},
	}
}
