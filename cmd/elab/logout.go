package main

import (
	"github.com/esportlab/elab/pkg/backend"
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and discard the stored session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		be := backend.FromContext(ctx)

		if err := be.Logout(ctx); err != nil {
			return err
		}

		cmd.PrintErrln("Logged out")
		return nil
	},
}
