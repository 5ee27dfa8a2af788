package main

import (
	"fmt"
	"net/url"

	"github.com/esportlab/elab/pkg/backend"
	"github.com/esportlab/elab/pkg/config"
	"github.com/esportlab/elab/pkg/web"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with Discord",
	Long:  "Starts a local callback listener and prints the login URL. Open it in a browser, authorize with Discord, and the session token lands back here.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		cfg := config.FromContext(ctx)
		be := backend.FromContext(ctx)

		srv := web.NewCallbackServer(ctx, cfg.Auth.CallbackAddr)

		loginURL := cfg.Auth.AuthorizeURL +
			"?redirect=" + url.QueryEscape(srv.RedirectURL())

		cmd.PrintErrln("Open the following URL in your browser to log in:")
		cmd.PrintErrln()
		cmd.PrintErrln("  " + loginURL)
		cmd.PrintErrln()
		cmd.PrintErrln("Waiting for the redirect…")

		token, err := srv.ListenForToken(ctx, cfg.Auth.CallbackTimeout.Duration())
		if err != nil {
			return err
		}

		if err := be.Credentials().Write(token); err != nil {
			return fmt.Errorf("store credentials: %w", err)
		}

		p, err := be.Me(ctx)
		if err != nil {
			return err
		}

		cmd.PrintErrln("Logged in as " + p.DisplayName)
		return nil
	},
}
