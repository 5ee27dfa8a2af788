package main

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/esportlab/elab/pkg/backend"
	"github.com/esportlab/elab/pkg/proto"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session and team",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		be := backend.FromContext(ctx)

		token, err := be.Credentials().Token()
		if err != nil {
			return err
		}

		p, err := be.Me(ctx)
		if err != nil {
			return err
		}

		if ojson {
			out := struct {
				Profile proto.Profile `json:"profile"`
				Expires *time.Time    `json:"tokenExpiresAt,omitempty"`
			}{Profile: p}
			if exp := tokenExpiry(token); !exp.IsZero() {
				out.Expires = &exp
			}
			return writeJSON(cmd.OutOrStdout(), out)
		}

		cmd.Println("Logged in as " + p.DisplayName)

		if team, ok := p.Membership().Team(); ok {
			role := "player"
			switch {
			case p.Membership().IsOwner():
				role = "owner"
			case p.Membership().IsAdmin():
				role = "admin"
			}
			cmd.Printf("Team: %s (%s, %d members)\n", team.Name, role, team.MemberCount)
		} else {
			cmd.Println("Team: none, join one with `elab team join CODE`")
		}

		if exp := tokenExpiry(token); !exp.IsZero() {
			if time.Now().After(exp) {
				cmd.Println("Session: expired")
			} else {
				cmd.Println("Session: expires " + humanize.Time(exp))
			}
		}

		return nil
	},
}

// tokenExpiry extracts the expiry claim without verifying the signature.
// The backend is the only party that verifies tokens; this is display
// information.
func tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
