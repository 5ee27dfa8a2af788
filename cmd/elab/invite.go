package main

import (
	"strconv"
	"time"

	"github.com/caarlos0/duration"
	"github.com/caarlos0/tablewriter"
	"github.com/dustin/go-humanize"
	"github.com/esportlab/elab/pkg/backend"
	"github.com/esportlab/elab/pkg/proto"
	"github.com/spf13/cobra"
)

var inviteCmd = &cobra.Command{
	Use:   "invite",
	Short: "Manage team invite codes",
}

var inviteCreateCmd = func() *cobra.Command {
	var expiresIn string
	var maxUses int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new invite code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)

			team, err := be.RequireTeam(ctx)
			if err != nil {
				return err
			}

			opts := proto.CreateInviteOptions{}
			if expiresIn != "" {
				d, err := duration.Parse(expiresIn)
				if err != nil {
					return err
				}
				expiresAt := time.Now().Add(d)
				opts.ExpiresAt = &expiresAt
			}
			if maxUses > 0 {
				opts.MaxUses = &maxUses
			}

			invite, err := be.CreateInvite(ctx, team.ID, opts)
			if err != nil {
				return err
			}

			if ojson {
				return writeJSON(cmd.OutOrStdout(), invite)
			}

			notice := "Invite created"
			if opts.ExpiresAt != nil {
				notice += " (expires " + humanize.Time(*opts.ExpiresAt) + ")"
			}
			cmd.PrintErrln(notice)
			cmd.Println(invite.InviteCode)
			return nil
		},
	}

	cmd.Flags().StringVar(&expiresIn, "expires-in", "", "invite expiration time (e.g. 1w, 5d4h, 1h30m)")
	cmd.Flags().IntVar(&maxUses, "max-uses", 0, "maximum number of uses (0 for unlimited)")
	return cmd
}()

var inviteListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List your team's invite codes",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		be := backend.FromContext(ctx)

		team, err := be.RequireTeam(ctx)
		if err != nil {
			return err
		}

		invites, err := be.Invites(ctx, team.ID)
		if err != nil {
			return err
		}

		if ojson {
			return writeJSON(cmd.OutOrStdout(), invites)
		}

		if len(invites) == 0 {
			cmd.Println("No invites found")
			return nil
		}

		now := time.Now()
		return tablewriter.Render(
			cmd.OutOrStdout(),
			invites,
			[]string{"ID", "Code", "Created By", "Uses", "Expires In", "Status"},
			func(i proto.Invite) ([]string, error) {
				uses := strconv.Itoa(i.UsedCount)
				if i.MaxUses != nil {
					uses += "/" + strconv.Itoa(*i.MaxUses)
				}

				expiresAt := "-"
				if !i.ExpiresAt.IsZero() {
					if now.After(i.ExpiresAt) {
						expiresAt = "expired"
					} else {
						expiresAt = humanize.Time(i.ExpiresAt)
					}
				}

				status := "valid"
				if !i.IsValid {
					status = "invalid"
				}

				return []string{
					strconv.FormatInt(i.ID, 10),
					i.InviteCode,
					i.CreatedByDisplayName,
					uses,
					expiresAt,
					status,
				}, nil
			},
		)
	},
}

var inviteDeactivateCmd = &cobra.Command{
	Use:     "deactivate ID",
	Aliases: []string{"rm"},
	Short:   "Deactivate an invite code",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		be := backend.FromContext(ctx)

		team, err := be.RequireTeam(ctx)
		if err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}

		if err := be.DeactivateInvite(ctx, team.ID, id); err != nil {
			return err
		}

		cmd.PrintErrln("Invite deactivated")
		return nil
	},
}

func init() {
	inviteCmd.AddCommand(
		inviteCreateCmd,
		inviteListCmd,
		inviteDeactivateCmd,
	)
}
