package main

import (
	"strconv"
	"strings"

	"github.com/caarlos0/tablewriter"
	"github.com/dustin/go-humanize"
	"github.com/esportlab/elab/pkg/backend"
	"github.com/esportlab/elab/pkg/proto"
	"github.com/gobwas/glob"
	"github.com/spf13/cobra"
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Manage your team",
}

var teamCreateCmd = func() *cobra.Command {
	var timezone string
	var minPlayers int

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a new team",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)

			team, err := be.CreateTeam(ctx, proto.CreateTeamOptions{
				Name:       strings.Join(args, " "),
				Timezone:   timezone,
				MinPlayers: minPlayers,
			})
			if err != nil {
				return err
			}

			if ojson {
				return writeJSON(cmd.OutOrStdout(), team)
			}

			cmd.PrintErrf("Team %q created\n", team.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&timezone, "timezone", "", "team timezone (defaults to your config timezone)")
	cmd.Flags().IntVar(&minPlayers, "min-players", 0, "minimum players needed for a session")
	return cmd
}()

var teamListCmd = func() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List your teams",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)

			p, err := be.Me(ctx)
			if err != nil {
				return err
			}

			teams := make([]proto.Team, 0, 1)
			if team, ok := p.Membership().Team(); ok {
				teams = append(teams, team)
			}

			if filter != "" {
				g, err := glob.Compile(filter)
				if err != nil {
					return err
				}
				filtered := teams[:0]
				for _, t := range teams {
					if g.Match(t.Name) {
						filtered = append(filtered, t)
					}
				}
				teams = filtered
			}

			if ojson {
				return writeJSON(cmd.OutOrStdout(), teams)
			}

			if len(teams) == 0 {
				cmd.Println("No teams found")
				return nil
			}

			return tablewriter.Render(
				cmd.OutOrStdout(),
				teams,
				[]string{"ID", "Name", "Members", "Timezone", "Created At"},
				func(t proto.Team) ([]string, error) {
					return []string{
						strconv.FormatInt(t.ID, 10),
						t.Name,
						strconv.Itoa(t.MemberCount),
						t.Timezone,
						humanize.Time(t.CreatedAt),
					}, nil
				},
			)
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "filter team names by glob (e.g. 'Alpha*')")
	return cmd
}()

var teamJoinCmd = &cobra.Command{
	Use:   "join CODE",
	Short: "Join a team with an invite code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		be := backend.FromContext(ctx)

		team, err := be.Join(ctx, args[0])
		if err != nil {
			return err
		}

		if ojson {
			return writeJSON(cmd.OutOrStdout(), team)
		}

		cmd.PrintErrf("Joined team %q\n", team.Name)
		return nil
	},
}

var teamLeaveCmd = &cobra.Command{
	Use:   "leave",
	Short: "Leave your current team",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		be := backend.FromContext(ctx)

		if err := be.Leave(ctx); err != nil {
			return err
		}

		cmd.PrintErrln("Left the team")
		return nil
	},
}

var teamMembersCmd = &cobra.Command{
	Use:   "members",
	Short: "List your team's members",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		be := backend.FromContext(ctx)

		team, err := be.RequireTeam(ctx)
		if err != nil {
			return err
		}

		members, err := be.Members(ctx, team.ID)
		if err != nil {
			return err
		}

		if ojson {
			return writeJSON(cmd.OutOrStdout(), members)
		}

		return tablewriter.Render(
			cmd.OutOrStdout(),
			members,
			[]string{"ID", "Name", "Roles", "Joined"},
			func(m proto.TeamMember) ([]string, error) {
				return []string{
					strconv.FormatInt(m.ID, 10),
					m.DisplayName,
					m.Roles,
					humanize.Time(m.CreatedAt),
				}, nil
			},
		)
	},
}

var teamInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show your team's settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		be := backend.FromContext(ctx)

		team, err := be.RequireTeam(ctx)
		if err != nil {
			return err
		}

		if ojson {
			return writeJSON(cmd.OutOrStdout(), team)
		}

		cmd.Println(team.Name)
		cmd.Printf("  members:      %d\n", team.MemberCount)
		cmd.Printf("  timezone:     %s\n", team.Timezone)
		cmd.Printf("  min players:  %d\n", team.MinPlayers)
		cmd.Printf("  min duration: %dm\n", team.MinDurationMinutes)
		if team.OwnerDisplayName != "" {
			cmd.Printf("  owner:        %s\n", team.OwnerDisplayName)
		}
		return nil
	},
}

func init() {
	teamCmd.AddCommand(
		teamCreateCmd,
		teamListCmd,
		teamInfoCmd,
		teamJoinCmd,
		teamLeaveCmd,
		teamMembersCmd,
	)
}
