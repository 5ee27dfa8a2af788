package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/tablewriter"
	"github.com/esportlab/elab/pkg/backend"
	"github.com/esportlab/elab/pkg/config"
	"github.com/esportlab/elab/pkg/proto"
	"github.com/esportlab/elab/pkg/schedule"
	"github.com/spf13/cobra"
)

var availabilityCmd = &cobra.Command{
	Use:     "availability",
	Aliases: []string{"avail"},
	Short:   "Manage the weekly availability calendar",
}

// weekWindow resolves the --week offset against the current week in the
// configured timezone.
func weekWindow(cmd *cobra.Command, offset int) (schedule.Window, *time.Location, error) {
	cfg := config.FromContext(cmd.Context())
	loc, err := schedule.LoadZone(cfg.Timezone)
	if err != nil {
		return schedule.Window{}, nil, err
	}

	win := schedule.CurrentWeek(time.Now().In(loc))
	for ; offset > 0; offset-- {
		win = win.Shift(schedule.Next)
	}
	for ; offset < 0; offset++ {
		win = win.Shift(schedule.Prev)
	}
	return win, loc, nil
}

var availabilityListCmd = func() *cobra.Command {
	var week int

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the team's availability for a week",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)

			team, err := be.RequireTeam(ctx)
			if err != nil {
				return err
			}

			win, loc, err := weekWindow(cmd, week)
			if err != nil {
				return err
			}

			ov, err := be.Overview(ctx, team.ID, win)
			if err != nil {
				return err
			}

			if ojson {
				return writeJSON(cmd.OutOrStdout(), ov)
			}

			view := schedule.NewWeekView(ov, win, loc)
			cmd.Printf("Week of %s\n\n", win.Start.Format("Jan 2, 2006"))

			type row struct {
				slot proto.Slot
			}
			rows := make([]row, 0)
			for _, m := range view.Members {
				for _, day := range view.Days {
					for _, s := range m.Buckets[schedule.Day(day, loc)] {
						rows = append(rows, row{slot: s})
					}
				}
			}

			if len(rows) == 0 {
				cmd.Println("No availability declared")
				return nil
			}

			if err := tablewriter.Render(
				cmd.OutOrStdout(),
				rows,
				[]string{"ID", "Member", "Day", "From", "To", "Kind", "Note"},
				func(r row) ([]string, error) {
					kind := "available"
					if !r.slot.Available {
						kind = "unavailable"
					}
					return []string{
						strconv.FormatInt(r.slot.ID, 10),
						r.slot.MemberDisplayName,
						schedule.FormatDisplay(r.slot.StartsAt, "Mon Jan 2", loc),
						schedule.FormatTimeOfDay(r.slot.StartsAt, loc),
						schedule.FormatTimeOfDay(r.slot.EndsAt, loc),
						kind,
						r.slot.Note,
					}, nil
				},
			); err != nil {
				return err
			}

			cmd.Println()
			for _, m := range view.Members {
				cmd.Printf("%s: %.1fh available, %.0f%% of declared time\n",
					m.DisplayName,
					float64(m.Stats.AvailableMinutes)/60,
					m.Stats.AvailabilityPercentage)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&week, "week", "w", 0, "week offset from the current week (e.g. -1, 2)")
	return cmd
}()

var availabilityAddCmd = func() *cobra.Command {
	var week int
	var unavailable bool
	var note string

	cmd := &cobra.Command{
		Use:   "add DAY FROM TO",
		Short: "Declare availability for a day",
		Long:  "Declare availability for a weekday, e.g. `elab availability add mon 19:00 22:00`. Times are wall-clock in your configured timezone.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)

			if _, err := be.RequireTeam(ctx); err != nil {
				return err
			}

			win, loc, err := weekWindow(cmd, week)
			if err != nil {
				return err
			}

			dayIdx, err := parseWeekday(args[0])
			if err != nil {
				return err
			}
			day := win.Days()[dayIdx]

			start, err := schedule.CombineDateAndTime(day, args[1])
			if err != nil {
				return err
			}
			end, err := schedule.CombineDateAndTime(day, args[2])
			if err != nil {
				return err
			}

			if err := schedule.ValidateSlot(start, end, note); err != nil {
				return err
			}

			slot, err := be.CreateSlot(ctx, proto.UpsertSlotOptions{
				StartsAt:  start,
				EndsAt:    end,
				Available: !unavailable,
				Note:      note,
				Timezone:  loc.String(),
			})
			if err != nil {
				return err
			}

			if ojson {
				return writeJSON(cmd.OutOrStdout(), slot)
			}

			cmd.PrintErrf("Declared %s %s–%s\n",
				schedule.FormatDisplay(start, "Mon Jan 2", loc),
				schedule.FormatTimeOfDay(start, loc),
				schedule.FormatTimeOfDay(end, loc),
			)
			return nil
		},
	}

	cmd.Flags().IntVarP(&week, "week", "w", 0, "week offset from the current week")
	cmd.Flags().BoolVar(&unavailable, "unavailable", false, "declare unavailability instead")
	cmd.Flags().StringVar(&note, "note", "", "optional note")
	return cmd
}()

var availabilityRemoveCmd = &cobra.Command{
	Use:     "remove ID",
	Aliases: []string{"rm"},
	Short:   "Remove an availability slot",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		be := backend.FromContext(ctx)

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}

		if err := be.DeleteSlot(ctx, id); err != nil {
			return err
		}

		cmd.PrintErrln("Slot removed")
		return nil
	},
}

var weekdays = map[string]int{
	"mon": 0, "monday": 0,
	"tue": 1, "tuesday": 1,
	"wed": 2, "wednesday": 2,
	"thu": 3, "thursday": 3,
	"fri": 4, "friday": 4,
	"sat": 5, "saturday": 5,
	"sun": 6, "sunday": 6,
}

func parseWeekday(s string) (int, error) {
	if i, ok := weekdays[strings.ToLower(s)]; ok {
		return i, nil
	}
	return 0, &unknownWeekdayError{s}
}

type unknownWeekdayError struct {
	input string
}

func (e *unknownWeekdayError) Error() string {
	return "unknown weekday " + strconv.Quote(e.input) + ", use mon..sun"
}

func init() {
	availabilityCmd.AddCommand(
		availabilityListCmd,
		availabilityAddCmd,
		availabilityRemoveCmd,
	)
}
