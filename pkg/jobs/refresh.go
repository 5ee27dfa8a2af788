package jobs

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/esportlab/elab/pkg/backend"
	"github.com/esportlab/elab/pkg/config"
	"github.com/esportlab/elab/pkg/schedule"
)

// OverviewRefresh re-warms the current and next week's overview so the
// calendar stays fresh while the UI is running.
func OverviewRefresh(ctx context.Context) func() {
	cfg := config.FromContext(ctx)
	logger := log.FromContext(ctx).WithPrefix("jobs.refresh")
	b := backend.FromContext(ctx)
	return func() {
		teamID, err := b.SelectedTeam(ctx)
		if err != nil || teamID == 0 {
			return
		}

		loc, err := schedule.LoadZone(cfg.Timezone)
		if err != nil {
			loc = time.UTC
		}

		cur := schedule.CurrentWeek(time.Now().In(loc))
		if err := b.RefreshOverviews(ctx, teamID, cur, cur.Shift(schedule.Next)); err != nil {
			logger.Error("error refreshing overviews", "team", teamID, "err", err)
		}
	}
}
