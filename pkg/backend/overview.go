package backend

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/esportlab/elab/pkg/cache"
	"github.com/esportlab/elab/pkg/db"
	"github.com/esportlab/elab/pkg/db/models"
	"github.com/esportlab/elab/pkg/proto"
	"github.com/esportlab/elab/pkg/schedule"
	"golang.org/x/sync/errgroup"
)

func overviewKey(teamID int64, win schedule.Window) string {
	return fmt.Sprintf("overview:%d:%s", teamID, win.Key())
}

// Overview returns the team's availability overview for the given week.
// Fresh cache entries are served directly; otherwise the backend is asked
// and the result cached and snapshotted. When the backend is unreachable
// the last stored snapshot is returned instead.
func (b *Backend) Overview(ctx context.Context, teamID int64, win schedule.Window) (proto.Overview, error) {
	key := overviewKey(teamID, win)
	if v, ok := b.cache.Get(ctx, key); ok {
		if o, ok := v.(proto.Overview); ok {
			return o, nil
		}
	}

	from, to := win.Range()
	o, err := b.client.Overview(ctx, teamID, from, to)
	if err != nil {
		if snap, serr := b.loadSnapshot(ctx, teamID, win.Key()); serr == nil {
			b.logger.Warn("serving stored overview snapshot", "team", teamID, "week", win.Key(), "err", err)
			return snap, nil
		}
		return proto.Overview{}, b.wrapAuth(err)
	}

	b.cache.Set(ctx, key, o, cache.WithTags(tagAvailability, tagTeam(teamID)))
	if err := b.saveSnapshot(ctx, teamID, win.Key(), o); err != nil {
		b.logger.Error("save overview snapshot", "team", teamID, "week", win.Key(), "err", err)
	}

	return o, nil
}

// RefreshOverviews re-fetches the given weeks concurrently, refreshing the
// cache and snapshots. Used by the background refresh job.
func (b *Backend) RefreshOverviews(ctx context.Context, teamID int64, wins ...schedule.Window) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, win := range wins {
		win := win
		g.Go(func() error {
			b.cache.Delete(ctx, overviewKey(teamID, win))
			_, err := b.Overview(ctx, teamID, win)
			return err
		})
	}
	return g.Wait()
}

// CreateSlot creates a slot and invalidates cached availability.
func (b *Backend) CreateSlot(ctx context.Context, opts proto.UpsertSlotOptions) (proto.Slot, error) {
	s, err := b.client.CreateSlot(ctx, opts)
	if err != nil {
		return proto.Slot{}, b.wrapAuth(err)
	}
	b.cache.Invalidate(ctx, tagAvailability)
	return s, nil
}

// UpdateSlot updates a slot and invalidates cached availability.
func (b *Backend) UpdateSlot(ctx context.Context, id int64, opts proto.UpsertSlotOptions) (proto.Slot, error) {
	s, err := b.client.UpdateSlot(ctx, id, opts)
	if err != nil {
		return proto.Slot{}, b.wrapAuth(err)
	}
	b.cache.Invalidate(ctx, tagAvailability)
	return s, nil
}

// DeleteSlot deletes a slot and invalidates cached availability.
func (b *Backend) DeleteSlot(ctx context.Context, id int64) error {
	if err := b.client.DeleteSlot(ctx, id); err != nil {
		return b.wrapAuth(err)
	}
	b.cache.Invalidate(ctx, tagAvailability)
	return nil
}

func (b *Backend) saveSnapshot(ctx context.Context, teamID int64, weekKey string, o proto.Overview) error {
	payload, err := json.Marshal(o)
	if err != nil {
		return err
	}

	return b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		query := tx.Rebind(`
			INSERT INTO overview_snapshots (team_id, week_key, payload, fetched_at)
			VALUES (?, ?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT (team_id, week_key)
			DO UPDATE SET payload = excluded.payload, fetched_at = CURRENT_TIMESTAMP
		`)
		_, err := tx.ExecContext(ctx, query, teamID, weekKey, payload)
		return db.WrapError(err)
	})
}

func (b *Backend) loadSnapshot(ctx context.Context, teamID int64, weekKey string) (proto.Overview, error) {
	var snap models.OverviewSnapshot
	query := b.db.Rebind("SELECT * FROM overview_snapshots WHERE team_id = ? AND week_key = ?")
	if err := b.db.GetContext(ctx, &snap, query, teamID, weekKey); err != nil {
		return proto.Overview{}, db.WrapError(err)
	}

	var o proto.Overview
	if err := json.Unmarshal(snap.Payload, &o); err != nil {
		return proto.Overview{}, err
	}
	return o, nil
}
