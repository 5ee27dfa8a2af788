package backend

import (
	"context"
	"errors"

	"github.com/esportlab/elab/pkg/cache"
	"github.com/esportlab/elab/pkg/proto"
)

const profileKey = "me"

// Me returns the authenticated user's profile, cached briefly so the TUI
// can consult membership without a round trip per keystroke.
func (b *Backend) Me(ctx context.Context) (proto.Profile, error) {
	if v, ok := b.cache.Get(ctx, profileKey); ok {
		if p, ok := v.(proto.Profile); ok {
			return p, nil
		}
	}

	p, err := b.client.Me(ctx)
	if err != nil {
		return proto.Profile{}, b.wrapAuth(err)
	}

	b.cache.Set(ctx, profileKey, p, cache.WithTags(tagProfile))
	return p, nil
}

// RequireTeam returns the authenticated user's team, preferring the local
// selection and falling back to the profile's membership.
func (b *Backend) RequireTeam(ctx context.Context) (proto.Team, error) {
	if teamID, err := b.SelectedTeam(ctx); err == nil && teamID > 0 {
		t, err := b.Team(ctx, teamID)
		if err == nil {
			return t, nil
		}
		if !errors.Is(err, proto.ErrTeamNotFound) {
			return proto.Team{}, err
		}
		// Selected team is gone; fall through to the profile.
		if err := b.ClearSelectedTeam(ctx); err != nil {
			b.logger.Error("clear stale team selection", "err", err)
		}
	}

	p, err := b.Me(ctx)
	if err != nil {
		return proto.Team{}, err
	}

	t, ok := p.Membership().Team()
	if !ok {
		return proto.Team{}, proto.ErrNoTeam
	}
	return t, nil
}

// Logout invalidates the server session, clears local credentials and
// drops every cached entry.
func (b *Backend) Logout(ctx context.Context) error {
	if err := b.client.Logout(ctx); err != nil && !errors.Is(err, proto.ErrUnauthorized) {
		b.logger.Warn("server-side logout failed", "err", err)
	}

	for _, k := range b.cache.Keys(ctx) {
		b.cache.Delete(ctx, k)
	}

	return b.creds.Clear()
}
