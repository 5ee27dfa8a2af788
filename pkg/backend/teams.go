package backend

import (
	"context"
	"fmt"

	"github.com/esportlab/elab/pkg/cache"
	"github.com/esportlab/elab/pkg/proto"
)

func membersKey(teamID int64) string {
	return fmt.Sprintf("members:%d", teamID)
}

func invitesKey(teamID int64) string {
	return fmt.Sprintf("invites:%d", teamID)
}

// Team fetches a team, cached under its team tag.
func (b *Backend) Team(ctx context.Context, teamID int64) (proto.Team, error) {
	key := fmt.Sprintf("team:%d:info", teamID)
	if v, ok := b.cache.Get(ctx, key); ok {
		if t, ok := v.(proto.Team); ok {
			return t, nil
		}
	}

	t, err := b.client.Team(ctx, teamID)
	if err != nil {
		return proto.Team{}, b.wrapAuth(err)
	}

	b.cache.Set(ctx, key, t, cache.WithTags(tagTeam(teamID)))
	return t, nil
}

// Members fetches the team's member list, cached under its team tag.
func (b *Backend) Members(ctx context.Context, teamID int64) ([]proto.TeamMember, error) {
	if v, ok := b.cache.Get(ctx, membersKey(teamID)); ok {
		if ms, ok := v.([]proto.TeamMember); ok {
			return ms, nil
		}
	}

	ms, err := b.client.Members(ctx, teamID)
	if err != nil {
		return nil, b.wrapAuth(err)
	}

	b.cache.Set(ctx, membersKey(teamID), ms, cache.WithTags(tagTeam(teamID)))
	return ms, nil
}

// CreateTeam creates a new team and selects it.
func (b *Backend) CreateTeam(ctx context.Context, opts proto.CreateTeamOptions) (proto.Team, error) {
	t, err := b.client.CreateTeam(ctx, opts)
	if err != nil {
		return proto.Team{}, b.wrapAuth(err)
	}

	b.cache.Invalidate(ctx, tagProfile)
	if err := b.SetSelectedTeam(ctx, t.ID); err != nil {
		b.logger.Error("select created team", "team", t.ID, "err", err)
	}
	return t, nil
}

// Join joins a team with an invite code and selects it.
func (b *Backend) Join(ctx context.Context, inviteCode string) (proto.Team, error) {
	t, err := b.client.Join(ctx, inviteCode)
	if err != nil {
		return proto.Team{}, b.wrapAuth(err)
	}

	b.cache.Invalidate(ctx, tagProfile, tagTeam(t.ID))
	if err := b.SetSelectedTeam(ctx, t.ID); err != nil {
		b.logger.Error("select joined team", "team", t.ID, "err", err)
	}
	return t, nil
}

// Leave leaves the current team and clears the selection.
func (b *Backend) Leave(ctx context.Context) error {
	teamID, _ := b.SelectedTeam(ctx)

	if err := b.client.Leave(ctx); err != nil {
		return b.wrapAuth(err)
	}

	tags := []string{tagProfile, tagAvailability}
	if teamID > 0 {
		tags = append(tags, tagTeam(teamID))
	}
	b.cache.Invalidate(ctx, tags...)

	if err := b.ClearSelectedTeam(ctx); err != nil {
		b.logger.Error("clear selected team", "err", err)
	}
	return nil
}

// Invites fetches the team's invites, cached under its team tag.
func (b *Backend) Invites(ctx context.Context, teamID int64) ([]proto.Invite, error) {
	if v, ok := b.cache.Get(ctx, invitesKey(teamID)); ok {
		if is, ok := v.([]proto.Invite); ok {
			return is, nil
		}
	}

	is, err := b.client.Invites(ctx, teamID)
	if err != nil {
		return nil, b.wrapAuth(err)
	}

	b.cache.Set(ctx, invitesKey(teamID), is, cache.WithTags(tagTeam(teamID)))
	return is, nil
}

// CreateInvite creates an invite and drops the team's cached entries.
func (b *Backend) CreateInvite(ctx context.Context, teamID int64, opts proto.CreateInviteOptions) (proto.Invite, error) {
	i, err := b.client.CreateInvite(ctx, teamID, opts)
	if err != nil {
		return proto.Invite{}, b.wrapAuth(err)
	}
	b.cache.Invalidate(ctx, tagTeam(teamID))
	return i, nil
}

// DeactivateInvite deactivates an invite and drops the team's cached
// entries.
func (b *Backend) DeactivateInvite(ctx context.Context, teamID, inviteID int64) error {
	if err := b.client.DeactivateInvite(ctx, teamID, inviteID); err != nil {
		return b.wrapAuth(err)
	}
	b.cache.Invalidate(ctx, tagTeam(teamID))
	return nil
}
