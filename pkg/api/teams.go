package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/esportlab/elab/pkg/proto"
)

// CreateTeam creates a new team owned by the authenticated user.
func (c *Client) CreateTeam(ctx context.Context, opts proto.CreateTeamOptions) (proto.Team, error) {
	var t proto.Team
	if err := c.write(ctx, http.MethodPost, "/api/teams", opts, &t); err != nil {
		return proto.Team{}, err
	}
	return t, nil
}

// Team fetches a team by id.
func (c *Client) Team(ctx context.Context, teamID int64) (proto.Team, error) {
	var t proto.Team
	err := c.get(ctx, fmt.Sprintf("/api/teams/%d", teamID), nil, &t)
	if err != nil && isStatus(err, http.StatusNotFound) {
		return proto.Team{}, proto.ErrTeamNotFound
	}
	if err != nil {
		return proto.Team{}, err
	}
	return t, nil
}

// Members fetches the team's member list.
func (c *Client) Members(ctx context.Context, teamID int64) ([]proto.TeamMember, error) {
	var ms []proto.TeamMember
	err := c.get(ctx, fmt.Sprintf("/api/teams/%d/members", teamID), nil, &ms)
	if err != nil && isStatus(err, http.StatusNotFound) {
		return nil, proto.ErrTeamNotFound
	}
	return ms, err
}

// Join joins a team using an invite code.
func (c *Client) Join(ctx context.Context, inviteCode string) (proto.Team, error) {
	body := struct {
		InviteCode string `json:"inviteCode"`
	}{InviteCode: inviteCode}

	var t proto.Team
	err := c.write(ctx, http.MethodPost, "/api/teams/join", body, &t)
	if err != nil && isStatus(err, http.StatusNotFound) {
		return proto.Team{}, proto.ErrInviteNotFound
	}
	if err != nil {
		return proto.Team{}, err
	}
	return t, nil
}

// Leave leaves the authenticated user's current team.
func (c *Client) Leave(ctx context.Context) error {
	return c.write(ctx, http.MethodPost, "/api/teams/leave", nil, nil)
}

// Invites fetches the team's invite codes. Requires admin.
func (c *Client) Invites(ctx context.Context, teamID int64) ([]proto.Invite, error) {
	var is []proto.Invite
	err := c.get(ctx, fmt.Sprintf("/api/teams/%d/invites", teamID), nil, &is)
	return is, err
}

// CreateInvite creates a new invite code for the team. Requires admin.
func (c *Client) CreateInvite(ctx context.Context, teamID int64, opts proto.CreateInviteOptions) (proto.Invite, error) {
	var i proto.Invite
	if err := c.write(ctx, http.MethodPost, fmt.Sprintf("/api/teams/%d/invites", teamID), opts, &i); err != nil {
		return proto.Invite{}, err
	}
	return i, nil
}

// DeactivateInvite deactivates an invite code. Requires admin.
func (c *Client) DeactivateInvite(ctx context.Context, teamID, inviteID int64) error {
	err := c.write(ctx, http.MethodDelete, fmt.Sprintf("/api/teams/%d/invites/%d", teamID, inviteID), nil, nil)
	if err != nil && isStatus(err, http.StatusNotFound) {
		return proto.ErrInviteNotFound
	}
	return err
}
