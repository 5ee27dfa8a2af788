package proto

import (
	"encoding/json"
)

// Profile is the authenticated user's profile as reported by the backend.
type Profile struct {
	ID            int64  `json:"id"`
	DiscordUserID string `json:"discordUserId"`
	DisplayName   string `json:"displayName"`
	AvatarURL     string `json:"avatarUrl,omitempty"`
	Timezone      string `json:"tz"`

	membership Membership
}

// Membership returns the user's team membership.
func (p Profile) Membership() Membership {
	return p.membership
}

// profileWire is the wire shape of the /me payload. The backend reports team
// membership as a loose bag of nullable fields; it is folded into a
// Membership value on decode so callers never check nullable fields
// themselves.
type profileWire struct {
	ID            int64   `json:"id"`
	DiscordUserID string  `json:"discordUserId"`
	DisplayName   string  `json:"displayName"`
	AvatarURL     string  `json:"avatarUrl"`
	Timezone      string  `json:"tz"`
	Roles         string  `json:"roles"`
	TeamIDs       []int64 `json:"teamIds"`
	Team          *Team   `json:"team"`
	HasTeam       bool    `json:"hasTeam"`
	IsTeamOwner   bool    `json:"isTeamOwner"`
	IsTeamAdmin   bool    `json:"isTeamAdmin"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Profile) UnmarshalJSON(data []byte) error {
	var w profileWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*p = Profile{
		ID:            w.ID,
		DiscordUserID: w.DiscordUserID,
		DisplayName:   w.DisplayName,
		AvatarURL:     w.AvatarURL,
		Timezone:      w.Timezone,
	}

	if w.HasTeam && w.Team != nil {
		roles := []Role{RolePlayer}
		if w.IsTeamAdmin {
			roles = append(roles, RoleAdmin)
		}
		if w.IsTeamOwner {
			roles = append(roles, RoleOwner)
		}
		p.membership = TeamMembership(*w.Team, roles...)
	} else {
		p.membership = NoTeam()
	}

	return nil
}

// Membership is the user's relation to a team. It is either "no team" or a
// membership in exactly one team with a set of roles.
type Membership struct {
	team  *Team
	roles map[Role]struct{}
}

// NoTeam returns the membership of a user that belongs to no team.
func NoTeam() Membership {
	return Membership{}
}

// TeamMembership returns a membership in the given team with the given roles.
func TeamMembership(team Team, roles ...Role) Membership {
	rs := make(map[Role]struct{}, len(roles))
	for _, r := range roles {
		rs[r] = struct{}{}
	}
	return Membership{team: &team, roles: rs}
}

// Team returns the member's team, if any.
func (m Membership) Team() (Team, bool) {
	if m.team == nil {
		return Team{}, false
	}
	return *m.team, true
}

// HasRole returns whether the membership carries the given role.
func (m Membership) HasRole(role Role) bool {
	_, ok := m.roles[role]
	return ok
}

// IsOwner returns whether the member owns the team.
func (m Membership) IsOwner() bool {
	return m.HasRole(RoleOwner)
}

// IsAdmin returns whether the member administers the team. Owners are
// implicitly admins.
func (m Membership) IsAdmin() bool {
	return m.HasRole(RoleAdmin) || m.HasRole(RoleOwner)
}
