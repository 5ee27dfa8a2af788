package proto

import (
	"strings"
	"time"
)

// Role is a team role.
type Role int8

const (
	// RolePlayer is a regular team member.
	RolePlayer Role = iota
	// RoleAdmin can manage invites and team settings.
	RoleAdmin
	// RoleOwner created the team and can delete it.
	RoleOwner
)

// String implements fmt.Stringer.
func (r Role) String() string {
	switch r {
	case RoleOwner:
		return "owner"
	case RoleAdmin:
		return "admin"
	default:
		return "player"
	}
}

// ParseRoles parses the backend's comma-separated roles string.
func ParseRoles(s string) []Role {
	var roles []Role
	for _, p := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "owner":
			roles = append(roles, RoleOwner)
		case "admin":
			roles = append(roles, RoleAdmin)
		case "player", "user":
			roles = append(roles, RolePlayer)
		}
	}
	return roles
}

// Team is a team as reported by the backend.
type Team struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	DiscordGuildID     string    `json:"discordGuildId,omitempty"`
	ReminderChannelID  string    `json:"reminderChannelId,omitempty"`
	Timezone           string    `json:"timezone"`
	MinPlayers         int       `json:"minPlayers"`
	MinDurationMinutes int       `json:"minDurationMinutes"`
	ReminderHours      []int     `json:"reminderHours"`
	CreatedAt          time.Time `json:"createdAt"`
	MemberCount        int       `json:"memberCount"`
	OwnerDisplayName   string    `json:"ownerDisplayName,omitempty"`
	IsCurrentUserOwner bool      `json:"isCurrentUserOwner"`
	IsCurrentUserAdmin bool      `json:"isCurrentUserAdmin"`
}

// TeamMember is a member of a team.
type TeamMember struct {
	ID          int64     `json:"id"`
	DisplayName string    `json:"displayName"`
	AvatarURL   string    `json:"avatarUrl,omitempty"`
	Roles       string    `json:"roles"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateTeamOptions are options for creating a team.
type CreateTeamOptions struct {
	Name               string `json:"name"`
	DiscordGuildID     string `json:"discordGuildId,omitempty"`
	ReminderChannelID  string `json:"reminderChannelId,omitempty"`
	Timezone           string `json:"timezone,omitempty"`
	MinPlayers         int    `json:"minPlayers,omitempty"`
	MinDurationMinutes int    `json:"minDurationMinutes,omitempty"`
	ReminderHours      []int  `json:"reminderHours,omitempty"`
}
