package proto

import "time"

// Invite is a team invite code.
type Invite struct {
	ID                   int64     `json:"id"`
	InviteCode           string    `json:"inviteCode"`
	TeamID               int64     `json:"teamId"`
	TeamName             string    `json:"teamName"`
	CreatedByDisplayName string    `json:"createdByDisplayName"`
	ExpiresAt            time.Time `json:"expiresAt"`
	MaxUses              *int      `json:"maxUses,omitempty"`
	UsedCount            int       `json:"usedCount"`
	IsActive             bool      `json:"isActive"`
	CreatedAt            time.Time `json:"createdAt"`
	IsExpired            bool      `json:"isExpired"`
	IsValid              bool      `json:"isValid"`
	RemainingUses        int       `json:"remainingUses"`
}

// CreateInviteOptions are options for creating an invite.
type CreateInviteOptions struct {
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	MaxUses   *int       `json:"maxUses,omitempty"`
}
