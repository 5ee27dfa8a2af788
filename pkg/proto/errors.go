package proto

import (
	"errors"
)

var (
	// ErrUnauthorized is returned when the session token is missing, expired,
	// or rejected by the backend.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when the backend refuses the request for the
	// authenticated user.
	ErrForbidden = errors.New("forbidden")
	// ErrTeamNotFound is returned when a team is not found.
	ErrTeamNotFound = errors.New("team not found")
	// ErrSlotNotFound is returned when an availability slot is not found.
	ErrSlotNotFound = errors.New("availability slot not found")
	// ErrInviteNotFound is returned when an invite is not found.
	ErrInviteNotFound = errors.New("invite not found")
	// ErrNoTeam is returned when an operation requires a team membership the
	// user doesn't have.
	ErrNoTeam = errors.New("not a member of any team")
	// ErrNoCredentials is returned when no session token is stored locally.
	ErrNoCredentials = errors.New("no stored credentials, run `elab login`")
)
