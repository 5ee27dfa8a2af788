package api

import (
	"context"
	"net/http"

	"github.com/esportlab/elab/pkg/proto"
)

// Me fetches the authenticated user's profile and team membership.
func (c *Client) Me(ctx context.Context) (proto.Profile, error) {
	var p proto.Profile
	if err := c.get(ctx, "/api/me", nil, &p); err != nil {
		return proto.Profile{}, err
	}
	return p, nil
}

// Logout invalidates the server-side session for the current token. The
// caller is responsible for discarding the local credentials afterwards.
func (c *Client) Logout(ctx context.Context) error {
	return c.write(ctx, http.MethodPost, "/auth/logout", nil, nil)
}
