package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/esportlab/elab/pkg/proto"
	"github.com/google/go-querystring/query"
)

type rangeQuery struct {
	From time.Time `url:"from" layout:"2006-01-02T15:04:05Z07:00"`
	To   time.Time `url:"to" layout:"2006-01-02T15:04:05Z07:00"`
}

// Overview fetches the team's aggregated availability for the given range.
func (c *Client) Overview(ctx context.Context, teamID int64, from, to time.Time) (proto.Overview, error) {
	q, err := query.Values(rangeQuery{From: from.UTC(), To: to.UTC()})
	if err != nil {
		return proto.Overview{}, fmt.Errorf("encode range: %w", err)
	}

	var o proto.Overview
	if err := c.get(ctx, fmt.Sprintf("/api/teams/%d/availability", teamID), q, &o); err != nil {
		return proto.Overview{}, err
	}
	return o, nil
}

// CreateSlot declares a new availability slot for the authenticated user.
func (c *Client) CreateSlot(ctx context.Context, opts proto.UpsertSlotOptions) (proto.Slot, error) {
	var s proto.Slot
	if err := c.write(ctx, http.MethodPost, "/api/availability", opts, &s); err != nil {
		return proto.Slot{}, err
	}
	return s, nil
}

// UpdateSlot replaces an existing slot's times, kind, and note.
func (c *Client) UpdateSlot(ctx context.Context, id int64, opts proto.UpsertSlotOptions) (proto.Slot, error) {
	var s proto.Slot
	if err := c.write(ctx, http.MethodPut, fmt.Sprintf("/api/availability/%d", id), opts, &s); err != nil {
		return proto.Slot{}, err
	}
	return s, nil
}

// DeleteSlot removes a slot.
func (c *Client) DeleteSlot(ctx context.Context, id int64) error {
	err := c.write(ctx, http.MethodDelete, fmt.Sprintf("/api/availability/%d", id), nil, nil)
	if err != nil && isStatus(err, http.StatusNotFound) {
		return proto.ErrSlotNotFound
	}
	return err
}

func isStatus(err error, code int) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.StatusCode == code
}
