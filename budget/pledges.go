package budget

import (
	"context"
	"strconv"
)

const pledgesPath = "/pledges/"

// ListPledges lists the pledges of eventID, or all pledges when it is 0.
func (c *Client) ListPledges(ctx context.Context, eventID int64, opts ListOptions) (*Page[Pledge], error) {
	q := opts.query()
	if eventID > 0 {
		q.Set("event", strconv.FormatInt(eventID, 10))
	}
	return list[Pledge](ctx, c, pledgesPath, q)
}

// CreatePledge is refused by the server when the event's pledges would
// exceed its total budget.
func (c *Client) CreatePledge(ctx context.Context, input PledgeInput) (*Pledge, error) {
	var out Pledge
	if err := c.post(ctx, pledgesPath, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePledge(ctx context.Context, id int64, fields Patch) (*Pledge, error) {
	var out Pledge
	if err := c.patch(ctx, itemPath(pledgesPath, id), fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeletePledge(ctx context.Context, id int64) error {
	return c.delete(ctx, itemPath(pledgesPath, id))
}
