package budget

import (
	"context"
)

const eventsPath = "/events/"

func (c *Client) ListEvents(ctx context.Context, opts ListOptions) (*Page[Event], error) {
	return list[Event](ctx, c, eventsPath, opts.query())
}

func (c *Client) GetEvent(ctx context.Context, id int64) (*Event, error) {
	var out Event
	if err := c.get(ctx, itemPath(eventsPath, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateEvent(ctx context.Context, input EventInput) (*Event, error) {
	var out Event
	if err := c.post(ctx, eventsPath, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateEvent applies a partial update.
func (c *Client) UpdateEvent(ctx context.Context, id int64, fields Patch) (*Event, error) {
	var out Event
	if err := c.patch(ctx, itemPath(eventsPath, id), fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteEvent fails with a 400 listing the related objects when the event
// still has protected dependents.
func (c *Client) DeleteEvent(ctx context.Context, id int64) error {
	return c.delete(ctx, itemPath(eventsPath, id))
}
