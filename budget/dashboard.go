package budget

import (
	"context"
	"fmt"
)

func (c *Client) GeneralDashboard(ctx context.Context) (*GeneralDashboard, error) {
	var out GeneralDashboard
	if err := c.get(ctx, "/dashboard/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) EventDashboard(ctx context.Context, eventID int64) (*EventDashboard, error) {
	var out EventDashboard
	if err := c.get(ctx, fmt.Sprintf("/dashboard/%d/", eventID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecentActivities returns the newest events, pledges and payments, most
// recent first.
func (c *Client) RecentActivities(ctx context.Context) ([]Activity, error) {
	page, err := list[Activity](ctx, c, "/recent-activities/", nil)
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}
