package budget

import (
	"context"
	"strconv"
)

const budgetItemsPath = "/budget-items/"

// ListBudgetItems lists the items of eventID, or of every event when
// eventID is 0.
func (c *Client) ListBudgetItems(ctx context.Context, eventID int64, opts ListOptions) (*Page[BudgetItem], error) {
	q := opts.query()
	if eventID > 0 {
		q.Set("event", strconv.FormatInt(eventID, 10))
	}
	return list[BudgetItem](ctx, c, budgetItemsPath, q)
}

func (c *Client) CreateBudgetItem(ctx context.Context, input BudgetItemInput) (*BudgetItem, error) {
	var out BudgetItem
	if err := c.post(ctx, budgetItemsPath, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateBudgetItem(ctx context.Context, id int64, fields Patch) (*BudgetItem, error) {
	var out BudgetItem
	if err := c.patch(ctx, itemPath(budgetItemsPath, id), fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteBudgetItem(ctx context.Context, id int64) error {
	return c.delete(ctx, itemPath(budgetItemsPath, id))
}
