package budget

import (
	"context"
	"strconv"
)

const tasksPath = "/tasks/"

// ListTasks lists the tasks of budgetItemID, or all tasks when it is 0.
func (c *Client) ListTasks(ctx context.Context, budgetItemID int64, opts ListOptions) (*Page[Task], error) {
	q := opts.query()
	if budgetItemID > 0 {
		q.Set("budget_item", strconv.FormatInt(budgetItemID, 10))
	}
	return list[Task](ctx, c, tasksPath, q)
}

func (c *Client) GetTask(ctx context.Context, id int64) (*Task, error) {
	var out Task
	if err := c.get(ctx, itemPath(tasksPath, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateTask(ctx context.Context, input TaskInput) (*Task, error) {
	var out Task
	if err := c.post(ctx, tasksPath, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTask(ctx context.Context, id int64, fields Patch) (*Task, error) {
	var out Task
	if err := c.patch(ctx, itemPath(tasksPath, id), fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.delete(ctx, itemPath(tasksPath, id))
}
