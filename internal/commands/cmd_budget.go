package commands

import (
	"context"

	"github.com/urfave/cli/v3"
)

type BudgetCmd struct {
	flags *Flags
}

// NewBudgetCmd creates the budget and tasks commands
func NewBudgetCmd(flags *Flags) *BudgetCmd {
	return &BudgetCmd{flags: flags}
}

// Register adds the budget and tasks commands to the application
func (cmd *BudgetCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		&cli.Command{
			Name:  "budget",
			Usage: "Budget line items",
			Commands: []*cli.Command{
				{
					Name:   "ls",
					Usage:  "List budget items",
					Flags:  append(listFlags(), &cli.Int64Flag{Name: "event", Usage: "only items of this event"}),
					Action: cmd.listItems,
				},
			},
		},
		&cli.Command{
			Name:  "tasks",
			Usage: "Budget item tasks",
			Commands: []*cli.Command{
				{
					Name:   "ls",
					Usage:  "List tasks",
					Flags:  append(listFlags(), &cli.Int64Flag{Name: "budget-item", Usage: "only tasks of this budget item"}),
					Action: cmd.listTasks,
				},
			},
		},
	)
	return app
}

func (cmd *BudgetCmd) listItems(ctx context.Context, c *cli.Command) error {
	page, err := cmd.flags.Client.ListBudgetItems(ctx, c.Int64("event"), listOptions(c))
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(page.Results))
	for _, item := range page.Results {
		rows = append(rows, []string{
			formatID(item.ID),
			formatOptionalID(item.Event),
			item.Category,
			item.EstimatedBudget.Display(),
			item.TotalVendorPayments.Display(),
			item.RemainingBudget.Display(),
			yesNo(item.IsFullyPaid),
		})
	}
	if err := renderTable(c.Root().Writer,
		[]string{"ID", "Event", "Category", "Estimated", "Paid", "Remaining", "Fully Paid"}, rows); err != nil {
		return err
	}
	renderPageFooter(c.Root().Writer, page)
	return nil
}

func (cmd *BudgetCmd) listTasks(ctx context.Context, c *cli.Command) error {
	page, err := cmd.flags.Client.ListTasks(ctx, c.Int64("budget-item"), listOptions(c))
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(page.Results))
	for _, task := range page.Results {
		rows = append(rows, []string{
			formatID(task.ID),
			formatID(task.BudgetItem),
			task.Title,
			task.AllocatedAmount.Display(),
			task.AmountPaid.Display(),
			task.Balance.Display(),
		})
	}
	if err := renderTable(c.Root().Writer,
		[]string{"ID", "Budget Item", "Title", "Allocated", "Paid", "Balance"}, rows); err != nil {
		return err
	}
	renderPageFooter(c.Root().Writer, page)
	return nil
}
