package commands

import (
	"context"
	"fmt"

	"github.com/jrsteele09/go-budget-client/budget"
	"github.com/jrsteele09/go-budget-client/internal/utils"
	"github.com/urfave/cli/v3"
)

type EventsCmd struct {
	flags *Flags

	input  budget.EventInput
	budget string
}

// NewEventsCmd creates the events command group
func NewEventsCmd(flags *Flags) *EventsCmd {
	return &EventsCmd{flags: flags}
}

// Register adds the events commands to the application
func (cmd *EventsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "events",
		Usage: "Manage events",
		Commands: []*cli.Command{
			{
				Name:   "ls",
				Usage:  "List events",
				Flags:  listFlags(),
				Action: cmd.list,
			},
			{
				Name:      "show",
				Usage:     "Show one event",
				UsageText: "budgetctl events show <id>",
				Action:    cmd.show,
			},
			{
				Name:      "create",
				Usage:     "Create an event",
				UsageText: `budgetctl events create --name "Harambee" --budget 150000 --date 2025-12-01`,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true, Destination: &cmd.input.Name},
					&cli.StringFlag{Name: "budget", Usage: "total budget", Required: true, Destination: &cmd.budget},
					&cli.StringFlag{Name: "date", Usage: "event date (YYYY-MM-DD)", Required: true, Destination: &cmd.input.EventDate},
					&cli.StringFlag{Name: "venue", Destination: &cmd.input.Venue},
					&cli.StringFlag{Name: "description", Destination: &cmd.input.Description},
				},
				Action: cmd.create,
			},
			{
				Name:      "rm",
				Usage:     "Delete an event",
				UsageText: "budgetctl events rm <id>",
				Action:    cmd.remove,
			},
		},
	})
	return app
}

func (cmd *EventsCmd) list(ctx context.Context, c *cli.Command) error {
	page, err := cmd.flags.Client.ListEvents(ctx, listOptions(c))
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(page.Results))
	for _, e := range page.Results {
		rows = append(rows, []string{
			formatID(e.ID),
			e.Name,
			e.EventDate,
			utils.Value(e.Venue),
			e.TotalBudget.Display(),
			e.TotalPledged.Display(),
			e.TotalReceived.Display(),
			yesNo(e.IsFunded),
		})
	}
	if err := renderTable(c.Root().Writer,
		[]string{"ID", "Name", "Date", "Venue", "Budget", "Pledged", "Received", "Funded"}, rows); err != nil {
		return err
	}
	renderPageFooter(c.Root().Writer, page)
	return nil
}

func (cmd *EventsCmd) show(ctx context.Context, c *cli.Command) error {
	id, err := idArg(c, "event")
	if err != nil {
		return err
	}
	e, err := cmd.flags.Client.GetEvent(ctx, id)
	if err != nil {
		return err
	}
	return renderTable(c.Root().Writer, []string{"Field", "Value"}, [][]string{
		{"ID", formatID(e.ID)},
		{"Name", e.Name},
		{"Description", e.Description},
		{"Venue", utils.Value(e.Venue)},
		{"Date", e.EventDate},
		{"Total budget", e.TotalBudget.Display()},
		{"Total pledged", e.TotalPledged.Display()},
		{"Total received", e.TotalReceived.Display()},
		{"Covered", e.PercentageCovered.String() + "%"},
		{"Outstanding", e.OutstandingBalance.Display()},
		{"Overpaid", e.OverpaidAmount.Display()},
		{"Funded", yesNo(e.IsFunded)},
	})
}

func (cmd *EventsCmd) create(ctx context.Context, c *cli.Command) error {
	amount, err := budget.ParseAmount(cmd.budget)
	if err != nil {
		return err
	}
	cmd.input.TotalBudget = amount

	e, err := cmd.flags.Client.CreateEvent(ctx, cmd.input)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(c.Root().Writer, "Created event %d (%s).\n", e.ID, e.Name)
	return nil
}

func (cmd *EventsCmd) remove(ctx context.Context, c *cli.Command) error {
	id, err := idArg(c, "event")
	if err != nil {
		return err
	}
	if err := cmd.flags.Client.DeleteEvent(ctx, id); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(c.Root().Writer, "Deleted event %d.\n", id)
	return nil
}
