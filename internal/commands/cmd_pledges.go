package commands

import (
	"context"
	"fmt"

	"github.com/jrsteele09/go-budget-client/budget"
	"github.com/urfave/cli/v3"
)

type PledgesCmd struct {
	flags *Flags

	input  budget.PledgeInput
	amount string
}

// NewPledgesCmd creates the pledges command group
func NewPledgesCmd(flags *Flags) *PledgesCmd {
	return &PledgesCmd{flags: flags}
}

// Register adds the pledges commands to the application
func (cmd *PledgesCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "pledges",
		Usage: "Contributor pledges",
		Commands: []*cli.Command{
			{
				Name:   "ls",
				Usage:  "List pledges",
				Flags:  append(listFlags(), &cli.Int64Flag{Name: "event", Usage: "only pledges to this event"}),
				Action: cmd.list,
			},
			{
				Name:      "create",
				Usage:     "Record a pledge",
				UsageText: `budgetctl pledges create --event 3 --name "Wanjiru" --phone 0712345678 --amount 2500`,
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "event", Required: true, Destination: &cmd.input.Event},
					&cli.StringFlag{Name: "name", Required: true, Destination: &cmd.input.Name},
					&cli.StringFlag{Name: "phone", Required: true, Destination: &cmd.input.PhoneNumber},
					&cli.StringFlag{Name: "amount", Required: true, Destination: &cmd.amount},
				},
				Action: cmd.create,
			},
		},
	})
	return app
}

func (cmd *PledgesCmd) list(ctx context.Context, c *cli.Command) error {
	page, err := cmd.flags.Client.ListPledges(ctx, c.Int64("event"), listOptions(c))
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(page.Results))
	for _, p := range page.Results {
		rows = append(rows, []string{
			formatID(p.ID),
			formatOptionalID(p.Event),
			p.Name,
			p.PhoneNumber,
			p.AmountPledged.Display(),
			p.TotalPaid.Display(),
			p.Balance.Display(),
			yesNo(p.IsFulfilled),
		})
	}
	if err := renderTable(c.Root().Writer,
		[]string{"ID", "Event", "Name", "Phone", "Pledged", "Paid", "Balance", "Fulfilled"}, rows); err != nil {
		return err
	}
	renderPageFooter(c.Root().Writer, page)
	return nil
}

func (cmd *PledgesCmd) create(ctx context.Context, c *cli.Command) error {
	amount, err := budget.ParseAmount(cmd.amount)
	if err != nil {
		return err
	}
	cmd.input.AmountPledged = amount

	p, err := cmd.flags.Client.CreatePledge(ctx, cmd.input)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(c.Root().Writer, "Recorded pledge %d: %s pledged KSh %s.\n", p.ID, p.Name, p.AmountPledged.Display())
	return nil
}
