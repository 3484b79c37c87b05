package commands

import (
	"context"

	"github.com/jrsteele09/go-budget-client/budget"
	"github.com/jrsteele09/go-budget-client/internal/utils"
	"github.com/urfave/cli/v3"
)

type PaymentsCmd struct {
	flags *Flags
}

// NewPaymentsCmd creates the payments and vendors commands
func NewPaymentsCmd(flags *Flags) *PaymentsCmd {
	return &PaymentsCmd{flags: flags}
}

// Register adds the payments and vendors commands to the application
func (cmd *PaymentsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		&cli.Command{
			Name:  "payments",
			Usage: "Payments received against pledges",
			Commands: []*cli.Command{
				{
					Name:  "ls",
					Usage: "List payments",
					Flags: append(listFlags(),
						&cli.Int64Flag{Name: "pledge", Usage: "only manual payments of this pledge"},
						&cli.BoolFlag{Name: "mpesa", Usage: "list M-Pesa payments instead of manual ones"},
					),
					Action: cmd.list,
				},
			},
		},
		&cli.Command{
			Name:  "vendors",
			Usage: "Service providers",
			Commands: []*cli.Command{
				{
					Name:   "ls",
					Usage:  "List service providers",
					Flags:  listFlags(),
					Action: cmd.listVendors,
				},
			},
		},
	)
	return app
}

func (cmd *PaymentsCmd) list(ctx context.Context, c *cli.Command) error {
	if c.Bool("mpesa") {
		return cmd.listMpesa(ctx, c)
	}

	var (
		page *budget.Page[budget.ManualPayment]
		err  error
	)
	if pledgeID := c.Int64("pledge"); pledgeID > 0 {
		page, err = cmd.flags.Client.ListPledgePayments(ctx, pledgeID)
	} else {
		page, err = cmd.flags.Client.ListManualPayments(ctx, listOptions(c))
	}
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(page.Results))
	for _, p := range page.Results {
		rows = append(rows, []string{
			formatID(p.ID),
			formatOptionalID(p.Pledge),
			utils.Value(p.Name),
			utils.Value(p.PhoneNumber),
			p.Amount.Display(),
			p.Date,
		})
	}
	if err := renderTable(c.Root().Writer,
		[]string{"ID", "Pledge", "Name", "Phone", "Amount", "Date"}, rows); err != nil {
		return err
	}
	renderPageFooter(c.Root().Writer, page)
	return nil
}

func (cmd *PaymentsCmd) listMpesa(ctx context.Context, c *cli.Command) error {
	page, err := cmd.flags.Client.ListMpesaPayments(ctx, listOptions(c))
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(page.Results))
	for _, p := range page.Results {
		rows = append(rows, []string{
			formatID(p.ID),
			formatID(p.Event),
			formatOptionalID(p.Pledge),
			p.TransactionID,
			p.Amount.Display(),
			p.Timestamp,
		})
	}
	if err := renderTable(c.Root().Writer,
		[]string{"ID", "Event", "Pledge", "Transaction", "Amount", "Time"}, rows); err != nil {
		return err
	}
	renderPageFooter(c.Root().Writer, page)
	return nil
}

func (cmd *PaymentsCmd) listVendors(ctx context.Context, c *cli.Command) error {
	page, err := cmd.flags.Client.ListServiceProviders(ctx, listOptions(c))
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(page.Results))
	for _, v := range page.Results {
		rows = append(rows, []string{
			formatID(v.ID),
			v.Name,
			v.ServiceType,
			v.PhoneNumber,
			v.AmountCharged.Display(),
			v.TotalReceived.Display(),
			v.BalanceDue.Display(),
		})
	}
	if err := renderTable(c.Root().Writer,
		[]string{"ID", "Name", "Service", "Phone", "Charged", "Paid", "Balance Due"}, rows); err != nil {
		return err
	}
	renderPageFooter(c.Root().Writer, page)
	return nil
}
