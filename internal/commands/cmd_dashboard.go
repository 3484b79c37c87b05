package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jrsteele09/go-budget-client/budget"
	apperrors "github.com/jrsteele09/go-budget-client/internal/errors"
	"github.com/jrsteele09/go-budget-client/internal/utils"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

type DashboardCmd struct {
	flags *Flags
}

// NewDashboardCmd creates the dashboard and activity commands
func NewDashboardCmd(flags *Flags) *DashboardCmd {
	return &DashboardCmd{flags: flags}
}

// Register adds the dashboard and activity commands to the application
func (cmd *DashboardCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		&cli.Command{
			Name:      "dashboard",
			Usage:     "Show the budget overview",
			UsageText: "budgetctl dashboard [--event <id>]",
			Flags: []cli.Flag{
				&cli.Int64Flag{Name: "event", Usage: "show the dashboard of a single event"},
			},
			Action: cmd.dashboard,
		},
		&cli.Command{
			Name:   "activity",
			Usage:  "Show recent activity",
			Action: cmd.activity,
		},
	)
	return app
}

func (cmd *DashboardCmd) dashboard(ctx context.Context, c *cli.Command) error {
	if eventID := c.Int64("event"); eventID > 0 {
		return cmd.eventDashboard(ctx, c, eventID)
	}

	d, err := cmd.flags.Client.GeneralDashboard(ctx)
	if err != nil {
		return err
	}
	out := c.Root().Writer
	if err := renderTable(out, []string{"Events", "Active", "Funded", "Total Budget"}, [][]string{{
		strconv.Itoa(d.Summary.TotalEvents),
		strconv.Itoa(d.Summary.ActiveEvents),
		strconv.Itoa(d.Summary.FundedEvents),
		d.Summary.TotalBudget.Display(),
	}}); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out, "Upcoming events")
	rows := make([][]string, 0, len(d.UpcomingEvents))
	for _, e := range d.UpcomingEvents {
		rows = append(rows, []string{formatID(e.ID), e.Name, e.EventDate, e.TotalBudget.Display(), e.PercentageCovered.String() + "%"})
	}
	return renderTable(out, []string{"ID", "Name", "Date", "Budget", "Covered"}, rows)
}

func (cmd *DashboardCmd) eventDashboard(ctx context.Context, c *cli.Command, eventID int64) error {
	d, err := cmd.flags.Client.EventDashboard(ctx, eventID)
	if err != nil {
		return err
	}
	out := c.Root().Writer
	_, _ = fmt.Fprintf(out, "%s (%s)\n", d.Event.Name, d.Event.EventDate)
	if err := renderTable(out, []string{"Pledged", "Received", "Covered", "Outstanding", "Budgeted", "Spent"}, [][]string{{
		d.Metrics.TotalPledged.Display(),
		d.Metrics.TotalReceived.Display(),
		d.Metrics.PercentageCovered.String() + "%",
		d.Metrics.OutstandingBalance.Display(),
		d.BudgetSummary.TotalBudget.Display(),
		d.BudgetSummary.TotalSpent.Display(),
	}}); err != nil {
		return err
	}

	rows := make([][]string, 0, len(d.BudgetItems))
	for _, item := range d.BudgetItems {
		rows = append(rows, []string{item.Category, item.EstimatedBudget.Display(), item.RemainingBudget.Display(), yesNo(item.IsFullyPaid)})
	}
	return renderTable(out, []string{"Category", "Estimated", "Remaining", "Fully Paid"}, rows)
}

// activity falls back to a feed built from pledges and events when the
// server has no recent-activity endpoint.
func (cmd *DashboardCmd) activity(ctx context.Context, c *cli.Command) error {
	activities, err := cmd.flags.Client.RecentActivities(ctx)
	if err == nil {
		return renderActivities(c, activities)
	}
	if !apperrors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	log.Debug().Err(err).Msg("Recent activity unavailable, deriving it from pledges and events")
	pledges, err := cmd.flags.Client.ListPledges(ctx, 0, budget.ListOptions{})
	if err != nil {
		return err
	}
	events, err := cmd.flags.Client.ListEvents(ctx, budget.ListOptions{})
	if err != nil {
		return err
	}

	mock := budget.MockActivities(pledges.Results, events.Results)
	rows := make([][]string, 0, len(mock))
	for _, a := range mock {
		rows = append(rows, []string{a.Title, a.Description, a.Amount, a.Time})
	}
	return renderTable(c.Root().Writer, []string{"Activity", "Details", "Amount", "When"}, rows)
}

func renderActivities(c *cli.Command, activities []budget.Activity) error {
	rows := make([][]string, 0, len(activities))
	for _, a := range activities {
		detail := utils.Value(a.Name)
		switch {
		case a.AmountPledged != nil:
			detail = "KSh " + a.AmountPledged.Display()
		case a.Amount != nil:
			detail = "KSh " + a.Amount.Display()
		}
		rows = append(rows, []string{string(a.Type), formatID(a.ID), detail, a.Created})
	}
	return renderTable(c.Root().Writer, []string{"Type", "ID", "Details", "Created"}, rows)
}
