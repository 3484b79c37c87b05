package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jrsteele09/go-budget-client/internal/utils"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

// NewApp builds the budgetctl command tree. build is shown by --version and
// the version command.
func NewApp(flags *Flags, build string) *cli.Command {
	app := &cli.Command{
		Name:      "budgetctl",
		Usage:     "Manage event budgets, pledges and payments",
		UsageText: "budgetctl [global options] command [command options]",
		Description: `budgetctl talks to the event budget API on your behalf.

Run 'budgetctl login' first. The session is kept between runs and renewed
automatically; when it can no longer be renewed you are asked to log in again.`,
		Version: build,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("BUDGET_LOG_LEVEL"),
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("BUDGET_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "api-url",
				Usage:       "budget API root, e.g. http://localhost/api",
				Sources:     cli.EnvVars("BUDGET_API_URL"),
				Destination: &flags.APIURL,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := flags.Init(c.Root().ErrWriter); err != nil {
				return ctx, err
			}
			level := utils.FirstNonEmpty(flags.LogLevel, flags.Config.GetLogLevel())
			return ctx, SetupLogger(level, c.Root().ErrWriter)
		},
	}

	app = NewAccountCmd(flags).Register(app)
	app = NewEventsCmd(flags).Register(app)
	app = NewBudgetCmd(flags).Register(app)
	app = NewPledgesCmd(flags).Register(app)
	app = NewPaymentsCmd(flags).Register(app)
	app = NewDashboardCmd(flags).Register(app)
	app = NewVersionCmd(flags, build).Register(app)
	return app
}

// SetupLogger points the global zerolog logger at a console writer on out.
func SetupLogger(level string, out io.Writer) error {
	parsedLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	if out == nil {
		out = os.Stderr
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: out}).Level(parsedLevel)
	return nil
}
