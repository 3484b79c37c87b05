package commands

import (
	"context"
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/urfave/cli/v3"
)

type VersionCmd struct {
	flags *Flags
	build string
}

// NewVersionCmd creates the version command
func NewVersionCmd(flags *Flags, build string) *VersionCmd {
	return &VersionCmd{flags: flags, build: build}
}

// Register adds the version command to the application
func (cmd *VersionCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:   "version",
		Usage:  "Show the banner and build information",
		Action: cmd.run,
	})
	return app
}

func (cmd *VersionCmd) run(ctx context.Context, c *cli.Command) error {
	out := c.Root().Writer
	banner := figure.NewFigure(cmd.flags.Config.GetAppName(), "cybermedium", true)
	_, _ = fmt.Fprintln(out, banner.String())
	_, _ = fmt.Fprintf(out, "%s\nenvironment: %s\napi: %s\n", cmd.build, cmd.flags.Config.GetEnv(), cmd.flags.Config.GetAPIBaseURL())
	return nil
}
