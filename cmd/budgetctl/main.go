package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jrsteele09/go-budget-client/internal/commands"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	if err := commands.SetupLogger("info", os.Stderr); err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := commands.NewApp(&commands.Flags{}, build())

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		commands.RenderError(os.Stderr, err)
		exitCode = 1
	}
	stop()
	os.Exit(exitCode)
}
