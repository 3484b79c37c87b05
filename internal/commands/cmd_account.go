package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
)

type AccountCmd struct {
	flags *Flags

	username    string
	email       string
	password    string
	oldPassword string
	newPassword string
}

// NewAccountCmd creates the login, register, logout, whoami and
// change-password commands
func NewAccountCmd(flags *Flags) *AccountCmd {
	return &AccountCmd{flags: flags}
}

// Register adds the account commands to the application
func (cmd *AccountCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		&cli.Command{
			Name:      "login",
			Usage:     "Sign in and store the session tokens",
			UsageText: "budgetctl login --username <name> [--password <password>]",
			Flags:     []cli.Flag{cmd.usernameFlag(), cmd.passwordFlag()},
			Action:    cmd.login,
		},
		&cli.Command{
			Name:      "register",
			Usage:     "Create an account and sign in",
			UsageText: "budgetctl register --username <name> --email <email> [--password <password>]",
			Flags: []cli.Flag{
				cmd.usernameFlag(),
				&cli.StringFlag{Name: "email", Usage: "account email", Destination: &cmd.email},
				cmd.passwordFlag(),
			},
			Action: cmd.register,
		},
		&cli.Command{
			Name:   "logout",
			Usage:  "Sign out and forget the session tokens",
			Action: cmd.logout,
		},
		&cli.Command{
			Name:   "whoami",
			Usage:  "Show the signed-in user",
			Action: cmd.whoami,
		},
		&cli.Command{
			Name:      "change-password",
			Usage:     "Change the account password",
			UsageText: "budgetctl change-password --old <password> --new <password>",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "old", Usage: "current password", Required: true, Destination: &cmd.oldPassword},
				&cli.StringFlag{Name: "new", Usage: "new password", Required: true, Destination: &cmd.newPassword},
			},
			Action: cmd.changePassword,
		},
	)
	return app
}

func (cmd *AccountCmd) usernameFlag() cli.Flag {
	return &cli.StringFlag{
		Name:        "username",
		Aliases:     []string{"u"},
		Usage:       "account username",
		Required:    true,
		Destination: &cmd.username,
	}
}

func (cmd *AccountCmd) passwordFlag() cli.Flag {
	return &cli.StringFlag{
		Name:        "password",
		Aliases:     []string{"p"},
		Usage:       "account password (prompted when omitted)",
		Sources:     cli.EnvVars("BUDGET_PASSWORD"),
		Destination: &cmd.password,
	}
}

func (cmd *AccountCmd) login(ctx context.Context, c *cli.Command) error {
	password, err := cmd.passwordOrPrompt(c)
	if err != nil {
		return err
	}
	user, err := cmd.flags.Auth.Login(ctx, cmd.username, password)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(c.Root().Writer, "Welcome back, %s!\n", user.Username)
	return nil
}

func (cmd *AccountCmd) register(ctx context.Context, c *cli.Command) error {
	password, err := cmd.passwordOrPrompt(c)
	if err != nil {
		return err
	}
	user, err := cmd.flags.Auth.Register(ctx, cmd.username, cmd.email, password)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(c.Root().Writer, "Account created, signed in as %s.\n", user.Username)
	return nil
}

func (cmd *AccountCmd) logout(ctx context.Context, c *cli.Command) error {
	if err := cmd.flags.Auth.Logout(ctx); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(c.Root().Writer, "Signed out.")
	return nil
}

func (cmd *AccountCmd) whoami(ctx context.Context, c *cli.Command) error {
	user, err := cmd.flags.Auth.CurrentUser()
	if err != nil {
		return err
	}
	expires := "unknown"
	if !user.ExpiresAt.IsZero() {
		expires = humanize.Time(user.ExpiresAt)
	}
	return renderTable(c.Root().Writer,
		[]string{"User ID", "Username", "Access Token Expires"},
		[][]string{{user.ID, user.Username, expires}},
	)
}

func (cmd *AccountCmd) changePassword(ctx context.Context, c *cli.Command) error {
	if err := cmd.flags.Auth.ChangePassword(ctx, cmd.oldPassword, cmd.newPassword); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(c.Root().Writer, "Password updated.")
	return nil
}

func (cmd *AccountCmd) passwordOrPrompt(c *cli.Command) (string, error) {
	if cmd.password != "" {
		return cmd.password, nil
	}
	_, _ = fmt.Fprint(c.Root().ErrWriter, "Password: ")
	return readLine(c.Root().Reader)
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
