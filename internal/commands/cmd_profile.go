package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/barber/internal/core/account"
	"github.com/colonyops/barber/internal/core/session"
	"github.com/colonyops/barber/internal/pages"
	"github.com/colonyops/barber/internal/printer"
)

type ProfileCmd struct {
	app  *App
	form account.Profile
}

// NewProfileCmd creates the profile command.
func NewProfileCmd(app *App) *ProfileCmd {
	return &ProfileCmd{app: app}
}

// Register adds the profile command to the application.
func (cmd *ProfileCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "profile",
		Usage:     "Update name, e-mail or password",
		UsageText: "barber profile [--name NAME] [--email EMAIL] [--old-password OLD --password NEW --password-confirmation NEW]",
		Description: `Updates the signed-in account. Name and e-mail default to the current
values. The password only changes when the password flags are given.`,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Usage: "full name", Destination: &cmd.form.Name},
			&cli.StringFlag{Name: "email", Usage: "e-mail address", Destination: &cmd.form.Email},
			&cli.StringFlag{Name: "old-password", Usage: "current password", Destination: &cmd.form.OldPassword},
			&cli.StringFlag{Name: "password", Usage: "new password", Destination: &cmd.form.Password},
			&cli.StringFlag{Name: "password-confirmation", Usage: "new password again", Destination: &cmd.form.PasswordConfirmation},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ProfileCmd) run(ctx context.Context, _ *cli.Command) error {
	sess, err := cmd.app.Sessions.Load(ctx)
	if err != nil && !errors.Is(err, session.ErrNotFound) {
		return fmt.Errorf("load session: %w", err)
	}
	if cmd.form.Name == "" {
		cmd.form.Name = sess.User.Name
	}
	if cmd.form.Email == "" {
		cmd.form.Email = sess.User.Email
	}

	return cmd.app.runPage(ctx, func(ctx context.Context, p *pages.Pages) error {
		return p.Profile(ctx, cmd.form)
	})
}

type AvatarCmd struct {
	app *App
}

// NewAvatarCmd creates the avatar command.
func NewAvatarCmd(app *App) *AvatarCmd {
	return &AvatarCmd{app: app}
}

// Register adds the avatar command to the application.
func (cmd *AvatarCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "avatar",
		Usage:     "Upload a new avatar image",
		UsageText: "barber avatar <image>",
		Action:    cmd.run,
	})

	return app
}

func (cmd *AvatarCmd) run(ctx context.Context, c *cli.Command) error {
	path := c.Args().First()
	return cmd.app.runPage(ctx, func(ctx context.Context, p *pages.Pages) error {
		return p.Avatar(ctx, path)
	})
}

type WhoamiCmd struct {
	app *App
}

// NewWhoamiCmd creates the whoami command.
func NewWhoamiCmd(app *App) *WhoamiCmd {
	return &WhoamiCmd{app: app}
}

// Register adds the whoami command to the application.
func (cmd *WhoamiCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:   "whoami",
		Usage:  "Show the signed-in account",
		Action: cmd.run,
	})

	return app
}

func (cmd *WhoamiCmd) run(ctx context.Context, _ *cli.Command) error {
	p := printer.Ctx(ctx)

	sess, err := cmd.app.Sessions.Load(ctx)
	if errors.Is(err, session.ErrNotFound) {
		p.Infof("Not signed in")
		return cli.Exit("", 1)
	}
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	p.Printf("%s <%s>", sess.User.Name, sess.User.Email)
	if sess.User.AvatarURL != "" {
		p.Printf("avatar: %s", sess.User.AvatarURL)
	}
	return nil
}
