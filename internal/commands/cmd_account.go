package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/barber/internal/core/account"
	"github.com/colonyops/barber/internal/pages"
	"github.com/colonyops/barber/internal/printer"
)

type SignUpCmd struct {
	app  *App
	form account.SignUp
}

// NewSignUpCmd creates the signup command.
func NewSignUpCmd(app *App) *SignUpCmd {
	return &SignUpCmd{app: app}
}

// Register adds the signup command to the application.
func (cmd *SignUpCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "signup",
		Usage:     "Create an account",
		UsageText: "barber signup [--name NAME] [--email EMAIL] [--password PASSWORD]",
		Description: `Registers a new account with the API. Missing values are prompted for
when running in a terminal.`,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Usage: "full name", Destination: &cmd.form.Name},
			&cli.StringFlag{Name: "email", Usage: "e-mail address", Destination: &cmd.form.Email},
			&cli.StringFlag{Name: "password", Usage: "password", Sources: cli.EnvVars("BARBER_PASSWORD"), Destination: &cmd.form.Password},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *SignUpCmd) run(ctx context.Context, _ *cli.Command) error {
	err := prompt(
		promptField{title: "Name", value: &cmd.form.Name},
		promptField{title: "E-mail", value: &cmd.form.Email},
		promptField{title: "Password", value: &cmd.form.Password, secret: true},
	)
	if err != nil {
		if aborted(err) {
			return nil
		}
		return fmt.Errorf("form: %w", err)
	}

	return cmd.app.runPage(ctx, func(ctx context.Context, p *pages.Pages) error {
		return p.SignUp(ctx, cmd.form)
	})
}

type LoginCmd struct {
	app  *App
	form account.SignIn
}

// NewLoginCmd creates the login command.
func NewLoginCmd(app *App) *LoginCmd {
	return &LoginCmd{app: app}
}

// Register adds the login command to the application.
func (cmd *LoginCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "login",
		Usage:     "Sign in and store the session",
		UsageText: "barber login [--email EMAIL] [--password PASSWORD]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Usage: "e-mail address", Destination: &cmd.form.Email},
			&cli.StringFlag{Name: "password", Usage: "password", Sources: cli.EnvVars("BARBER_PASSWORD"), Destination: &cmd.form.Password},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LoginCmd) run(ctx context.Context, _ *cli.Command) error {
	err := prompt(
		promptField{title: "E-mail", value: &cmd.form.Email},
		promptField{title: "Password", value: &cmd.form.Password, secret: true},
	)
	if err != nil {
		if aborted(err) {
			return nil
		}
		return fmt.Errorf("form: %w", err)
	}

	err = cmd.app.runPage(ctx, func(ctx context.Context, p *pages.Pages) error {
		return p.SignIn(ctx, cmd.form)
	})
	if err != nil {
		return err
	}

	sess, err := cmd.app.Sessions.Load(ctx)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	printer.Ctx(ctx).Success("Signed in as "+sess.User.Name, sess.User.Email)
	return nil
}

type LogoutCmd struct {
	app *App
}

// NewLogoutCmd creates the logout command.
func NewLogoutCmd(app *App) *LogoutCmd {
	return &LogoutCmd{app: app}
}

// Register adds the logout command to the application.
func (cmd *LogoutCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:   "logout",
		Usage:  "Forget the stored session",
		Action: cmd.run,
	})

	return app
}

func (cmd *LogoutCmd) run(ctx context.Context, _ *cli.Command) error {
	return cmd.app.runPage(ctx, func(ctx context.Context, p *pages.Pages) error {
		return p.SignOut(ctx)
	})
}

type ForgotPasswordCmd struct {
	app  *App
	form account.ForgotPassword
}

// NewForgotPasswordCmd creates the forgot-password command.
func NewForgotPasswordCmd(app *App) *ForgotPasswordCmd {
	return &ForgotPasswordCmd{app: app}
}

// Register adds the forgot-password command to the application.
func (cmd *ForgotPasswordCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "forgot-password",
		Usage:     "Request a password recovery e-mail",
		UsageText: "barber forgot-password [--email EMAIL]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Usage: "e-mail address", Destination: &cmd.form.Email},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ForgotPasswordCmd) run(ctx context.Context, _ *cli.Command) error {
	if err := prompt(promptField{title: "E-mail", value: &cmd.form.Email}); err != nil {
		if aborted(err) {
			return nil
		}
		return fmt.Errorf("form: %w", err)
	}

	return cmd.app.runPage(ctx, func(ctx context.Context, p *pages.Pages) error {
		return p.ForgotPassword(ctx, cmd.form)
	})
}

type ResetPasswordCmd struct {
	app  *App
	form account.ResetPassword
}

// NewResetPasswordCmd creates the reset-password command.
func NewResetPasswordCmd(app *App) *ResetPasswordCmd {
	return &ResetPasswordCmd{app: app}
}

// Register adds the reset-password command to the application.
func (cmd *ResetPasswordCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "reset-password",
		Usage:     "Choose a new password using a recovery token",
		UsageText: "barber reset-password --token TOKEN [--password PASSWORD] [--password-confirmation PASSWORD]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "token", Usage: "token from the recovery e-mail", Destination: &cmd.form.Token},
			&cli.StringFlag{Name: "password", Usage: "new password", Destination: &cmd.form.Password},
			&cli.StringFlag{Name: "password-confirmation", Usage: "new password again", Destination: &cmd.form.PasswordConfirmation},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ResetPasswordCmd) run(ctx context.Context, _ *cli.Command) error {
	err := prompt(
		promptField{title: "New password", value: &cmd.form.Password, secret: true},
		promptField{title: "Confirm password", value: &cmd.form.PasswordConfirmation, secret: true},
	)
	if err != nil {
		if aborted(err) {
			return nil
		}
		return fmt.Errorf("form: %w", err)
	}

	return cmd.app.runPage(ctx, func(ctx context.Context, p *pages.Pages) error {
		return p.ResetPassword(ctx, cmd.form)
	})
}
