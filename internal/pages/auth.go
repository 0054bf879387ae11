package pages

import (
	"context"
	"time"

	"github.com/colonyops/barber/internal/api"
	"github.com/colonyops/barber/internal/core/account"
	"github.com/colonyops/barber/internal/core/session"
	"github.com/colonyops/barber/internal/core/toast"
)

// SignUp registers a new account. Invalid forms return their field errors
// without a toast or navigation.
func (p *Pages) SignUp(ctx context.Context, form account.SignUp) error {
	ctx, n, log, err := enter(ctx, "signup")
	if err != nil {
		return err
	}
	if err := form.Validate(); err != nil {
		return err
	}

	_, err = p.api.CreateUser(ctx, api.CreateUserRequest{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		log.Warn().Err(err).Msg("sign up failed")
		return fail(n, "Registration failed", "Could not create your account, try again.", err)
	}

	n.Add(toast.Success("Registration complete", "You can now sign in to barber."))
	p.nav.Push(PathSignIn)
	return nil
}

// SignIn authenticates and stores the session.
func (p *Pages) SignIn(ctx context.Context, form account.SignIn) error {
	ctx, n, log, err := enter(ctx, "signin")
	if err != nil {
		return err
	}
	if err := form.Validate(); err != nil {
		return err
	}

	s, err := p.api.CreateSession(ctx, form.Email, form.Password)
	if err != nil {
		log.Warn().Err(err).Msg("sign in failed")
		return fail(n, "Authentication failed", "Could not sign in, check your credentials.", err)
	}

	err = p.sessions.Save(ctx, session.Session{
		User:      toSessionUser(s.User),
		Token:     s.Token,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return fail(n, "Authentication failed", "Could not store your session.", err)
	}

	p.nav.Push(PathDashboard)
	return nil
}

// SignOut forgets the stored session.
func (p *Pages) SignOut(ctx context.Context) error {
	ctx, n, _, err := enter(ctx, "signout")
	if err != nil {
		return err
	}

	if err := p.sessions.Clear(ctx); err != nil {
		return fail(n, "Sign out failed", "Could not remove your session.", err)
	}

	n.Add(toast.Info("Signed out", ""))
	p.nav.Push(PathSignIn)
	return nil
}

// ForgotPassword requests a recovery e-mail. It does not navigate.
func (p *Pages) ForgotPassword(ctx context.Context, form account.ForgotPassword) error {
	ctx, n, log, err := enter(ctx, "forgot-password")
	if err != nil {
		return err
	}
	if err := form.Validate(); err != nil {
		return err
	}

	if err := p.api.ForgotPassword(ctx, form.Email); err != nil {
		log.Warn().Err(err).Msg("password recovery failed")
		return fail(n, "Password recovery failed", "Could not send the recovery e-mail, try again.", err)
	}

	n.Add(toast.Success("Recovery e-mail sent", "Check your inbox for the link to reset your password."))
	return nil
}

// ResetPassword completes a recovery with the token from the e-mail link.
func (p *Pages) ResetPassword(ctx context.Context, form account.ResetPassword) error {
	ctx, n, log, err := enter(ctx, "reset-password")
	if err != nil {
		return err
	}
	if err := form.Validate(); err != nil {
		return err
	}

	const title = "Password reset failed"
	if form.Token == "" {
		return fail(n, title, "The recovery link is missing its token.", errMissingToken)
	}

	err = p.api.ResetPassword(ctx, api.ResetPasswordRequest{
		Password:             form.Password,
		PasswordConfirmation: form.PasswordConfirmation,
		Token:                form.Token,
	})
	if err != nil {
		log.Warn().Err(err).Msg("password reset failed")
		return fail(n, title, "Could not reset your password, try again.", err)
	}

	p.nav.Push(PathSignIn)
	return nil
}
