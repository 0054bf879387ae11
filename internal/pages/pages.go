// Package pages implements the account screens: each one validates its form,
// calls the API, reports the outcome as a toast and navigates on success.
// Pages get their notifier from the context (toast.FromContext) so the same
// code runs under the CLI and the TUI.
package pages

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"

	"github.com/colonyops/barber/internal/api"
	"github.com/colonyops/barber/internal/core/logging"
	"github.com/colonyops/barber/internal/core/session"
	"github.com/colonyops/barber/internal/core/toast"
)

// Routes.
const (
	PathSignIn         = "/"
	PathSignUp         = "/signup"
	PathForgotPassword = "/forgot-password"
	PathResetPassword  = "/reset-password"
	PathDashboard      = "/dashboard"
	PathProfile        = "/profile"
)

// ErrReported marks a failure that has already been shown to the user as an
// error toast.
var ErrReported = errors.New("reported to user")

var (
	errMissingToken = errors.New("missing reset token")
	errMissingFile  = errors.New("missing avatar file")
)

// Navigator moves the user to another route.
type Navigator interface {
	Push(path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Push(path string) { f(path) }

// AccountAPI is the subset of the API client the pages call.
type AccountAPI interface {
	CreateUser(ctx context.Context, req api.CreateUserRequest) (api.User, error)
	CreateSession(ctx context.Context, email, password string) (api.Session, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req api.ResetPasswordRequest) error
	UpdateProfile(ctx context.Context, token string, req api.UpdateProfileRequest) (api.User, error)
	UpdateAvatar(ctx context.Context, token, filename string, r io.Reader) (api.User, error)
}

// Pages holds the collaborators shared by every page.
type Pages struct {
	api      AccountAPI
	sessions session.Store
	nav      Navigator
}

// New creates the page set.
func New(client AccountAPI, sessions session.Store, nav Navigator) *Pages {
	return &Pages{api: client, sessions: sessions, nav: nav}
}

// enter resolves the notifier and a page-scoped logger.
func enter(ctx context.Context, page string) (context.Context, toast.Notifier, zerolog.Logger, error) {
	n, err := toast.FromContext(ctx)
	if err != nil {
		return ctx, nil, zerolog.Nop(), err
	}
	ctx = logging.WithPage(ctx, page)
	return ctx, n, logging.Scoped(ctx, "pages"), nil
}

// fail shows an error toast and returns err marked as reported.
func fail(n toast.Notifier, title, fallback string, err error) error {
	n.Add(toast.Error(title, describe(err, fallback)))
	return errors.Join(ErrReported, err)
}

// describe prefers the API's own message when there is one.
func describe(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func toSessionUser(u api.User) session.User {
	return session.User{ID: u.ID, Name: u.Name, Email: u.Email, AvatarURL: u.AvatarURL}
}
