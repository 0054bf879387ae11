package pages

import (
	"context"
	"os"
	"path/filepath"

	"github.com/colonyops/barber/internal/api"
	"github.com/colonyops/barber/internal/core/account"
	"github.com/colonyops/barber/internal/core/session"
	"github.com/colonyops/barber/internal/core/toast"
)

// Profile saves name and e-mail, and the password when the form changes it.
func (p *Pages) Profile(ctx context.Context, form account.Profile) error {
	ctx, n, log, err := enter(ctx, "profile")
	if err != nil {
		return err
	}
	if err := form.Validate(); err != nil {
		return err
	}

	const title = "Update failed"
	sess, err := p.sessions.Load(ctx)
	if err != nil {
		return fail(n, title, "Sign in to update your profile.", err)
	}

	req := api.UpdateProfileRequest{Name: form.Name, Email: form.Email}
	if form.ChangesPassword() {
		req.OldPassword = form.OldPassword
		req.Password = form.Password
		req.PasswordConfirmation = form.PasswordConfirmation
	}

	user, err := p.api.UpdateProfile(ctx, sess.Token, req)
	if err != nil {
		log.Warn().Err(err).Msg("profile update failed")
		return fail(n, title, "Could not update your profile, try again.", err)
	}

	if err := p.saveUser(ctx, sess, user); err != nil {
		log.Warn().Err(err).Msg("store updated profile")
	}

	p.nav.Push(PathDashboard)
	n.Add(toast.Success("Profile updated", "Your profile changes were saved."))
	return nil
}

// Avatar uploads the image at path as the signed-in user's avatar.
func (p *Pages) Avatar(ctx context.Context, path string) error {
	ctx, n, log, err := enter(ctx, "profile")
	if err != nil {
		return err
	}

	const title = "Avatar update failed"
	if path == "" {
		return fail(n, title, "Select an image to upload.", errMissingFile)
	}

	sess, err := p.sessions.Load(ctx)
	if err != nil {
		return fail(n, title, "Sign in to update your avatar.", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fail(n, title, "Could not read the selected image.", err)
	}
	defer func() { _ = f.Close() }()

	user, err := p.api.UpdateAvatar(ctx, sess.Token, filepath.Base(path), f)
	if err != nil {
		log.Warn().Err(err).Msg("avatar update failed")
		return fail(n, title, "Could not upload your avatar, try again.", err)
	}

	if err := p.saveUser(ctx, sess, user); err != nil {
		log.Warn().Err(err).Msg("store updated avatar")
	}

	n.Add(toast.Success("Avatar updated", ""))
	return nil
}

func (p *Pages) saveUser(ctx context.Context, sess session.Session, user api.User) error {
	sess.User = toSessionUser(user)
	return p.sessions.Save(ctx, sess)
}
