// Package account defines the account forms and their validation rules.
package account

import (
	"errors"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/barber/internal/core/validate"
)

// SignUp is the sign-up form.
type SignUp struct {
	Name     string
	Email    string
	Password string
}

func (f SignUp) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("name", f.Name, validate.Required),
		validate.EmailField("email", f.Email),
		criterio.Run("password", f.Password, validate.Password),
	)
}

// SignIn is the sign-in form.
type SignIn struct {
	Email    string
	Password string
}

func (f SignIn) Validate() error {
	return criterio.ValidateStruct(
		validate.EmailField("email", f.Email),
		criterio.Run("password", f.Password, validate.Required),
	)
}

// ForgotPassword is the password recovery request form.
type ForgotPassword struct {
	Email string
}

func (f ForgotPassword) Validate() error {
	return validate.EmailField("email", f.Email)
}

// ResetPassword completes a recovery. Token is not a form field; a missing
// token is reported separately by the caller.
type ResetPassword struct {
	Password             string
	PasswordConfirmation string
	Token                string
}

func (f ResetPassword) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("password", f.Password, validate.Password),
		criterio.Run("password_confirmation", f.PasswordConfirmation, validate.Matches(f.Password)),
	)
}

// Profile updates name and e-mail and optionally changes the password.
type Profile struct {
	Name                 string
	Email                string
	OldPassword          string
	Password             string
	PasswordConfirmation string
}

// ChangesPassword reports whether the form asks for a new password.
func (f Profile) ChangesPassword() bool {
	return f.OldPassword != "" || f.Password != "" || f.PasswordConfirmation != ""
}

func (f Profile) Validate() error {
	errs := []error{
		criterio.Run("name", f.Name, validate.Required),
		validate.EmailField("email", f.Email),
	}

	if f.ChangesPassword() {
		errs = append(errs,
			criterio.Run("old_password", f.OldPassword, validate.Required),
			criterio.Run("password", f.Password, validate.Password),
			criterio.Run("password_confirmation", f.PasswordConfirmation, validate.Matches(f.Password)),
		)
	}

	return criterio.ValidateStruct(errs...)
}

// FieldMessages flattens validation errors into field -> message pairs.
// Errors that are not field errors are returned under the empty key.
func FieldMessages(err error) map[string]string {
	if err == nil {
		return nil
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return map[string]string{"": err.Error()}
	}

	out := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		if _, ok := out[fe.Field]; ok {
			continue
		}
		out[fe.Field] = fe.Err.Error()
	}
	return out
}
