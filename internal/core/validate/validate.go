// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/hay-kot/criterio"
)

// MinPasswordLen is the shortest accepted password.
const MinPasswordLen = 6

// Required validates a value is non-empty after trimming whitespace.
func Required(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("is required")
	}
	return nil
}

// Email validates a required, well-formed bare e-mail address.
func Email(s string) error {
	if err := Required(s); err != nil {
		return err
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return fmt.Errorf("must be a valid e-mail address")
	}
	return nil
}

// Password validates a password has at least MinPasswordLen characters.
func Password(s string) error {
	if utf8.RuneCountInString(s) < MinPasswordLen {
		return fmt.Errorf("must have at least %d characters", MinPasswordLen)
	}
	return nil
}

// Matches returns a validator that accepts only want.
func Matches(want string) func(string) error {
	return func(s string) error {
		if s != want {
			return fmt.Errorf("does not match")
		}
		return nil
	}
}

// EmailField returns a criterio validator for e-mail fields.
func EmailField(field, email string) error {
	return criterio.Run(field, email, Email)
}
