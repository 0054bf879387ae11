package toast

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRegistry is returned when a notifier or subscription is requested
	// while no registry is open.
	ErrNoRegistry = errors.New("no active toast registry")
	// ErrNoNotifier is returned when a context carries no notifier.
	ErrNoNotifier = errors.New("no notifier in context")
)

// UsageError reports a wiring bug: the caller asked for the notification
// engine outside the lifetime of a registry.
type UsageError struct {
	Op  string
	Err error
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("toast: %s: %v", e.Op, e.Err)
}

func (e *UsageError) Unwrap() error { return e.Err }

// IsUsageError reports whether err is or wraps a *UsageError.
func IsUsageError(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}
