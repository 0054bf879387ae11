// Package toast implements the in-memory registry of transient, user-facing
// notifications. Each notification has its own expiry timer and the full list
// is delivered to every subscriber whenever it changes.
package toast

import (
	"time"
)

// Kind represents the display category of a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindSuccess, KindError, KindInfo:
		return true
	}
	return false
}

// DefaultDuration is how long a notification stays visible when neither the
// policy nor the caller overrides it.
const DefaultDuration = 3 * time.Second

// Notification is a single live toast. ID is assigned by the registry and
// never changes.
type Notification struct {
	ID          string
	Kind        Kind
	Title       string
	Description string
	CreatedAt   time.Time
}

// Input is what callers pass to Add. Callers never choose the ID.
type Input struct {
	Kind        Kind
	Title       string
	Description string

	// Duration overrides the policy lifetime when positive.
	Duration time.Duration
	// Sticky disables auto-expiry for this notification.
	Sticky bool
}

// Success builds a success input.
func Success(title, description string) Input {
	return Input{Kind: KindSuccess, Title: title, Description: description}
}

// Error builds an error input.
func Error(title, description string) Input {
	return Input{Kind: KindError, Title: title, Description: description}
}

// Info builds an info input.
func Info(title, description string) Input {
	return Input{Kind: KindInfo, Title: title, Description: description}
}

// Policy controls notification lifetimes and list size.
type Policy struct {
	// Duration is the default lifetime. Zero or negative disables auto-expiry.
	Duration time.Duration
	// StickyErrors exempts error notifications from auto-expiry.
	StickyErrors bool
	// MaxToasts caps the list; the oldest entries are removed first.
	// Zero means unlimited.
	MaxToasts int
}

// DefaultPolicy returns the policy used when none is configured.
func DefaultPolicy() Policy {
	return Policy{Duration: DefaultDuration}
}

// lifetime returns the expiry duration for in and whether a timer should be
// armed at all.
func (p Policy) lifetime(in Input) (time.Duration, bool) {
	if in.Sticky {
		return 0, false
	}
	if in.Duration > 0 {
		return in.Duration, true
	}
	if in.Kind == KindError && p.StickyErrors {
		return 0, false
	}
	if p.Duration <= 0 {
		return 0, false
	}
	return p.Duration, true
}
