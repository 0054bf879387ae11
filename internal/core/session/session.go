// Package session defines the signed-in session types and storage interface.
package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Store.Load when no one is signed in.
var ErrNotFound = errors.New("session: not signed in")

// User is the signed-in account.
type User struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Email     string `yaml:"email"`
	AvatarURL string `yaml:"avatar_url,omitempty"`
}

// Session is the signed-in user and the API token that authenticates them.
type Session struct {
	User      User      `yaml:"user"`
	Token     string    `yaml:"token"`
	CreatedAt time.Time `yaml:"created_at"`
}

// Valid reports whether s carries a token.
func (s Session) Valid() bool {
	return s.Token != ""
}

// Store persists the current session.
type Store interface {
	Load(ctx context.Context) (Session, error)
	Save(ctx context.Context, s Session) error
	Clear(ctx context.Context) error
}
