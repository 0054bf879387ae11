// Package logging provides component loggers and context-scoped log fields.
package logging

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a new logger with a component identifier.
// Uses the "cmp" key for consistency with zerolog conventions.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}

// Scoped returns a component logger whose events carry the request and page
// fields stored in ctx.
func Scoped(ctx context.Context, name string) zerolog.Logger {
	l := Component(name).Hook(ContextHook{})
	return l.With().Ctx(ctx).Logger()
}
