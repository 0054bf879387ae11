// Package printer writes styled status lines for CLI commands and renders
// toast notifications outside the TUI.
package printer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/barber/internal/core/styles"
	"github.com/colonyops/barber/internal/core/toast"
)

type ctxKey struct{}

// Printer writes to an io.Writer. It is safe for concurrent use.
type Printer struct {
	mu   sync.Mutex
	out  io.Writer
	seen map[string]struct{}
}

// New creates a printer writing to out.
func New(out io.Writer) *Printer {
	return &Printer{out: out, seen: make(map[string]struct{})}
}

// NewContext stores p in ctx.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or a stdout printer.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

func (p *Printer) line(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintln(p.out, s)
}

func (p *Printer) Printf(format string, args ...any) {
	p.line(fmt.Sprintf(format, args...))
}

func (p *Printer) Section(title string) {
	p.line(styles.HeaderStyle.Render(title))
}

// Success prints a title and an optional muted detail line.
func (p *Printer) Success(title, detail string) {
	p.line(styles.ToastSuccessStyle.UnsetBackground().Render(styles.IconSuccess) + " " + title)
	if detail != "" {
		p.line("  " + styles.MutedStyle.Render(detail))
	}
}

func (p *Printer) Successf(format string, args ...any) {
	p.Success(fmt.Sprintf(format, args...), "")
}

func (p *Printer) Infof(format string, args ...any) {
	p.line(styles.ToastInfoStyle.UnsetBackground().Render(styles.IconInfo) + " " + fmt.Sprintf(format, args...))
}

func (p *Printer) Warnf(format string, args ...any) {
	p.line(styles.HeaderStyle.Render("!") + " " + fmt.Sprintf(format, args...))
}

func (p *Printer) Errorf(format string, args ...any) {
	p.line(styles.ToastErrorStyle.UnsetBackground().Render(styles.IconError) + " " + fmt.Sprintf(format, args...))
}

// FieldErrors prints each field error of err on its own line. It reports
// false when err carries no field errors.
func (p *Printer) FieldErrors(err error) bool {
	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return false
	}
	for _, fe := range fieldErrs {
		p.Errorf("%s %s", fe.Field, fe.Err)
	}
	return true
}

// Toasts is a toast.Subscriber. Each notification is printed once, when it
// first appears in the list.
func (p *Printer) Toasts(list []toast.Notification) {
	p.mu.Lock()
	defer p.mu.Unlock()

	live := make(map[string]struct{}, len(list))
	for _, n := range list {
		live[n.ID] = struct{}{}
		if _, ok := p.seen[n.ID]; ok {
			continue
		}
		_, _ = fmt.Fprintln(p.out, RenderToast(n))
	}
	p.seen = live
}

// RenderToast renders n as a single CLI line plus an optional description.
func RenderToast(n toast.Notification) string {
	icon, style := styles.ToastKind(string(n.Kind))
	out := style.UnsetBackground().Render(icon) + " " + n.Title
	if n.Description != "" {
		out += "\n  " + styles.MutedStyle.Render(n.Description)
	}
	return out
}
