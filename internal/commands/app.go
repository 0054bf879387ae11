package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/barber/internal/api"
	"github.com/colonyops/barber/internal/core/config"
	"github.com/colonyops/barber/internal/core/logging"
	"github.com/colonyops/barber/internal/core/styles"
	"github.com/colonyops/barber/internal/core/toast"
	"github.com/colonyops/barber/internal/pages"
	"github.com/colonyops/barber/internal/printer"
	"github.com/colonyops/barber/internal/store/yamlfile"
)

// App holds the dependencies shared by every command. main populates it in
// the Before hook; commands keep a pointer to it.
type App struct {
	Config   *config.Config
	API      pages.AccountAPI
	Sessions *yamlfile.SessionStore
	Toasts   *toast.Provider
	Metrics  *prometheus.Registry
}

// NewApp wires the API client, session store and toast provider from cfg.
func NewApp(cfg *config.Config) *App {
	metrics := prometheus.NewRegistry()

	return &App{
		Config:   cfg,
		API:      api.New(cfg.API.BaseURL, cfg.API.Timeout, nil),
		Sessions: yamlfile.NewSessionStore(filepath.Join(cfg.DataDir, yamlfile.SessionFile)),
		Toasts: toast.NewProvider(
			toast.WithPolicy(cfg.Toast.Policy()),
			toast.WithMetrics(toast.NewMetrics(metrics)),
			toast.WithLogger(logging.Component("toast")),
		),
		Metrics: metrics,
	}
}

// openToasts starts a toast session for one command run. Every toast is
// printed as it appears. The returned context carries the notifier; call the
// returned func when the command is done.
func (a *App) openToasts(ctx context.Context) (context.Context, func(), error) {
	a.Toasts.Open()

	unsubscribe, err := a.Toasts.Subscribe(printer.Ctx(ctx).Toasts)
	if err != nil {
		a.Toasts.Close()
		return ctx, nil, err
	}

	n, err := a.Toasts.Notifier()
	if err != nil {
		unsubscribe()
		a.Toasts.Close()
		return ctx, nil, err
	}

	closer := func() {
		unsubscribe()
		a.Toasts.Close()
	}
	return toast.WithNotifier(ctx, n), closer, nil
}

// pages returns the page set with navigation logged at debug level.
func (a *App) pages() *pages.Pages {
	nav := pages.NavigatorFunc(func(path string) {
		log.Debug().Str("path", path).Msg("navigate")
	})
	return pages.New(a.API, a.Sessions, nav)
}

// runPage runs fn inside a toast session and maps its error to an exit
// status. Failures already shown to the user exit 1 without a message.
func (a *App) runPage(ctx context.Context, fn func(ctx context.Context, p *pages.Pages) error) error {
	ctx, closeToasts, err := a.openToasts(ctx)
	if err != nil {
		return fmt.Errorf("open toasts: %w", err)
	}
	defer closeToasts()

	return exitStatus(printer.Ctx(ctx), fn(ctx, a.pages()))
}

func exitStatus(p *printer.Printer, err error) error {
	switch {
	case err == nil:
		return nil
	case p.FieldErrors(err):
		return cli.Exit("", 1)
	case errors.Is(err, pages.ErrReported):
		return cli.Exit("", 1)
	}
	return err
}

// promptField is a value to ask for when it was not given as a flag.
type promptField struct {
	title  string
	value  *string
	secret bool
}

// prompt asks for every empty field when stdin is a terminal. Without a
// terminal the fields stay empty and form validation reports them.
func prompt(fields ...promptField) error {
	var inputs []huh.Field
	for _, f := range fields {
		if *f.value != "" {
			continue
		}
		input := huh.NewInput().Title(f.title).Value(f.value)
		if f.secret {
			input = input.EchoMode(huh.EchoModePassword)
		}
		inputs = append(inputs, input)
	}

	if len(inputs) == 0 || !interactive() {
		return nil
	}

	return huh.NewForm(huh.NewGroup(inputs...)).WithTheme(styles.FormTheme()).Run()
}

func interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// aborted reports whether err is the user cancelling a prompt.
func aborted(err error) bool {
	return errors.Is(err, huh.ErrUserAborted)
}
