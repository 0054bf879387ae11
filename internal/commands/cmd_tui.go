package commands

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/barber/internal/profiler"
	"github.com/colonyops/barber/internal/store/yamlfile"
	"github.com/colonyops/barber/internal/tui"
)

type TuiCmd struct {
	flags *Flags
	app   *App

	metricsPort int
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, app *App) *TuiCmd {
	return &TuiCmd{
		flags: flags,
		app:   app,
	}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "metrics-port",
			Usage:       "serve /metrics and pprof on the given port (overrides debug.metrics_port)",
			Destination: &cmd.metricsPort,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	port := cmd.metricsPort
	if port == 0 {
		port = cmd.app.Config.Debug.MetricsPort
	}

	// Start debug server if enabled
	if port > 0 {
		profServer := profiler.New(port, cmd.app.Metrics)
		if err := profServer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start profiler: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := profServer.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("failed to shutdown profiler server")
			}
		}()
		log.Info().
			Str("url", fmt.Sprintf("http://%s/metrics", profServer.Addr())).
			Msg("metrics endpoint available")
	}

	reg := cmd.app.Toasts.Open()
	defer cmd.app.Toasts.Close()

	opts := tui.Options{
		API:      cmd.app.API,
		Sessions: cmd.app.Sessions,
		Toasts:   reg,
	}

	watcher, err := yamlfile.WatchFile(cmd.app.Sessions.Path())
	if err != nil {
		log.Warn().Err(err).Msg("session changes from other processes will not be picked up")
	} else {
		defer func() { _ = watcher.Close() }()
		opts.Watcher = watcher
	}

	m := tui.New(ctx, opts)
	defer m.Close()

	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
