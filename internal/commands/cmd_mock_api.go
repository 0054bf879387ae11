package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	zlog "github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/barber/internal/core/logging"
	"github.com/colonyops/barber/internal/mockapi"
	"github.com/colonyops/barber/internal/printer"
	"github.com/colonyops/barber/pkg/logutils"
)

type MockAPICmd struct {
	flags *Flags
	addr  string
	seed  bool
}

// NewMockAPICmd creates the mock-api command.
func NewMockAPICmd(flags *Flags) *MockAPICmd {
	return &MockAPICmd{flags: flags}
}

// Register adds the mock-api command to the application.
func (cmd *MockAPICmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "mock-api",
		Usage:     "Run an in-memory account API for local development",
		UsageText: "barber mock-api [--addr HOST:PORT]",
		Description: `Serves the account endpoints the client uses, keeping every account in
memory. Password recovery tokens are written to the log instead of being
e-mailed.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address",
				Sources:     cli.EnvVars("BARBER_MOCK_ADDR"),
				Value:       "127.0.0.1:3333",
				Destination: &cmd.addr,
			},
			&cli.BoolFlag{
				Name:        "seed",
				Usage:       "create a demo account (johndoe@example.com / 123456)",
				Destination: &cmd.seed,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *MockAPICmd) run(ctx context.Context, _ *cli.Command) error {
	// Requests are logged to the terminal rather than the log file.
	console, err := logutils.Console(cmd.flags.LogLevel, os.Stderr)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	zlog.Logger = console

	log := logging.Component("mockapi")
	p := printer.Ctx(ctx)

	server := mockapi.New()
	if cmd.seed {
		user, _ := server.Seed("John Doe", "johndoe@example.com", "123456")
		p.Infof("seeded %s", user.Email)
	}

	srv := &http.Server{
		Addr:              cmd.addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	p.Successf("mock API listening on http://%s", cmd.addr)
	log.Info().Str("addr", cmd.addr).Msg("mock api started")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info().Msg("mock api stopped")
	return nil
}
