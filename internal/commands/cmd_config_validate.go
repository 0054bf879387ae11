package commands

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/barber/internal/printer"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "barber config validate [options]",
				Description: "Validates the configuration file, checking values, the theme name and paths on disk.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

type validationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	err := cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath)

	var fieldErrs criterio.FieldErrors
	if err != nil && !errors.As(err, &fieldErrs) {
		return err
	}

	if cmd.format == "json" {
		return cmd.outputJSON(c, fieldErrs)
	}

	p := printer.Ctx(ctx)
	if len(fieldErrs) == 0 {
		p.Successf("Configuration is valid")
		return nil
	}

	p.FieldErrors(fieldErrs)
	p.Printf("")
	p.Errorf("%d error(s) found", len(fieldErrs))
	return cli.Exit("", 1)
}

func (cmd *ConfigValidateCmd) outputJSON(c *cli.Command, fieldErrs criterio.FieldErrors) error {
	out := struct {
		Valid  bool              `json:"valid"`
		Errors []validationError `json:"errors,omitempty"`
	}{
		Valid: len(fieldErrs) == 0,
	}
	for _, fe := range fieldErrs {
		out.Errors = append(out.Errors, validationError{Field: fe.Field, Message: fe.Err.Error()})
	}

	enc := json.NewEncoder(c.Root().Writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return err
	}
	if !out.Valid {
		return cli.Exit("", 1)
	}
	return nil
}
