package config

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/IssueMate/internal/config"
	"github.com/Tomas-vilte/IssueMate/internal/domain/models"
	"github.com/Tomas-vilte/IssueMate/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetStateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-state",
		Usage: t.GetMessage("config_set_state_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "state",
				Aliases:  []string{"s"},
				Usage:    t.GetMessage("config_set_state_flag_usage", 0, nil),
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			state := command.String("state")
			if !models.ValidState(state) {
				msg := t.GetMessage("invalid_state", 0, map[string]interface{}{"State": state})
				return fmt.Errorf("%s", msg)
			}

			cfg.DefaultState = state
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			fmt.Printf("%s\n", t.GetMessage("state_configured", 0, map[string]interface{}{"State": state}))
			return nil
		},
	}
}
