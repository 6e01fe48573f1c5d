package config

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/IssueMate/internal/config"
	"github.com/Tomas-vilte/IssueMate/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetOutputCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-output",
		Usage: t.GetMessage("config_set_output_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "dir",
				Aliases:  []string{"d"},
				Usage:    t.GetMessage("config_set_output_flag_usage", 0, nil),
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			dir := command.String("dir")

			cfg.DefaultOutputDir = dir
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			fmt.Printf("%s\n", t.GetMessage("output_configured", 0, map[string]interface{}{"Dir": dir}))
			return nil
		},
	}
}
