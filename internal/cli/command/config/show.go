package config

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/IssueMate/internal/config"
	"github.com/Tomas-vilte/IssueMate/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			fmt.Println(t.GetMessage("current_config", 0, nil))
			fmt.Printf("━━━━━━━━━━━━━━━━━━━━━━━\n")

			fmt.Printf("%s\n", t.GetMessage("language_label", 0, map[string]interface{}{"Lang": cfg.Language}))
			fmt.Printf("%s\n", t.GetMessage("output_label", 0, map[string]interface{}{"Dir": cfg.DefaultOutputDir}))
			fmt.Printf("%s\n", t.GetMessage("state_label", 0, map[string]interface{}{"State": cfg.DefaultState}))
			fmt.Printf("%s\n", t.GetMessage("include_prs_label", 0, map[string]interface{}{"Value": cfg.IncludePRs}))
			fmt.Printf("%s\n", t.GetMessage("gh_path_label", 0, map[string]interface{}{"Path": cfg.GHPath}))

			return nil
		},
	}
}
