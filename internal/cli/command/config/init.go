package config

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Tomas-vilte/IssueMate/internal/config"
	"github.com/Tomas-vilte/IssueMate/internal/domain/models"
	"github.com/Tomas-vilte/IssueMate/internal/i18n"
	"github.com/Tomas-vilte/IssueMate/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newInitCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: t.GetMessage("config_init_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			reader := bufio.NewReader(os.Stdin)
			return runInitProcess(reader, cfg, t)
		},
	}
}

func runInitProcess(reader *bufio.Reader, cfg *config.Config, t *i18n.Translations) error {
	fmt.Println(t.GetMessage("init_welcome", 0, nil))
	fmt.Println()

	if err := configureLanguage(reader, cfg, t); err != nil {
		return err
	}
	if err := configureOutputDir(reader, cfg, t); err != nil {
		return err
	}
	if err := configureState(reader, cfg, t); err != nil {
		return err
	}

	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("error saving configuration: %w", err)
	}

	ui.PrintSuccess(os.Stdout, t.GetMessage("init_saved_ok", 0, nil))
	return nil
}

func configureLanguage(reader *bufio.Reader, cfg *config.Config, t *i18n.Translations) error {
	fmt.Print(t.GetMessage("init_prompt_language_blank_keeps", 0, map[string]interface{}{"Current": cfg.Language}))

	lang, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("error reading language: %w", err)
	}
	lang = strings.TrimSpace(strings.ToLower(lang))

	if lang == "" {
		return nil
	}
	if lang != "en" && lang != "es" {
		fmt.Println(t.GetMessage("init_error_invalid_language", 0, nil))
		return nil
	}
	cfg.Language = lang
	return nil
}

func configureOutputDir(reader *bufio.Reader, cfg *config.Config, t *i18n.Translations) error {
	fmt.Print(t.GetMessage("init_prompt_output_blank_keeps", 0, map[string]interface{}{"Current": cfg.DefaultOutputDir}))

	dir, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("error reading output directory: %w", err)
	}
	dir = strings.TrimSpace(dir)

	if dir != "" {
		cfg.DefaultOutputDir = dir
	}
	return nil
}

func configureState(reader *bufio.Reader, cfg *config.Config, t *i18n.Translations) error {
	fmt.Print(t.GetMessage("init_prompt_state_blank_keeps", 0, map[string]interface{}{"Current": cfg.DefaultState}))

	state, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("error reading state: %w", err)
	}
	state = strings.TrimSpace(strings.ToLower(state))

	if state == "" {
		return nil
	}
	if !models.ValidState(state) {
		fmt.Println(t.GetMessage("init_error_invalid_state", 0, nil))
		return nil
	}
	cfg.DefaultState = state
	return nil
}
