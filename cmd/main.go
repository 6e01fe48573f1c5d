package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Tomas-vilte/IssueMate/internal/cli/command/completion"
	configcmd "github.com/Tomas-vilte/IssueMate/internal/cli/command/config"
	"github.com/Tomas-vilte/IssueMate/internal/cli/command/export"
	"github.com/Tomas-vilte/IssueMate/internal/cli/registry"
	cfg "github.com/Tomas-vilte/IssueMate/internal/config"
	"github.com/Tomas-vilte/IssueMate/internal/i18n"
	"github.com/Tomas-vilte/IssueMate/internal/infrastructure/gh"
	"github.com/Tomas-vilte/IssueMate/internal/infrastructure/git"
	"github.com/Tomas-vilte/IssueMate/internal/services"
	"github.com/Tomas-vilte/IssueMate/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando la cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("no se pudo obtener el directorio del usuario: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, fmt.Errorf("error al cargar las traducciones: %w", err)
	}

	if err := cfg.SaveConfig(cfgApp); err != nil {
		return nil, err
	}

	gitService := git.NewService()
	tracker := gh.NewClient(cfgApp.GHPath)
	exportService := services.NewExportService(tracker, gitService)

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("export", export.NewExportCommandFactory(exportService)); err != nil {
		return nil, fmt.Errorf("error al registrar el comando 'export': %w", err)
	}

	if err := registerCommand.Register("config", configcmd.NewConfigCommandFactory()); err != nil {
		return nil, fmt.Errorf("error al registrar el comando 'config': %w", err)
	}

	if err := registerCommand.Register("doctor", configcmd.NewDoctorCommand(tracker, gitService)); err != nil {
		return nil, fmt.Errorf("error al registrar el comando 'doctor': %w", err)
	}

	commands := registerCommand.CreateCommands()
	commands = append(commands, completion.NewCompletionCommand(translations))

	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
	commands = append(commands, helpCommand)

	return &cli.Command{
		Name:        "issue-mate",
		Usage:       translations.GetMessage("app_usage", 0, nil),
		Version:     version.FullVersion(),
		Description: translations.GetMessage("app_description", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name: "verbose",
			},
			&cli.BoolFlag{
				Name: "debug",
			},
		},
		Commands:              commands,
		EnableShellCompletion: true,
	}, nil
}
