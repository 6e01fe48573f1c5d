package export

import (
	"context"
	"errors"
	"fmt"

	cfg "github.com/Tomas-vilte/IssueMate/internal/config"
	apperrors "github.com/Tomas-vilte/IssueMate/internal/domain/errors"
	"github.com/Tomas-vilte/IssueMate/internal/domain/models"
	"github.com/Tomas-vilte/IssueMate/internal/domain/ports"
	"github.com/Tomas-vilte/IssueMate/internal/i18n"
	"github.com/Tomas-vilte/IssueMate/internal/logger"
	"github.com/Tomas-vilte/IssueMate/internal/regex"
	"github.com/Tomas-vilte/IssueMate/internal/ui"
	"github.com/urfave/cli/v3"
)

type ExportCommandFactory struct {
	exporter ports.IssueExporter
}

func NewExportCommandFactory(exporter ports.IssueExporter) *ExportCommandFactory {
	return &ExportCommandFactory{exporter: exporter}
}

func (f *ExportCommandFactory) CreateCommand(t *i18n.Translations, cfg *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:    "export",
		Aliases: []string{"e"},
		Usage:   t.GetMessage("export_command_usage", 0, nil),
		Flags:   f.createFlags(cfg, t),
		Action:  f.createAction(t),
	}
}

func (f *ExportCommandFactory) createFlags(cfg *cfg.Config, t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "output-dir",
			Aliases: []string{"o"},
			Value:   cfg.DefaultOutputDir,
			Usage:   t.GetMessage("export_flag_output", 0, nil),
		},
		&cli.StringFlag{
			Name:    "state",
			Aliases: []string{"s"},
			Value:   cfg.DefaultState,
			Usage:   t.GetMessage("export_flag_state", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "include-prs",
			Value: cfg.IncludePRs,
			Usage: t.GetMessage("export_flag_include_prs", 0, nil),
		},
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"R"},
			Usage:   t.GetMessage("export_flag_repo", 0, nil),
		},
		&cli.IntFlag{
			Name:    "jobs",
			Aliases: []string{"j"},
			Value:   1,
			Usage:   t.GetMessage("export_flag_jobs", 0, nil),
		},
	}
}

func (f *ExportCommandFactory) createAction(t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		logger.Initialize(command.Bool("debug"), command.Bool("verbose"))

		opts := models.ExportOptions{
			Repo:       command.String("repo"),
			OutputDir:  command.String("output-dir"),
			State:      command.String("state"),
			IncludePRs: command.Bool("include-prs"),
			Workers:    int(command.Int("jobs")),
		}

		if opts.Repo != "" && !regex.OwnerRepo.MatchString(opts.Repo) {
			return fmt.Errorf("%s", t.GetMessage("export_invalid_repo", 0, map[string]interface{}{
				"Repo": opts.Repo,
			}))
		}

		spinner := ui.NewSmartSpinner(t.GetMessage("export_listing", 0, map[string]interface{}{
			"State": opts.State,
			"Repo":  opts.Repo,
		}))
		spinner.Start()

		summary, err := f.exporter.Export(ctx, opts)
		if err != nil {
			spinner.Error(t.GetMessage("export_failed", 0, nil))
			logger.Error(ctx, "la exportación falló", err)

			var authErr *apperrors.AuthError
			if errors.As(err, &authErr) {
				ui.PrintInfo(t.GetMessage("export_auth_hint", 0, nil))
			}
			return err
		}

		spinner.Success(t.GetMessage("export_summary", summary.Exported, map[string]interface{}{
			"Count": summary.Exported,
			"Dir":   summary.OutputDir,
		}))

		if summary.Skipped > 0 {
			ui.PrintWarning(t.GetMessage("export_skipped", summary.Skipped, map[string]interface{}{
				"Count": summary.Skipped,
			}))
			for _, failure := range summary.Failures {
				ui.PrintInfo(t.GetMessage("export_failure_detail", 0, map[string]interface{}{
					"Number": failure.Number,
					"Error":  failure.Err.Error(),
				}))
			}
		}

		return nil
	}
}
