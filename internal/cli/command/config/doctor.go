package config

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/Tomas-vilte/IssueMate/internal/config"
	"github.com/Tomas-vilte/IssueMate/internal/domain/ports"
	"github.com/Tomas-vilte/IssueMate/internal/i18n"
	"github.com/Tomas-vilte/IssueMate/internal/ui"
	"github.com/urfave/cli/v3"
)

type checkStatus int

const (
	checkStatusOK checkStatus = iota
	checkStatusWarning
	checkStatusError
)

type checkResult struct {
	status     checkStatus
	suggestion string
}

type healthCheck struct {
	name string
	fn   func(ctx context.Context, t *i18n.Translations, cfg *config.Config) checkResult
}

type DoctorCommand struct {
	tracker ports.IssueTracker
	git     ports.GitService
}

func NewDoctorCommand(tracker ports.IssueTracker, git ports.GitService) *DoctorCommand {
	return &DoctorCommand{
		tracker: tracker,
		git:     git,
	}
}

func (d *DoctorCommand) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "doctor",
		Aliases: []string{"dr"},
		Usage:   t.GetMessage("doctor_command_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			return d.runHealthCheck(ctx, t, cfg)
		},
	}
}

func (d *DoctorCommand) runHealthCheck(ctx context.Context, t *i18n.Translations, cfg *config.Config) error {
	ui.PrintSectionBanner(t.GetMessage("doctor_running_checks", 0, nil))

	checks := []healthCheck{
		{name: "doctor_check_config_file", fn: d.checkConfigFile},
		{name: "doctor_check_git_installed", fn: d.checkGitInstalled},
		{name: "doctor_check_git_repo", fn: d.checkGitRepo},
		{name: "doctor_check_repo_detected", fn: d.checkRepoDetected},
		{name: "doctor_check_gh_installed", fn: d.checkGHInstalled},
		{name: "doctor_check_gh_auth", fn: d.checkGHAuth},
	}

	problems := 0

	for _, check := range checks {
		checkName := t.GetMessage(check.name, 0, nil)
		spinner := ui.NewSmartSpinner(checkName)
		spinner.Start()

		time.Sleep(100 * time.Millisecond)

		result := check.fn(ctx, t, cfg)

		switch result.status {
		case checkStatusOK:
			spinner.Success(checkName)
		case checkStatusWarning:
			spinner.Warning(checkName)
			if result.suggestion != "" {
				ui.PrintInfo("  → " + result.suggestion)
			}
		case checkStatusError:
			spinner.Error(checkName)
			problems++
			if result.suggestion != "" {
				ui.PrintInfo("  → " + result.suggestion)
			}
		}
	}

	fmt.Println()
	if problems == 0 {
		ui.PrintSuccess(os.Stdout, t.GetMessage("doctor_all_ok", 0, nil))
		return nil
	}

	ui.PrintWarning(t.GetMessage("doctor_problems_found", problems, map[string]interface{}{
		"Count": problems,
	}))
	return nil
}

func (d *DoctorCommand) checkConfigFile(_ context.Context, t *i18n.Translations, cfg *config.Config) checkResult {
	if cfg.PathFile == "" {
		return checkResult{status: checkStatusWarning}
	}
	return checkResult{status: checkStatusOK}
}

func (d *DoctorCommand) checkGitInstalled(_ context.Context, t *i18n.Translations, _ *config.Config) checkResult {
	if _, err := exec.LookPath("git"); err != nil {
		return checkResult{
			status:     checkStatusError,
			suggestion: t.GetMessage("doctor_suggestion_install_git", 0, nil),
		}
	}
	return checkResult{status: checkStatusOK}
}

func (d *DoctorCommand) checkGitRepo(_ context.Context, t *i18n.Translations, _ *config.Config) checkResult {
	if !d.git.IsRepository() {
		return checkResult{
			status:     checkStatusWarning,
			suggestion: t.GetMessage("doctor_suggestion_run_inside_repo", 0, nil),
		}
	}
	return checkResult{status: checkStatusOK}
}

func (d *DoctorCommand) checkRepoDetected(_ context.Context, t *i18n.Translations, _ *config.Config) checkResult {
	if _, err := d.git.DetectRepo(); err != nil {
		return checkResult{
			status:     checkStatusWarning,
			suggestion: t.GetMessage("doctor_suggestion_add_github_remote", 0, nil),
		}
	}
	return checkResult{status: checkStatusOK}
}

func (d *DoctorCommand) checkGHInstalled(_ context.Context, t *i18n.Translations, cfg *config.Config) checkResult {
	binary := cfg.GHPath
	if binary == "" {
		binary = "gh"
	}
	if _, err := exec.LookPath(binary); err != nil {
		return checkResult{
			status:     checkStatusError,
			suggestion: t.GetMessage("doctor_suggestion_install_gh", 0, nil),
		}
	}
	return checkResult{status: checkStatusOK}
}

func (d *DoctorCommand) checkGHAuth(ctx context.Context, t *i18n.Translations, _ *config.Config) checkResult {
	checkCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := d.tracker.AuthStatus(checkCtx); err != nil {
		return checkResult{
			status:     checkStatusError,
			suggestion: t.GetMessage("doctor_suggestion_gh_login", 0, nil),
		}
	}
	return checkResult{status: checkStatusOK}
}
