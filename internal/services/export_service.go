package services

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	apperrors "github.com/Tomas-vilte/IssueMate/internal/domain/errors"
	"github.com/Tomas-vilte/IssueMate/internal/domain/models"
	"github.com/Tomas-vilte/IssueMate/internal/domain/ports"
	"github.com/Tomas-vilte/IssueMate/internal/logger"
)

var _ ports.IssueExporter = (*ExportService)(nil)

// ExportService exporta los issues de un repo a un archivo YAML por issue.
// Los issues son de solo lectura: el tracker remoto nunca se muta.
type ExportService struct {
	tracker ports.IssueTracker
	git     ports.GitService
}

func NewExportService(tracker ports.IssueTracker, git ports.GitService) *ExportService {
	return &ExportService{
		tracker: tracker,
		git:     git,
	}
}

// Export corre una exportación completa. Las fallas de fetch de issues
// individuales se saltean y quedan en el summary; las fallas de
// autenticación, de argumentos o de listado abortan la corrida antes de
// considerar nada completo.
func (s *ExportService) Export(ctx context.Context, opts models.ExportOptions) (*models.ExportSummary, error) {
	if !models.ValidState(opts.State) {
		return nil, apperrors.NewInvalidStateError(opts.State)
	}

	repo := opts.Repo
	if repo == "" {
		detected, err := s.git.DetectRepo()
		if err != nil {
			return nil, err
		}
		repo = detected
	}
	ctx = logger.With(ctx, "repo", repo, "state", opts.State)

	// La sesión se verifica antes de cualquier escritura
	if err := s.tracker.AuthStatus(ctx); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, apperrors.NewOutputDirError(opts.OutputDir, err)
	}

	issues, err := s.tracker.ListIssues(ctx, repo, opts.State)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Issue, 0, len(issues))
	for _, issue := range issues {
		if issue.IsPullRequest() && !opts.IncludePRs {
			continue
		}
		filtered = append(filtered, issue)
	}

	summary := &models.ExportSummary{
		Repo:      repo,
		OutputDir: opts.OutputDir,
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	// Cada issue escribe a un archivo distinto, así que el único estado
	// compartido entre workers es el summary
	var mu sync.Mutex
	var wg sync.WaitGroup
	jobs := make(chan models.Issue)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for issue := range jobs {
				written, err := s.exportOne(ctx, repo, issue.Number, opts)
				if err != nil {
					logger.Warn(ctx, "issue salteado", "number", issue.Number, "error", err)
					mu.Lock()
					summary.Skipped++
					summary.Failures = append(summary.Failures, models.ExportFailure{
						Number: issue.Number,
						Err:    err,
					})
					mu.Unlock()
					continue
				}
				if !written {
					logger.Debug(ctx, "issue descartado por cambio de estado", "number", issue.Number)
					continue
				}
				logger.Debug(ctx, "issue exportado", "number", issue.Number)
				mu.Lock()
				summary.Exported++
				mu.Unlock()
			}
		}()
	}

	for _, issue := range filtered {
		jobs <- issue
	}
	close(jobs)
	wg.Wait()

	logger.Info(ctx, "exportación completa",
		"exported", summary.Exported,
		"skipped", summary.Skipped,
	)

	return summary, nil
}

// exportOne trae el detalle de un issue y lo escribe a disco. Devuelve false
// sin error cuando el issue cambió de estado entre el listado y el fetch y ya
// no cumple el filtro: un export con state=open nunca escribe un issue closed.
func (s *ExportService) exportOne(ctx context.Context, repo string, number int, opts models.ExportOptions) (bool, error) {
	issue, err := s.tracker.GetIssue(ctx, repo, number)
	if err != nil {
		return false, apperrors.NewIssueFetchError(number, err)
	}

	if opts.State != models.StateAll && issue.State != opts.State {
		return false, nil
	}

	data, err := MarshalIssue(issue)
	if err != nil {
		return false, err
	}

	path := filepath.Join(opts.OutputDir, FileName(issue))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return false, apperrors.NewOutputDirError(opts.OutputDir, err)
	}
	return true, nil
}
