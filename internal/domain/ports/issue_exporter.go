package ports

import (
	"context"

	"github.com/Tomas-vilte/IssueMate/internal/domain/models"
)

// IssueExporter es el contrato del servicio de exportación
type IssueExporter interface {
	Export(ctx context.Context, opts models.ExportOptions) (*models.ExportSummary, error)
}
