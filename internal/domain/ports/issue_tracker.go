package ports

import (
	"context"

	"github.com/Tomas-vilte/IssueMate/internal/domain/models"
)

// IssueTracker abstrae al cliente del servicio de tracking (gh).
// La autenticación y el transporte viven en el cliente externo; acá solo
// se invoca y se parsea su salida.
type IssueTracker interface {
	// AuthStatus verifica que exista una sesión autenticada
	AuthStatus(ctx context.Context) error

	// ListIssues lista los issues del repo que matchean el estado
	ListIssues(ctx context.Context, repo, state string) ([]models.Issue, error)

	// GetIssue trae el detalle completo de un issue
	GetIssue(ctx context.Context, repo string, number int) (*models.Issue, error)
}
