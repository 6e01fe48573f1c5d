package git

import (
	"os"
	"os/exec"
	"strings"

	apperrors "github.com/Tomas-vilte/IssueMate/internal/domain/errors"
	"github.com/Tomas-vilte/IssueMate/internal/domain/ports"
	"github.com/Tomas-vilte/IssueMate/internal/regex"
)

var _ ports.GitService = (*Service)(nil)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// IsRepository verifica si el directorio actual está dentro de un repo git
func (s *Service) IsRepository() bool {
	cmd := exec.Command("git", "rev-parse", "--is-inside-work-tree")
	output, err := cmd.Output()
	return err == nil && strings.TrimSpace(string(output)) == "true"
}

// DetectRepo detecta el repo owner/name desde el remoto origin. Si no hay
// remoto usa GITHUB_REPOSITORY como fallback (útil en CI).
func (s *Service) DetectRepo() (string, error) {
	cmd := exec.Command("git", "config", "--get", "remote.origin.url")
	output, err := cmd.Output()
	remote := strings.TrimSpace(string(output))

	if err != nil || remote == "" {
		if repo := os.Getenv("GITHUB_REPOSITORY"); repo != "" {
			return repo, nil
		}
		return "", apperrors.NewRepoDetectError("")
	}

	repo, ok := ParseRemote(remote)
	if !ok {
		return "", apperrors.NewRepoDetectError(remote)
	}
	return repo, nil
}

// ParseRemote extrae owner/name de una URL de remoto SSH o HTTPS de GitHub
func ParseRemote(remote string) (string, bool) {
	if m := regex.SSHRepo.FindStringSubmatch(remote); m != nil {
		return m[1] + "/" + m[2], true
	}
	if m := regex.HTTPSRepo.FindStringSubmatch(remote); m != nil {
		return m[1] + "/" + m[2], true
	}
	return "", false
}
