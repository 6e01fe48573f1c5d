package gh

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	apperrors "github.com/Tomas-vilte/IssueMate/internal/domain/errors"
	"github.com/Tomas-vilte/IssueMate/internal/domain/models"
	"github.com/Tomas-vilte/IssueMate/internal/domain/ports"
)

var _ ports.IssueTracker = (*Client)(nil)

// Client habla con GitHub a través del binario gh, que ya maneja la sesión,
// el transporte y el rate limiting.
type Client struct {
	runner Runner
}

func NewClient(binary string) *Client {
	if binary == "" {
		binary = "gh"
	}
	return &Client{runner: &execRunner{binary: binary}}
}

func NewClientWithRunner(runner Runner) *Client {
	return &Client{runner: runner}
}

// AuthStatus verifica que gh tenga una sesión activa
func (c *Client) AuthStatus(ctx context.Context) error {
	if _, err := c.runner.Run(ctx, "auth", "status"); err != nil {
		return apperrors.NewAuthError("", err)
	}
	return nil
}

// ListIssues lista los issues del repo paginando con gh api. El jq .[] deja
// un documento JSON por issue en la salida.
func (c *Client) ListIssues(ctx context.Context, repo, state string) ([]models.Issue, error) {
	output, err := c.runner.Run(ctx,
		"api", "-X", "GET", "--paginate",
		fmt.Sprintf("repos/%s/issues", repo),
		"-f", "state="+state,
		"-f", "per_page=100",
		"--jq", ".[]",
	)
	if err != nil {
		return nil, fmt.Errorf("error al listar los issues de %s: %w", repo, err)
	}

	issues := make([]models.Issue, 0)
	decoder := json.NewDecoder(bytes.NewReader(output))
	for {
		var issue models.Issue
		if err := decoder.Decode(&issue); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("error al parsear la salida de gh: %w", err)
		}
		issues = append(issues, issue)
	}

	return issues, nil
}

// GetIssue trae el detalle completo de un issue
func (c *Client) GetIssue(ctx context.Context, repo string, number int) (*models.Issue, error) {
	output, err := c.runner.Run(ctx, "api", fmt.Sprintf("repos/%s/issues/%d", repo, number))
	if err != nil {
		return nil, err
	}

	var issue models.Issue
	if err := json.Unmarshal(output, &issue); err != nil {
		return nil, fmt.Errorf("error al parsear el issue %d: %w", number, err)
	}

	return &issue, nil
}
