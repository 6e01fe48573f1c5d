package models

import "time"

// Estados de issue aceptados por el filtro de exportación
const (
	StateOpen   = "open"
	StateClosed = "closed"
	StateAll    = "all"
)

// ValidState indica si el estado pertenece al conjunto {open, closed, all}
func ValidState(state string) bool {
	switch state {
	case StateOpen, StateClosed, StateAll:
		return true
	default:
		return false
	}
}

type (
	// Issue representa un issue de GitHub tal como lo devuelve la API REST.
	// Es de solo lectura: nunca se muta el tracker remoto.
	Issue struct {
		Number      int             `json:"number"`
		Title       string          `json:"title"`
		Body        string          `json:"body"`
		State       string          `json:"state"`
		HTMLURL     string          `json:"html_url"`
		User        Author          `json:"user"`
		Labels      []Label         `json:"labels"`
		CreatedAt   time.Time       `json:"created_at"`
		UpdatedAt   time.Time       `json:"updated_at"`
		PullRequest *PullRequestRef `json:"pull_request,omitempty"`
	}

	// Author es el autor del issue
	Author struct {
		Login string `json:"login"`
	}

	// Label es una etiqueta del issue
	Label struct {
		Name string `json:"name"`
	}

	// PullRequestRef está presente solo cuando el issue es en realidad un PR
	PullRequestRef struct {
		URL string `json:"url"`
	}
)

// IsPullRequest indica si el issue es un pull request
func (i *Issue) IsPullRequest() bool {
	return i.PullRequest != nil
}

// LabelNames devuelve los nombres de las etiquetas en el orden de la API
func (i *Issue) LabelNames() []string {
	names := make([]string, 0, len(i.Labels))
	for _, label := range i.Labels {
		names = append(names, label.Name)
	}
	return names
}
