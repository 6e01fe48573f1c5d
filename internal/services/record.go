package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/Tomas-vilte/IssueMate/internal/domain/models"
	"gopkg.in/yaml.v3"
)

// exportRecord es la serialización de un issue. El orden de los campos es
// fijo para que reexportar sin cambios upstream dé archivos byte a byte
// idénticos.
type exportRecord struct {
	Number  int      `yaml:"number"`
	Title   string   `yaml:"title"`
	State   string   `yaml:"state"`
	Author  string   `yaml:"author"`
	Labels  []string `yaml:"labels"`
	Created string   `yaml:"created"`
	Updated string   `yaml:"updated"`
	URL     string   `yaml:"url"`
	Body    string   `yaml:"body"`
}

// MarshalIssue serializa un issue al formato del archivo de exportación
func MarshalIssue(issue *models.Issue) ([]byte, error) {
	body := strings.ReplaceAll(issue.Body, "\r\n", "\n")
	body = strings.TrimRight(body, " \t\n")

	record := exportRecord{
		Number:  issue.Number,
		Title:   issue.Title,
		State:   issue.State,
		Author:  issue.User.Login,
		Labels:  issue.LabelNames(),
		Created: issue.CreatedAt.UTC().Format(time.RFC3339),
		Updated: issue.UpdatedAt.UTC().Format(time.RFC3339),
		URL:     issue.HTMLURL,
		Body:    body,
	}

	data, err := yaml.Marshal(&record)
	if err != nil {
		return nil, fmt.Errorf("error al serializar el issue #%d: %w", issue.Number, err)
	}
	return data, nil
}

// FileName arma el nombre determinístico del archivo: número con padding
// para ordenar bien en el filesystem, más el slug del título para leerlo.
func FileName(issue *models.Issue) string {
	return fmt.Sprintf("%05d-%s.yml", issue.Number, Slugify(issue.Title))
}
