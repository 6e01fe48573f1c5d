package ports

// GitService expone las operaciones de git que necesita la cli
type GitService interface {
	// DetectRepo devuelve el repo actual en formato owner/name
	DetectRepo() (string, error)

	// IsRepository indica si el directorio actual está dentro de un repo git
	IsRepository() bool
}
