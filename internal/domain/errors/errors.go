package errors

import (
	"fmt"
	"strings"
)

// AuthError indica que no hay una sesión autenticada con GitHub CLI
type AuthError struct {
	Stderr string
	Err    error
}

func (e *AuthError) Error() string {
	msg := "no hay una sesión autenticada con GitHub CLI"
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		return fmt.Sprintf("%s: %s", msg, stderr)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError crea un nuevo error de autenticación
func NewAuthError(stderr string, err error) *AuthError {
	return &AuthError{Stderr: stderr, Err: err}
}

// InvalidStateError indica un filtro de estado fuera de {open, closed, all}
type InvalidStateError struct {
	State string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("estado '%s' inválido: tiene que ser open, closed o all", e.State)
}

// NewInvalidStateError crea un nuevo error de estado inválido
func NewInvalidStateError(state string) *InvalidStateError {
	return &InvalidStateError{State: state}
}

// OutputDirError indica que el directorio de salida no se pudo crear o escribir
type OutputDirError struct {
	Path string
	Err  error
}

func (e *OutputDirError) Error() string {
	return fmt.Sprintf("no se pudo preparar el directorio de salida '%s': %v", e.Path, e.Err)
}

func (e *OutputDirError) Unwrap() error {
	return e.Err
}

// NewOutputDirError crea un nuevo error de directorio de salida
func NewOutputDirError(path string, err error) *OutputDirError {
	return &OutputDirError{Path: path, Err: err}
}

// IssueFetchError indica que falló el fetch de detalle de un issue puntual.
// La corrida sigue con el resto de los issues.
type IssueFetchError struct {
	Number int
	Err    error
}

func (e *IssueFetchError) Error() string {
	return fmt.Sprintf("no se pudo obtener el detalle del issue #%d: %v", e.Number, e.Err)
}

func (e *IssueFetchError) Unwrap() error {
	return e.Err
}

// NewIssueFetchError crea un nuevo error de fetch de issue
func NewIssueFetchError(number int, err error) *IssueFetchError {
	return &IssueFetchError{Number: number, Err: err}
}

// RepoDetectError indica que no se pudo detectar el repo actual
type RepoDetectError struct {
	Remote string
}

func (e *RepoDetectError) Error() string {
	if e.Remote != "" {
		return fmt.Sprintf("el remoto '%s' no parece un repo de GitHub", e.Remote)
	}
	return "no se pudo detectar el repo: pasá --repo owner/name"
}

// NewRepoDetectError crea un nuevo error de detección de repo
func NewRepoDetectError(remote string) *RepoDetectError {
	return &RepoDetectError{Remote: remote}
}
