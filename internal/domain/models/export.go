package models

// ExportOptions son los parámetros de una corrida de exportación
type ExportOptions struct {
	// Repo en formato owner/name. Si está vacío se autodetecta del remoto origin.
	Repo string
	// OutputDir es el directorio destino de los archivos exportados
	OutputDir string
	// State filtra por estado: open, closed o all
	State string
	// IncludePRs incluye pull requests en la exportación
	IncludePRs bool
	// Workers es la cantidad de fetches de detalle en paralelo (mínimo 1)
	Workers int
}

// ExportFailure registra un issue que no se pudo exportar
type ExportFailure struct {
	Number int
	Err    error
}

// ExportSummary es el resultado de una corrida de exportación
type ExportSummary struct {
	Repo      string
	OutputDir string
	Exported  int
	Skipped   int
	Failures  []ExportFailure
}
