package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Tomas-vilte/IssueMate/internal/domain/models"
)

// Config es la configuración persistida de la cli
type Config struct {
	Language         string `json:"language"`
	DefaultOutputDir string `json:"default_output_dir"`
	DefaultState     string `json:"default_state"`
	IncludePRs       bool   `json:"include_prs,omitempty"`
	GHPath           string `json:"gh_path,omitempty"`
	PathFile         string `json:"path_file"`
}

const (
	defaultLang      = "en"
	defaultOutputDir = "data/issues"
	defaultState     = models.StateOpen
	defaultGHPath    = "gh"
)

// LoadConfig carga la configuración desde el home del usuario (o desde un
// archivo .json puntual). Si no existe, crea una con los valores por defecto.
func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, ".issue-mate")
		configPath = filepath.Join(configDir, "config.json")

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error al leer el archivo de configuración: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error al decodificar el archivo JSON: %w", err)
	}
	config.PathFile = configPath

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("la configuración cargada no es válida: %w", err)
	}

	return &config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{
		Language:         defaultLang,
		DefaultOutputDir: defaultOutputDir,
		DefaultState:     defaultState,
		GHPath:           defaultGHPath,
		PathFile:         path,
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error al codificar la configuración por defecto: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("error al guardar la configuración por defecto: %w", err)
	}

	return config, nil
}

// SaveConfig valida y persiste la configuración en su PathFile
func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("la configuración a guardar no es válida: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("la ruta del archivo de configuración no está definida")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error al codificar la configuración: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("error al guardar la configuración: %w", err)
	}

	return nil
}

func validateConfig(config *Config) error {
	if config.Language == "" {
		return errors.New("Language no puede estar vacío")
	}
	if config.DefaultOutputDir == "" {
		return errors.New("DefaultOutputDir no puede estar vacío")
	}
	if config.DefaultState != "" && !models.ValidState(config.DefaultState) {
		return fmt.Errorf("DefaultState '%s' no es válido", config.DefaultState)
	}
	if config.DefaultState == "" {
		config.DefaultState = defaultState
	}
	if config.GHPath == "" {
		config.GHPath = defaultGHPath
	}
	return nil
}
