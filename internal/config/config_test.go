package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("should create a default config when none exists", func(t *testing.T) {
		// Arrange
		tmpDir := t.TempDir()

		// Act
		cfg, err := LoadConfig(tmpDir)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "en", cfg.Language)
		assert.Equal(t, "data/issues", cfg.DefaultOutputDir)
		assert.Equal(t, "open", cfg.DefaultState)
		assert.Equal(t, "gh", cfg.GHPath)

		_, statErr := os.Stat(filepath.Join(tmpDir, ".issue-mate", "config.json"))
		assert.NoError(t, statErr, "el archivo de configuración debería haberse creado")
	})

	t.Run("should load an existing config file", func(t *testing.T) {
		// Arrange
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.json")
		content := `{
			"language": "es",
			"default_output_dir": "exports",
			"default_state": "all",
			"include_prs": true
		}`
		require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

		// Act
		cfg, err := LoadConfig(configPath)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "es", cfg.Language)
		assert.Equal(t, "exports", cfg.DefaultOutputDir)
		assert.Equal(t, "all", cfg.DefaultState)
		assert.True(t, cfg.IncludePRs)
		assert.Equal(t, configPath, cfg.PathFile)
	})

	t.Run("should fail with an invalid default state", func(t *testing.T) {
		// Arrange
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.json")
		content := `{"language": "en", "default_output_dir": "exports", "default_state": "pendiente"}`
		require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

		// Act
		cfg, err := LoadConfig(configPath)

		// Assert
		assert.Nil(t, cfg)
		assert.Error(t, err)
	})

	t.Run("should fail with malformed JSON", func(t *testing.T) {
		// Arrange
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.json")
		require.NoError(t, os.WriteFile(configPath, []byte("{rota"), 0644))

		// Act
		cfg, err := LoadConfig(configPath)

		// Assert
		assert.Nil(t, cfg)
		assert.Error(t, err)
	})
}

func TestSaveConfig(t *testing.T) {
	t.Run("should persist and reload the same values", func(t *testing.T) {
		// Arrange
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.json")

		cfg := &Config{
			Language:         "es",
			DefaultOutputDir: "exports",
			DefaultState:     "closed",
			GHPath:           "gh",
			PathFile:         configPath,
		}

		// Act
		err := SaveConfig(cfg)

		// Assert
		require.NoError(t, err)
		loaded, err := LoadConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, cfg.Language, loaded.Language)
		assert.Equal(t, cfg.DefaultOutputDir, loaded.DefaultOutputDir)
		assert.Equal(t, cfg.DefaultState, loaded.DefaultState)
	})

	t.Run("should fail without a config path", func(t *testing.T) {
		// Arrange
		cfg := &Config{
			Language:         "en",
			DefaultOutputDir: "exports",
		}

		// Act
		err := SaveConfig(cfg)

		// Assert
		assert.Error(t, err)
	})

	t.Run("should fail with an empty language", func(t *testing.T) {
		// Arrange
		cfg := &Config{
			DefaultOutputDir: "exports",
			PathFile:         filepath.Join(t.TempDir(), "config.json"),
		}

		// Act
		err := SaveConfig(cfg)

		// Assert
		assert.Error(t, err)
	})
}
