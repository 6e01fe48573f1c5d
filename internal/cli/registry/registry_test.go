package registry

import (
	"testing"

	cfg "github.com/Tomas-vilte/IssueMate/internal/config"
	"github.com/Tomas-vilte/IssueMate/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

type stubFactory struct {
	name string
}

func (f *stubFactory) CreateCommand(t *i18n.Translations, c *cfg.Config) *cli.Command {
	return &cli.Command{Name: f.name}
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()

	trans, err := i18n.NewTranslations("en", t.TempDir())
	require.NoError(t, err)

	return NewRegistry(&cfg.Config{Language: "en", DefaultOutputDir: "data/issues"}, trans)
}

func TestRegister(t *testing.T) {
	t.Run("should register a new factory", func(t *testing.T) {
		// Arrange
		registry := newTestRegistry(t)

		// Act
		err := registry.Register("export", &stubFactory{name: "export"})

		// Assert
		assert.NoError(t, err)
	})

	t.Run("should reject a duplicate name", func(t *testing.T) {
		// Arrange
		registry := newTestRegistry(t)
		require.NoError(t, registry.Register("export", &stubFactory{name: "export"}))

		// Act
		err := registry.Register("export", &stubFactory{name: "export"})

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "export")
	})
}

func TestCreateCommands(t *testing.T) {
	t.Run("should create one command per registered factory", func(t *testing.T) {
		// Arrange
		registry := newTestRegistry(t)
		require.NoError(t, registry.Register("export", &stubFactory{name: "export"}))
		require.NoError(t, registry.Register("config", &stubFactory{name: "config"}))

		// Act
		commands := registry.CreateCommands()

		// Assert
		assert.Len(t, commands, 2)

		names := make([]string, 0, len(commands))
		for _, command := range commands {
			names = append(names, command.Name)
		}
		assert.ElementsMatch(t, []string{"export", "config"}, names)
	})
}
