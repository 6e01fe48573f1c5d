package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Run("should lowercase and join words with dashes", func(t *testing.T) {
		assert.Equal(t, "workshop-data-upload-fails", Slugify("Workshop data upload FAILS"))
	})

	t.Run("should strip accents via NFKD", func(t *testing.T) {
		assert.Equal(t, "numero-de-version-invalido", Slugify("Número de versión inválido"))
	})

	t.Run("should collapse symbols into a single dash", func(t *testing.T) {
		assert.Equal(t, "a-b-c", Slugify("a ++ b // c!!"))
	})

	t.Run("should fall back to 'issue' when nothing survives", func(t *testing.T) {
		assert.Equal(t, "issue", Slugify("¿¿¿???"))
		assert.Equal(t, "issue", Slugify(""))
	})

	t.Run("should cap the slug length", func(t *testing.T) {
		slug := Slugify(strings.Repeat("palabra ", 30))
		assert.LessOrEqual(t, len(slug), 60)
		assert.False(t, strings.HasSuffix(slug, "-"), "el slug no debería terminar en guión")
	})
}
