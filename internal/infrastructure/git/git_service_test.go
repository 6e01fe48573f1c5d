package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRemote(t *testing.T) {
	t.Run("should parse an SSH remote", func(t *testing.T) {
		repo, ok := ParseRemote("git@github.com:acme/widgets.git")
		assert.True(t, ok)
		assert.Equal(t, "acme/widgets", repo)
	})

	t.Run("should parse an HTTPS remote", func(t *testing.T) {
		repo, ok := ParseRemote("https://github.com/acme/widgets.git")
		assert.True(t, ok)
		assert.Equal(t, "acme/widgets", repo)
	})

	t.Run("should parse an HTTPS remote without .git suffix", func(t *testing.T) {
		repo, ok := ParseRemote("https://github.com/acme/widgets")
		assert.True(t, ok)
		assert.Equal(t, "acme/widgets", repo)
	})

	t.Run("should reject a non GitHub remote", func(t *testing.T) {
		_, ok := ParseRemote("git@gitlab.com:acme/widgets.git")
		assert.False(t, ok, "un remoto de GitLab no debería matchear")
	})

	t.Run("should reject an empty remote", func(t *testing.T) {
		_, ok := ParseRemote("")
		assert.False(t, ok)
	})
}
