package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullVersion(t *testing.T) {
	t.Run("should prefix the version with v", func(t *testing.T) {
		assert.Equal(t, "v"+Version, FullVersion())
	})
}
