package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	t.Run("should fall back to the default logger", func(t *testing.T) {
		assert.Equal(t, slog.Default(), FromContext(context.Background()))
	})

	t.Run("should return the logger attached to the context", func(t *testing.T) {
		// Arrange
		var buf bytes.Buffer
		attached := slog.New(slog.NewTextHandler(&buf, nil))
		ctx := WithLogger(context.Background(), attached)

		// Act & Assert
		assert.Equal(t, attached, FromContext(ctx))
	})
}

func TestWith(t *testing.T) {
	t.Run("should carry the attributes through the context", func(t *testing.T) {
		// Arrange
		var buf bytes.Buffer
		base := slog.New(slog.NewTextHandler(&buf, nil))
		ctx := WithLogger(context.Background(), base)

		// Act
		ctx = With(ctx, "repo", "acme/widgets")
		Info(ctx, "listando issues")

		// Assert
		output := buf.String()
		assert.Contains(t, output, "repo=acme/widgets")
		assert.Contains(t, output, "listando issues")
	})
}

func TestError(t *testing.T) {
	t.Run("should append the error as an attribute", func(t *testing.T) {
		// Arrange
		var buf bytes.Buffer
		ctx := WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))

		// Act
		Error(ctx, "la exportación falló", assert.AnError)

		// Assert
		assert.Contains(t, buf.String(), "error=")
	})
}
