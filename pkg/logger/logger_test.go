package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	t.Run("Should write structured keyvals to the configured output", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewLogger(&Config{Level: InfoLevel, Output: &buf})
		log.Info("server started", "port", 8000)
		out := buf.String()
		assert.Contains(t, out, "server started")
		assert.Contains(t, out, "port")
	})
	t.Run("Should suppress messages below the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewLogger(&Config{Level: ErrorLevel, Output: &buf})
		log.Info("hidden")
		assert.Empty(t, buf.String())
	})
	t.Run("Should emit JSON when configured", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewLogger(&Config{Level: InfoLevel, Output: &buf, JSON: true})
		log.Info("hello")
		assert.True(t, strings.Contains(buf.String(), `"msg":"hello"`) ||
			strings.Contains(buf.String(), `"msg": "hello"`))
	})
}

func TestLogLevel_ToCharmlogLevel(t *testing.T) {
	t.Run("Should fall back to info for unknown levels", func(t *testing.T) {
		assert.Equal(t, InfoLevel.ToCharmlogLevel(), LogLevel("bogus").ToCharmlogLevel())
	})
}

func TestFromContext(t *testing.T) {
	t.Run("Should return the attached logger", func(t *testing.T) {
		log := NewForTests()
		ctx := ContextWithLogger(context.Background(), log)
		assert.Same(t, log, FromContext(ctx))
	})
	t.Run("Should fall back to a usable logger when none is attached", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
	})
}
