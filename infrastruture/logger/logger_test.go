package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/logrusorgru/aurora"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("writes prefix, level and message", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("SIM", aurora.CyanFg, &buf, WithoutColors(), WithFlags(0))
		require.NoError(t, err)

		l.Info("started")
		l.Warning("slow tick")
		l.Error("boom")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "[SIM] [INFO] started", lines[0])
		assert.Equal(t, "[SIM] [WARNING] slow tick", lines[1])
		assert.Equal(t, "[SIM] [ERROR] boom", lines[2])
	})

	t.Run("colors the prefix by default", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("SIM", aurora.CyanFg, &buf, WithFlags(0))
		require.NoError(t, err)

		l.Info("hello")
		assert.Contains(t, buf.String(), "\033[")
		assert.Contains(t, buf.String(), "hello")
	})

	t.Run("needs a writer", func(t *testing.T) {
		_, err := New("SIM", aurora.CyanFg, nil)
		assert.ErrorIs(t, err, ErrNilWriter)
	})
}
