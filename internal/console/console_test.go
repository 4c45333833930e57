package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsole(t *testing.T) {
	t.Run("debug is silent by default", func(t *testing.T) {
		var buf bytes.Buffer
		c := New(&buf)

		c.Debug("hidden %d", 1)
		c.Info("shown %d", 2)

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown 2")
	})

	t.Run("debug level enables debug output", func(t *testing.T) {
		var buf bytes.Buffer
		c := New(&buf)
		c.DebugLevel = 1

		c.Debug("loading %s", "doc.json")

		assert.Contains(t, buf.String(), "[debug] loading doc.json")
	})

	t.Run("set output redirects", func(t *testing.T) {
		var first, second bytes.Buffer
		c := New(&first)

		c.SetOutput(&second)
		c.Printf("moved")

		assert.Empty(t, first.String())
		assert.Contains(t, second.String(), "moved")
	})
}
