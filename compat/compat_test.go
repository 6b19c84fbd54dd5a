// FILE: dash-website/console/compat/compat_test.go
package compat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	console "github.com/y21/dash-website"
)

// createTestConsole creates a console with context annotations disabled so the
// adapter tests can compare entry HTML directly.
func createTestConsole(t *testing.T) *console.Console {
	t.Helper()
	c, err := console.NewBuilder().ShowContext(false).Build()
	require.NoError(t, err)
	return c
}

// TestCompatBuilder verifies the adapter builder resolves its console correctly
func TestCompatBuilder(t *testing.T) {
	t.Run("with existing console", func(t *testing.T) {
		c := createTestConsole(t)
		builder := NewBuilder().WithConsole(c)

		adapter, err := builder.BuildGnet()
		require.NoError(t, err)
		assert.NotNil(t, adapter)
		assert.Same(t, c, adapter.console)
	})

	t.Run("with config", func(t *testing.T) {
		cfg := console.DefaultConfig()
		cfg.Width = "42em"

		builder := NewBuilder().WithConfig(cfg)
		adapter, err := builder.BuildFastHTTP()
		require.NoError(t, err)
		assert.Equal(t, "42em", adapter.console.GetConfig().Width)
	})

	t.Run("both adapters share one console", func(t *testing.T) {
		builder := NewBuilder()
		gnetAdapter, err := builder.BuildGnet()
		require.NoError(t, err)
		httpAdapter, err := builder.BuildFastHTTP()
		require.NoError(t, err)
		assert.Same(t, gnetAdapter.console, httpAdapter.console)
	})

	t.Run("nil console rejected", func(t *testing.T) {
		_, err := NewBuilder().WithConsole(nil).BuildGnet()
		require.Error(t, err)
	})

	t.Run("invalid config rejected", func(t *testing.T) {
		cfg := console.DefaultConfig()
		cfg.CollapsedCap = 0
		_, err := NewBuilder().WithConfig(cfg).BuildFastHTTP()
		require.Error(t, err)
	})
}

// TestGnetAdapter routes every gnet log level into the console transcript
func TestGnetAdapter(t *testing.T) {
	c := createTestConsole(t)

	var fatalMsg string
	adapter := NewGnetAdapter(c, WithFatalHandler(func(msg string) {
		fatalMsg = msg
	}))

	adapter.Debugf("gnet debug id=%d", 1)
	adapter.Infof("gnet info id=%d", 2)
	adapter.Warnf("gnet warn id=%d", 3)
	adapter.Errorf("gnet error id=%d", 4)
	adapter.Fatalf("gnet fatal id=%d", 5)

	entries := c.Entries()
	require.Len(t, entries, 5)

	assert.Equal(t, "gnet debug id=1", string(entries[0].HTML()))
	assert.Equal(t, "console-entry", entries[0].Class())
	assert.Equal(t, "console-entry", entries[1].Class())
	assert.Equal(t, "console-entry console-warn", entries[2].Class())
	assert.Equal(t, "console-entry console-error", entries[3].Class())
	assert.Equal(t, "console-entry console-error", entries[4].Class())

	assert.Equal(t, "gnet fatal id=5", fatalMsg)
}

// TestFastHTTPAdapter verifies Printf routing and level detection
func TestFastHTTPAdapter(t *testing.T) {
	t.Run("plain messages log at the default level", func(t *testing.T) {
		c := createTestConsole(t)
		adapter := NewFastHTTPAdapter(c)

		adapter.Printf("serving on %s", ":8080")

		entries := c.Entries()
		require.Len(t, entries, 1)
		assert.Equal(t, "serving on :8080", string(entries[0].HTML()))
		assert.Equal(t, "console-entry", entries[0].Class())
	})

	t.Run("detected error keywords raise the level", func(t *testing.T) {
		c := createTestConsole(t)
		adapter := NewFastHTTPAdapter(c)

		adapter.Printf("connection failed: %v", "timeout")

		entries := c.Entries()
		require.Len(t, entries, 1)
		assert.Equal(t, "console-entry console-error", entries[0].Class())
	})

	t.Run("detected warning keywords", func(t *testing.T) {
		c := createTestConsole(t)
		adapter := NewFastHTTPAdapter(c)

		adapter.Printf("warning: header too large")

		require.Len(t, c.Entries(), 1)
		assert.Equal(t, "console-entry console-warn", c.Entries()[0].Class())
	})

	t.Run("custom level detector", func(t *testing.T) {
		c := createTestConsole(t)
		adapter := NewFastHTTPAdapter(c, WithLevelDetector(func(string) int64 {
			return console.LevelError
		}))

		adapter.Printf("anything at all")

		require.Len(t, c.Entries(), 1)
		assert.Equal(t, "console-entry console-error", c.Entries()[0].Class())
	})

	t.Run("markup in framework messages is escaped", func(t *testing.T) {
		c := createTestConsole(t)
		adapter := NewFastHTTPAdapter(c)

		adapter.Printf("bad path %q", "/<script>")

		require.Len(t, c.Entries(), 1)
		html := string(c.Entries()[0].HTML())
		assert.NotContains(t, html, "<script>")
		assert.Contains(t, html, "&lt;script&gt;")
	})
}

func TestDetectLogLevel(t *testing.T) {
	assert.Equal(t, console.LevelError, DetectLogLevel("request FAILED"))
	assert.Equal(t, console.LevelError, DetectLogLevel("panic recovered"))
	assert.Equal(t, console.LevelWarn, DetectLogLevel("Warning: slow handler"))
	assert.Equal(t, console.LevelWarn, DetectLogLevel("deprecated option"))
	assert.Equal(t, console.LevelLog, DetectLogLevel("listening on :80"))
}
