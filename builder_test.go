// FILE: dash-website/console/builder_test.go
package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderDefaults(t *testing.T) {
	c, err := NewBuilder().Build()
	require.NoError(t, err)

	cfg := c.GetConfig()
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestBuilderChaining(t *testing.T) {
	c, err := NewBuilder().
		Width("60em").
		Height("400px").
		CollapsedCap(3).
		MaxStringLen(20).
		MaxDepth(8).
		MaxToggleDepth(2).
		ShowContext(false).
		InternalErrorsToStderr(true).
		Build()
	require.NoError(t, err)

	cfg := c.GetConfig()
	assert.Equal(t, "60em", cfg.Width)
	assert.Equal(t, "400px", cfg.Height)
	assert.Equal(t, int64(3), cfg.CollapsedCap)
	assert.Equal(t, int64(20), cfg.MaxStringLen)
	assert.Equal(t, int64(8), cfg.MaxDepth)
	assert.Equal(t, int64(2), cfg.MaxToggleDepth)
	assert.False(t, cfg.ShowContext)
	assert.True(t, cfg.InternalErrorsToStderr)
}

func TestBuilderValidation(t *testing.T) {
	_, err := NewBuilder().CollapsedCap(0).Build()
	require.Error(t, err)

	_, err = NewBuilder().Width("").Build()
	require.Error(t, err)
}

func TestBuilderLimitsReachTheEngine(t *testing.T) {
	c, err := NewBuilder().MaxStringLen(4).Build()
	require.NoError(t, err)

	c.Log([]any{"abcdefgh"})
	html := string(c.Entries()[0].HTML())
	assert.Contains(t, html, "&quot;abcd&quot;")
	assert.True(t, strings.Contains(html, "…"), html)
}
