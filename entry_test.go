// FILE: dash-website/console/entry_test.go
package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/y21/dash-website/inspect"
)

func TestToggle(t *testing.T) {
	t.Run("flips between collapsed and expanded", func(t *testing.T) {
		c := NewConsole()
		c.Log(map[string]any{"a": 1, "b": 2})
		n := c.Entries()[0]

		require.True(t, strings.Contains(string(n.HTML()), inspect.GlyphCollapsed))

		require.True(t, c.Toggle(n))
		assert.Contains(t, string(n.HTML()), inspect.GlyphExpanded)
		assert.NotContains(t, string(n.HTML()), inspect.GlyphCollapsed)

		require.True(t, c.Toggle(n))
		assert.Contains(t, string(n.HTML()), inspect.GlyphCollapsed)
	})

	t.Run("expanded mode lifts the collapsed cap", func(t *testing.T) {
		c := NewConsole()
		c.Log(map[string]any{"a": 1, "b": 2, "c": 3, "d": 4, "e": 5, "f": 6, "g": 7})
		n := c.Entries()[0]
		require.Contains(t, string(n.HTML()), "…")

		require.True(t, c.Toggle(n))
		html := string(n.HTML())
		assert.Equal(t, 7, strings.Count(html, `<span class="key">`))
		assert.NotContains(t, html, "…")
	})

	t.Run("glyph-like argument text cannot pin the mode", func(t *testing.T) {
		c := NewConsole()
		c.Log("▾ decoy", map[string]any{"a": 1, "b": 2, "c": 3, "d": 4, "e": 5, "f": 6})
		n := c.Entries()[0]
		require.Contains(t, string(n.HTML()), "…")

		require.True(t, c.Toggle(n))
		html := string(n.HTML())
		assert.Equal(t, 6, strings.Count(html, `<span class="key">`))
		assert.NotContains(t, html, "…")

		require.True(t, c.Toggle(n))
		assert.Contains(t, string(n.HTML()), "…")
	})

	t.Run("record survives toggling", func(t *testing.T) {
		c := NewConsole()
		c.Log(map[string]any{"a": 1})
		n := c.Entries()[0]
		require.True(t, c.Toggle(n))
		_, ok := c.Lookup(n)
		assert.True(t, ok)
	})

	t.Run("unknown node", func(t *testing.T) {
		c := NewConsole()
		assert.False(t, c.Toggle(&Node{id: 42}))
		assert.False(t, c.Toggle(nil))
	})

	t.Run("cleared entry no longer toggles", func(t *testing.T) {
		c := NewConsole()
		c.Log(map[string]any{"a": 1})
		n := c.Entries()[0]
		c.Clear()
		assert.False(t, c.Toggle(n))
	})
}

func TestHandleClick(t *testing.T) {
	t.Run("direct click on an entry toggles it", func(t *testing.T) {
		c := NewConsole()
		c.Log(map[string]any{"a": 1})
		n := c.Entries()[0]

		require.True(t, c.HandleClick(n))
		assert.Contains(t, string(n.HTML()), inspect.GlyphExpanded)
	})

	t.Run("click on a nested child resolves the enclosing entry", func(t *testing.T) {
		c := NewConsole()
		c.Log(map[string]any{"a": 1})
		n := c.Entries()[0]

		child := n.NewChild().NewChild().NewChild()
		require.True(t, c.HandleClick(child))
		assert.Contains(t, string(n.HTML()), inspect.GlyphExpanded)
	})

	t.Run("ancestor search is depth bounded", func(t *testing.T) {
		c := NewConsole()
		c.Log(map[string]any{"a": 1})
		n := c.Entries()[0]

		atLimit := n
		for i := int64(0); i < c.GetConfig().MaxToggleDepth; i++ {
			atLimit = atLimit.NewChild()
		}
		require.True(t, c.HandleClick(atLimit))

		pastLimit := atLimit.NewChild()
		assert.False(t, c.HandleClick(pastLimit))
	})

	t.Run("non-expandable entries do not toggle", func(t *testing.T) {
		c := NewConsole()
		c.Log("just text", 42)
		n := c.Entries()[0]
		before := n.HTML()

		assert.False(t, c.HandleClick(n))
		assert.Equal(t, before, n.HTML())
	})

	t.Run("click outside any entry", func(t *testing.T) {
		c := NewConsole()
		assert.False(t, c.HandleClick(&Node{}))
		assert.False(t, c.HandleClick(nil))
	})
}
