// FILE: dash-website/console/inspect/format_test.go
package inspect

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTemplate(t *testing.T) {
	ins := New(nil)

	t.Run("placeholders consume trailing arguments", func(t *testing.T) {
		out := ins.Format(false, "%s is %d", "x", 5)
		assert.Equal(t, `x is <span class="number">5</span>`, string(out))
	})

	t.Run("all specifier letters substitute", func(t *testing.T) {
		out := ins.Format(false, "%s %d %i %f %o %O %j", "a", 1, 2, 3.5, 4, 5, 6)
		assert.NotContains(t, string(out), "%")
	})

	t.Run("escaped percent", func(t *testing.T) {
		out := ins.Format(false, "%d%% done", 50)
		assert.Equal(t, `<span class="number">50</span>% done`, string(out))
	})

	t.Run("leftover placeholders emit literally", func(t *testing.T) {
		out := ins.Format(false, "a %s b %s", "x")
		assert.Equal(t, "a x b %s", string(out))
	})

	t.Run("unused arguments are appended", func(t *testing.T) {
		out := ins.Format(false, "n: %d", 1, "extra")
		assert.Equal(t, `n: <span class="number">1</span> extra`, string(out))
	})

	t.Run("unknown verb is literal text", func(t *testing.T) {
		out := ins.Format(false, "%q %s", "x")
		assert.Equal(t, "%q x", string(out))
	})

	t.Run("lone trailing percent", func(t *testing.T) {
		out := ins.Format(false, "50%% off, %s", "today")
		assert.Equal(t, "50% off, today", string(out))
	})

	t.Run("template literals are escaped", func(t *testing.T) {
		out := ins.Format(false, "<b>%s</b>", "x")
		assert.Equal(t, "&lt;b&gt;x&lt;/b&gt;", string(out))
	})
}

func TestFormatWithoutTemplate(t *testing.T) {
	ins := New(nil)

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", string(ins.Format(false)))
	})

	t.Run("single string prints bare", func(t *testing.T) {
		assert.Equal(t, "hello", string(ins.Format(false, "hello")))
	})

	t.Run("arguments join with spaces", func(t *testing.T) {
		out := ins.Format(false, "a", 1)
		assert.Equal(t, `a <span class="number">1</span>`, string(out))
	})

	t.Run("first non-string argument disables templating", func(t *testing.T) {
		out := ins.Format(false, 1, "%d")
		assert.Equal(t, `<span class="number">1</span> %d`, string(out))
	})

	t.Run("string with only escaped percents is not a template", func(t *testing.T) {
		out := ins.Format(false, "100%% sure")
		assert.Equal(t, "100%% sure", string(out))
	})

	t.Run("expanded mode reaches the arguments", func(t *testing.T) {
		out := ins.Format(true, map[string]any{"a": 1})
		assert.Contains(t, string(out), GlyphExpanded)
	})
}

func TestInspectArgFaultIsolation(t *testing.T) {
	t.Run("panicking value collapses to the marker", func(t *testing.T) {
		ins := New(nil)
		out := ins.InspectArg(panicObject{}, false)
		assert.Equal(t, MarkerUnknown, out)
	})

	t.Run("read error collapses to the marker", func(t *testing.T) {
		ins := New(nil)
		obj := &stubObject{nameErr: errors.New("revoked")}
		out := ins.InspectArg(obj, false)
		assert.Equal(t, MarkerUnknown, out)
	})

	t.Run("sibling arguments still render", func(t *testing.T) {
		ins := New(nil)
		out := ins.Format(false, panicObject{}, "ok")
		assert.Equal(t, "[Unknown] ok", string(out))
	})

	t.Run("faulting substitution keeps the template", func(t *testing.T) {
		ins := New(nil)
		out := ins.Format(false, "got %o here", panicObject{})
		assert.Equal(t, "got [Unknown] here", string(out))
	})

	t.Run("diagnostics report the fault", func(t *testing.T) {
		ins := New(nil)
		var got string
		ins.Diag = func(format string, args ...any) {
			got = fmt.Sprintf(format, args...)
		}
		out := ins.InspectArg(&stubObject{nameErr: errors.New("revoked")}, false)
		require.Equal(t, MarkerUnknown, out)
		assert.Contains(t, got, "revoked")
		assert.Contains(t, got, "object")
	})

	t.Run("healthy values bypass the marker", func(t *testing.T) {
		ins := New(nil)
		assert.Equal(t, "hi", string(ins.InspectArg("hi", false)))
	})
}

func TestHasSpecifier(t *testing.T) {
	assert.True(t, hasSpecifier("%s"))
	assert.True(t, hasSpecifier("a %d b"))
	assert.False(t, hasSpecifier("plain"))
	assert.False(t, hasSpecifier("%%"))
	assert.False(t, hasSpecifier("%q"))
	assert.False(t, hasSpecifier("%"))
	assert.True(t, hasSpecifier("%%%s"))
}
