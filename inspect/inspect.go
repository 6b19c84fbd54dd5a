// FILE: dash-website/console/inspect/inspect.go
// Package inspect converts arbitrary, possibly adversarial values into
// HTML-safe markup fragments. The engine never trusts a value: property getters
// are reported rather than invoked, reported sizes and names are re-inspected
// before embedding, cycles terminate at a fixed marker, and a fault while
// reading one argument never suppresses output for its siblings.
package inspect

import (
	"bytes"
	"math/big"
	"reflect"
	"regexp"
	"runtime"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/y21/dash-website/markup"
	"github.com/y21/dash-website/native"
)

// Toggle glyphs prepended to expandable renderings. The console detects the
// current display mode of an entry from these.
const (
	GlyphCollapsed = "▸ " // ▸
	GlyphExpanded  = "▾ " // ▾
)

// Fixed markers. They contain no markup-significant characters and are safe to
// embed directly.
const (
	MarkerGetter   markup.Safe = "[Getter]"
	MarkerCircular markup.Safe = "[Circular]"
	MarkerUnknown  markup.Safe = "[Unknown]"

	markerTruncated markup.Safe = "…" // …
	anonymousFunc               = "ƒ (anonymous)"
)

// Default limits.
const (
	DefaultMaxStringLen = 100
	DefaultCollapsedCap = 5
	DefaultMaxDepth     = 32
)

// Inspector renders values under configured limits. The zero value is not
// usable; construct with New.
type Inspector struct {
	ops *native.Ops

	// MaxStringLen caps nested string and function source length, in runes.
	MaxStringLen int

	// CollapsedCap bounds the property count shown in collapsed mode.
	CollapsedCap int

	// MaxDepth bounds recursion into non-cyclic but deeply nested structures.
	MaxDepth int

	// Diag, when set, receives internal diagnostics for faults that were
	// replaced by markers. Never called with user-controlled format strings.
	Diag func(format string, args ...any)

	dump *spew.ConfigState
}

// New creates an Inspector routed through the given operation snapshot.
func New(ops *native.Ops) *Inspector {
	if ops == nil {
		ops = native.Default()
	}
	return &Inspector{
		ops:          ops,
		MaxStringLen: DefaultMaxStringLen,
		CollapsedCap: DefaultCollapsedCap,
		MaxDepth:     DefaultMaxDepth,
		dump: &spew.ConfigState{
			Indent:                  " ",
			MaxDepth:                10,
			DisablePointerAddresses: true,
			DisableCapacities:       true,
			SortKeys:                true,
		},
	}
}

// Context carries the traversal state threaded through one top-level
// inspection. A fresh visited set is created per top-level call and never
// shared across calls.
type Context struct {
	// Nested is true when the current value sits inside a composite; it
	// switches strings to quoted, truncated form.
	Nested bool

	// Expanded selects the display density for composite values.
	Expanded bool

	depth   int
	visited map[identityKey]struct{}
}

// nest returns the context for one level deeper. Value semantics; the visited
// set is deliberately the shared per-call map.
func (c Context) nest() Context {
	c.Nested = true
	c.depth++
	return c
}

// Inspect renders a single value at top level. Faults surface as errors; use
// InspectArg for the isolated, marker-producing form.
func (ins *Inspector) Inspect(v any, expanded bool) (markup.Safe, error) {
	ctx := Context{Expanded: expanded, visited: make(map[identityKey]struct{})}
	return ins.render(v, ctx)
}

// Expandable reports whether a value renders with a toggle arrow.
func Expandable(v any) bool {
	switch Classify(v) {
	case KindArray, KindObject:
		return true
	}
	return false
}

// render dispatches on the classified category. All returned fragments are
// markup-safe by construction.
func (ins *Inspector) render(v any, ctx Context) (markup.Safe, error) {
	switch Classify(v) {
	case KindNullish:
		return markup.SpanText("null", "null"), nil

	case KindString:
		return ins.renderString(v.(string), ctx), nil

	case KindNumber:
		return markup.SpanText("number", formatNumber(v)), nil

	case KindBool:
		return markup.SpanText("number", strconv.FormatBool(v.(bool))), nil

	case KindBigInt:
		return markup.SpanText("bigint", bigIntText(v)+"n"), nil

	case KindFunction:
		return ins.renderFunction(v, ctx), nil

	case KindError:
		return markup.SpanText("error", errorText(v)), nil

	case KindRegexp:
		return markup.SpanText("regexp", v.(*regexp.Regexp).String()), nil

	case KindSet:
		return ins.renderCollection(v, ctx)

	case KindMap:
		return ins.renderCollection(v, ctx)

	case KindWeakSet:
		return weakMarker("WeakSet"), nil

	case KindWeakMap:
		return weakMarker("WeakMap"), nil

	case KindArray, KindObject:
		return ins.renderComposite(v, ctx)

	default:
		return ins.renderOther(v), nil
	}
}

// renderString quotes and truncates only in nested position; a top-level
// string prints bare. Content is escaped either way.
func (ins *Inspector) renderString(s string, ctx Context) markup.Safe {
	if !ctx.Nested {
		return markup.Escape(s)
	}
	body := `"` + ins.ops.Truncate(s, ins.MaxStringLen) + `"`
	frag := markup.SpanText("string", body)
	if len([]rune(s)) > ins.MaxStringLen {
		frag += markerTruncated
	}
	return frag
}

// join concatenates already-safe fragments through the captured join
// operation.
func (ins *Inspector) join(parts []markup.Safe, sep string) markup.Safe {
	ss := make([]string, len(parts))
	for i, p := range parts {
		ss[i] = string(p)
	}
	return markup.Safe(ins.ops.Join(ss, sep))
}

func (ins *Inspector) renderFunction(v any, ctx Context) markup.Safe {
	name, source := ins.funcShape(v)
	if name == "" {
		return markup.SpanText("function", anonymousFunc)
	}
	if ctx.Nested {
		return markup.SpanText("function", "ƒ "+name+"()")
	}
	if source == "" {
		source = name + "()"
	}
	body := ins.ops.Truncate(source, ins.MaxStringLen)
	frag := markup.SpanText("function", "ƒ "+body)
	if len([]rune(source)) > ins.MaxStringLen {
		frag += markerTruncated
	}
	return frag
}

// funcShape extracts name and source without going through the value's own
// stringer. Callable provides both; a plain Go func yields its runtime name.
func (ins *Inspector) funcShape(v any) (name, source string) {
	if c, ok := v.(Callable); ok {
		return c.FuncName(), c.FuncSource()
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return "", ""
	}
	fn := runtime.FuncForPC(rv.Pointer())
	if fn == nil {
		return "", ""
	}
	full := fn.Name()
	if i := strings.LastIndexByte(full, '.'); i >= 0 {
		full = full[i+1:]
	}
	// Compiler-generated names for closures are not function names. Nested
	// closures end in bare numeric segments.
	if full == "" || ins.ops.HasPrefix(full, "func") || isDigits(full) {
		return "", ""
	}
	return full, ""
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

// renderCollection handles enumerable sets and maps. The reported size is
// itself inspected before embedding because a hostile implementation may
// return markup from Size.
func (ins *Inspector) renderCollection(v any, ctx Context) (markup.Safe, error) {
	if frag, done := ins.enterComposite(v, ctx); done {
		return frag, nil
	}
	inner := ctx.nest()

	switch c := v.(type) {
	case SetValue:
		size, err := c.Size()
		if err != nil {
			return "", err
		}
		sizeFrag, err := ins.render(size, inner)
		if err != nil {
			return "", err
		}
		elems, err := c.Elements()
		if err != nil {
			return "", err
		}
		parts := make([]markup.Safe, 0, len(elems))
		for _, e := range elems {
			frag, err := ins.render(e, inner)
			if err != nil {
				return "", err
			}
			parts = append(parts, frag)
		}
		return "Set(" + sizeFrag + ") { " + ins.join(parts, ", ") + " }", nil

	case MapValue:
		size, err := c.Size()
		if err != nil {
			return "", err
		}
		sizeFrag, err := ins.render(size, inner)
		if err != nil {
			return "", err
		}
		entries, err := c.Entries()
		if err != nil {
			return "", err
		}
		parts := make([]markup.Safe, 0, len(entries))
		for _, kv := range entries {
			kf, err := ins.render(kv[0], inner)
			if err != nil {
				return "", err
			}
			vf, err := ins.render(kv[1], inner)
			if err != nil {
				return "", err
			}
			parts = append(parts, kf+" =&gt; "+vf)
		}
		return "Map(" + sizeFrag + ") { " + ins.join(parts, ", ") + " }", nil
	}

	return ins.renderOther(v), nil
}

func weakMarker(label string) markup.Safe {
	return markup.Safe(label) + " { " + markup.SpanText("hidden", "<items unknown>") + " }"
}

func (ins *Inspector) renderOther(v any) markup.Safe {
	var b bytes.Buffer
	ins.dump.Fdump(&b, v)
	return markup.SpanText("other", string(bytes.TrimSpace(b.Bytes())))
}

// enterComposite performs the shared visited-set and depth bookkeeping for any
// composite category. It reports (marker, true) when the value must not be
// entered: already visited, or past the depth bound.
func (ins *Inspector) enterComposite(v any, ctx Context) (markup.Safe, bool) {
	if ctx.depth >= ins.MaxDepth {
		return markerTruncated, true
	}
	id, ok := identityOf(v)
	if !ok {
		return "", false
	}
	if _, seen := ctx.visited[id]; seen {
		return MarkerCircular, true
	}
	ctx.visited[id] = struct{}{}
	return "", false
}

// identityOf produces a visited-set key. Only pointer-shaped kinds are
// tracked: a cycle needs a reference link, so a value copy can never be
// reachable from itself. Untracked deep nesting is bounded by MaxDepth.
type identityKey struct {
	ptr  uintptr
	kind reflect.Kind
}

func identityOf(v any) (identityKey, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.UnsafePointer:
		return identityKey{ptr: rv.Pointer(), kind: rv.Kind()}, true
	}
	return identityKey{}, false
}

func formatNumber(v any) string {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n)
	case int8:
		return strconv.FormatInt(int64(n), 10)
	case int16:
		return strconv.FormatInt(int64(n), 10)
	case int32:
		return strconv.FormatInt(int64(n), 10)
	case int64:
		return strconv.FormatInt(n, 10)
	case uint:
		return strconv.FormatUint(uint64(n), 10)
	case uint8:
		return strconv.FormatUint(uint64(n), 10)
	case uint16:
		return strconv.FormatUint(uint64(n), 10)
	case uint32:
		return strconv.FormatUint(uint64(n), 10)
	case uint64:
		return strconv.FormatUint(n, 10)
	case uintptr:
		return strconv.FormatUint(uint64(n), 10)
	case float32:
		return strconv.FormatFloat(float64(n), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64)
	}
	return "NaN"
}

func bigIntText(v any) string {
	switch b := v.(type) {
	case *big.Int:
		return b.String()
	case BigIntValue:
		return b.BigInt()
	}
	return "0"
}

func errorText(v any) string {
	if st, ok := v.(StackTracer); ok {
		if s := st.Stack(); s != "" {
			return s
		}
	}
	if err, ok := v.(error); ok {
		return err.Error()
	}
	return "error"
}
