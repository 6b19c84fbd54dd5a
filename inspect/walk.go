// FILE: dash-website/console/inspect/walk.go
package inspect

import (
	"fmt"
	"reflect"

	"github.com/y21/dash-website/markup"
)

// property is one own property discovered during the structural walk. When
// getter is set the value was never read.
type property struct {
	key        string
	indexed    bool
	getter     bool
	enumerable bool
	value      any
}

// lineBreak separates properties in expanded mode.
const lineBreak = ",<br>"

// renderComposite walks a plain object or array. The walk enumerates own
// property names through descriptor introspection, renders a fixed marker for
// accessor-backed properties instead of invoking them, and bounds output with
// the collapsed-mode cap.
func (ins *Inspector) renderComposite(v any, ctx Context) (markup.Safe, error) {
	if frag, done := ins.enterComposite(v, ctx); done {
		return frag, nil
	}
	inner := ctx.nest()
	isArray := Classify(v) == KindArray

	props, err := ins.ownProperties(v, isArray)
	if err != nil {
		return "", err
	}

	arrow := markup.Safe(GlyphCollapsed)
	if ctx.Expanded {
		arrow = GlyphExpanded
	}

	prefix, err := ins.compositePrefix(v, isArray, len(props), inner)
	if err != nil {
		return "", err
	}

	capped := false
	if !ctx.Expanded && len(props) > ins.CollapsedCap {
		props = props[:ins.CollapsedCap]
		capped = true
	}

	parts := make([]markup.Safe, 0, len(props)+1)
	for _, p := range props {
		var frag markup.Safe
		if p.getter {
			frag = MarkerGetter
		} else {
			frag, err = ins.render(p.value, inner)
			if err != nil {
				return "", err
			}
		}
		if !p.indexed {
			frag = markup.SpanText("key", p.key) + ": " + frag
		}
		if !p.enumerable {
			frag = markup.Span("hidden", frag)
		}
		parts = append(parts, frag)
	}
	if capped {
		parts = append(parts, markerTruncated)
	}

	sep := ", "
	if ctx.Expanded {
		sep = lineBreak
	}
	body := ins.join(parts, sep)

	if isArray {
		return arrow + prefix + "[" + body + "]", nil
	}
	if len(parts) == 0 {
		return arrow + prefix + "{}", nil
	}
	return arrow + prefix + "{ " + body + " }", nil
}

// compositePrefix builds the type label for objects and the element-count
// prefix for arrays. Both pieces of metadata come from the value and are
// re-inspected before embedding.
func (ins *Inspector) compositePrefix(v any, isArray bool, propCount int, inner Context) (markup.Safe, error) {
	if isArray {
		length, trustedLen, err := arrayLength(v, propCount)
		if err != nil {
			return "", err
		}
		if trustedLen >= 0 && trustedLen < 2 {
			return "", nil
		}
		frag, err := ins.render(length, inner)
		if err != nil {
			return "", err
		}
		return "(" + frag + ") ", nil
	}

	if c, ok := v.(Constructed); ok {
		name := c.ConstructorName()
		if name != "" && name != "Object" {
			frag, err := ins.render(name, inner)
			if err != nil {
				return "", err
			}
			return frag + " ", nil
		}
		return "", nil
	}

	// Named Go structs carry their type name, which comes from the runtime
	// rather than the value and needs no neutralizing.
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Struct {
		if name := rv.Type().Name(); name != "" {
			return markup.Escape(name) + " ", nil
		}
	}
	return "", nil
}

// arrayLength reports the claimed length plus, when the claim is verifiable,
// its integer form for the "< 2 hides the prefix" rule. A hostile ArrayLength
// result is passed through untrusted (trusted = -1) so it still renders, but
// inspected.
func arrayLength(v any, propCount int) (length any, trusted int, err error) {
	if ao, ok := v.(ArrayObject); ok {
		l, err := ao.ArrayLength()
		if err != nil {
			return nil, -1, err
		}
		if n, ok := l.(int); ok {
			return n, n, nil
		}
		return l, -1, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		n := rv.Len()
		return n, n, nil
	}
	return propCount, propCount, nil
}

// ownProperties enumerates own property names, including non-enumerable ones,
// without invoking any iteration behavior the value could redirect.
func (ins *Inspector) ownProperties(v any, isArray bool) ([]property, error) {
	if obj, ok := v.(Object); ok {
		return objectProperties(obj, isArray)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.Elem().Kind() == reflect.Struct {
			return structProperties(rv.Elem()), nil
		}
	case reflect.Struct:
		return structProperties(rv), nil
	case reflect.Map:
		return ins.mapProperties(rv), nil
	case reflect.Slice, reflect.Array:
		return sliceProperties(rv), nil
	}
	return nil, nil
}

func objectProperties(obj Object, isArray bool) ([]property, error) {
	names, err := obj.PropertyNames()
	if err != nil {
		return nil, err
	}
	props := make([]property, 0, len(names))
	for _, name := range names {
		desc, err := obj.Property(name)
		if err != nil {
			return nil, err
		}
		props = append(props, property{
			key:        name,
			indexed:    isArray && isIndexKey(name),
			getter:     desc.Getter,
			enumerable: desc.Enumerable,
			value:      desc.Value,
		})
	}
	return props, nil
}

func structProperties(rv reflect.Value) []property {
	t := rv.Type()
	props := make([]property, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		props = append(props, property{
			key:        f.Name,
			enumerable: true,
			value:      rv.Field(i).Interface(),
		})
	}
	return props
}

func (ins *Inspector) mapProperties(rv reflect.Value) []property {
	keys := rv.MapKeys()
	names := make([]string, 0, len(keys))
	byName := make(map[string]reflect.Value, len(keys))
	for _, k := range keys {
		var name string
		if k.Kind() == reflect.String {
			name = k.String()
		} else {
			name = fmt.Sprintf("%v", k.Interface())
		}
		names = append(names, name)
		byName[name] = k
	}
	ins.ops.SortStrings(names)

	props := make([]property, 0, len(names))
	for _, name := range names {
		props = append(props, property{
			key:        name,
			enumerable: true,
			value:      rv.MapIndex(byName[name]).Interface(),
		})
	}
	return props
}

func sliceProperties(rv reflect.Value) []property {
	props := make([]property, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		props = append(props, property{
			key:        fmt.Sprintf("%d", i),
			indexed:    true,
			enumerable: true,
			value:      rv.Index(i).Interface(),
		})
	}
	return props
}

// isIndexKey reports a canonical array index: "0" or digits without a leading
// zero.
func isIndexKey(s string) bool {
	if s == "" {
		return false
	}
	if s == "0" {
		return true
	}
	if s[0] < '1' || s[0] > '9' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
