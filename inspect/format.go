// FILE: dash-website/console/inspect/format.go
package inspect

import (
	"strings"

	"github.com/y21/dash-website/markup"
)

// specifiers are the recognized placeholder characters following a percent
// sign. "%%" escapes a literal percent.
const specifiers = "sdifoOj"

// Format combines a variadic argument list into one safe fragment. When the
// first argument is a template string with placeholders, each placeholder
// consumes the next unused trailing argument; leftover placeholders emit
// literally and unconsumed arguments are appended, each independently
// inspected. Without a template every argument is inspected and joined with a
// single space. Each argument formats under isolated fault handling, so one
// hostile value cannot suppress output for the rest.
func (ins *Inspector) Format(expanded bool, args ...any) markup.Safe {
	if len(args) == 0 {
		return ""
	}

	tmpl, ok := args[0].(string)
	if !ok || !hasSpecifier(tmpl) {
		parts := make([]markup.Safe, 0, len(args))
		for _, a := range args {
			parts = append(parts, ins.InspectArg(a, expanded))
		}
		return ins.join(parts, " ")
	}

	rest := args[1:]
	next := 0
	var out markup.Safe

	for i := 0; i < len(tmpl); {
		if tmpl[i] == '%' && i+1 < len(tmpl) {
			d := tmpl[i+1]
			if d == '%' {
				out += "%"
				i += 2
				continue
			}
			if strings.IndexByte(specifiers, d) >= 0 {
				if next < len(rest) {
					out += ins.InspectArg(rest[next], expanded)
					next++
				} else {
					out += markup.Escape(tmpl[i : i+2])
				}
				i += 2
				continue
			}
		}
		start := i
		for i < len(tmpl) && tmpl[i] != '%' {
			i++
		}
		if i == start {
			i++ // lone trailing '%'
		}
		out += markup.Escape(tmpl[start:i])
	}

	for ; next < len(rest); next++ {
		out += " " + ins.InspectArg(rest[next], expanded)
	}
	return out
}

// InspectArg renders one value with the per-argument fault boundary: any
// panic or read error inside the walk collapses to a fixed marker for this
// argument only.
func (ins *Inspector) InspectArg(v any, expanded bool) (frag markup.Safe) {
	defer func() {
		if r := recover(); r != nil {
			ins.diag("console: fault while inspecting %s value: %v", Classify(v), r)
			frag = MarkerUnknown
		}
	}()

	f, err := ins.Inspect(v, expanded)
	if err != nil {
		ins.diag("console: fault while inspecting %s value: %v", Classify(v), err)
		return MarkerUnknown
	}
	return f
}

func (ins *Inspector) diag(format string, args ...any) {
	if ins.Diag != nil {
		ins.Diag(format, args...)
	}
}

// hasSpecifier reports whether s contains at least one recognized placeholder.
func hasSpecifier(s string) bool {
	for i := 0; i+1 < len(s); i++ {
		if s[i] != '%' {
			continue
		}
		if s[i+1] == '%' {
			i++
			continue
		}
		if strings.IndexByte(specifiers, s[i+1]) >= 0 {
			return true
		}
	}
	return false
}
