// FILE: dash-website/console/markup/markup.go
// Package markup builds HTML-safe fragments for the debug console. The only way
// to obtain a Safe value is through Escape or through combinators that accept
// already-safe input, so a fragment that reaches the DOM layer cannot carry
// unescaped user content.
package markup

import "strings"

// Safe is an HTML fragment whose user-originated content is already escaped.
// Wrapping combinators never re-escape a Safe value.
type Safe string

// String returns the fragment ready for insertion into the document.
func (s Safe) String() string { return string(s) }

// Escape converts arbitrary text to a Safe fragment. The five characters with
// meaning in HTML content or attribute position are replaced.
func Escape(text string) Safe {
	var b strings.Builder
	last := 0
	for i := 0; i < len(text); i++ {
		var repl string
		switch text[i] {
		case '&':
			repl = "&amp;"
		case '<':
			repl = "&lt;"
		case '>':
			repl = "&gt;"
		case '"':
			repl = "&quot;"
		case '\'':
			repl = "&#39;"
		default:
			continue
		}
		b.WriteString(text[last:i])
		b.WriteString(repl)
		last = i + 1
	}
	if last == 0 {
		return Safe(text)
	}
	b.WriteString(text[last:])
	return Safe(b.String())
}

// Span wraps an already-safe fragment in a styled span. The class name is a
// compile-time constant at every call site and is not escaped.
func Span(class string, inner Safe) Safe {
	return `<span class="` + Safe(class) + `">` + inner + `</span>`
}

// SpanText escapes text and wraps it in a styled span.
func SpanText(class, text string) Safe {
	return Span(class, Escape(text))
}
