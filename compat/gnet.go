// FILE: dash-website/console/compat/gnet.go
package compat

import (
	"fmt"
	"os"

	console "github.com/y21/dash-website"
)

// GnetAdapter wraps console.Console to implement gnet logging.Logger interface
type GnetAdapter struct {
	console      *console.Console
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(c *console.Console, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		console: c,
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// Debugf logs with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.console.Log(fmt.Sprintf(format, args...))
}

// Infof logs with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.console.Info(fmt.Sprintf(format, args...))
}

// Warnf logs at warning level with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.console.Warn(fmt.Sprintf(format, args...))
}

// Errorf logs at error level with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.console.Error(fmt.Sprintf(format, args...))
}

// Fatalf logs at error level and triggers the fatal handler
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.console.Error(msg)

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
