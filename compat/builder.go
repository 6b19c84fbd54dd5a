// FILE: dash-website/console/compat/builder.go
// Package compat exposes the debug console behind the logger interfaces of
// fasthttp and gnet, so a playground host server can route its own framework
// logs into the same transcript that shows the user's evaluation results.
package compat

import (
	"fmt"

	console "github.com/y21/dash-website"
)

// Builder provides a flexible way to create configured console adapters for gnet and fasthttp
// It can use an existing *console.Console instance or create a new one from a *console.Config
type Builder struct {
	console *console.Console
	cfg     *console.Config
	err     error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithConsole specifies an existing console to use for the adapters
// Recommended for hosts that already have a mounted console instance
// If this is set WithConfig is ignored
func (b *Builder) WithConsole(c *console.Console) *Builder {
	if c == nil {
		b.err = fmt.Errorf("console/compat: provided console cannot be nil")
		return b
	}
	b.console = c
	return b
}

// WithConfig provides a configuration for a new console instance
// This is used only if an existing console is NOT provided via WithConsole
// If neither WithConsole nor WithConfig is used, a default console will be created
func (b *Builder) WithConfig(cfg *console.Config) *Builder {
	b.cfg = cfg
	return b
}

// getConsole resolves the console to be used, creating one if necessary
func (b *Builder) getConsole() (*console.Console, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.console != nil {
		return b.console, nil
	}

	c := console.NewConsole()
	cfg := b.cfg
	if cfg == nil {
		cfg = console.DefaultConfig()
	}

	if err := c.ApplyConfig(cfg); err != nil {
		return nil, err
	}

	// Cache the newly created console for subsequent builds with this builder
	b.console = c
	return c, nil
}

// BuildGnet creates a gnet adapter
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	c, err := b.getConsole()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(c, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	c, err := b.getConsole()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(c, opts...), nil
}
