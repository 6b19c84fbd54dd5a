// FILE: dash-website/console/builder.go
package console

// Builder provides a fluent API for building console configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg *Config
	err error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new Console instance with the specified configuration.
func (b *Builder) Build() (*Console, error) {
	if b.err != nil {
		return nil, b.err
	}

	c := NewConsole()

	// ApplyConfig handles validation.
	if err := c.ApplyConfig(b.cfg); err != nil {
		return nil, err
	}

	return c, nil
}

// Width sets the mount width.
func (b *Builder) Width(width string) *Builder {
	b.cfg.Width = width
	return b
}

// Height sets the mount height.
func (b *Builder) Height(height string) *Builder {
	b.cfg.Height = height
	return b
}

// CollapsedCap sets the maximum property count shown in collapsed mode.
func (b *Builder) CollapsedCap(cap int64) *Builder {
	b.cfg.CollapsedCap = cap
	return b
}

// MaxStringLen sets the nested string truncation length.
func (b *Builder) MaxStringLen(n int64) *Builder {
	b.cfg.MaxStringLen = n
	return b
}

// MaxDepth sets the recursion bound for nested composites.
func (b *Builder) MaxDepth(n int64) *Builder {
	b.cfg.MaxDepth = n
	return b
}

// MaxToggleDepth sets the ancestor search depth for click dispatch.
func (b *Builder) MaxToggleDepth(n int64) *Builder {
	b.cfg.MaxToggleDepth = n
	return b
}

// ShowContext toggles the caller-location annotation on entries.
func (b *Builder) ShowContext(show bool) *Builder {
	b.cfg.ShowContext = show
	return b
}

// InternalErrorsToStderr toggles writing engine faults to stderr.
func (b *Builder) InternalErrorsToStderr(enable bool) *Builder {
	b.cfg.InternalErrorsToStderr = enable
	return b
}
