// FILE: dash-website/console/console.go
// Package console renders the results of evaluating untrusted playground code
// as styled, HTML-safe markup entries, in the manner of a browser developer
// console. Attempting to display a value can never crash the host: hostile
// values degrade to fixed markers, one bad argument never suppresses its
// siblings, and no markup from an inspected value ever reaches the document
// unescaped.
package console

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/y21/dash-website/inspect"
	"github.com/y21/dash-website/markup"
	"github.com/y21/dash-website/native"
)

// Console is the debug console widget. All entry points are safe to call from
// the host's single logical thread; shared state is still mutex-guarded so a
// misbehaving host corrupts nothing.
type Console struct {
	currentConfig atomic.Value // stores *Config

	mu      sync.Mutex
	root    *Node
	entries []*Node
	store   map[uint64]*logRecord
	timers  map[string]time.Time
	nextID  uint64

	destroyed bool

	ops    *native.Ops
	engine *inspect.Inspector
}

// NewConsole creates a console with default settings
func NewConsole() *Console {
	c := &Console{
		ops:    native.Default(),
		store:  make(map[uint64]*logRecord),
		timers: make(map[string]time.Time),
	}

	cfg := DefaultConfig()
	c.currentConfig.Store(cfg)

	c.engine = inspect.New(c.ops)
	c.engine.Diag = c.internalLog
	c.applyLimits(cfg)

	c.root = &Node{class: "console"}
	return c
}

// ApplyConfig applies a validated configuration to the console
func (c *Console) ApplyConfig(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("configuration cannot be nil")
	}

	if err := cfg.validate(); err != nil {
		return err
	}

	c.currentConfig.Store(cfg)
	c.applyLimits(cfg)
	return nil
}

// GetConfig returns a copy of current configuration
func (c *Console) GetConfig() *Config {
	return c.getConfig().Clone()
}

// Mount attaches the console root under the host's container node and returns
// the root. Logging works without a mount; mounting only places the transcript
// in the host's node tree.
func (c *Console) Mount(container *Node) (*Node, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed {
		return nil, fmtErrorf("console has been destroyed")
	}
	c.root.parent = container
	return c.root, nil
}

// Style returns the CSS dimensions for the mount container.
func (c *Console) Style() string {
	cfg := c.getConfig()
	return "width:" + cfg.Width + ";height:" + cfg.Height
}

// Root returns the console's root node, nil after Destroy.
func (c *Console) Root() *Node {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.root
}

// Log renders the arguments as one collapsed console entry
func (c *Console) Log(args ...any) {
	c.write(LevelLog, classEntry, "", entrySkip, args)
}

// Info is an alias of Log
func (c *Console) Info(args ...any) {
	c.write(LevelLog, classEntry, "", entrySkip, args)
}

// Warn renders the arguments as a warning entry
func (c *Console) Warn(args ...any) {
	c.write(LevelWarn, classWarn, "", entrySkip, args)
}

// Error renders the arguments as an error entry
func (c *Console) Error(args ...any) {
	c.write(LevelError, classError, "", entrySkip, args)
}

// Assert renders nothing when the condition holds; otherwise it behaves as
// Error with an "Assertion failed:" prefix. The prefix is prepended to the
// rendered output, so a leading template string still substitutes.
func (c *Console) Assert(condition bool, args ...any) {
	if condition {
		return
	}
	c.write(LevelError, classError, markup.Escape(assertPrefix), entrySkip, args)
}

// Clear removes all rendered entries and evicts their raw-argument records.
// Active timers survive a clear.
func (c *Console) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = nil
	c.store = make(map[uint64]*logRecord)
}

// Destroy clears the transcript and releases the mount reference. The console
// drops all subsequent calls.
func (c *Console) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = nil
	c.store = make(map[uint64]*logRecord)
	c.timers = make(map[string]time.Time)
	c.root = nil
	c.destroyed = true
}

// Entries returns the rendered entry nodes in insertion order.
func (c *Console) Entries() []*Node {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*Node, len(c.entries))
	copy(out, c.entries)
	return out
}

// entrySkip is the callerContext skip for the common path: user call site ->
// public entry point -> write. Paths with an extra internal frame pass
// entrySkip+1.
const entrySkip = 2

// write is the shared entry path. Formatting happens outside the lock; the
// engine guarantees it cannot panic past the per-argument boundary.
func (c *Console) write(level int64, class string, prefix markup.Safe, skip int, args []any) *Node {
	cfg := c.getConfig()

	frag := composeEntry(prefix, c.engine.Format(false, args...))

	context := ""
	if cfg.ShowContext {
		context = callerContext(skip)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed {
		return nil
	}

	c.nextID++
	node := &Node{
		id:      c.nextID,
		parent:  c.root,
		class:   class,
		html:    frag,
		context: context,
	}
	c.entries = append(c.entries, node)
	c.store[node.id] = &logRecord{level: level, args: args, prefix: prefix}
	return node
}

// composeEntry attaches an optional already-safe prefix to a rendered
// fragment.
func composeEntry(prefix, frag markup.Safe) markup.Safe {
	if prefix == "" {
		return frag
	}
	if frag == "" {
		return prefix
	}
	return prefix + " " + frag
}

// getConfig returns the current configuration (thread-safe)
func (c *Console) getConfig() *Config {
	return c.currentConfig.Load().(*Config)
}

// applyLimits pushes config limits into the rendering engine
func (c *Console) applyLimits(cfg *Config) {
	c.engine.CollapsedCap = int(cfg.CollapsedCap)
	c.engine.MaxStringLen = int(cfg.MaxStringLen)
	c.engine.MaxDepth = int(cfg.MaxDepth)
}

// internalLog handles writing internal diagnostics to stderr, if enabled.
func (c *Console) internalLog(format string, args ...any) {
	cfg := c.getConfig()
	if !cfg.InternalErrorsToStderr {
		return
	}

	if len(format) < 9 || format[:9] != "console: " {
		format = "console: " + format
	}

	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
