// FILE: dash-website/console/entry.go
package console

import (
	"github.com/y21/dash-website/inspect"
)

// The store is an explicit side table from node ID to raw arguments. Eviction
// is tied to the node's lifecycle (Clear/Destroy) rather than to garbage
// collection, which gives the weak-association behavior without finalizers:
// the store never becomes the reason a node's raw data outlives the node.

// Lookup returns the raw argument list recorded for a node.
func (c *Console) Lookup(n *Node) ([]any, bool) {
	if n == nil {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	rec, ok := c.store[n.id]
	if !ok {
		return nil, false
	}
	return rec.args, true
}

// Toggle re-renders an entry in the opposite display mode. The current mode
// comes from the entry's record, never from the rendered markup, which an
// argument mimicking the toggle glyph could forge. Returns false for nodes
// with no record.
func (c *Console) Toggle(n *Node) bool {
	if n == nil {
		return false
	}

	c.mu.Lock()
	rec, ok := c.store[n.id]
	if !ok {
		c.mu.Unlock()
		return false
	}
	target := !rec.expanded
	args := rec.args
	prefix := rec.prefix
	c.mu.Unlock()

	// Re-run the formatter outside the lock; it touches no console state.
	frag := c.engine.Format(target, args...)

	c.mu.Lock()
	rec.expanded = target
	n.html = composeEntry(prefix, frag)
	c.mu.Unlock()
	return true
}

// HandleClick dispatches a click on an arbitrary node: it searches ancestors
// (bounded depth) for a registered entry and toggles it, but only when the
// entry contains an expandable rendering. Returns whether a toggle happened.
func (c *Console) HandleClick(n *Node) bool {
	cfg := c.getConfig()

	cur := n
	for i := int64(0); i <= cfg.MaxToggleDepth && cur != nil; i++ {
		args, ok := c.Lookup(cur)
		if !ok {
			cur = cur.parent
			continue
		}
		if !hasExpandable(args) {
			return false
		}
		return c.Toggle(cur)
	}
	return false
}

// hasExpandable reports whether any argument renders with a toggle arrow.
func hasExpandable(args []any) bool {
	for _, a := range args {
		if inspect.Expandable(a) {
			return true
		}
	}
	return false
}
