// FILE: dash-website/console/type.go
package console

import (
	"github.com/y21/dash-website/markup"
)

// Node is one rendered node in the console transcript. It stands in for the
// DOM element of the host integration: it carries the markup fragment, a
// class list for styling, and a parent link used by click dispatch.
type Node struct {
	id      uint64
	parent  *Node
	class   string
	html    markup.Safe
	context string
}

// HTML returns the node's current markup fragment.
func (n *Node) HTML() markup.Safe { return n.html }

// Class returns the node's class list.
func (n *Node) Class() string { return n.class }

// Parent returns the enclosing node, nil at the root.
func (n *Node) Parent() *Node { return n.parent }

// Context returns the caller-location annotation of a log entry, or the empty
// string for non-entry nodes.
func (n *Node) Context() string { return n.context }

// NewChild creates an unstyled child node. Hosts use it to model nested DOM
// structure inside an entry so that click dispatch can resolve the enclosing
// entry through the parent chain.
func (n *Node) NewChild() *Node {
	return &Node{parent: n}
}

// logRecord pairs a rendered node with the raw arguments that produced it.
// Records live in the console's side table and are evicted when the node is
// cleared or detached, so retaining a node never leaks the raw data beyond
// the node's own lifetime. The current display mode lives here rather than
// being inferred from the markup, which an argument could mimic.
type logRecord struct {
	level    int64
	args     []any
	prefix   markup.Safe
	expanded bool
}
