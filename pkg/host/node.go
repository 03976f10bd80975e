package host

import "github.com/vango-dev/keepfocus/pkg/vdom"

// Node is a live element or text node.
type Node struct {
	id       uint64
	kind     vdom.VKind
	tag      string
	key      string
	text     string
	attrs    []vdom.Attr
	handlers []vdom.EventHandler
	children []*Node

	// parent is a back reference for ancestry queries only.
	parent *Node
}

// ID returns the node's identifier, unique within its Document.
func (n *Node) ID() uint64 { return n.id }

// Kind returns whether the node is an element or a text node.
func (n *Node) Kind() vdom.VKind { return n.kind }

// IsText reports whether n is a text node.
func (n *Node) IsText() bool { return n != nil && n.kind == vdom.KindText }

// IsElement reports whether n is an element.
func (n *Node) IsElement() bool { return n != nil && n.kind == vdom.KindElement }

// Tag returns the element tag; empty for text nodes.
func (n *Node) Tag() string { return n.tag }

// Key returns the reconciliation key, if any.
func (n *Node) Key() string { return n.key }

// Text returns the content of a text node.
func (n *Node) Text() string { return n.text }

// Parent returns the node's parent, or nil when detached.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// Attrs returns a copy of the attributes in insertion order.
func (n *Node) Attrs() []vdom.Attr {
	out := make([]vdom.Attr, len(n.attrs))
	copy(out, n.attrs)
	return out
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(key string) (vdom.Value, bool) {
	if i := n.attrIndex(key); i >= 0 {
		return n.attrs[i].Value, true
	}
	return vdom.Value{}, false
}

// Handlers returns a copy of the bound handlers in binding order.
func (n *Node) Handlers() []vdom.EventHandler {
	out := make([]vdom.EventHandler, len(n.handlers))
	copy(out, n.handlers)
	return out
}

// Handler returns the handler bound to event, or nil.
func (n *Node) Handler(event string) *vdom.Handler {
	if i := n.handlerIndex(event); i >= 0 {
		return n.handlers[i].Handler
	}
	return nil
}

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int { return len(n.children) }

// Child returns the child at index i, or nil when out of range.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// IndexOf returns the index of child among n's children, or -1.
func (n *Node) IndexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// Contains reports whether other is n or a descendant of n.
func (n *Node) Contains(other *Node) bool {
	if n == nil {
		return false
	}
	for cur := other; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	if n == nil {
		return 0
	}
	total := 1
	for _, c := range n.children {
		total += c.Count()
	}
	return total
}

// Walk calls fn for n and every descendant in document order.
// Returning false from fn skips that node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

func (n *Node) attrIndex(key string) int {
	if n == nil {
		return -1
	}
	for i := range n.attrs {
		if n.attrs[i].Key == key {
			return i
		}
	}
	return -1
}

func (n *Node) handlerIndex(event string) int {
	if n == nil {
		return -1
	}
	for i := range n.handlers {
		if n.handlers[i].Event == event {
			return i
		}
	}
	return -1
}

func (n *Node) detach() {
	p := n.parent
	if p == nil {
		return
	}
	if i := p.IndexOf(n); i >= 0 {
		p.children = append(p.children[:i], p.children[i+1:]...)
	}
	n.parent = nil
}

func (n *Node) insertAt(child *Node, index int) {
	if index < 0 || index > len(n.children) {
		index = len(n.children)
	}
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	child.parent = n
}
