package host

import (
	"fmt"

	"github.com/vango-dev/keepfocus/internal/errors"
	"github.com/vango-dev/keepfocus/pkg/vdom"
)

// RootTag is the tag of a Document's root element.
const RootTag = "body"

// Observer receives every mutation applied through a Document.
type Observer func(Mutation)

// Document is a live tree with a single focus holder.
type Document struct {
	root      *Node
	focused   *Node
	nextID    uint64
	observers map[int]Observer
	observerN int
}

// NewDocument creates a document with an empty root element.
func NewDocument() *Document {
	d := &Document{observers: make(map[int]Observer)}
	d.root = d.newNode(vdom.KindElement, RootTag)
	return d
}

// Root returns the document's root element.
func (d *Document) Root() *Node {
	return d.root
}

// Observe registers fn for all subsequent mutations and returns a function
// that removes it.
func (d *Document) Observe(fn Observer) func() {
	id := d.observerN
	d.observerN++
	d.observers[id] = fn
	return func() { delete(d.observers, id) }
}

func (d *Document) emit(m Mutation) {
	for i := 0; i < d.observerN; i++ {
		if fn, ok := d.observers[i]; ok {
			fn(m)
		}
	}
}

func (d *Document) newNode(kind vdom.VKind, tag string) *Node {
	d.nextID++
	return &Node{id: d.nextID, kind: kind, tag: tag}
}

// CreateNode builds a detached subtree from desc.
func (d *Document) CreateNode(desc *vdom.VNode) (*Node, error) {
	if desc == nil {
		return nil, errors.New("E002").WithDetail("nil description")
	}
	switch desc.Kind {
	case vdom.KindText:
		n := d.newNode(vdom.KindText, "")
		n.text = desc.Text
		return n, nil
	case vdom.KindElement:
		if desc.Tag == "" {
			return nil, errors.New("E002").WithDetail("element description without tag")
		}
		n := d.newNode(vdom.KindElement, desc.Tag)
		n.key = desc.Key
		n.attrs = append([]vdom.Attr(nil), desc.Attrs...)
		n.handlers = append([]vdom.EventHandler(nil), desc.Events...)
		n.children = make([]*Node, 0, len(desc.Children))
		for _, c := range desc.Children {
			if c == nil {
				continue
			}
			child, err := d.CreateNode(c)
			if err != nil {
				return nil, err
			}
			n.insertAt(child, len(n.children))
		}
		return n, nil
	default:
		return nil, errors.New("E002").WithDetail(fmt.Sprintf("unknown node kind %d", desc.Kind))
	}
}

// Mount creates desc and appends it to the root.
func (d *Document) Mount(desc *vdom.VNode) (*Node, error) {
	n, err := d.CreateNode(desc)
	if err != nil {
		return nil, err
	}
	d.InsertChild(d.root, n, d.root.ChildCount())
	return n, nil
}

// SetAttr sets an attribute, keeping the position of an existing key.
func (d *Document) SetAttr(n *Node, key string, v vdom.Value) {
	if !n.IsElement() {
		return
	}
	if i := n.attrIndex(key); i >= 0 {
		n.attrs[i].Value = v
	} else {
		n.attrs = append(n.attrs, vdom.Attr{Key: key, Value: v})
	}
	d.emit(Mutation{Op: MutSetAttr, Node: n, Name: key, Value: v})
}

// RemoveAttr removes an attribute if present.
func (d *Document) RemoveAttr(n *Node, key string) {
	i := n.attrIndex(key)
	if i < 0 {
		return
	}
	n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
	d.emit(Mutation{Op: MutRemoveAttr, Node: n, Name: key})
}

// BindHandler binds h to event, replacing any existing binding.
func (d *Document) BindHandler(n *Node, event string, h *vdom.Handler) {
	if !n.IsElement() || h == nil {
		return
	}
	if i := n.handlerIndex(event); i >= 0 {
		n.handlers[i].Handler = h
	} else {
		n.handlers = append(n.handlers, vdom.EventHandler{Event: event, Handler: h})
	}
	d.emit(Mutation{Op: MutBind, Node: n, Name: event, Handler: h})
}

// UnbindHandler removes the binding for event if present.
func (d *Document) UnbindHandler(n *Node, event string) {
	i := n.handlerIndex(event)
	if i < 0 {
		return
	}
	n.handlers = append(n.handlers[:i], n.handlers[i+1:]...)
	d.emit(Mutation{Op: MutUnbind, Node: n, Name: event})
}

// SetText replaces the content of a text node.
func (d *Document) SetText(n *Node, text string) {
	if !n.IsText() {
		return
	}
	n.text = text
	d.emit(Mutation{Op: MutSetText, Node: n, Text: text})
}

// InsertChild inserts child into parent at index. An attached child is
// detached first, which makes this a move. An out-of-range index appends.
func (d *Document) InsertChild(parent, child *Node, index int) {
	if !parent.IsElement() || child == nil || child.Contains(parent) {
		return
	}
	op := MutInsert
	if child.parent != nil {
		op = MutMove
		d.blurWithin(child)
		child.detach()
	}
	if index < 0 || index > len(parent.children) {
		index = len(parent.children)
	}
	parent.insertAt(child, index)
	d.emit(Mutation{Op: op, Node: child, Parent: parent, Index: index})
}

// RemoveChild detaches child from parent.
func (d *Document) RemoveChild(parent, child *Node) {
	if child == nil || parent == nil || child.parent != parent {
		return
	}
	index := parent.IndexOf(child)
	d.blurWithin(child)
	child.detach()
	d.emit(Mutation{Op: MutRemove, Node: child, Parent: parent, Index: index})
}

// ReplaceChild puts replacement in old's position under parent.
func (d *Document) ReplaceChild(parent, old, replacement *Node) {
	if old == nil || replacement == nil || parent == nil || old.parent != parent || old == replacement {
		return
	}
	if replacement.Contains(parent) {
		return
	}
	if replacement.parent != nil {
		d.blurWithin(replacement)
		replacement.detach()
	}
	index := parent.IndexOf(old)
	d.blurWithin(old)
	parent.children[index] = replacement
	replacement.parent = parent
	old.parent = nil
	d.emit(Mutation{Op: MutReplace, Node: old, Parent: parent, Index: index, Replacement: replacement})
}

// Focused returns the current focus holder, or nil.
func (d *Document) Focused() *Node {
	return d.focused
}

// Focus makes n the focus holder. Only attached elements can take focus;
// other nodes are ignored. A nil node blurs.
func (d *Document) Focus(n *Node) {
	if n == nil {
		d.Blur()
		return
	}
	if n == d.focused || !n.IsElement() || !d.root.Contains(n) {
		return
	}
	d.focused = n
	d.emit(Mutation{Op: MutFocus, Node: n})
}

// Blur clears the focus holder.
func (d *Document) Blur() {
	if d.focused == nil {
		return
	}
	prev := d.focused
	d.focused = nil
	d.emit(Mutation{Op: MutBlur, Node: prev})
}

// Contains reports whether n is ancestor itself or one of its descendants.
func (d *Document) Contains(ancestor, n *Node) bool {
	return ancestor.Contains(n)
}

// Dispatch calls the handler bound to ev.Type on n and reports whether one
// was bound. Events do not bubble.
func (d *Document) Dispatch(n *Node, ev vdom.Event) bool {
	h := n.Handler(ev.Type)
	if h == nil {
		return false
	}
	h.Call(ev)
	return true
}

func (d *Document) blurWithin(n *Node) {
	if d.focused != nil && n.Contains(d.focused) {
		d.Blur()
	}
}
