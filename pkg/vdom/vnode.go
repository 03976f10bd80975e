package vdom

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement VKind = iota // <div>, <input>, etc.
	KindText                 // Plain text node
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// VNode is an immutable description of a node.
type VNode struct {
	Kind     VKind          // Node type
	Tag      string         // Element tag name (e.g., "div")
	Key      string         // Reconciliation key
	Attrs    []Attr         // Attributes in declaration order
	Events   []EventHandler // Event handlers in declaration order
	Children []*VNode       // Child nodes
	Text     string         // For KindText
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value Value
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Attr returns the value of the named attribute.
func (v *VNode) Attr(key string) (Value, bool) {
	if v == nil {
		return Value{}, false
	}
	for _, a := range v.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return Value{}, false
}

// Handler returns the handler bound to event, or nil.
func (v *VNode) Handler(event string) *Handler {
	if v == nil {
		return nil
	}
	for _, eh := range v.Events {
		if eh.Event == event {
			return eh.Handler
		}
	}
	return nil
}

// IsInteractive returns true if this node has event handlers.
func (v *VNode) IsInteractive() bool {
	return v != nil && v.Kind == KindElement && len(v.Events) > 0
}

// SameType reports whether a and b describe the same kind of node:
// both text, or both elements with the same tag.
func SameType(a, b *VNode) bool {
	if a == nil || b == nil || a.Kind != b.Kind {
		return false
	}
	return a.Kind != KindElement || a.Tag == b.Tag
}

// Count returns the number of nodes in the tree rooted at v.
func (v *VNode) Count() int {
	if v == nil {
		return 0
	}
	n := 1
	for _, child := range v.Children {
		n += child.Count()
	}
	return n
}
