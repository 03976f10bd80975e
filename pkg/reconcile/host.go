package reconcile

import (
	"github.com/vango-dev/keepfocus/internal/errors"
	"github.com/vango-dev/keepfocus/pkg/host"
	"github.com/vango-dev/keepfocus/pkg/vdom"
)

// Host is the set of live-tree primitives the engine uses.
// *host.Document implements it.
type Host interface {
	CreateNode(desc *vdom.VNode) (*host.Node, error)

	SetAttr(n *host.Node, key string, v vdom.Value)
	RemoveAttr(n *host.Node, key string)
	BindHandler(n *host.Node, event string, h *vdom.Handler)
	UnbindHandler(n *host.Node, event string)
	SetText(n *host.Node, text string)

	InsertChild(parent, child *host.Node, index int)
	RemoveChild(parent, child *host.Node)
	ReplaceChild(parent, old, replacement *host.Node)

	Focused() *host.Node
	Focus(n *host.Node)
	Contains(ancestor, n *host.Node) bool
}

var _ Host = (*host.Document)(nil)

// create asks the host for a node and turns a nil result into an error.
func create(h Host, desc *vdom.VNode) (*host.Node, error) {
	n, err := h.CreateNode(desc)
	if err != nil {
		if errors.Code(err) != "" {
			return nil, err
		}
		return nil, errors.New("E002").Wrap(err)
	}
	if n == nil {
		return nil, errors.New("E001")
	}
	return n, nil
}
