package render

import (
	"github.com/vango-dev/keepfocus/pkg/host"
	"github.com/vango-dev/keepfocus/pkg/vdom"
)

// tree is the read-only view the renderer needs from either tree form.
type tree interface {
	isText() bool
	tag() string
	text() string
	attrs() []vdom.Attr
	events() []vdom.EventHandler
	childCount() int
	child(i int) tree
}

type liveNode struct{ n *host.Node }

func (l liveNode) isText() bool                { return l.n.IsText() }
func (l liveNode) tag() string                 { return l.n.Tag() }
func (l liveNode) text() string                { return l.n.Text() }
func (l liveNode) attrs() []vdom.Attr          { return l.n.Attrs() }
func (l liveNode) events() []vdom.EventHandler { return l.n.Handlers() }
func (l liveNode) childCount() int             { return l.n.ChildCount() }
func (l liveNode) child(i int) tree            { return liveNode{l.n.Child(i)} }

type descNode struct{ v *vdom.VNode }

func (d descNode) isText() bool                { return d.v.Kind == vdom.KindText }
func (d descNode) tag() string                 { return d.v.Tag }
func (d descNode) text() string                { return d.v.Text }
func (d descNode) attrs() []vdom.Attr          { return d.v.Attrs }
func (d descNode) events() []vdom.EventHandler { return d.v.Events }
func (d descNode) childCount() int             { return len(d.v.Children) }

func (d descNode) child(i int) tree {
	if c := d.v.Children[i]; c != nil {
		return descNode{c}
	}
	return nil
}
