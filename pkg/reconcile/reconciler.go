package reconcile

import (
	"github.com/vango-dev/keepfocus/internal/errors"
	"github.com/vango-dev/keepfocus/pkg/host"
	"github.com/vango-dev/keepfocus/pkg/vdom"
)

// ReconcileTrees patches dt.Previous[0] in place until it matches
// dt.Next[0], then restores focus on the previous chain's leaf. Nodes on
// the spine are always paired with their chain counterparts, so the leaf
// survives as the same live node. It returns the previous root.
func ReconcileTrees(h Host, dt DoubleTree) (*host.Node, error) {
	if !dt.Resolved() {
		return nil, errors.New("E003").WithDetail("double tree has no resolved counterpart")
	}
	r := &reconciler{host: h, prev: dt.Previous, next: dt.Next}

	root := dt.Previous[0]
	if _, err := r.reconcile(root, dt.Next[0], 0, true); err != nil {
		return nil, err
	}

	leaf := dt.Previous[len(dt.Previous)-1]
	if h.Focused() != leaf {
		h.Focus(leaf)
	}
	return root, nil
}

type reconciler struct {
	host Host
	prev []*host.Node
	next []*vdom.VNode
}

// reconcile makes n match desc and returns the node now standing in n's
// place: n itself, or its replacement when kind or tag differ.
func (r *reconciler) reconcile(n *host.Node, desc *vdom.VNode, depth int, spine bool) (*host.Node, error) {
	if !sameKindAndTag(n, desc) {
		replacement, err := create(r.host, desc)
		if err != nil {
			return nil, err
		}
		if parent := n.Parent(); parent != nil {
			r.host.ReplaceChild(parent, n, replacement)
		}
		return replacement, nil
	}

	if desc.Kind == vdom.KindText {
		if n.Text() != desc.Text {
			r.host.SetText(n, desc.Text)
		}
		return n, nil
	}

	r.diffAttrs(n, desc)
	r.diffHandlers(n, desc)
	if err := r.diffChildren(n, desc, depth, spine); err != nil {
		return nil, err
	}
	return n, nil
}

func (r *reconciler) diffAttrs(n *host.Node, desc *vdom.VNode) {
	for _, a := range desc.Attrs {
		if cur, ok := n.Attr(a.Key); !ok || !cur.Equal(a.Value) {
			r.host.SetAttr(n, a.Key, a.Value)
		}
	}
	for _, a := range n.Attrs() {
		if _, ok := desc.Attr(a.Key); !ok {
			r.host.RemoveAttr(n, a.Key)
		}
	}
}

func (r *reconciler) diffHandlers(n *host.Node, desc *vdom.VNode) {
	for _, eh := range desc.Events {
		if n.Handler(eh.Event) != eh.Handler {
			r.host.BindHandler(n, eh.Event, eh.Handler)
		}
	}
	for _, eh := range n.Handlers() {
		if desc.Handler(eh.Event) == nil {
			r.host.UnbindHandler(n, eh.Event)
		}
	}
}

// diffChildren pairs n's children with desc's, removes the unpaired ones,
// and then walks desc's children in order, reconciling or creating each
// and moving it into place.
func (r *reconciler) diffChildren(n *host.Node, desc *vdom.VNode, depth int, spine bool) error {
	prevKids := n.Children()
	nextKids := compact(desc.Children)
	paired := make([]*host.Node, len(nextKids))
	used := make(map[*host.Node]bool, len(prevKids))

	// The spine pair is fixed before any generic matching.
	var spineChild *host.Node
	if spine && depth+1 < len(r.prev) {
		if j := indexOf(nextKids, r.next[depth+1]); j >= 0 {
			spineChild = r.prev[depth+1]
			paired[j] = spineChild
			used[spineChild] = true
		}
	}

	// Keyed children pair by key wherever they sit.
	byKey := make(map[string]*host.Node)
	for _, c := range prevKids {
		if k := c.Key(); k != "" && !used[c] {
			if _, dup := byKey[k]; !dup {
				byKey[k] = c
			}
		}
	}
	for j, v := range nextKids {
		if paired[j] != nil || v.Key == "" {
			continue
		}
		if c, ok := byKey[v.Key]; ok && !used[c] {
			paired[j] = c
			used[c] = true
		}
	}

	// Remaining unkeyed children pair by relative index.
	var free []*host.Node
	for _, c := range prevKids {
		if c.Key() == "" && !used[c] {
			free = append(free, c)
		}
	}
	for j, v := range nextKids {
		if len(free) == 0 {
			break
		}
		if paired[j] != nil || v.Key != "" {
			continue
		}
		paired[j] = free[0]
		used[free[0]] = true
		free = free[1:]
	}

	for _, c := range prevKids {
		if !used[c] {
			r.host.RemoveChild(n, c)
		}
	}

	for j, v := range nextKids {
		var (
			child *host.Node
			err   error
		)
		if paired[j] != nil {
			child, err = r.reconcile(paired[j], v, depth+1, paired[j] == spineChild)
		} else {
			child, err = create(r.host, v)
		}
		if err != nil {
			return err
		}
		if n.Child(j) != child {
			r.host.InsertChild(n, child, j)
		}
	}
	return nil
}

// sameKindAndTag is the local replacement test. Keys are not compared:
// a keyed pair already agrees, and an unkeyed pair has none.
func sameKindAndTag(n *host.Node, v *vdom.VNode) bool {
	if n.Kind() != v.Kind {
		return false
	}
	return v.Kind == vdom.KindText || n.Tag() == v.Tag
}

func compact(kids []*vdom.VNode) []*vdom.VNode {
	for _, k := range kids {
		if k == nil {
			out := make([]*vdom.VNode, 0, len(kids))
			for _, k := range kids {
				if k != nil {
					out = append(out, k)
				}
			}
			return out
		}
	}
	return kids
}

func indexOf(kids []*vdom.VNode, v *vdom.VNode) int {
	for i, k := range kids {
		if k == v {
			return i
		}
	}
	return -1
}
