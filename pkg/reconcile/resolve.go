package reconcile

import (
	"github.com/vango-dev/keepfocus/pkg/host"
	"github.com/vango-dev/keepfocus/pkg/vdom"
)

// Resolve returns the node in the tree rooted at next that is the same
// logical entity as the last node of chain, or nil.
//
// Resolution first descends both trees in lockstep. At each level the
// previous step is matched among the next node's children by its key when
// it has one, otherwise by sibling index, provided that child is unkeyed
// too. Every matched pair must agree on kind, tag and key. If lockstep
// fails at any level, the whole tree is searched for a node whose
// root-to-node shape path equals the chain's; it is used only when unique.
func Resolve(chain []*host.Node, next *vdom.VNode) *vdom.VNode {
	path := resolveChain(chain, next)
	if len(path) == 0 {
		return nil
	}
	return path[len(path)-1]
}

// resolveChain returns the next-tree chain matching chain, root first.
func resolveChain(chain []*host.Node, next *vdom.VNode) []*vdom.VNode {
	if len(chain) == 0 || next == nil {
		return nil
	}
	if path := lockstep(chain, next); path != nil {
		return path
	}
	return searchShapePath(chain, next)
}

func lockstep(chain []*host.Node, next *vdom.VNode) []*vdom.VNode {
	if !sameShape(chain[0], next) {
		return nil
	}
	path := make([]*vdom.VNode, 1, len(chain))
	path[0] = next

	cur := next
	for i := 1; i < len(chain); i++ {
		step := chain[i]
		match := matchChild(chain[i-1], step, cur)
		if match == nil || !sameShape(step, match) {
			return nil
		}
		path = append(path, match)
		cur = match
	}
	return path
}

// matchChild finds step's counterpart among desc's children.
func matchChild(parent, step *host.Node, desc *vdom.VNode) *vdom.VNode {
	if key := step.Key(); key != "" {
		for _, c := range desc.Children {
			if c != nil && c.Key == key {
				return c
			}
		}
		return nil
	}

	kids := compact(desc.Children)
	i := parent.IndexOf(step)
	if i < 0 || i >= len(kids) {
		return nil
	}
	c := kids[i]
	if c.Key != "" {
		return nil
	}
	return c
}

// searchShapePath looks for exactly one node in next whose ancestry has
// the same shape as chain, level by level.
func searchShapePath(chain []*host.Node, next *vdom.VNode) []*vdom.VNode {
	var (
		found []*vdom.VNode
		count int
	)
	path := make([]*vdom.VNode, 0, len(chain))

	var walk func(v *vdom.VNode, depth int)
	walk = func(v *vdom.VNode, depth int) {
		if count > 1 || v == nil || !sameShape(chain[depth], v) {
			return
		}
		path = append(path, v)
		defer func() { path = path[:len(path)-1] }()

		if depth == len(chain)-1 {
			count++
			found = append(found[:0], path...)
			return
		}
		for _, c := range v.Children {
			walk(c, depth+1)
		}
	}
	walk(next, 0)

	if count != 1 {
		return nil
	}
	return found
}

// sameShape reports whether a live node and a description can be the same
// entity: equal kind, and for elements equal tag and key.
func sameShape(n *host.Node, v *vdom.VNode) bool {
	if n == nil || v == nil || n.Kind() != v.Kind {
		return false
	}
	if v.Kind == vdom.KindText {
		return true
	}
	return n.Tag() == v.Tag && n.Key() == v.Key
}
