package reconcile

import (
	"github.com/vango-dev/keepfocus/pkg/host"
	"github.com/vango-dev/keepfocus/pkg/vdom"
)

// DoubleTree holds the focus holder's ancestry in both trees.
// Chains are root first; the Reversed variants are leaf first.
type DoubleTree struct {
	Previous         []*host.Node
	Next             []*vdom.VNode
	PreviousReversed []*host.Node
	NextReversed     []*vdom.VNode

	// Counterpart is the next-tree node for the focus holder, or nil.
	Counterpart *vdom.VNode
}

// Resolved reports whether a counterpart was found.
func (dt DoubleTree) Resolved() bool {
	return dt.Counterpart != nil && len(dt.Previous) > 0 && len(dt.Previous) == len(dt.Next)
}

// Depth returns the number of levels on the spine.
func (dt DoubleTree) Depth() int {
	return len(dt.Previous)
}

// BuildDoubleTree locates focus under prev and resolves its counterpart
// under next. When focus is not inside prev the result is empty; when no
// counterpart exists only the previous chains are set.
func BuildDoubleTree(prev *host.Node, next *vdom.VNode, focus *host.Node) DoubleTree {
	chain := Locate(prev, focus)
	if chain == nil {
		return DoubleTree{}
	}
	dt := DoubleTree{
		Previous:         chain,
		PreviousReversed: reversed(chain),
	}

	nextChain := resolveChain(chain, next)
	if nextChain == nil {
		return dt
	}
	dt.Next = nextChain
	dt.NextReversed = reversed(nextChain)
	dt.Counterpart = nextChain[len(nextChain)-1]
	return dt
}
