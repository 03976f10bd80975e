package reconcile

import "github.com/vango-dev/keepfocus/pkg/host"

// Locate returns the chain of nodes from root to target, root first and
// both inclusive. It returns nil when target is not root or a descendant
// of root.
func Locate(root, target *host.Node) []*host.Node {
	if root == nil || target == nil {
		return nil
	}
	var rev []*host.Node
	for cur := target; ; cur = cur.Parent() {
		if cur == nil {
			return nil
		}
		rev = append(rev, cur)
		if cur == root {
			break
		}
	}
	return reversed(rev)
}

func reversed[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}
