package host

import (
	"strconv"
	"strings"

	"github.com/vango-dev/keepfocus/internal/errors"
)

// Path is a sequence of child indexes leading from a root to a node.
type Path []int

// String formats the path as slash-separated indexes, e.g. "0/1/0".
// The empty path formats as "".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, "/")
}

// ParsePath parses the form produced by Path.String.
func ParsePath(s string) (Path, error) {
	s = strings.Trim(strings.TrimSpace(s), "/")
	if s == "" {
		return Path{}, nil
	}
	parts := strings.Split(s, "/")
	p := make(Path, len(parts))
	for i, part := range parts {
		idx, err := strconv.Atoi(part)
		if err != nil || idx < 0 {
			return nil, errors.New("E043").WithDetail("bad segment " + strconv.Quote(part) + " in " + strconv.Quote(s))
		}
		p[i] = idx
	}
	return p, nil
}

// Descend follows p from n and returns the node reached, or nil when an
// index is out of range.
func (n *Node) Descend(p Path) *Node {
	cur := n
	for _, idx := range p {
		cur = cur.Child(idx)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// PathOf returns the path from root to n, or nil when n is not root or one
// of its descendants.
func PathOf(root, n *Node) Path {
	if root == nil || n == nil {
		return nil
	}
	var rev Path
	for cur := n; cur != root; cur = cur.parent {
		if cur.parent == nil {
			return nil
		}
		rev = append(rev, cur.parent.IndexOf(cur))
	}
	p := make(Path, len(rev))
	for i, idx := range rev {
		p[len(rev)-1-i] = idx
	}
	return p
}
