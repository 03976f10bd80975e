package reconcile

import (
	"testing"

	"github.com/vango-dev/keepfocus/pkg/host"
	"github.com/vango-dev/keepfocus/pkg/render"
	"github.com/vango-dev/keepfocus/pkg/vdom"
)

// mountTree mounts desc into a fresh document.
func mountTree(t *testing.T, desc *vdom.VNode) (*host.Document, *host.Node) {
	t.Helper()
	doc := host.NewDocument()
	root, err := doc.Mount(desc)
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return doc, root
}

// focusAt focuses the node at path under root.
func focusAt(t *testing.T, doc *host.Document, root *host.Node, path ...int) *host.Node {
	t.Helper()
	n := root.Descend(host.Path(path))
	if n == nil {
		t.Fatalf("no node at %v", path)
	}
	doc.Focus(n)
	if doc.Focused() != n {
		t.Fatalf("could not focus node at %v", path)
	}
	return n
}

func record(doc *host.Document) *host.Journal {
	j := host.NewJournal()
	doc.Observe(j.Record)
	return j
}

var sorted = render.NewRenderer(render.RendererConfig{SortAttributes: true})

// sameTree compares a live subtree with a description, ignoring attribute
// order.
func sameTree(t *testing.T, n *host.Node, desc *vdom.VNode) {
	t.Helper()
	got, err := sorted.RenderNode(n)
	if err != nil {
		t.Fatal(err)
	}
	want, err := sorted.RenderVNode(desc)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("tree mismatch\n got: %s\nwant: %s", got, want)
	}
}
