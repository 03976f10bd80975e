package host

import (
	"testing"

	"github.com/vango-dev/keepfocus/internal/errors"
	"github.com/vango-dev/keepfocus/pkg/vdom"
)

func mount(t *testing.T, d *Document, desc *vdom.VNode) *Node {
	t.Helper()
	n, err := d.Mount(desc)
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return n
}

func TestCreateNode(t *testing.T) {
	d := NewDocument()
	h := vdom.NewHandler("save", nil)

	n, err := d.CreateNode(vdom.Form(vdom.Key("f"), vdom.ID("form"), vdom.OnSubmit(h),
		vdom.Input(vdom.Type("text")),
		"hint",
	))
	if err != nil {
		t.Fatalf("CreateNode() error = %v", err)
	}

	if n.Parent() != nil {
		t.Error("created node should be detached")
	}
	if n.Tag() != "form" || n.Key() != "f" {
		t.Errorf("tag=%q key=%q", n.Tag(), n.Key())
	}
	if v, ok := n.Attr("id"); !ok || v.Text() != "form" {
		t.Errorf("Attr(id) = %v, %v", v, ok)
	}
	if n.Handler("submit") != h {
		t.Error("handler reference not preserved")
	}
	if n.ChildCount() != 2 {
		t.Fatalf("ChildCount() = %d", n.ChildCount())
	}
	if n.Child(0).Parent() != n {
		t.Error("child parent link not set")
	}
	if !n.Child(1).IsText() || n.Child(1).Text() != "hint" {
		t.Errorf("text child = %+v", n.Child(1))
	}
	if n.Count() != 3 {
		t.Errorf("Count() = %d, want 3", n.Count())
	}
	if n.ID() == n.Child(0).ID() {
		t.Error("node IDs must be unique")
	}
}

func TestCreateNodeErrors(t *testing.T) {
	d := NewDocument()

	tests := []struct {
		name string
		desc *vdom.VNode
	}{
		{"nil", nil},
		{"missing tag", &vdom.VNode{Kind: vdom.KindElement}},
		{"nested missing tag", vdom.Div(&vdom.VNode{Kind: vdom.KindElement})},
		{"unknown kind", &vdom.VNode{Kind: vdom.VKind(9), Tag: "div"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := d.CreateNode(tt.desc)
			if err == nil || n != nil {
				t.Fatalf("CreateNode() = %v, %v; want error", n, err)
			}
			if errors.Code(err) != "E002" {
				t.Errorf("Code() = %q, want E002", errors.Code(err))
			}
		})
	}
}

func TestAttributesAndHandlers(t *testing.T) {
	d := NewDocument()
	j := NewJournal()
	n := mount(t, d, vdom.Input(vdom.Type("text"), vdom.ID("x")))
	d.Observe(j.Record)

	d.SetAttr(n, "type", vdom.TextValue("email"))
	d.SetAttr(n, "tabindex", vdom.NumberValue(1))
	d.RemoveAttr(n, "id")
	d.RemoveAttr(n, "missing")

	attrs := n.Attrs()
	if len(attrs) != 2 || attrs[0].Key != "type" || attrs[1].Key != "tabindex" {
		t.Errorf("Attrs() = %+v", attrs)
	}

	a := vdom.NewHandler("a", nil)
	b := vdom.NewHandler("b", nil)
	d.BindHandler(n, "input", a)
	d.BindHandler(n, "input", b)
	if n.Handler("input") != b || len(n.Handlers()) != 1 {
		t.Errorf("Handlers() = %+v", n.Handlers())
	}
	d.UnbindHandler(n, "input")
	d.UnbindHandler(n, "input")
	if n.Handler("input") != nil {
		t.Error("handler should be unbound")
	}

	want := []MutationOp{MutSetAttr, MutSetAttr, MutRemoveAttr, MutBind, MutBind, MutUnbind}
	got := j.Mutations()
	if len(got) != len(want) {
		t.Fatalf("journal has %d entries, want %d", len(got), len(want))
	}
	for i, op := range want {
		if got[i].Op != op {
			t.Errorf("mutation %d = %v, want %v", i, got[i].Op, op)
		}
	}
}

func TestSetTextIgnoresElements(t *testing.T) {
	d := NewDocument()
	p := mount(t, d, vdom.P("hello"))

	d.SetText(p, "ignored")
	d.SetText(p.Child(0), "world")

	if p.Child(0).Text() != "world" {
		t.Errorf("Text() = %q", p.Child(0).Text())
	}
}

func TestInsertMoveRemoveReplace(t *testing.T) {
	d := NewDocument()
	ul := mount(t, d, vdom.Ul(vdom.Li(vdom.Key("a")), vdom.Li(vdom.Key("b")), vdom.Li(vdom.Key("c"))))
	j := NewJournal()
	d.Observe(j.Record)

	a, b, c := ul.Child(0), ul.Child(1), ul.Child(2)

	d.InsertChild(ul, c, 0)
	if keys(ul) != "cab" {
		t.Errorf("after move: %q, want cab", keys(ul))
	}

	d.RemoveChild(ul, a)
	if keys(ul) != "cb" || a.Parent() != nil {
		t.Errorf("after remove: %q", keys(ul))
	}

	x, _ := d.CreateNode(vdom.Li(vdom.Key("x")))
	d.ReplaceChild(ul, b, x)
	if keys(ul) != "cx" || b.Parent() != nil || x.Parent() != ul {
		t.Errorf("after replace: %q", keys(ul))
	}

	d.InsertChild(ul, a, 99)
	if keys(ul) != "cxa" {
		t.Errorf("after append: %q", keys(ul))
	}

	ops := []MutationOp{MutMove, MutRemove, MutReplace, MutInsert}
	for i, op := range ops {
		if j.Mutations()[i].Op != op {
			t.Errorf("mutation %d = %v, want %v", i, j.Mutations()[i].Op, op)
		}
		if !j.Mutations()[i].IsStructural() {
			t.Errorf("mutation %d should be structural", i)
		}
	}
	if j.Mutations()[1].Index != 1 {
		t.Errorf("remove index = %d, want 1", j.Mutations()[1].Index)
	}
}

func TestInsertRejectsCycles(t *testing.T) {
	d := NewDocument()
	outer := mount(t, d, vdom.Div(vdom.Div()))
	inner := outer.Child(0)

	d.InsertChild(inner, outer, 0)

	if outer.Parent() != d.Root() || inner.ChildCount() != 0 {
		t.Error("inserting an ancestor into its descendant must be ignored")
	}
}

func TestFocus(t *testing.T) {
	d := NewDocument()
	form := mount(t, d, vdom.Form(vdom.Input(), "text"))
	input := form.Child(0)

	d.Focus(form.Child(1))
	if d.Focused() != nil {
		t.Error("text nodes cannot take focus")
	}

	detached, _ := d.CreateNode(vdom.Input())
	d.Focus(detached)
	if d.Focused() != nil {
		t.Error("detached nodes cannot take focus")
	}

	d.Focus(input)
	if d.Focused() != input {
		t.Fatal("Focus() did not set the holder")
	}

	d.Focus(nil)
	if d.Focused() != nil {
		t.Error("Focus(nil) should blur")
	}
}

func TestDetachBlurs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *Document, form, input *Node)
	}{
		{"remove ancestor", func(d *Document, form, _ *Node) { d.RemoveChild(d.Root(), form) }},
		{"remove holder", func(d *Document, form, input *Node) { d.RemoveChild(form, input) }},
		{"move holder", func(d *Document, form, input *Node) { d.InsertChild(form, input, 1) }},
		{"replace ancestor", func(d *Document, form, _ *Node) {
			n, _ := d.CreateNode(vdom.Div())
			d.ReplaceChild(d.Root(), form, n)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDocument()
			form := mount(t, d, vdom.Form(vdom.Input(), vdom.Button()))
			input := form.Child(0)
			d.Focus(input)

			j := NewJournal()
			d.Observe(j.Record)
			tt.mutate(d, form, input)

			if d.Focused() != nil {
				t.Error("focus should be cleared")
			}
			if j.Counts()[MutBlur] != 1 {
				t.Errorf("blur count = %d, want 1", j.Counts()[MutBlur])
			}
		})
	}
}

func TestDispatch(t *testing.T) {
	d := NewDocument()
	var got vdom.Event
	btn := mount(t, d, vdom.Button(vdom.OnClick(func(ev vdom.Event) { got = ev })))

	if !d.Dispatch(btn, vdom.Event{Type: "click", Value: "1"}) {
		t.Fatal("Dispatch() = false, want true")
	}
	if got.Value != "1" {
		t.Errorf("handler got %+v", got)
	}
	if d.Dispatch(btn, vdom.Event{Type: "input"}) {
		t.Error("Dispatch() of unbound event = true")
	}
}

func TestObserveCancel(t *testing.T) {
	d := NewDocument()
	n := mount(t, d, vdom.Div())
	count := 0
	cancel := d.Observe(func(Mutation) { count++ })

	d.SetAttr(n, "a", vdom.TextValue("1"))
	cancel()
	d.SetAttr(n, "a", vdom.TextValue("2"))

	if count != 1 {
		t.Errorf("observer called %d times, want 1", count)
	}
}

func TestJournal(t *testing.T) {
	j := NewJournal()
	j.Record(Mutation{Op: MutSetAttr})
	j.Record(Mutation{Op: MutSetAttr})
	j.Record(Mutation{Op: MutFocus})

	if j.Len() != 3 || j.Counts()[MutSetAttr] != 2 {
		t.Errorf("Len()=%d Counts()=%v", j.Len(), j.Counts())
	}
	earlier := j.Mutations()
	j.Reset()
	if j.Len() != 0 {
		t.Errorf("Len() after Reset = %d", j.Len())
	}

	j.Record(Mutation{Op: MutRemove})
	if earlier[0].Op != MutSetAttr || len(earlier) != 3 {
		t.Errorf("recording after Reset overwrote an earlier batch: %v", earlier)
	}
	if j.Len() != 1 || j.Mutations()[0].Op != MutRemove {
		t.Errorf("Mutations() after Reset = %v", j.Mutations())
	}
	if MutReplace.String() != "replace" || MutationOp(200).String() != "unknown" {
		t.Error("unexpected MutationOp names")
	}
}

func keys(n *Node) string {
	var s string
	for _, c := range n.Children() {
		s += c.Key()
	}
	return s
}
