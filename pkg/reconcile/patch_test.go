package reconcile

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/vango-dev/keepfocus/internal/errors"
	"github.com/vango-dev/keepfocus/pkg/host"
	"github.com/vango-dev/keepfocus/pkg/render"
	"github.com/vango-dev/keepfocus/pkg/vdom"
)

func createApp(text string) *vdom.VNode {
	return vdom.Div(vdom.ID("app"), vdom.P(text))
}

func TestPatchReplacesWithoutFocus(t *testing.T) {
	doc, app := mountTree(t, createApp("Hello world!"))
	next := createApp("test")

	res, err := Patch(doc, app, next)
	if err != nil {
		t.Fatalf("Patch() error = %v", err)
	}

	if res.Outcome != Replaced || res.Reason != ReasonNoFocus {
		t.Errorf("Result = %+v, want Replaced/no_focus", res)
	}
	if res.Node == app || doc.Root().Child(0) != res.Node {
		t.Error("the new node should take the old root's place")
	}
	if app.Parent() != nil {
		t.Error("the old root should be detached")
	}
	if got := render.OuterHTML(doc.Root()); got != `<body><div id="app"><p>test</p></div></body>` {
		t.Errorf("document = %s", got)
	}
}

func TestPatchRemoves(t *testing.T) {
	doc := host.NewDocument()
	header, _ := doc.Mount(vdom.Header("h"))
	app, _ := doc.Mount(createApp("Hello world!"))
	footer, _ := doc.Mount(vdom.Footer("f"))

	res, err := Patch(doc, app, nil)
	if err != nil {
		t.Fatalf("Patch() error = %v", err)
	}

	if res.Outcome != Removed || res.Node != nil {
		t.Errorf("Result = %+v, want Removed with nil node", res)
	}
	if app.Parent() != nil {
		t.Error("root should be detached")
	}
	kids := doc.Root().Children()
	if len(kids) != 2 || kids[0] != header || kids[1] != footer {
		t.Errorf("siblings changed: %s", render.OuterHTML(doc.Root()))
	}
}

func TestPatchRemovesDetachedRoot(t *testing.T) {
	doc := host.NewDocument()
	detached, _ := doc.CreateNode(vdom.Div())

	res, err := Patch(doc, detached, nil)
	if err != nil || res.Outcome != Removed {
		t.Errorf("Patch() = %+v, %v", res, err)
	}
}

func TestPatchKeepsFocusOnAttributeChange(t *testing.T) {
	doc, app := mountTree(t, vdom.Div(vdom.ID("app"),
		vdom.P(vdom.ID("previous-paragraph-test"),
			vdom.Input(vdom.ID("input-test"), vdom.Type("text")),
		),
	))
	input := focusAt(t, doc, app, 0, 0)
	next := vdom.Div(vdom.ID("app"),
		vdom.P(vdom.ID("new-paragraph-test"), vdom.Class("new-paragraph-test"),
			vdom.Input(vdom.Class("input-test"), vdom.Type("text")),
		),
	)

	res, err := Patch(doc, app, next)
	if err != nil {
		t.Fatalf("Patch() error = %v", err)
	}

	if res.Outcome != Reconciled || res.Node != app || res.SpineDepth != 3 {
		t.Errorf("Result = %+v, want Reconciled on the same root", res)
	}
	if doc.Focused() != input {
		t.Fatal("focus must stay on the same live input")
	}
	if app.Descend(host.Path{0, 0}) != input {
		t.Error("input must not be recreated")
	}
	if _, ok := input.Attr("id"); ok {
		t.Error("id should be removed from the input")
	}
	if v, _ := input.Attr("class"); v.Text() != "input-test" {
		t.Errorf("class = %q", v.Text())
	}
	sameTree(t, app, next)
}

func TestPatchSwapsHandlersOnKeyedField(t *testing.T) {
	var calls []string
	handler := func(name string) *vdom.Handler {
		return vdom.NewHandler(name, func(vdom.Event) { calls = append(calls, name) })
	}

	doc, app := mountTree(t, vdom.Div(vdom.ID("app"),
		vdom.Form(vdom.OnSubmit(handler("previous-onSubmit")),
			vdom.P(
				vdom.Input(vdom.Key("key ;)"), vdom.Class("previous-input-class"),
					vdom.OnInput(handler("previous-onInput")), vdom.Type("text")),
			),
		),
	))
	if got := render.OuterHTML(app); got != `<div id="app"><form><p><input class="previous-input-class" type="text"></p></form></div>` {
		t.Fatalf("initial render = %s", got)
	}
	input := focusAt(t, doc, app, 0, 0, 0)
	form := app.Child(0)

	next := vdom.Div(vdom.ID("app"),
		vdom.Form(vdom.OnSubmit(handler("next-onSubmit")),
			vdom.P(vdom.Class("next-p-class"),
				vdom.Input(vdom.Key("key ;)"), vdom.Class("next-input-class"), vdom.Type("text"),
					vdom.OnInput(handler("next-onInput"))),
			),
		),
	)

	res, err := Patch(doc, app, next)
	if err != nil {
		t.Fatalf("Patch() error = %v", err)
	}
	if res.Outcome != Reconciled {
		t.Fatalf("Outcome = %v, want reconciled", res.Outcome)
	}

	if got := render.OuterHTML(app); got != `<div id="app"><form><p class="next-p-class"><input class="next-input-class" type="text"></p></form></div>` {
		t.Errorf("patched render = %s", got)
	}

	doc.Dispatch(form, vdom.Event{Type: "submit"})
	doc.Dispatch(input, vdom.Event{Type: "input"})
	if strings.Join(calls, ",") != "next-onSubmit,next-onInput" {
		t.Errorf("dispatched to %v, want next handlers", calls)
	}
	if doc.Focused() != input {
		t.Error("focus must stay on the keyed input")
	}
}

func TestPatchFindsFieldAfterSiblingsChange(t *testing.T) {
	doc, app := mountTree(t, vdom.Div(vdom.ID("app"),
		vdom.Form(vdom.P(vdom.Input(vdom.Key("k"), vdom.Type("text")))),
	))
	input := focusAt(t, doc, app, 0, 0, 0)

	next := vdom.Div(vdom.ID("app"),
		vdom.Form(
			vdom.H2("Profile"),
			vdom.P("Fill in the field below"),
			vdom.P(vdom.Label("Name"), vdom.Input(vdom.Key("k"), vdom.Type("text"), vdom.Placeholder("name"))),
		),
	)

	res, err := Patch(doc, app, next)
	if err != nil {
		t.Fatalf("Patch() error = %v", err)
	}
	if res.Outcome != Reconciled {
		t.Fatalf("Outcome = %v (%v), want reconciled", res.Outcome, res.Reason)
	}
	if doc.Focused() != input || app.Descend(host.Path{0, 2, 1}) != input {
		t.Error("keyed input must be kept and focused at its new position")
	}
	if got, want := render.OuterHTML(app), render.DescriptionHTML(next); got != want {
		t.Errorf("render = %s\nwant %s", got, want)
	}
}

func TestPatchAddsNewElements(t *testing.T) {
	doc, app := mountTree(t, vdom.Div(vdom.ID("app"),
		vdom.Form(vdom.P(vdom.Input(vdom.Key("test"), vdom.ID("test"), vdom.Type("text")))),
	))
	input := focusAt(t, doc, app, 0, 0, 0)
	j := record(doc)

	next := vdom.Div(vdom.ID("app"),
		vdom.P("Test"),
		vdom.Form(
			vdom.P("Test"),
			vdom.P(
				vdom.Label(vdom.For("test"), "Test"),
				vdom.Input(vdom.Key("test"), vdom.ID("test"), vdom.Type("text")),
			),
			vdom.Ul(vdom.Li("0"), vdom.Li("1"), vdom.Li("2"), vdom.Li("3")),
			vdom.P("Test"),
		),
		vdom.P("Test"),
	)

	res, err := Patch(doc, app, next)
	if err != nil {
		t.Fatalf("Patch() error = %v", err)
	}
	if res.Outcome != Reconciled {
		t.Fatalf("Outcome = %v (%v), want reconciled", res.Outcome, res.Reason)
	}

	want := `<div id="app"><p>Test</p><form><p>Test</p><p><label for="test">Test</label><input id="test" type="text"></p>` +
		`<ul><li>0</li><li>1</li><li>2</li><li>3</li></ul><p>Test</p></form><p>Test</p></div>`
	if got := render.OuterHTML(app); got != want {
		t.Errorf("render = %s\nwant %s", got, want)
	}
	if doc.Focused() != input {
		t.Error("focus must stay on the input")
	}
	form, nextForm := app.Child(1), next.Children[1]
	if form.ChildCount() != len(nextForm.Children) {
		t.Fatalf("form has %d children, want %d", form.ChildCount(), len(nextForm.Children))
	}
	for i, want := range nextForm.Children {
		if got := form.Child(i).Tag(); got != want.Tag {
			t.Errorf("form child %d = <%s>, want <%s>", i, got, want.Tag)
		}
	}
	counts := j.Counts()
	if counts[host.MutRemove] != 0 || counts[host.MutReplace] != 0 || counts[host.MutBlur] != 0 {
		t.Errorf("unexpected destructive mutations: %v", counts)
	}
}

func TestPatchRemovesOldElements(t *testing.T) {
	prev := vdom.Div(vdom.ID("app"),
		vdom.P("Test1"),
		vdom.Form(
			vdom.P("Test"),
			vdom.P(
				vdom.Label(vdom.For("test"), "Test"),
				vdom.Input(vdom.ID("test"), vdom.Name("test"), vdom.Type("text")),
			),
			vdom.P("Test"),
		),
		vdom.P("Test2"),
	)

	tests := []struct {
		name string
		next *vdom.VNode
		want string
	}{
		{
			name: "collapse to the spine",
			next: vdom.Div(vdom.ID("app"),
				vdom.Form(vdom.P(vdom.Input(vdom.ID("test"), vdom.Name("test"), vdom.Type("text")))),
			),
			want: `<div id="app"><form><p><input id="test" name="test" type="text"></p></form></div>`,
		},
		{
			name: "reorder around the spine",
			next: vdom.Div(vdom.ID("app"),
				vdom.P("Test Test Test Test "),
				vdom.P("Test2"),
				vdom.Form(
					vdom.P("Test Test "),
					vdom.P(
						vdom.Label(vdom.For("test"), "Test"),
						vdom.Input(vdom.ID("test"), vdom.Name("test"), vdom.Type("text")),
					),
				),
			),
			want: `<div id="app"><p>Test Test Test Test </p><p>Test2</p><form><p>Test Test </p>` +
				`<p><label for="test">Test</label><input id="test" name="test" type="text"></p></form></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, app := mountTree(t, prev)
			input := focusAt(t, doc, app, 1, 1, 1)

			res, err := Patch(doc, app, tt.next)
			if err != nil {
				t.Fatalf("Patch() error = %v", err)
			}
			if res.Outcome != Reconciled {
				t.Fatalf("Outcome = %v (%v), want reconciled", res.Outcome, res.Reason)
			}
			if got := render.OuterHTML(app); got != tt.want {
				t.Errorf("render = %s\nwant %s", got, tt.want)
			}
			if doc.Focused() != input {
				t.Error("focus must stay on the input")
			}
		})
	}
}

func TestPatchUpdatesTextInPlace(t *testing.T) {
	view := func(n string) *vdom.VNode {
		return vdom.Div(vdom.ID("app"),
			vdom.P(
				vdom.Button(vdom.Key("count"), "[+] @ "+n),
				vdom.Button(vdom.Key("count-1"), vdom.Span(n+" @ [-]")),
			),
		)
	}
	doc, app := mountTree(t, view("0"))
	if got := render.OuterHTML(app); got != `<div id="app"><p><button>[+] @ 0</button><button><span>0 @ [-]</span></button></p></div>` {
		t.Fatalf("initial render = %s", got)
	}
	button := focusAt(t, doc, app, 0, 0)
	label := button.Child(0)
	j := record(doc)

	if _, err := Patch(doc, app, view("1")); err != nil {
		t.Fatalf("Patch() error = %v", err)
	}

	if got := render.OuterHTML(app); got != `<div id="app"><p><button>[+] @ 1</button><button><span>1 @ [-]</span></button></p></div>` {
		t.Errorf("render = %s", got)
	}
	if doc.Focused() != button || button.Child(0) != label {
		t.Error("button and its text node must be updated in place")
	}
	if j.Len() != 2 || j.Counts()[host.MutSetText] != 2 {
		t.Errorf("mutations = %v, want two text updates", j.Counts())
	}
}

func TestPatchIsIdempotent(t *testing.T) {
	save := vdom.NewHandler("save", nil)
	update := vdom.NewHandler("update", nil)
	view := func() *vdom.VNode {
		return vdom.Div(vdom.ID("app"),
			vdom.Form(vdom.OnSubmit(save),
				vdom.Input(vdom.Key("q"), vdom.Type("text"), vdom.TabIndex(1), vdom.OnInput(update)),
				vdom.Ul(vdom.Li("a"), vdom.Li(vdom.Key("b"), "b")),
			),
		)
	}
	doc, app := mountTree(t, view())
	focusAt(t, doc, app, 0, 0)
	j := record(doc)

	for i := 0; i < 3; i++ {
		res, err := Patch(doc, app, view())
		if err != nil {
			t.Fatalf("Patch() error = %v", err)
		}
		if res.Outcome != Reconciled || res.Node != app {
			t.Fatalf("Result = %+v, want Reconciled on the same root", res)
		}
	}
	if j.Len() != 0 {
		t.Errorf("equivalent patch produced %d mutations: %v", j.Len(), j.Counts())
	}
}

func TestPatchReusesKeyedChildren(t *testing.T) {
	item := func(key, class string) *vdom.VNode {
		return vdom.Li(vdom.Key(key), vdom.Class(class), vdom.Input(vdom.Name(key)))
	}
	doc, app := mountTree(t, vdom.Ul(item("a", "x"), item("b", "x"), item("c", "x")))
	before := map[string]*host.Node{}
	for _, li := range app.Children() {
		before[li.Key()] = li
	}
	input := focusAt(t, doc, app, 1, 0)
	j := record(doc)

	next := vdom.Ul(item("b", "y"), item("c", "y"), vdom.Li(vdom.Key("d")), item("a", "y"))
	res, err := Patch(doc, app, next)
	if err != nil {
		t.Fatalf("Patch() error = %v", err)
	}
	if res.Outcome != Reconciled {
		t.Fatalf("Outcome = %v, want reconciled", res.Outcome)
	}

	for _, li := range app.Children() {
		if old, ok := before[li.Key()]; ok && old != li {
			t.Errorf("li %q was recreated", li.Key())
		}
	}
	if doc.Focused() != input || input.Parent() != before["b"] {
		t.Error("focus must return to the same input after its item moved")
	}
	counts := j.Counts()
	if counts[host.MutInsert] != 1 {
		t.Errorf("inserts = %d, want only the new item", counts[host.MutInsert])
	}
	if counts[host.MutRemove] != 0 || counts[host.MutReplace] != 0 {
		t.Errorf("keyed items must not be removed or replaced: %v", counts)
	}
	if counts[host.MutSetAttr] != 3 {
		t.Errorf("set_attr = %d, want the class update on each kept item", counts[host.MutSetAttr])
	}
	if counts[host.MutFocus] != 1 {
		t.Errorf("focus = %d, want focus restored once", counts[host.MutFocus])
	}
	sameTree(t, app, next)
}

func TestPatchFallsBackWithoutCounterpart(t *testing.T) {
	doc, app := mountTree(t, vdom.Div(vdom.Form(vdom.Input(vdom.Type("text")))))
	focusAt(t, doc, app, 0, 0)
	next := vdom.Div(vdom.Form(vdom.Textarea(vdom.Attribute("rows", 3)), vdom.Button("Send")))

	res, err := Patch(doc, app, next)
	if err != nil {
		t.Fatalf("Patch() error = %v", err)
	}
	if res.Outcome != Replaced || res.Reason != ReasonNoCounterpart {
		t.Errorf("Result = %+v, want Replaced/no_counterpart", res)
	}
	if got, want := render.OuterHTML(res.Node), render.DescriptionHTML(next); got != want {
		t.Errorf("render = %s, want %s", got, want)
	}
	if doc.Focused() != nil {
		t.Error("replacing the focused subtree should blur")
	}
}

func TestPatchShapePathFallback(t *testing.T) {
	prev := vdom.Div(vdom.P("intro"), vdom.Form(vdom.Label("name"), vdom.Input(vdom.Key("name"))))

	tests := []struct {
		name    string
		next    *vdom.VNode
		outcome Outcome
		reason  Reason
	}{
		{
			name:    "unique match is reconciled",
			next:    vdom.Div(vdom.Form(vdom.Input(vdom.Key("name"), vdom.Class("a"))), vdom.Section()),
			outcome: Reconciled,
		},
		{
			name: "two matches replace wholesale",
			next: vdom.Div(
				vdom.Form(vdom.Input(vdom.Key("name"), vdom.Class("a"))),
				vdom.Section(),
				vdom.Form(vdom.Input(vdom.Key("name"), vdom.Class("b"))),
			),
			outcome: Replaced,
			reason:  ReasonNoCounterpart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, app := mountTree(t, prev)
			input := focusAt(t, doc, app, 1, 1)

			res, err := Patch(doc, app, tt.next)
			if err != nil {
				t.Fatalf("Patch() error = %v", err)
			}
			if res.Outcome != tt.outcome || res.Reason != tt.reason {
				t.Fatalf("Result = %v/%v, want %v/%v", res.Outcome, res.Reason, tt.outcome, tt.reason)
			}
			sameTree(t, res.Node, tt.next)

			if kept := doc.Focused() == input; kept != (tt.outcome == Reconciled) {
				t.Errorf("focus kept = %v for %v", kept, res.Outcome)
			}
			if tt.outcome == Replaced && res.Node == app {
				t.Error("ambiguous match reused the previous root")
			}
		})
	}
}

func TestPatchFocusOutsideReplaces(t *testing.T) {
	doc := host.NewDocument()
	search, _ := doc.Mount(vdom.Input(vdom.Type("search")))
	app, _ := doc.Mount(createApp("old"))
	doc.Focus(search)

	res, err := Patch(doc, app, createApp("new"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != Replaced || res.Reason != ReasonFocusOutside {
		t.Errorf("Result = %+v, want Replaced/focus_outside", res)
	}
	if doc.Focused() != search {
		t.Error("focus outside the patched root must be untouched")
	}
}

func TestPatchReplacesMismatchedSiblings(t *testing.T) {
	doc, app := mountTree(t, vdom.Div(
		vdom.Span("label"),
		vdom.Text("plain"),
		vdom.Form(vdom.Input()),
	))
	input := focusAt(t, doc, app, 2, 0)
	j := record(doc)

	next := vdom.Div(
		vdom.H("em", "label"),
		vdom.H("strong", "plain"),
		vdom.Form(vdom.Input(vdom.Class("x"))),
	)
	res, err := Patch(doc, app, next)
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != Reconciled {
		t.Fatalf("Outcome = %v, want reconciled", res.Outcome)
	}
	if j.Counts()[host.MutReplace] != 2 {
		t.Errorf("replace = %d, want 2", j.Counts()[host.MutReplace])
	}
	if doc.Focused() != input {
		t.Error("focus must be preserved")
	}
	sameTree(t, app, next)
}

func TestPatchCreatesNewSiblings(t *testing.T) {
	doc, app := mountTree(t, vdom.Div(
		vdom.Form(vdom.Input(vdom.Key("q"))),
		vdom.Ul(vdom.Li("0")),
	))
	input := focusAt(t, doc, app, 0, 0)
	j := record(doc)

	next := vdom.Div(
		vdom.Form(vdom.Input(vdom.Key("q"))),
		vdom.Ul(vdom.Li("0"), vdom.Li("1"), vdom.Li("2"), vdom.Li("3"), vdom.Li("4"), vdom.Li("5")),
	)
	if _, err := Patch(doc, app, next); err != nil {
		t.Fatal(err)
	}

	if app.Child(1).ChildCount() != 6 {
		t.Errorf("ul has %d children, want 6", app.Child(1).ChildCount())
	}
	if j.Counts()[host.MutInsert] != 5 || j.Len() != 5 {
		t.Errorf("mutations = %v, want exactly 5 inserts", j.Counts())
	}
	if doc.Focused() != input {
		t.Error("focus must be preserved")
	}
	if got, want := render.OuterHTML(app), render.DescriptionHTML(next); got != want {
		t.Errorf("render = %s, want %s", got, want)
	}
}

func TestPatchHandlerDiff(t *testing.T) {
	keep := vdom.NewHandler("keep", nil)
	drop := vdom.NewHandler("drop", nil)
	swapA := vdom.NewHandler("a", nil)
	swapB := vdom.NewHandler("b", nil)

	doc, app := mountTree(t, vdom.Div(
		vdom.Input(vdom.OnInput(keep), vdom.OnBlur(drop), vdom.OnChange(swapA)),
	))
	input := focusAt(t, doc, app, 0)
	j := record(doc)

	_, err := Patch(doc, app, vdom.Div(
		vdom.Input(vdom.OnInput(keep), vdom.OnChange(swapB), vdom.OnKeyDown(keep)),
	))
	if err != nil {
		t.Fatal(err)
	}

	counts := j.Counts()
	if counts[host.MutBind] != 2 || counts[host.MutUnbind] != 1 || j.Len() != 3 {
		t.Errorf("mutations = %v, want 2 binds and 1 unbind", counts)
	}
	if input.Handler("input") != keep || input.Handler("change") != swapB ||
		input.Handler("keydown") != keep || input.Handler("blur") != nil {
		t.Errorf("handlers = %+v", input.Handlers())
	}
}

// brokenHost fails node creation.
type brokenHost struct {
	*host.Document
	err error
}

func (b *brokenHost) CreateNode(*vdom.VNode) (*host.Node, error) {
	return nil, b.err
}

func TestPatchHostFailures(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		focus    bool
		wantCode string
	}{
		{"nil node on replace", nil, false, "E001"},
		{"error on replace", stderrors.New("out of nodes"), false, "E002"},
		{"nil node while reconciling", nil, true, "E001"},
		{"coded error passes through", errors.New("E002").WithDetail("custom"), true, "E002"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, app := mountTree(t, vdom.Div(vdom.Input()))
			if tt.focus {
				focusAt(t, doc, app, 0)
			}
			h := &brokenHost{Document: doc, err: tt.err}

			res, err := Patch(h, app, vdom.Div(vdom.Input(), vdom.P("new")))
			if err == nil {
				t.Fatalf("Patch() = %+v, want error", res)
			}
			if got := errors.Code(err); got != tt.wantCode {
				t.Errorf("Code() = %q, want %q (err: %v)", got, tt.wantCode, err)
			}
			if tt.err != nil && !stderrors.Is(err, tt.err) && errors.Code(tt.err) == "" {
				t.Errorf("error chain should include the host error: %v", err)
			}
		})
	}
}

func TestPatchNilRoot(t *testing.T) {
	_, err := Patch(host.NewDocument(), nil, vdom.Div())
	if errors.Code(err) != "E003" {
		t.Errorf("Code() = %q, want E003", errors.Code(err))
	}
}

func TestReconcileTreesUnresolved(t *testing.T) {
	doc, app := mountTree(t, vdom.Div(vdom.Input()))
	input := focusAt(t, doc, app, 0)

	dt := BuildDoubleTree(app, vdom.Div(vdom.Textarea()), input)
	if _, err := ReconcileTrees(doc, dt); errors.Code(err) != "E003" {
		t.Errorf("ReconcileTrees() error = %v, want E003", err)
	}
}

func TestReconcileTreesRestoresFocus(t *testing.T) {
	doc, app := mountTree(t, vdom.Div(vdom.Ul(vdom.Li(vdom.Key("a"), vdom.Input()), vdom.Li(vdom.Key("b")))))
	input := focusAt(t, doc, app, 0, 0, 0)
	next := vdom.Div(vdom.Ul(vdom.Li(vdom.Key("b")), vdom.Li(vdom.Key("a"), vdom.Input())))

	dt := BuildDoubleTree(app, next, input)
	root, err := ReconcileTrees(doc, dt)
	if err != nil {
		t.Fatal(err)
	}
	if root != app {
		t.Error("ReconcileTrees must return the previous root")
	}
	leaf := dt.Previous[len(dt.Previous)-1]
	if leaf != input || doc.Focused() != leaf {
		t.Error("the chain's final entry must be the live focus holder")
	}
}

func TestOutcomeAndReasonStrings(t *testing.T) {
	if Reconciled.String() != "reconciled" || Replaced.String() != "replaced" ||
		Removed.String() != "removed" || Outcome(9).String() != "unknown" {
		t.Error("unexpected Outcome names")
	}
	if ReasonNoCounterpart.String() != "no_counterpart" || ReasonNone.String() != "none" ||
		Reason(9).String() != "unknown" {
		t.Error("unexpected Reason names")
	}
}
