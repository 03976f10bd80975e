package vdom

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/vango-dev/keepfocus/internal/errors"
)

func TestDecodeJSON(t *testing.T) {
	data := []byte(`{
		"tag": "form",
		"attrs": {"id": "f", "tabindex": 3, "novalidate": true, "class": "wide"},
		"on": {"submit": "save"},
		"children": [
			{"tag": "input", "key": "name", "attrs": {"type": "text"}, "on": {"input": "update", "blur": "touch"}},
			{"text": "hint"}
		]
	}`)

	node, err := DecodeJSON(data, nil)
	if err != nil {
		t.Fatalf("DecodeJSON() error = %v", err)
	}

	if node.Tag != "form" {
		t.Errorf("Tag = %q", node.Tag)
	}
	wantOrder := []string{"id", "tabindex", "novalidate", "class"}
	if len(node.Attrs) != len(wantOrder) {
		t.Fatalf("len(Attrs) = %d", len(node.Attrs))
	}
	for i, key := range wantOrder {
		if node.Attrs[i].Key != key {
			t.Errorf("Attrs[%d] = %q, want %q", i, node.Attrs[i].Key, key)
		}
	}
	if v, _ := node.Attr("tabindex"); v.Kind() != ValueNumber || v.Number() != 3 {
		t.Errorf("tabindex = %v", v)
	}
	if v, _ := node.Attr("novalidate"); v.Kind() != ValueBool || !v.Bool() {
		t.Errorf("novalidate = %v", v)
	}
	if node.Handler("submit").Name() != "save" {
		t.Errorf("submit handler = %q", node.Handler("submit").Name())
	}

	input := node.Children[0]
	if input.Key != "name" {
		t.Errorf("input Key = %q", input.Key)
	}
	if len(input.Events) != 2 || input.Events[0].Event != "blur" || input.Events[1].Event != "input" {
		t.Errorf("input events = %+v, want sorted blur, input", input.Events)
	}

	text := node.Children[1]
	if text.Kind != KindText || text.Text != "hint" {
		t.Errorf("text child = %+v", text)
	}
}

func TestDecodeJSONSharedHandlers(t *testing.T) {
	var calls []string
	set := NewHandlerSet(func(name string, ev Event) {
		calls = append(calls, name+":"+ev.Value)
	})

	a, err := DecodeJSON([]byte(`{"tag":"input","on":{"input":"update"}}`), set)
	if err != nil {
		t.Fatal(err)
	}
	b, err := DecodeJSON([]byte(`{"tag":"input","on":{"input":"update","change":"commit"}}`), set)
	if err != nil {
		t.Fatal(err)
	}

	if a.Handler("input") != b.Handler("input") {
		t.Error("same handler name must resolve to the same reference")
	}
	if set.Len() != 2 {
		t.Errorf("Len() = %d, want 2", set.Len())
	}

	b.Handler("change").Call(Event{Type: "change", Value: "x"})
	if len(calls) != 1 || calls[0] != "commit:x" {
		t.Errorf("calls = %v", calls)
	}
}

func TestDecodeJSONErrors(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantCode string
	}{
		{"syntax", `{"tag": "div",`, "E040"},
		{"wrong type", `{"tag": 5}`, "E040"},
		{"missing tag", `{"attrs": {"id": "x"}}`, "E041"},
		{"child missing tag", `{"tag": "div", "children": [{"key": "a"}]}`, "E041"},
		{"null child", `{"tag": "div", "children": [null]}`, "E041"},
		{"object attr", `{"tag": "div", "attrs": {"style": {"color": "red"}}}`, "E042"},
		{"null attr", `{"tag": "div", "attrs": {"title": null}}`, "E042"},
		{"array attr", `{"tag": "div", "attrs": {"class": ["a"]}}`, "E042"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeJSON([]byte(tt.data), nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Code(err); got != tt.wantCode {
				t.Errorf("Code() = %q, want %q (err: %v)", got, tt.wantCode, err)
			}
		})
	}
}

func TestDecodeJSONChildPath(t *testing.T) {
	_, err := DecodeJSON([]byte(`{"tag":"ul","children":[{"tag":"li"},{"children":[]}]}`), nil)
	if err == nil {
		t.Fatal("expected error")
	}
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("error type = %T", err)
	}
	if !strings.Contains(e.Detail, "$.children[1]") {
		t.Errorf("detail should name the offending path, got %q", e.Detail)
	}
}

func TestEncodeJSON(t *testing.T) {
	save := NewHandler("save", nil)
	tree := Form(ID("f"), TabIndex(1), OnSubmit(save),
		Input(Key("q"), Disabled(false)),
		"done",
	)

	data, err := EncodeJSON(tree)
	if err != nil {
		t.Fatalf("EncodeJSON() error = %v", err)
	}

	want := `{"tag":"form","attrs":{"id":"f","tabindex":1},"on":{"submit":"save"},` +
		`"children":[{"tag":"input","key":"q","attrs":{"disabled":false}},{"text":"done"}]}`
	if string(data) != want {
		t.Errorf("EncodeJSON() =\n%s\nwant\n%s", data, want)
	}
}
