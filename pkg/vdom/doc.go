// Package vdom provides the immutable tree descriptions consumed by the
// reconciler.
//
// A description is a VNode tree: elements carry a tag, ordered attributes,
// event handlers, an optional reconciliation key, and children; text nodes
// carry content only. Descriptions are never mutated once built; the
// reconcile package reads them and rewrites the live host tree to match.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(ID("app"),
//	    Form(OnSubmit(save),
//	        Input(Key("name"), Type("text"), OnInput(update)),
//	    ),
//	)
//
// # Values
//
// Attribute values are a closed set: text, number, or boolean (see Value).
// Handlers are opaque references; two descriptions bind the same handler
// only when they share the same *Handler.
//
// # JSON
//
// DecodeJSON reads the wire form used by the CLI and the playground server:
//
//	{"tag": "input", "key": "k", "attrs": {"type": "text"}, "on": {"input": "save"}}
//	{"text": "Hello"}
package vdom
