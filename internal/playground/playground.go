// Package playground runs one patch request end to end: decode two JSON
// descriptions, mount the first, focus a node, patch to the second and
// report what happened. The HTTP server and the CLI share it.
package playground

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/vango-dev/keepfocus/internal/errors"
	"github.com/vango-dev/keepfocus/pkg/host"
	"github.com/vango-dev/keepfocus/pkg/reconcile"
	"github.com/vango-dev/keepfocus/pkg/render"
	"github.com/vango-dev/keepfocus/pkg/vdom"
)

// Request is a stateless patch request.
type Request struct {
	// Prev is the description mounted before patching. Required.
	Prev json.RawMessage `json:"prev"`

	// Next is the target description. Absent or null removes the tree.
	Next json.RawMessage `json:"next,omitempty"`

	// Focus is the path of the focus holder below the prev root, e.g.
	// "0/1". Empty means the root itself; omit it for no focus.
	Focus *string `json:"focus,omitempty"`

	// Journal asks for the mutation list in the response.
	Journal bool `json:"journal,omitempty"`
}

// Response reports the result of a Request.
type Response struct {
	Outcome    string `json:"outcome"`
	Reason     string `json:"reason,omitempty"`
	SpineDepth int    `json:"spineDepth,omitempty"`
	HTML       string `json:"html"`

	// Focus is the path of the focus holder below the new root after the
	// patch, or null when nothing is focused.
	Focus *string `json:"focus"`

	// FocusKept reports whether the node focused before the patch still
	// holds focus.
	FocusKept bool `json:"focusKept"`

	Mutations []Mutation     `json:"mutations,omitempty"`
	Counts    map[string]int `json:"counts,omitempty"`
}

// Mutation is the JSON view of a host.Mutation.
type Mutation struct {
	Op     string `json:"op"`
	Node   uint64 `json:"node"`
	Parent uint64 `json:"parent,omitempty"`
	Index  int    `json:"index,omitempty"`
	Name   string `json:"name,omitempty"`
	Value  any    `json:"value,omitempty"`
	Text   string `json:"text,omitempty"`
	With   uint64 `json:"with,omitempty"`
}

// Run executes req with engine.
func Run(ctx context.Context, engine *reconcile.Engine, req Request) (*Response, error) {
	if isAbsent(req.Prev) {
		return nil, errors.New("E140").WithDetail("prev description is required")
	}
	handlers := vdom.NewHandlerSet(nil)

	prev, err := vdom.DecodeJSON(req.Prev, handlers)
	if err != nil {
		return nil, err
	}
	var next *vdom.VNode
	if !isAbsent(req.Next) {
		if next, err = vdom.DecodeJSON(req.Next, handlers); err != nil {
			return nil, err
		}
	}

	doc := host.NewDocument()
	root, err := doc.Mount(prev)
	if err != nil {
		return nil, err
	}

	var focused *host.Node
	if req.Focus != nil {
		p, err := host.ParsePath(*req.Focus)
		if err != nil {
			return nil, err
		}
		focused = root.Descend(p)
		if focused == nil || !focused.IsElement() {
			return nil, errors.New("E043").WithDetail("no element at " + p.String())
		}
		doc.Focus(focused)
	}

	journal := host.NewJournal()
	cancel := doc.Observe(journal.Record)
	res, err := engine.Patch(ctx, doc, root, next)
	cancel()
	if err != nil {
		return nil, err
	}

	resp := &Response{
		Outcome:    res.Outcome.String(),
		SpineDepth: res.SpineDepth,
		FocusKept:  focused != nil && doc.Focused() == focused,
	}
	if res.Outcome == reconcile.Replaced {
		resp.Reason = res.Reason.String()
	}
	if res.Node != nil {
		resp.HTML = render.OuterHTML(res.Node)
		if f := doc.Focused(); f != nil {
			if p := host.PathOf(res.Node, f); p != nil {
				s := p.String()
				resp.Focus = &s
			}
		}
	}
	if req.Journal {
		resp.Mutations = MutationsOf(journal.Mutations())
		resp.Counts = make(map[string]int)
		for op, n := range journal.Counts() {
			resp.Counts[op.String()] = n
		}
	}
	return resp, nil
}

// MutationsOf converts a journal for JSON output.
func MutationsOf(ms []host.Mutation) []Mutation {
	out := make([]Mutation, len(ms))
	for i, m := range ms {
		v := Mutation{
			Op:    m.Op.String(),
			Node:  m.Node.ID(),
			Index: m.Index,
			Name:  m.Name,
			Text:  m.Text,
		}
		if m.Parent != nil {
			v.Parent = m.Parent.ID()
		}
		if m.Op == host.MutSetAttr {
			v.Value = m.Value.Any()
		}
		if m.Replacement != nil {
			v.With = m.Replacement.ID()
		}
		out[i] = v
	}
	return out
}

func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
