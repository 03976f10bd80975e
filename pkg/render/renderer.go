package render

import (
	"io"
	"sort"
	"strings"

	"github.com/vango-dev/keepfocus/pkg/host"
	"github.com/vango-dev/keepfocus/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables indented output. Inline elements stay on one line.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string

	// SortAttributes renders attributes by name instead of insertion order.
	SortAttributes bool

	// EventMarkers adds a data-on-<event>="true" attribute per bound handler.
	EventMarkers bool
}

// Renderer writes trees as HTML.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderNode renders a live subtree to a string.
func (r *Renderer) RenderNode(n *host.Node) (string, error) {
	var sb strings.Builder
	if err := r.WriteNode(&sb, n); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// RenderVNode renders a description to a string.
func (r *Renderer) RenderVNode(v *vdom.VNode) (string, error) {
	var sb strings.Builder
	if err := r.WriteVNode(&sb, v); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteNode streams a live subtree to w. A nil node writes nothing.
func (r *Renderer) WriteNode(w io.Writer, n *host.Node) error {
	if n == nil {
		return nil
	}
	return r.write(w, liveNode{n})
}

// WriteVNode streams a description to w. A nil description writes nothing.
func (r *Renderer) WriteVNode(w io.Writer, v *vdom.VNode) error {
	if v == nil {
		return nil
	}
	return r.write(w, descNode{v})
}

func (r *Renderer) write(w io.Writer, t tree) error {
	sw := &stickyWriter{w: w}
	r.renderNode(sw, t, 0)
	return sw.err
}

// OuterHTML returns the compact HTML of a live subtree.
func OuterHTML(n *host.Node) string {
	s, _ := NewRenderer(RendererConfig{}).RenderNode(n)
	return s
}

// DescriptionHTML returns the compact HTML of a description.
func DescriptionHTML(v *vdom.VNode) string {
	s, _ := NewRenderer(RendererConfig{}).RenderVNode(v)
	return s
}

// stickyWriter remembers the first write error and drops later writes.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) str(v string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, v)
}

func (r *Renderer) renderNode(w *stickyWriter, t tree, depth int) {
	if t.isText() {
		w.str(escapeHTML(t.text()))
		return
	}

	tag := t.tag()
	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	w.str("<")
	w.str(tag)
	r.renderAttributes(w, t)
	w.str(">")

	if vdom.IsVoidElement(tag) {
		if r.config.Pretty {
			w.str("\n")
		}
		return
	}

	block := r.config.Pretty && t.childCount() > 0 && !isInlineElement(tag)
	if block {
		w.str("\n")
	}
	for i := 0; i < t.childCount(); i++ {
		if c := t.child(i); c != nil {
			r.renderNode(w, c, depth+1)
		}
	}
	if block {
		r.writeIndent(w, depth)
	}

	w.str("</")
	w.str(tag)
	w.str(">")
	if r.config.Pretty {
		w.str("\n")
	}
}

func (r *Renderer) renderAttributes(w *stickyWriter, t tree) {
	attrs := t.attrs()
	if r.config.SortAttributes {
		attrs = append([]vdom.Attr(nil), attrs...)
		sort.SliceStable(attrs, func(i, j int) bool { return attrs[i].Key < attrs[j].Key })
	}

	for _, a := range attrs {
		if a.Value.Kind() == vdom.ValueBool {
			if a.Value.Bool() {
				w.str(" ")
				w.str(a.Key)
			}
			continue
		}
		w.str(" ")
		w.str(a.Key)
		w.str(`="`)
		w.str(escapeAttr(a.Value.String()))
		w.str(`"`)
	}

	if !r.config.EventMarkers {
		return
	}
	events := t.events()
	names := make([]string, 0, len(events))
	for _, eh := range events {
		names = append(names, eh.Event)
	}
	sort.Strings(names)
	for _, name := range names {
		w.str(" data-on-")
		w.str(name)
		w.str(`="true"`)
	}
}

func (r *Renderer) writeIndent(w *stickyWriter, depth int) {
	for i := 0; i < depth; i++ {
		w.str(r.config.Indent)
	}
}
