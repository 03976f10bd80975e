package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// H creates an element with the given tag.
// Arguments can be: nil, Attr, []Attr, EventHandler, *VNode, []*VNode, string.
func H(tag string, args ...any) *VNode {
	return createElement(tag, args)
}

// createElement creates a new VNode with the given tag and arguments.
// A later attribute or handler with the same name overrides an earlier one
// in place, so declaration order is stable.
func createElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind: KindElement,
		Tag:  tag,
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
			continue

		case Attr:
			node.addAttr(v)

		case []Attr:
			for _, a := range v {
				node.addAttr(a)
			}

		case EventHandler:
			node.addEvent(v)

		case []EventHandler:
			for _, eh := range v {
				node.addEvent(eh)
			}

		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*VNode:
			for _, child := range v {
				if child != nil {
					node.Children = append(node.Children, child)
				}
			}

		case string:
			// Shorthand for text node
			node.Children = append(node.Children, Text(v))
		}
	}

	return node
}

func (v *VNode) addAttr(a Attr) {
	if a.IsEmpty() {
		return
	}
	if a.Key == keyAttr {
		v.Key = a.Value.String()
		return
	}
	for i := range v.Attrs {
		if v.Attrs[i].Key == a.Key {
			v.Attrs[i].Value = a.Value
			return
		}
	}
	v.Attrs = append(v.Attrs, a)
}

func (v *VNode) addEvent(eh EventHandler) {
	if eh.Event == "" || eh.Handler == nil {
		return
	}
	for i := range v.Events {
		if v.Events[i].Event == eh.Event {
			v.Events[i].Handler = eh.Handler
			return
		}
	}
	v.Events = append(v.Events, eh)
}

// Document structure and sectioning

func Div(args ...any) *VNode     { return createElement("div", args) }
func Main(args ...any) *VNode    { return createElement("main", args) }
func Section(args ...any) *VNode { return createElement("section", args) }
func Header(args ...any) *VNode  { return createElement("header", args) }
func Footer(args ...any) *VNode  { return createElement("footer", args) }
func Nav(args ...any) *VNode     { return createElement("nav", args) }
func H1(args ...any) *VNode      { return createElement("h1", args) }
func H2(args ...any) *VNode      { return createElement("h2", args) }

// Text content

func P(args ...any) *VNode    { return createElement("p", args) }
func Span(args ...any) *VNode { return createElement("span", args) }
func Ul(args ...any) *VNode   { return createElement("ul", args) }
func Ol(args ...any) *VNode   { return createElement("ol", args) }
func Li(args ...any) *VNode   { return createElement("li", args) }
func A(args ...any) *VNode    { return createElement("a", args) }
func Br(args ...any) *VNode   { return createElement("br", args) }

// Form elements

func Form(args ...any) *VNode     { return createElement("form", args) }
func Input(args ...any) *VNode    { return createElement("input", args) }
func Textarea(args ...any) *VNode { return createElement("textarea", args) }
func Select(args ...any) *VNode   { return createElement("select", args) }
func Option(args ...any) *VNode   { return createElement("option", args) }
func Button(args ...any) *VNode   { return createElement("button", args) }
func Label(args ...any) *VNode    { return createElement("label", args) }
func Fieldset(args ...any) *VNode { return createElement("fieldset", args) }
