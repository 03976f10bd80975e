package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value Value) Attr {
	return Attr{Key: key, Value: value}
}

// Attribute creates an arbitrary attribute. value must be a string, bool,
// or number; other types produce an empty attribute that is ignored.
func Attribute(key string, value any) Attr {
	v, ok := ValueOf(value)
	if !ok {
		return Attr{}
	}
	return attr(key, v)
}

// keyAttr is the pseudo-attribute carrying a reconciliation key.
const keyAttr = "key"

// Key sets the reconciliation key. It is not rendered as an attribute.
func Key(key string) Attr { return attr(keyAttr, TextValue(key)) }

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", TextValue(id)) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", TextValue(strings.Join(classes, " "))) }

// StyleAttr sets the style attribute.
func StyleAttr(style string) Attr { return attr("style", TextValue(style)) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, TextValue(value)) }

// Form attributes

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", TextValue(t)) }

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", TextValue(name)) }

// ValueAttr sets the value attribute.
func ValueAttr(value string) Attr { return attr("value", TextValue(value)) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return attr("placeholder", TextValue(text)) }

// For sets the for attribute on labels.
func For(id string) Attr { return attr("for", TextValue(id)) }

// Disabled sets the disabled attribute.
func Disabled(disabled bool) Attr { return attr("disabled", BoolValue(disabled)) }

// Checked sets the checked attribute.
func Checked(checked bool) Attr { return attr("checked", BoolValue(checked)) }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return attr("tabindex", NumberValue(float64(index))) }

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", TextValue(url)) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", TextValue(label)) }
