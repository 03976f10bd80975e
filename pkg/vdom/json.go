package vdom

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/vango-dev/keepfocus/internal/errors"
)

// HandlerSet resolves handler names from the JSON form to shared Handler
// references, so decoding the same name twice yields the same binding.
type HandlerSet struct {
	mu     sync.Mutex
	byName map[string]*Handler
	onCall func(name string, ev Event)
}

// NewHandlerSet creates a HandlerSet. onCall, if non-nil, is invoked
// whenever a handler from this set is called.
func NewHandlerSet(onCall func(name string, ev Event)) *HandlerSet {
	return &HandlerSet{
		byName: make(map[string]*Handler),
		onCall: onCall,
	}
}

// Get returns the handler registered under name, creating it on first use.
func (s *HandlerSet) Get(name string) *Handler {
	s.mu.Lock()
	defer s.mu.Unlock()
	if h, ok := s.byName[name]; ok {
		return h
	}
	onCall := s.onCall
	h := NewHandler(name, func(ev Event) {
		if onCall != nil {
			onCall(name, ev)
		}
	})
	s.byName[name] = h
	return h
}

// Len returns the number of distinct handlers created so far.
func (s *HandlerSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byName)
}

// jsonNode is the JSON wire form of a VNode.
type jsonNode struct {
	Tag      string            `json:"tag,omitempty"`
	Key      string            `json:"key,omitempty"`
	Text     *string           `json:"text,omitempty"`
	Attrs    jsonAttrs         `json:"attrs,omitempty"`
	On       map[string]string `json:"on,omitempty"`
	Children []*jsonNode       `json:"children,omitempty"`
}

// jsonAttrs keeps attribute declaration order, which encoding/json maps drop.
type jsonAttrs []Attr

// UnmarshalJSON decodes an object into ordered attributes.
func (a *jsonAttrs) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*a = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("E042").WithDetail(`"attrs" must be an object`)
	}

	var attrs jsonAttrs
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)

		var raw any
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		val, ok := ValueOf(raw)
		if !ok {
			return errors.New("E042").WithDetail(fmt.Sprintf("attribute %q has unsupported value %v", key, raw))
		}
		attrs = append(attrs, Attr{Key: key, Value: val})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*a = attrs
	return nil
}

// MarshalJSON encodes attributes as an object in declaration order.
func (a jsonAttrs) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, attr := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(attr.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(attr.Value.Any())
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DecodeJSON decodes a description tree from its JSON form.
// Handler names under "on" are resolved through handlers; a nil set
// gives every name a fresh no-op handler.
func DecodeJSON(data []byte, handlers *HandlerSet) (*VNode, error) {
	var root jsonNode
	if err := json.Unmarshal(data, &root); err != nil {
		if _, ok := err.(*errors.Error); ok {
			return nil, err
		}
		return nil, errors.New("E040").Wrap(err)
	}
	if handlers == nil {
		handlers = NewHandlerSet(nil)
	}
	return root.toVNode(handlers, "$")
}

func (n *jsonNode) toVNode(handlers *HandlerSet, path string) (*VNode, error) {
	if n == nil {
		return nil, errors.New("E041").WithDetail("null node at " + path)
	}
	if n.Text != nil {
		return Text(*n.Text), nil
	}
	if n.Tag == "" {
		return nil, errors.New("E041").WithDetail("missing tag at " + path)
	}

	node := &VNode{
		Kind: KindElement,
		Tag:  n.Tag,
		Key:  n.Key,
	}
	for _, a := range n.Attrs {
		node.addAttr(a)
	}

	events := make([]string, 0, len(n.On))
	for event := range n.On {
		events = append(events, event)
	}
	sort.Strings(events)
	for _, event := range events {
		node.addEvent(EventHandler{Event: event, Handler: handlers.Get(n.On[event])})
	}

	for i, child := range n.Children {
		c, err := child.toVNode(handlers, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, c)
	}
	return node, nil
}

// EncodeJSON encodes a description tree to its JSON form.
// Handlers are written by name.
func EncodeJSON(v *VNode) ([]byte, error) {
	return json.Marshal(fromVNode(v))
}

func fromVNode(v *VNode) *jsonNode {
	if v == nil {
		return nil
	}
	if v.Kind == KindText {
		text := v.Text
		return &jsonNode{Text: &text}
	}
	n := &jsonNode{
		Tag:   v.Tag,
		Key:   v.Key,
		Attrs: jsonAttrs(v.Attrs),
	}
	if len(v.Events) > 0 {
		n.On = make(map[string]string, len(v.Events))
		for _, eh := range v.Events {
			n.On[eh.Event] = eh.Handler.Name()
		}
	}
	for _, child := range v.Children {
		n.Children = append(n.Children, fromVNode(child))
	}
	return n
}
