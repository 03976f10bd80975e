package protocol

import (
	"fmt"

	"github.com/vango-dev/keepfocus/pkg/host"
	"github.com/vango-dev/keepfocus/pkg/vdom"
)

// AttrWire is one attribute of a snapshot.
type AttrWire struct {
	Name  string
	Value vdom.Value
}

// NodeWire is a serializable snapshot of a host subtree. Handlers travel
// as event names only.
type NodeWire struct {
	ID       uint64
	Kind     vdom.VKind
	Tag      string
	Key      string
	Text     string
	Attrs    []AttrWire
	Events   []string
	Children []*NodeWire
}

// Snapshot captures n and its descendants.
func Snapshot(n *host.Node) *NodeWire {
	if n == nil {
		return nil
	}
	w := &NodeWire{ID: n.ID(), Kind: n.Kind()}
	if n.IsText() {
		w.Text = n.Text()
		return w
	}

	w.Tag = n.Tag()
	w.Key = n.Key()
	if attrs := n.Attrs(); len(attrs) > 0 {
		w.Attrs = make([]AttrWire, len(attrs))
		for i, a := range attrs {
			w.Attrs[i] = AttrWire{Name: a.Key, Value: a.Value}
		}
	}
	for _, h := range n.Handlers() {
		w.Events = append(w.Events, h.Event)
	}
	if n.ChildCount() > 0 {
		w.Children = make([]*NodeWire, 0, n.ChildCount())
		for _, c := range n.Children() {
			w.Children = append(w.Children, Snapshot(c))
		}
	}
	return w
}

// Count returns the number of nodes in the snapshot.
func (w *NodeWire) Count() int {
	if w == nil {
		return 0
	}
	n := 1
	for _, c := range w.Children {
		n += c.Count()
	}
	return n
}

// EncodeNodeWire appends w to e. A nil snapshot is encoded as 0xFF.
func EncodeNodeWire(e *Encoder, w *NodeWire) {
	if w == nil {
		e.WriteByte(0xFF)
		return
	}
	e.WriteByte(byte(w.Kind))
	e.WriteUvarint(w.ID)

	if w.Kind == vdom.KindText {
		e.WriteString(w.Text)
		return
	}
	e.WriteString(w.Tag)
	e.WriteString(w.Key)
	e.WriteUvarint(uint64(len(w.Attrs)))
	for _, a := range w.Attrs {
		e.WriteString(a.Name)
		encodeValue(e, a.Value)
	}
	e.WriteUvarint(uint64(len(w.Events)))
	for _, ev := range w.Events {
		e.WriteString(ev)
	}
	e.WriteUvarint(uint64(len(w.Children)))
	for _, c := range w.Children {
		EncodeNodeWire(e, c)
	}
}

// DecodeNodeWire reads a snapshot, enforcing the decoder's depth limit.
func DecodeNodeWire(d *Decoder) (*NodeWire, error) {
	return decodeNodeWire(d, &depthContext{max: d.limits.MaxDepth})
}

func decodeNodeWire(d *Decoder, dc *depthContext) (*NodeWire, error) {
	if err := dc.enter(); err != nil {
		return nil, err
	}
	defer dc.leave()

	kind, err := d.ReadByte()
	if err != nil {
		return nil, err
	}
	if kind == 0xFF {
		return nil, nil
	}

	w := &NodeWire{Kind: vdom.VKind(kind)}
	if w.ID, err = d.ReadUvarint(); err != nil {
		return nil, err
	}

	switch w.Kind {
	case vdom.KindText:
		w.Text, err = d.ReadString()
		return w, err
	case vdom.KindElement:
	default:
		return nil, fmt.Errorf("protocol: invalid node kind 0x%02x", kind)
	}

	if w.Tag, err = d.ReadString(); err != nil {
		return nil, err
	}
	if w.Key, err = d.ReadString(); err != nil {
		return nil, err
	}

	n, err := d.ReadCollectionCount()
	if err != nil {
		return nil, err
	}
	if n > 0 {
		w.Attrs = make([]AttrWire, n)
		for i := range w.Attrs {
			if w.Attrs[i].Name, err = d.ReadString(); err != nil {
				return nil, err
			}
			if w.Attrs[i].Value, err = decodeValue(d); err != nil {
				return nil, err
			}
		}
	}

	if n, err = d.ReadCollectionCount(); err != nil {
		return nil, err
	}
	if n > 0 {
		w.Events = make([]string, n)
		for i := range w.Events {
			if w.Events[i], err = d.ReadString(); err != nil {
				return nil, err
			}
		}
	}

	if n, err = d.ReadCollectionCount(); err != nil {
		return nil, err
	}
	if n > 0 {
		w.Children = make([]*NodeWire, n)
		for i := range w.Children {
			if w.Children[i], err = decodeNodeWire(d, dc); err != nil {
				return nil, err
			}
		}
	}
	return w, nil
}

func encodeValue(e *Encoder, v vdom.Value) {
	e.WriteByte(byte(v.Kind()))
	switch v.Kind() {
	case vdom.ValueNumber:
		e.WriteFloat64(v.Number())
	case vdom.ValueBool:
		e.WriteBool(v.Bool())
	default:
		e.WriteString(v.Text())
	}
}

func decodeValue(d *Decoder) (vdom.Value, error) {
	kind, err := d.ReadByte()
	if err != nil {
		return vdom.Value{}, err
	}
	switch vdom.ValueKind(kind) {
	case vdom.ValueText:
		s, err := d.ReadString()
		return vdom.TextValue(s), err
	case vdom.ValueNumber:
		f, err := d.ReadFloat64()
		return vdom.NumberValue(f), err
	case vdom.ValueBool:
		b, err := d.ReadBool()
		return vdom.BoolValue(b), err
	default:
		return vdom.Value{}, fmt.Errorf("protocol: invalid value kind 0x%02x", kind)
	}
}
