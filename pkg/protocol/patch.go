package protocol

import (
	"fmt"

	"github.com/vango-dev/keepfocus/internal/errors"
	"github.com/vango-dev/keepfocus/pkg/vdom"
)

// PatchOp is the type of patch operation.
type PatchOp uint8

const (
	PatchSetText     PatchOp = 0x01 // Update text content
	PatchSetAttr     PatchOp = 0x02 // Set attribute
	PatchRemoveAttr  PatchOp = 0x03 // Remove attribute
	PatchInsertNode  PatchOp = 0x04 // Insert new node
	PatchRemoveNode  PatchOp = 0x05 // Remove node
	PatchMoveNode    PatchOp = 0x06 // Move node
	PatchReplaceNode PatchOp = 0x07 // Replace node
	PatchFocus       PatchOp = 0x0B // Focus element
	PatchBlur        PatchOp = 0x0C // Blur element
	PatchBindEvent   PatchOp = 0x0E // Bind handler
	PatchUnbindEvent PatchOp = 0x0F // Unbind handler
)

// String returns the string representation of the patch operation.
func (op PatchOp) String() string {
	switch op {
	case PatchSetText:
		return "SetText"
	case PatchSetAttr:
		return "SetAttr"
	case PatchRemoveAttr:
		return "RemoveAttr"
	case PatchInsertNode:
		return "InsertNode"
	case PatchRemoveNode:
		return "RemoveNode"
	case PatchMoveNode:
		return "MoveNode"
	case PatchReplaceNode:
		return "ReplaceNode"
	case PatchFocus:
		return "Focus"
	case PatchBlur:
		return "Blur"
	case PatchBindEvent:
		return "BindEvent"
	case PatchUnbindEvent:
		return "UnbindEvent"
	default:
		return "Unknown"
	}
}

// Patch is one node-ID addressed operation.
type Patch struct {
	Op       PatchOp
	ID       uint64     // Target node; the old node for ReplaceNode
	ParentID uint64     // InsertNode, MoveNode, RemoveNode, ReplaceNode
	Index    int        // InsertNode, MoveNode
	Name     string     // Attribute key or event name
	Value    vdom.Value // SetAttr
	Text     string     // SetText
	Node     *NodeWire  // InsertNode, ReplaceNode
}

// PatchesFrame is a sequenced batch of patches.
type PatchesFrame struct {
	Seq     uint64
	Patches []Patch
}

// EncodePatches encodes a batch.
func EncodePatches(pf *PatchesFrame) []byte {
	e := NewEncoder()
	EncodePatchesTo(e, pf)
	return e.Bytes()
}

// EncodePatchesTo encodes a batch using the provided encoder.
func EncodePatchesTo(e *Encoder, pf *PatchesFrame) {
	e.WriteUvarint(pf.Seq)
	e.WriteUvarint(uint64(len(pf.Patches)))
	for i := range pf.Patches {
		encodePatch(e, &pf.Patches[i])
	}
}

func encodePatch(e *Encoder, p *Patch) {
	e.WriteByte(byte(p.Op))
	e.WriteUvarint(p.ID)

	switch p.Op {
	case PatchSetText:
		e.WriteString(p.Text)
	case PatchSetAttr:
		e.WriteString(p.Name)
		encodeValue(e, p.Value)
	case PatchRemoveAttr, PatchBindEvent, PatchUnbindEvent:
		e.WriteString(p.Name)
	case PatchInsertNode:
		e.WriteUvarint(p.ParentID)
		e.WriteUvarint(uint64(p.Index))
		EncodeNodeWire(e, p.Node)
	case PatchMoveNode:
		e.WriteUvarint(p.ParentID)
		e.WriteUvarint(uint64(p.Index))
	case PatchRemoveNode:
		e.WriteUvarint(p.ParentID)
	case PatchReplaceNode:
		e.WriteUvarint(p.ParentID)
		EncodeNodeWire(e, p.Node)
	case PatchFocus, PatchBlur:
	}
}

// DecodePatches decodes a batch with the default limits.
func DecodePatches(data []byte) (*PatchesFrame, error) {
	return DecodePatchesFrom(NewDecoder(data))
}

// DecodePatchesFrom decodes a batch. Limit violations yield E023, any
// other malformed input E022.
func DecodePatchesFrom(d *Decoder) (*PatchesFrame, error) {
	pf, err := decodePatches(d)
	if err != nil {
		return nil, classify(err)
	}
	return pf, nil
}

func decodePatches(d *Decoder) (*PatchesFrame, error) {
	seq, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}
	count, err := d.ReadCollectionCount()
	if err != nil {
		return nil, err
	}

	patches := make([]Patch, count)
	for i := range patches {
		if err := decodePatch(d, &patches[i]); err != nil {
			return nil, fmt.Errorf("patch %d: %w", i, err)
		}
	}
	if !d.EOF() {
		return nil, fmt.Errorf("protocol: %d trailing bytes", d.Remaining())
	}
	return &PatchesFrame{Seq: seq, Patches: patches}, nil
}

func decodePatch(d *Decoder, p *Patch) error {
	opByte, err := d.ReadByte()
	if err != nil {
		return err
	}
	p.Op = PatchOp(opByte)
	if p.ID, err = d.ReadUvarint(); err != nil {
		return err
	}

	switch p.Op {
	case PatchSetText:
		p.Text, err = d.ReadString()
	case PatchSetAttr:
		if p.Name, err = d.ReadString(); err != nil {
			return err
		}
		p.Value, err = decodeValue(d)
	case PatchRemoveAttr, PatchBindEvent, PatchUnbindEvent:
		p.Name, err = d.ReadString()
	case PatchInsertNode, PatchMoveNode:
		if p.ParentID, err = d.ReadUvarint(); err != nil {
			return err
		}
		var idx uint64
		if idx, err = d.ReadUvarint(); err != nil {
			return err
		}
		p.Index = int(idx)
		if p.Op == PatchInsertNode {
			p.Node, err = DecodeNodeWire(d)
		}
	case PatchRemoveNode:
		p.ParentID, err = d.ReadUvarint()
	case PatchReplaceNode:
		if p.ParentID, err = d.ReadUvarint(); err != nil {
			return err
		}
		p.Node, err = DecodeNodeWire(d)
	case PatchFocus, PatchBlur:
	default:
		// Ops carry no length prefix, so an unknown op cannot be skipped.
		return errors.New("E022").WithDetail(fmt.Sprintf("unknown patch op 0x%02x", opByte))
	}
	return err
}
