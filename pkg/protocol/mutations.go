package protocol

import "github.com/vango-dev/keepfocus/pkg/host"

// FromMutation converts one host mutation. Inserted and replacement
// subtrees are snapshotted now, so call it from a host.Observer when the
// patches must replay exactly.
func FromMutation(m host.Mutation) Patch {
	p := Patch{ID: m.Node.ID()}
	if m.Parent != nil {
		p.ParentID = m.Parent.ID()
	}

	switch m.Op {
	case host.MutSetText:
		p.Op = PatchSetText
		p.Text = m.Text
	case host.MutSetAttr:
		p.Op = PatchSetAttr
		p.Name = m.Name
		p.Value = m.Value
	case host.MutRemoveAttr:
		p.Op = PatchRemoveAttr
		p.Name = m.Name
	case host.MutBind:
		p.Op = PatchBindEvent
		p.Name = m.Name
	case host.MutUnbind:
		p.Op = PatchUnbindEvent
		p.Name = m.Name
	case host.MutInsert:
		p.Op = PatchInsertNode
		p.Index = m.Index
		p.Node = Snapshot(m.Node)
	case host.MutMove:
		p.Op = PatchMoveNode
		p.Index = m.Index
	case host.MutRemove:
		p.Op = PatchRemoveNode
	case host.MutReplace:
		p.Op = PatchReplaceNode
		p.Node = Snapshot(m.Replacement)
	case host.MutFocus:
		p.Op = PatchFocus
	case host.MutBlur:
		p.Op = PatchBlur
	}
	return p
}

// FromMutations converts a journal in order.
func FromMutations(ms []host.Mutation) []Patch {
	patches := make([]Patch, len(ms))
	for i, m := range ms {
		patches[i] = FromMutation(m)
	}
	return patches
}

// Recorder turns the mutations of a host.Document into sequenced patch
// batches. It is not safe for concurrent use.
type Recorder struct {
	seq     uint64
	pending []Patch
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Observe converts and buffers m. It has the host.Observer shape.
func (r *Recorder) Observe(m host.Mutation) {
	r.pending = append(r.pending, FromMutation(m))
}

// Pending returns the number of buffered patches.
func (r *Recorder) Pending() int {
	return len(r.pending)
}

// Flush returns the buffered patches as the next batch and clears them.
// Sequence numbers start at 1.
func (r *Recorder) Flush() *PatchesFrame {
	r.seq++
	pf := &PatchesFrame{Seq: r.seq, Patches: r.pending}
	r.pending = nil
	return pf
}

// Discard drops buffered patches without consuming a sequence number.
func (r *Recorder) Discard() {
	r.pending = nil
}
