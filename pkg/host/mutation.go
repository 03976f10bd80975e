package host

import "github.com/vango-dev/keepfocus/pkg/vdom"

// MutationOp identifies a mutation primitive.
type MutationOp uint8

const (
	MutSetText MutationOp = iota
	MutSetAttr
	MutRemoveAttr
	MutBind
	MutUnbind
	MutInsert
	MutMove
	MutRemove
	MutReplace
	MutFocus
	MutBlur
)

var mutationNames = [...]string{
	MutSetText:    "set_text",
	MutSetAttr:    "set_attr",
	MutRemoveAttr: "remove_attr",
	MutBind:       "bind",
	MutUnbind:     "unbind",
	MutInsert:     "insert",
	MutMove:       "move",
	MutRemove:     "remove",
	MutReplace:    "replace",
	MutFocus:      "focus",
	MutBlur:       "blur",
}

// String returns the snake_case name of the op, as used in metric labels.
func (op MutationOp) String() string {
	if int(op) < len(mutationNames) {
		return mutationNames[op]
	}
	return "unknown"
}

// Mutation describes one applied change.
type Mutation struct {
	Op MutationOp

	// Node is the target: the element or text node for attribute, handler,
	// text and focus ops; the child for insert, move and remove; the old
	// child for replace.
	Node *Node

	// Parent and Index locate structural ops.
	Parent *Node
	Index  int

	// Name is the attribute key or event name.
	Name    string
	Value   vdom.Value
	Text    string
	Handler *vdom.Handler

	// Replacement is the new child of a replace.
	Replacement *Node
}

// IsStructural reports whether the op changes parent/child edges.
func (m Mutation) IsStructural() bool {
	switch m.Op {
	case MutInsert, MutMove, MutRemove, MutReplace:
		return true
	}
	return false
}

// Journal records mutations in order. Attach it with Document.Observe.
type Journal struct {
	entries []Mutation
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Record appends m.
func (j *Journal) Record(m Mutation) {
	j.entries = append(j.entries, m)
}

// Mutations returns the recorded mutations.
func (j *Journal) Mutations() []Mutation {
	return j.entries
}

// Len returns the number of recorded mutations.
func (j *Journal) Len() int {
	return len(j.entries)
}

// Counts returns the number of recorded mutations per op.
func (j *Journal) Counts() map[MutationOp]int {
	counts := make(map[MutationOp]int)
	for _, m := range j.entries {
		counts[m.Op]++
	}
	return counts
}

// Reset discards all recorded mutations.
func (j *Journal) Reset() {
	j.entries = nil
}
