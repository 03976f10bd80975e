package reconcile

import (
	"context"

	"github.com/vango-dev/keepfocus/internal/errors"
	"github.com/vango-dev/keepfocus/pkg/host"
	"github.com/vango-dev/keepfocus/pkg/vdom"
)

// Outcome says what Patch did to the previous root.
type Outcome uint8

const (
	// Reconciled means the previous root was patched in place.
	Reconciled Outcome = iota
	// Replaced means a new node took the previous root's place.
	Replaced
	// Removed means the previous root was detached.
	Removed
)

// String returns the lowercase outcome name.
func (o Outcome) String() string {
	switch o {
	case Reconciled:
		return "reconciled"
	case Replaced:
		return "replaced"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// Reason says why Patch replaced instead of reconciling.
type Reason uint8

const (
	ReasonNone Reason = iota
	// ReasonNoFocus: nothing holds focus.
	ReasonNoFocus
	// ReasonFocusOutside: the focus holder is outside the previous root.
	ReasonFocusOutside
	// ReasonNoCounterpart: the focus holder has no counterpart in next.
	ReasonNoCounterpart
)

// String returns the snake_case reason name, as used in metric labels.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonNoFocus:
		return "no_focus"
	case ReasonFocusOutside:
		return "focus_outside"
	case ReasonNoCounterpart:
		return "no_counterpart"
	default:
		return "unknown"
	}
}

// Result is the outcome of a Patch call.
type Result struct {
	Outcome Outcome

	// Node is the root after the call: the previous root when Reconciled,
	// the new node when Replaced, nil when Removed.
	Node *host.Node

	// Reason is set when Outcome is Replaced.
	Reason Reason

	// SpineDepth is the number of levels on the focus spine when Reconciled.
	SpineDepth int
}

// Patch updates prev to match next using a default Engine.
func Patch(h Host, prev *host.Node, next *vdom.VNode) (Result, error) {
	return New().Patch(context.Background(), h, prev, next)
}

// patch chooses between removal, wholesale replacement and reconciliation.
func patch(h Host, prev *host.Node, next *vdom.VNode) (Result, error) {
	if prev == nil {
		return Result{}, errors.New("E003")
	}

	if next == nil {
		if parent := prev.Parent(); parent != nil {
			h.RemoveChild(parent, prev)
		}
		return Result{Outcome: Removed}, nil
	}

	focus := h.Focused()
	if focus == nil {
		return replace(h, prev, next, ReasonNoFocus)
	}
	if !h.Contains(prev, focus) {
		return replace(h, prev, next, ReasonFocusOutside)
	}

	dt := BuildDoubleTree(prev, next, focus)
	if !dt.Resolved() {
		return replace(h, prev, next, ReasonNoCounterpart)
	}

	root, err := ReconcileTrees(h, dt)
	if err != nil {
		return Result{}, err
	}
	return Result{Outcome: Reconciled, Node: root, SpineDepth: dt.Depth()}, nil
}

// replace puts a node created from next in prev's place. A detached prev is
// left alone and the new node is returned to the caller unattached.
func replace(h Host, prev *host.Node, next *vdom.VNode, reason Reason) (Result, error) {
	created, err := create(h, next)
	if err != nil {
		return Result{}, err
	}
	if parent := prev.Parent(); parent != nil {
		h.ReplaceChild(parent, prev, created)
	}
	return Result{Outcome: Replaced, Node: created, Reason: reason}, nil
}
