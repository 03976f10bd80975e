// Package reconcile patches a live host tree to match a new description
// while keeping the node that holds focus alive.
//
// The entry point is Patch (or Engine.Patch for logging, metrics, and
// tracing). When nothing inside the patched subtree holds focus, Patch
// replaces the subtree wholesale. Otherwise it locates the focus holder's
// ancestry chain, resolves the same logical node in the description, and
// reconciles the whole subtree in place. Along that chain (the spine) the
// reconciler pairs nodes by the resolved chain instead of by its generic
// keyed and positional matching, so the focus holder is never recreated.
//
//	doc := host.NewDocument()
//	root, _ := doc.Mount(view(state))
//	doc.Focus(root.Descend(host.Path{0, 1}))
//
//	res, err := reconcile.Patch(doc, root, view(next))
//	// res.Outcome == reconcile.Reconciled, res.Node == root
//
// The lower-level steps are exported for callers that want to inspect or
// drive them: Locate, Resolve, BuildDoubleTree and ReconcileTrees.
//
// Recoverable conditions never produce errors: a missing focus holder, a
// focus holder without a counterpart, and kind or tag changes all fall back
// to replacement. Errors are reserved for host failures, such as node
// creation returning nothing.
package reconcile
