// Package host implements the live, mutable tree that the reconcile engine
// reads and rewrites.
//
// A Document owns a root node, the single focus holder, and the set of
// mutation primitives: attribute set/remove, handler bind/unbind, text
// update, and child insert/remove/replace. Every primitive that changes the
// attached tree is reported to the Document's observers as a Mutation, which
// is how journals, metrics, and the wire protocol learn what a patch did.
//
// Parent links are lookup-only. Children are owned by their parent, and the
// parent pointer is cleared whenever a node is detached.
//
// Focus follows the rules of a browser document: only attached elements can
// hold focus, and detaching a subtree that contains the focus holder blurs
// it. Moving a node is a detach followed by an insert, so a move also blurs.
//
// A Document is not safe for concurrent use.
package host
