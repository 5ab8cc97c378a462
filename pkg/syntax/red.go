package syntax

import "iter"

// RedRef is an ephemeral view of a green node that additionally knows
// its absolute byte offset and a chain back to its parent's ref.
//
// Red refs exist only during a traversal: they are built lazily by
// Children, form a stack-shaped parent chain, and are discarded when the
// caller's query returns. Two refs may view the same green node at
// different offsets with different ancestries; that is how one shared
// subtree serves multiple tree positions. Refs are cheap to rebuild and
// must not be shared across goroutines; the green tree itself may be.
type RedRef struct {
	green  *GreenNode
	source SourceID
	offset int
	parent *RedRef
}

// NewRoot wraps a green tree root at absolute offset 0 with no parent.
func NewRoot(green *GreenNode, source SourceID) RedRef {
	return RedRef{green: green, source: source}
}

// Green returns the underlying green node.
func (r RedRef) Green() *GreenNode {
	return r.green
}

// Kind returns the underlying green node's kind.
func (r RedRef) Kind() NodeKind {
	return r.green.Kind()
}

// Len returns the node's byte length.
func (r RedRef) Len() int {
	return r.green.Len()
}

// Span returns the node's absolute source span.
func (r RedRef) Span() Span {
	return Span{Source: r.source, Start: r.offset, End: r.offset + r.green.Len()}
}

// Parent returns the ref this one was reached through, or nil at the root.
func (r RedRef) Parent() *RedRef {
	return r.parent
}

// IsLeaf returns true if the underlying green node is a token leaf.
func (r RedRef) IsLeaf() bool {
	return r.green.IsLeaf()
}

// NumChildren returns the number of direct children.
func (r RedRef) NumChildren() int {
	return r.green.NumChildren()
}

// Children iterates over child refs in order. Each child's offset is the
// parent's offset plus the cumulative length of the preceding siblings,
// and each child's parent chain points back at this ref.
func (r RedRef) Children() iter.Seq[RedRef] {
	parent := r
	return func(yield func(RedRef) bool) {
		offset := r.offset
		for child := range r.green.Children() {
			ref := RedRef{green: child, source: r.source, offset: offset, parent: &parent}
			if !yield(ref) {
				return
			}
			offset += child.Len()
		}
	}
}

// Errors collects every error-tagged node in this subtree, in source
// order. Diagnostics are read off these refs directly; the typed AST
// drops them instead.
func (r RedRef) Errors() []RedRef {
	return FindByKind(r, KindError)
}
