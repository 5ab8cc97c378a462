package syntax

import (
	"fmt"
	"iter"
)

// GreenNode is a node in the green tree: the immutable, structurally
// shared syntax representation. A green node knows its kind, its ordered
// children, and its total byte length, but not its absolute position or
// its parent; those are computed by red refs during traversal.
//
// Green nodes are never mutated after construction. Sharing a *GreenNode
// is the only supported copy and is O(1); the garbage collector reclaims
// subtrees when their last holder drops them. Incremental reparses build
// new nodes for changed regions and share unchanged subtrees by pointer.
type GreenNode struct {
	kind     NodeKind
	length   int
	children []*GreenNode
	leaf     bool
}

// NewLeaf creates a token leaf covering length source bytes.
// Panics on negative length.
func NewLeaf(kind NodeKind, length int) *GreenNode {
	if length < 0 {
		panic(fmt.Sprintf("syntax: leaf %s with negative length %d", kind, length))
	}
	return &GreenNode{kind: kind, length: length, leaf: true}
}

// NewTextLeaf creates a plain-text leaf whose length is the text's byte length.
func NewTextLeaf(text string) *GreenNode {
	return NewLeaf(TextKind(text), len(text))
}

// NewInner creates an interior node. Its length is the sum of the
// children's lengths; span additivity holds by construction.
func NewInner(kind NodeKind, children ...*GreenNode) *GreenNode {
	length := 0
	for _, child := range children {
		length += child.length
	}
	return &GreenNode{kind: kind, length: length, children: children}
}

// Kind returns the node's kind.
func (n *GreenNode) Kind() NodeKind {
	return n.kind
}

// Len returns the node's total byte length.
func (n *GreenNode) Len() int {
	return n.length
}

// IsLeaf returns true for token leaves.
func (n *GreenNode) IsLeaf() bool {
	return n.leaf
}

// NumChildren returns the number of direct children.
func (n *GreenNode) NumChildren() int {
	return len(n.children)
}

// Child returns the i-th direct child.
func (n *GreenNode) Child(i int) *GreenNode {
	return n.children[i]
}

// Children iterates over the direct children in order.
func (n *GreenNode) Children() iter.Seq[*GreenNode] {
	return func(yield func(*GreenNode) bool) {
		for _, child := range n.children {
			if !yield(child) {
				return
			}
		}
	}
}

// String renders the node as kind(len) for debugging.
func (n *GreenNode) String() string {
	return fmt.Sprintf("%s(%d)", n.kind, n.length)
}
