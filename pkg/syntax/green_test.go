package syntax_test

import (
	"testing"

	"github.com/yaklabco/inkmark/pkg/syntax"
)

func TestNewInner_LengthIsSumOfChildren(t *testing.T) {
	t.Parallel()

	doc := syntax.NewInner(syntax.Plain(syntax.KindMarkup),
		syntax.NewTextLeaf("Hello"),
		syntax.NewLeaf(syntax.SpaceKind(0), 1),
		syntax.NewTextLeaf("world"),
	)

	if doc.Len() != 11 {
		t.Errorf("expected length 11, got %d", doc.Len())
	}

	sum := 0
	for child := range doc.Children() {
		sum += child.Len()
	}
	if sum != doc.Len() {
		t.Errorf("children lengths sum to %d, node length is %d", sum, doc.Len())
	}
}

func TestNewInner_SpanAdditivityNested(t *testing.T) {
	t.Parallel()

	heading := syntax.NewInner(syntax.Plain(syntax.KindHeading),
		syntax.NewLeaf(syntax.HeadingLevelKind(2), 2),
		syntax.NewInner(syntax.Plain(syntax.KindMarkup),
			syntax.NewLeaf(syntax.SpaceKind(0), 1),
			syntax.NewTextLeaf("Intro"),
		),
	)

	if heading.Len() != 8 {
		t.Errorf("expected length 8, got %d", heading.Len())
	}

	// Additivity must hold at every level of the tree.
	var check func(node *syntax.GreenNode)
	check = func(node *syntax.GreenNode) {
		if node.IsLeaf() {
			return
		}
		sum := 0
		for child := range node.Children() {
			sum += child.Len()
			check(child)
		}
		if sum != node.Len() {
			t.Errorf("%s: children sum %d != node length %d", node, sum, node.Len())
		}
	}
	check(heading)
}

func TestGreenNode_Sharing(t *testing.T) {
	t.Parallel()

	shared := syntax.NewInner(syntax.Plain(syntax.KindMarkup),
		syntax.NewTextLeaf("reused"),
	)

	// The same subtree mounted in two positions stays one allocation.
	doc := syntax.NewInner(syntax.Plain(syntax.KindMarkup),
		syntax.NewInner(syntax.Plain(syntax.KindList), shared),
		syntax.NewInner(syntax.Plain(syntax.KindEnum), shared),
	)

	first := doc.Child(0).Child(0)
	second := doc.Child(1).Child(0)

	if first != second {
		t.Error("expected both positions to share the same green node")
	}

	// Cloning is pointer copy; the clone is observably the same data.
	clone := shared
	if clone != shared {
		t.Error("expected clone to be structurally identical")
	}
}

func TestNewLeaf_NegativeLength(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for negative leaf length")
		}
	}()

	syntax.NewLeaf(syntax.Plain(syntax.KindStrong), -1)
}

func TestGreenNode_Accessors(t *testing.T) {
	t.Parallel()

	leaf := syntax.NewTextLeaf("abc")
	if !leaf.IsLeaf() {
		t.Error("expected leaf")
	}
	if leaf.NumChildren() != 0 {
		t.Error("expected leaf to have no children")
	}
	if leaf.Kind().Tag != syntax.KindText {
		t.Errorf("expected Text kind, got %s", leaf.Kind())
	}
	if leaf.Kind().Text != "abc" {
		t.Errorf("expected text payload %q, got %q", "abc", leaf.Kind().Text)
	}

	inner := syntax.NewInner(syntax.Plain(syntax.KindMarkup), leaf)
	if inner.IsLeaf() {
		t.Error("expected interior node")
	}
	if inner.NumChildren() != 1 {
		t.Errorf("expected 1 child, got %d", inner.NumChildren())
	}
	if inner.Child(0) != leaf {
		t.Error("expected child to be the shared leaf")
	}
}
