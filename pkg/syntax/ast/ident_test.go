package ast_test

import (
	"testing"

	"github.com/yaklabco/inkmark/pkg/syntax"
	"github.com/yaklabco/inkmark/pkg/syntax/ast"
)

func TestIsIdent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		valid bool
	}{
		{"width", true},
		{"_hidden", true},
		{"page-size", true},
		{"v2", true},
		{"größe", true},
		{"", false},
		{"1abc", false},
		{"-dash", false},
		{"has space", false},
		{"dot.ted", false},
	}

	for _, tt := range tests {
		if got := ast.IsIdent(tt.name); got != tt.valid {
			t.Errorf("IsIdent(%q) = %v, want %v", tt.name, got, tt.valid)
		}
	}
}

func TestNewIdent(t *testing.T) {
	t.Parallel()

	span := syntax.NewSpan(0, 3, 8)

	ident, ok := ast.NewIdent("width", span)
	if !ok {
		t.Fatal("expected valid identifier")
	}
	if ident.Name != "width" || ident.Span != span {
		t.Errorf("unexpected ident %#v", ident)
	}

	if _, ok := ast.NewIdent("9bad", span); ok {
		t.Error("expected rejection of invalid identifier")
	}
}

func TestCastIdent(t *testing.T) {
	t.Parallel()

	ref := syntax.NewRoot(syntax.NewLeaf(syntax.IdentKind("align"), 5), 7)

	ident, ok := ast.CastIdent(ref)
	if !ok {
		t.Fatal("cast failed")
	}
	if ident.Name != "align" {
		t.Errorf("name = %q", ident.Name)
	}
	if ident.Span != ref.Span() {
		t.Errorf("span = %v, want %v", ident.Span, ref.Span())
	}

	// Wrong tag and invalid stored text both fail the cast.
	if _, ok := ast.CastIdent(syntax.NewRoot(syntax.NewTextLeaf("align"), 0)); ok {
		t.Error("expected cast failure for text leaf")
	}
	bad := syntax.NewRoot(syntax.NewLeaf(syntax.IdentKind("0oops"), 5), 0)
	if _, ok := ast.CastIdent(bad); ok {
		t.Error("expected cast failure for invalid identifier text")
	}
}
