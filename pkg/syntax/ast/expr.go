package ast

import "github.com/yaklabco/inkmark/pkg/syntax"

// Expr is an expression-sublanguage node. Only the syntactic shape is
// represented here; evaluation lives downstream. Every Expr is also a
// markup Node, because expressions may appear directly in markup.
type Expr interface {
	Node
	exprNode()
}

func (Ident) exprNode() {}
func (Lit) exprNode()   {}
func (Group) exprNode() {}
func (Call) exprNode()  {}

func (Ident) markupNode() {}
func (Lit) markupNode()   {}
func (Group) markupNode() {}
func (Call) markupNode()  {}

// Lit is a literal token: bool, int, float, or string. The value is kept
// as source text; the evaluator is responsible for interpreting it.
type Lit struct {
	// Span locates the literal in the source.
	Span syntax.Span

	// Tag is one of KindBool, KindInt, KindFloat, KindStr.
	Tag syntax.Kind

	// Text is the literal's source text.
	Text string
}

// Group is a parenthesized expression. The inner expression is computed
// lazily from the stored cursor.
type Group struct {
	node syntax.RedRef
}

// Ref returns the underlying red cursor.
func (g Group) Ref() syntax.RedRef {
	return g.node
}

// Inner returns the grouped expression, if one casts.
func (g Group) Inner() (Expr, bool) {
	return castFirstChild(g.node, CastExpr)
}

// Call is a function call. Callee and arguments are computed lazily.
type Call struct {
	node syntax.RedRef
}

// Ref returns the underlying red cursor.
func (c Call) Ref() syntax.RedRef {
	return c.node
}

// Callee returns the called identifier, if present.
func (c Call) Callee() (Ident, bool) {
	return castFirstChild(c.node, CastIdent)
}

// Args returns the argument expressions in order, skipping the callee.
func (c Call) Args() []Expr {
	var args []Expr
	seenCallee := false
	for child := range c.node.Children() {
		if !seenCallee {
			if _, ok := CastIdent(child); ok {
				seenCallee = true
				continue
			}
		}
		if expr, ok := CastExpr(child); ok {
			args = append(args, expr)
		}
	}
	return args
}

// CastExpr interprets ref as an expression node.
func CastExpr(ref syntax.RedRef) (Expr, bool) {
	kind := ref.Kind()
	switch kind.Tag {
	case syntax.KindIdent:
		return castFallible(CastIdent(ref))
	case syntax.KindBool, syntax.KindInt, syntax.KindFloat, syntax.KindStr:
		return Lit{Span: ref.Span(), Tag: kind.Tag, Text: kind.Text}, true
	case syntax.KindGroup:
		return Group{node: ref}, true
	case syntax.KindCall:
		return Call{node: ref}, true
	default:
		return nil, false
	}
}

// castFallible adapts a concrete cast result to the Expr interface.
func castFallible[T Expr](v T, ok bool) (Expr, bool) {
	if !ok {
		return nil, false
	}
	return v, true
}
