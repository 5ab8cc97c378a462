package ast

import (
	"fmt"

	"github.com/yaklabco/inkmark/pkg/syntax"
)

// Markup is the syntactical root capable of representing a full parsed
// document: an ordered sequence of markup nodes.
type Markup []Node

// CastMarkup interprets ref as a markup body. Children that do not cast
// to a markup node (parse errors included) are dropped; the survivors
// keep their relative order.
func CastMarkup(ref syntax.RedRef) (Markup, bool) {
	if ref.Kind().Tag != syntax.KindMarkup {
		return nil, false
	}

	var nodes Markup
	for child := range ref.Children() {
		if node, ok := CastNode(child); ok {
			nodes = append(nodes, node)
		}
	}
	return nodes, true
}

// Node is a single piece of markup.
type Node interface {
	markupNode()
}

// Space is whitespace containing less than two newlines.
type Space struct{}

// Linebreak is a forced line break: `\`.
type Linebreak struct{}

// Parbreak is a paragraph break: two or more newlines.
type Parbreak struct{}

// Strong toggles strong text: `*`.
type Strong struct{}

// Emph toggles emphasized text: `_`.
type Emph struct{}

// Text is plain text, with escapes already normalized.
type Text string

func (Space) markupNode()       {}
func (Linebreak) markupNode()   {}
func (Parbreak) markupNode()    {}
func (Strong) markupNode()      {}
func (Emph) markupNode()        {}
func (Text) markupNode()        {}
func (RawNode) markupNode()     {}
func (HeadingNode) markupNode() {}
func (ListNode) markupNode()    {}
func (EnumNode) markupNode()    {}

// CastNode interprets ref as a single markup node. Error-tagged nodes
// never cast; kinds outside the markup set fall through to an expression
// cast, and failure there is final absence.
func CastNode(ref syntax.RedRef) (Node, bool) {
	kind := ref.Kind()
	switch kind.Tag {
	case syntax.KindSpace:
		return Space{}, true
	case syntax.KindLinebreak:
		return Linebreak{}, true
	case syntax.KindParbreak:
		return Parbreak{}, true
	case syntax.KindStrong:
		return Strong{}, true
	case syntax.KindEmph:
		return Emph{}, true
	case syntax.KindText:
		return Text(kind.Text), true
	case syntax.KindUnicodeEscape:
		esc := kind.Escape
		if esc.Recognized {
			return Text(esc.Character), true
		}
		return Text(fmt.Sprintf(`\u{%s}`, esc.Sequence)), true
	case syntax.KindEnDash:
		return Text("\u2013"), true
	case syntax.KindEmDash:
		return Text("\u2014"), true
	case syntax.KindNonBreakingSpace:
		return Text("\u00a0"), true
	case syntax.KindRaw:
		return CastRaw(ref)
	case syntax.KindHeading:
		return HeadingNode{node: ref}, true
	case syntax.KindList:
		return ListNode{node: ref}, true
	case syntax.KindEnum:
		return EnumNode{node: ref}, true
	case syntax.KindError:
		return nil, false
	default:
		expr, ok := CastExpr(ref)
		if !ok {
			return nil, false
		}
		return expr, true
	}
}

// RawNode is a raw block with optional syntax highlighting: `` `...` ``.
// Unlike the composite wrappers it is fully materialized: downstream
// consumers need no further parsing.
type RawNode struct {
	// Lang is the language tag, nil if none was written or the written
	// tag is not a valid identifier.
	Lang *Ident

	// Text is the content between the backticks, trimmed by the parser.
	Text string

	// Block is true for block-level raw: 3+ backticks and at least one
	// newline in the content.
	Block bool
}

// CastRaw interprets ref as a raw block. The lang tag's span is derived
// from the stored backtick count, not re-scanned from source.
func CastRaw(ref syntax.RedRef) (RawNode, bool) {
	kind := ref.Kind()
	if kind.Tag != syntax.KindRaw || kind.Raw == nil {
		return RawNode{}, false
	}

	raw := kind.Raw
	node := RawNode{Text: raw.Text, Block: raw.Block}

	if raw.Lang != "" {
		span := ref.Span()
		start := span.Start + raw.Backticks
		tagSpan := syntax.NewSpan(span.Source, start, start+len(raw.Lang))
		if ident, ok := NewIdent(raw.Lang, tagSpan); ok {
			node.Lang = &ident
		}
	}

	return node, true
}
