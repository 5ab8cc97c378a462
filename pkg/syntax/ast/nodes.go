package ast

import "github.com/yaklabco/inkmark/pkg/syntax"

// HeadingNode is a section heading: `= Introduction`.
//
// Like the other composite wrappers it stores only a red cursor into the
// tree; body and level are computed on access.
type HeadingNode struct {
	node syntax.RedRef
}

// CastHeading interprets ref as a section heading.
func CastHeading(ref syntax.RedRef) (HeadingNode, bool) {
	if ref.Kind().Tag != syntax.KindHeading {
		return HeadingNode{}, false
	}
	return HeadingNode{node: ref}, true
}

// Ref returns the underlying red cursor.
func (h HeadingNode) Ref() syntax.RedRef {
	return h.node
}

// Body returns the contents of the heading.
// Panics if the markup body child is missing: the grammar guarantees it,
// so its absence is a parser defect.
func (h HeadingNode) Body() Markup {
	body, ok := castFirstChild(h.node, CastMarkup)
	if !ok {
		panic("ast: heading node is missing markup body")
	}
	return body
}

// Level returns the section depth (number of equals signs).
// Panics if the level payload child is missing.
func (h HeadingNode) Level() int {
	for child := range h.node.Children() {
		if kind := child.Kind(); kind.Tag == syntax.KindHeadingLevel {
			return kind.Level
		}
	}
	panic("ast: heading node is missing heading level")
}

// ListNode is an item in an unordered list: `- ...`.
type ListNode struct {
	node syntax.RedRef
}

// CastList interprets ref as an unordered list item.
func CastList(ref syntax.RedRef) (ListNode, bool) {
	if ref.Kind().Tag != syntax.KindList {
		return ListNode{}, false
	}
	return ListNode{node: ref}, true
}

// Ref returns the underlying red cursor.
func (l ListNode) Ref() syntax.RedRef {
	return l.node
}

// Body returns the contents of the list item.
// Panics if the markup body child is missing.
func (l ListNode) Body() Markup {
	body, ok := castFirstChild(l.node, CastMarkup)
	if !ok {
		panic("ast: list node is missing body")
	}
	return body
}

// EnumNode is an item in an enumeration (ordered list): `1. ...`.
type EnumNode struct {
	node syntax.RedRef
}

// CastEnum interprets ref as an enumeration item.
func CastEnum(ref syntax.RedRef) (EnumNode, bool) {
	if ref.Kind().Tag != syntax.KindEnum {
		return EnumNode{}, false
	}
	return EnumNode{node: ref}, true
}

// Ref returns the underlying red cursor.
func (e EnumNode) Ref() syntax.RedRef {
	return e.node
}

// Body returns the contents of the enumeration item.
// Panics if the markup body child is missing.
func (e EnumNode) Body() Markup {
	body, ok := castFirstChild(e.node, CastMarkup)
	if !ok {
		panic("ast: enumeration node is missing body")
	}
	return body
}

// Number returns the explicit ordinal, if one was written.
// Auto-numbered items (nil payload, or no numbering child at all)
// report false; the evaluator decides default numbering.
func (e EnumNode) Number() (int, bool) {
	for child := range e.node.Children() {
		if kind := child.Kind(); kind.Tag == syntax.KindEnumNumbering {
			if kind.Number == nil {
				return 0, false
			}
			return *kind.Number, true
		}
	}
	return 0, false
}
