// Package syntax provides the core syntax-tree representation for Inkmark:
// - GreenNode: the immutable, structurally shared syntax tree
// - RedRef: an ephemeral view adding absolute offsets and ancestry
// - Kind / NodeKind: the closed taxonomy of syntax constructs
//
// The parser produces green trees; downstream consumers navigate them
// through red refs and the typed AST in the ast subpackage.
package syntax

import "fmt"

// SourceID identifies a source file within a compilation session.
// The zero value refers to the first (or only) source.
type SourceID uint16

// Span is a half-open byte range [Start, End) within a single source.
type Span struct {
	// Source identifies the file this span points into.
	Source SourceID

	// Start is the byte index where the span begins (inclusive).
	Start int

	// End is the byte index where the span ends (exclusive).
	End int
}

// NewSpan creates a span over [start, end) in the given source.
// Panics if start > end: spans never run backwards, and a backwards
// span indicates a defect in whatever computed it.
func NewSpan(source SourceID, start, end int) Span {
	if start > end {
		panic(fmt.Sprintf("syntax: backwards span [%d, %d)", start, end))
	}
	return Span{Source: source, Start: start, End: end}
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty returns true if the span has zero length.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Contains returns true if the given byte offset falls within the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Slice extracts the spanned substring from the full source text.
// Returns "" if the span does not fit within text.
func (s Span) Slice(text string) string {
	if s.Start < 0 || s.End > len(text) || s.Start > s.End {
		return ""
	}
	return text[s.Start:s.End]
}

// String renders the span as "source:[start, end)".
func (s Span) String() string {
	return fmt.Sprintf("%d:[%d, %d)", s.Source, s.Start, s.End)
}
