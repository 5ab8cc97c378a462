// Package ast provides the strongly-typed, zero-copy AST layered over the
// red tree. Every typed view is obtained through a cast: a CastX function
// takes a red ref and returns the requested type together with a boolean
// reporting whether the ref's kind matched. A failed cast is ordinary
// control flow, never an error; composite casts filter out children that
// fail, which is how error-tagged nodes vanish from the surfaced AST.
//
// A node whose kind guarantees certain children (a heading's level and
// body, an item's body) but lacks them indicates a parser defect; the
// accessors panic rather than degrade silently.
package ast

import "github.com/yaklabco/inkmark/pkg/syntax"

// castFirstChild returns the first child of ref that casts via fn.
func castFirstChild[T any](ref syntax.RedRef, fn func(syntax.RedRef) (T, bool)) (T, bool) {
	for child := range ref.Children() {
		if v, ok := fn(child); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
