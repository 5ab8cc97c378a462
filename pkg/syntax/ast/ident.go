package ast

import (
	"unicode"

	"github.com/yaklabco/inkmark/pkg/syntax"
)

// Ident is a valid identifier together with its source span.
type Ident struct {
	// Span locates the identifier in the source.
	Span syntax.Span

	// Name is the identifier text.
	Name string
}

// NewIdent creates an identifier if name is syntactically valid.
func NewIdent(name string, span syntax.Span) (Ident, bool) {
	if !IsIdent(name) {
		return Ident{}, false
	}
	return Ident{Span: span, Name: name}, true
}

// IsIdent reports whether s is a valid identifier: a letter or underscore
// followed by letters, digits, underscores, or hyphens.
func IsIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !unicode.IsLetter(r) && r != '_' {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' {
			return false
		}
	}
	return true
}

// CastIdent interprets ref as an identifier.
func CastIdent(ref syntax.RedRef) (Ident, bool) {
	kind := ref.Kind()
	if kind.Tag != syntax.KindIdent {
		return Ident{}, false
	}
	return NewIdent(kind.Text, ref.Span())
}
