package syntax_test

import (
	"testing"

	"github.com/yaklabco/inkmark/pkg/syntax"
)

func TestKind_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     syntax.Kind
		expected string
	}{
		{syntax.KindMarkup, "Markup"},
		{syntax.KindSpace, "Space"},
		{syntax.KindUnicodeEscape, "UnicodeEscape"},
		{syntax.KindNonBreakingSpace, "NonBreakingSpace"},
		{syntax.KindHeadingLevel, "HeadingLevel"},
		{syntax.KindEnumNumbering, "EnumNumbering"},
		{syntax.KindError, "Error"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()

			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestKindByName(t *testing.T) {
	t.Parallel()

	kind, ok := syntax.KindByName("Heading")
	if !ok || kind != syntax.KindHeading {
		t.Errorf("KindByName(Heading) = %v, %v", kind, ok)
	}

	if _, ok := syntax.KindByName("Bogus"); ok {
		t.Error("expected lookup failure for unknown name")
	}
}

func TestKind_IsExpr(t *testing.T) {
	t.Parallel()

	exprKinds := []syntax.Kind{
		syntax.KindIdent, syntax.KindBool, syntax.KindInt,
		syntax.KindFloat, syntax.KindStr, syntax.KindGroup, syntax.KindCall,
	}
	for _, kind := range exprKinds {
		if !kind.IsExpr() {
			t.Errorf("expected %s to be an expression kind", kind)
		}
	}

	for _, kind := range []syntax.Kind{syntax.KindMarkup, syntax.KindText, syntax.KindError} {
		if kind.IsExpr() {
			t.Errorf("expected %s to not be an expression kind", kind)
		}
	}
}

func TestKind_IsTrivia(t *testing.T) {
	t.Parallel()

	for _, kind := range []syntax.Kind{syntax.KindSpace, syntax.KindLinebreak, syntax.KindParbreak} {
		if !kind.IsTrivia() {
			t.Errorf("expected %s to be trivia", kind)
		}
	}
	if syntax.KindText.IsTrivia() {
		t.Error("expected Text to not be trivia")
	}
}

func TestNodeKind_IsError(t *testing.T) {
	t.Parallel()

	if !syntax.ErrorKind(syntax.ErrorPosFull, "bad").IsError() {
		t.Error("expected error kind")
	}
	if syntax.TextKind("ok").IsError() {
		t.Error("expected non-error kind")
	}
}

func TestErrorPos_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pos      syntax.ErrorPos
		expected string
	}{
		{syntax.ErrorPosFull, "full"},
		{syntax.ErrorPosStart, "start"},
		{syntax.ErrorPosEnd, "end"},
		{syntax.ErrorPos(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.pos.String(); got != tt.expected {
			t.Errorf("ErrorPos(%d).String() = %q, want %q", tt.pos, got, tt.expected)
		}
	}
}
