package syntax

// RawAttrs holds payload data for KindRaw nodes.
type RawAttrs struct {
	// Lang is the language tag identifying how to syntax-highlight
	// the content. Empty if no tag was written.
	Lang string

	// Backticks is the number of opening backticks.
	Backticks int

	// Text is the raw content between the backticks, already trimmed
	// by the parser.
	Text string

	// Block is true for block-level raw: 3+ backticks and at least
	// one newline in the content.
	Block bool
}

// WithLang sets the language tag and returns the RawAttrs for chaining.
func (a *RawAttrs) WithLang(lang string) *RawAttrs {
	a.Lang = lang
	return a
}

// EscapeAttrs holds payload data for KindUnicodeEscape nodes.
type EscapeAttrs struct {
	// Sequence is the raw hex sequence between the braces of `\u{...}`.
	Sequence string

	// Character is the resolved rune. Only meaningful if Recognized.
	Character rune

	// Recognized is true if Sequence resolved to a valid character.
	Recognized bool
}

// ErrorPos hints at where within a node's span an error applies.
type ErrorPos uint8

const (
	// ErrorPosFull covers the node's whole span.
	ErrorPosFull ErrorPos = iota

	// ErrorPosStart points at the start of the span.
	ErrorPosStart

	// ErrorPosEnd points at the end of the span.
	ErrorPosEnd
)

// String returns a human-readable name for the error position.
func (p ErrorPos) String() string {
	switch p {
	case ErrorPosFull:
		return "full"
	case ErrorPosStart:
		return "start"
	case ErrorPosEnd:
		return "end"
	default:
		return "unknown"
	}
}

// ErrorAttrs holds payload data for KindError nodes.
type ErrorAttrs struct {
	// Pos hints at where within the span the error applies.
	Pos ErrorPos

	// Message describes what went wrong, for diagnostics.
	Message string
}
