package syntax

//go:generate stringer -type=Kind -trimprefix=Kind

// Kind classifies the syntactic category of a node.
// The set is closed: every terminal and non-terminal construct of the
// language has exactly one tag, and casting in the ast package is an
// exhaustive switch over it.
type Kind uint16

// Node kinds for every markup and expression construct.
const (
	// KindMarkup is the document/markup container.
	KindMarkup Kind = iota

	// Trivia and breaks.
	KindSpace     // whitespace run containing less than two newlines
	KindLinebreak // forced line break: `\`
	KindParbreak  // paragraph break: two or more newlines

	// Inline markup tokens.
	KindStrong           // strong toggle: `*`
	KindEmph             // emphasis toggle: `_`
	KindText             // plain text
	KindUnicodeEscape    // `\u{...}`
	KindEnDash           // `--`
	KindEmDash           // `---`
	KindNonBreakingSpace // `~`

	// Structured markup nodes.
	KindRaw           // raw block: `` `...` ``
	KindHeading       // section heading: `= Introduction`
	KindHeadingLevel  // the run of equals signs introducing a heading
	KindList          // unordered list item: `- ...`
	KindEnum          // enumeration item: `1. ...`
	KindEnumNumbering // the numbering token of an enumeration item

	// Expression sublanguage, syntactic shape only.
	KindIdent
	KindBool
	KindInt
	KindFloat
	KindStr
	KindGroup
	KindCall

	// KindError marks a span the parser could not make sense of.
	KindError
)

// numKinds is the number of defined kinds; KindError must stay last.
const numKinds = int(KindError) + 1

// IsExpr returns true for kinds belonging to the expression sublanguage.
func (k Kind) IsExpr() bool {
	switch k {
	case KindIdent, KindBool, KindInt, KindFloat, KindStr, KindGroup, KindCall:
		return true
	default:
		return false
	}
}

// IsTrivia returns true for whitespace and break kinds.
func (k Kind) IsTrivia() bool {
	switch k {
	case KindSpace, KindLinebreak, KindParbreak:
		return true
	default:
		return false
	}
}

// KindByName returns the kind whose String() form matches name.
func KindByName(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

//nolint:gochecknoglobals // Reverse lookup table is derived once from the closed kind set
var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, numKinds)
	for i := range numKinds {
		k := Kind(i)
		m[k.String()] = k
	}
	return m
}()

// NodeKind couples a kind tag with the payload data that tag carries.
// Which payload fields are meaningful is fully determined by Tag; the
// parser is responsible for populating the right ones.
type NodeKind struct {
	// Tag identifies the syntactic category.
	Tag Kind

	// Newlines is the number of newlines in a KindSpace run.
	Newlines int

	// Text holds the source text for KindText, KindIdent, and the
	// literal expression kinds.
	Text string

	// Level is the section depth for KindHeadingLevel.
	Level int

	// Number is the explicit ordinal for KindEnumNumbering.
	// Nil means the item is auto-numbered.
	Number *int

	// Raw holds payload data for KindRaw.
	Raw *RawAttrs

	// Escape holds payload data for KindUnicodeEscape.
	Escape *EscapeAttrs

	// Error holds payload data for KindError.
	Error *ErrorAttrs
}

// Plain creates a NodeKind with no payload.
func Plain(tag Kind) NodeKind {
	return NodeKind{Tag: tag}
}

// SpaceKind creates a whitespace kind with the given newline count.
func SpaceKind(newlines int) NodeKind {
	return NodeKind{Tag: KindSpace, Newlines: newlines}
}

// TextKind creates a plain-text kind.
func TextKind(text string) NodeKind {
	return NodeKind{Tag: KindText, Text: text}
}

// IdentKind creates an identifier kind.
func IdentKind(name string) NodeKind {
	return NodeKind{Tag: KindIdent, Text: name}
}

// HeadingLevelKind creates a heading-level kind.
func HeadingLevelKind(level int) NodeKind {
	return NodeKind{Tag: KindHeadingLevel, Level: level}
}

// EnumNumberingKind creates an enumeration-numbering kind.
// A nil number means the item is auto-numbered.
func EnumNumberingKind(number *int) NodeKind {
	return NodeKind{Tag: KindEnumNumbering, Number: number}
}

// RawKind creates a raw-block kind.
func RawKind(attrs *RawAttrs) NodeKind {
	return NodeKind{Tag: KindRaw, Raw: attrs}
}

// EscapeKind creates a unicode-escape kind.
func EscapeKind(attrs *EscapeAttrs) NodeKind {
	return NodeKind{Tag: KindUnicodeEscape, Escape: attrs}
}

// ErrorKind creates an error kind with a position hint and message.
func ErrorKind(pos ErrorPos, message string) NodeKind {
	return NodeKind{Tag: KindError, Error: &ErrorAttrs{Pos: pos, Message: message}}
}

// IsError returns true if this is a parse-error kind.
func (k NodeKind) IsError() bool {
	return k.Tag == KindError
}

// String returns the tag name.
func (k NodeKind) String() string {
	return k.Tag.String()
}
