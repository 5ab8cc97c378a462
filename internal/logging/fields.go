package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldFormat = "format"

	// Tree fields.
	FieldKind   = "kind"
	FieldSpan   = "span"
	FieldSource = "source"
	FieldNodes  = "nodes"
	FieldDepth  = "depth"

	// Casting fields.
	FieldDropped    = "dropped"
	FieldErrorNodes = "error_nodes"
	FieldLang       = "lang"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
