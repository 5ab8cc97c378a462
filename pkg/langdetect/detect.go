// Package langdetect guesses a highlighting language for raw blocks that
// carry no language tag. It uses go-enry, backed by a few cheap pattern
// checks for languages that commonly appear untagged in Inkmark documents.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Language identifiers as they appear in raw-block tags.
const (
	langGo     = "go"
	langPython = "python"
	langRust   = "rust"
	langShell  = "bash"
	langJSON   = "json"
	langSQL    = "sql"
	langHTML   = "html"
	langText   = "text"
)

// classifierCandidates bounds the enry classifier to languages worth
// distinguishing in typeset documents.
//
//nolint:gochecknoglobals // Static candidate list shared across calls
var classifierCandidates = []string{
	"Go", "Python", "Rust", "Shell", "JavaScript", "TypeScript",
	"C", "C++", "Java", "SQL", "JSON", "YAML", "HTML", "TeX",
}

// Detect returns a language identifier for raw content, or "text" when
// nothing can be said with confidence.
func Detect(content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return langText
	}

	// A shebang is the most reliable signal.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	if lang := detectByPattern(content); lang != "" {
		return lang
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return langText
}

// detectByPattern applies cheap, highly indicative checks before paying
// for the classifier.
func detectByPattern(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	text := string(content)

	switch {
	case bytes.HasPrefix(trimmed, []byte("package ")):
		return langGo
	case strings.Contains(text, "fn main()") || strings.Contains(text, "println!") ||
		strings.Contains(text, "let mut "):
		return langRust
	case strings.Contains(text, "def ") && strings.Contains(text, "):"):
		return langPython
	case bytes.HasPrefix(trimmed, []byte("#!")):
		return langShell
	case (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
		bytes.Contains(trimmed, []byte(`"`)):
		return langJSON
	case hasSQLVerb(text):
		return langSQL
	case bytes.Contains(bytes.ToLower(trimmed), []byte("<html")) ||
		bytes.Contains(bytes.ToLower(trimmed), []byte("<!doctype html")):
		return langHTML
	default:
		return ""
	}
}

func hasSQLVerb(text string) bool {
	upper := strings.TrimSpace(strings.ToUpper(text))
	for _, verb := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE TABLE"} {
		if strings.HasPrefix(upper, verb) {
			return true
		}
	}
	return false
}

// normalize maps enry's language names onto raw-block tag identifiers.
func normalize(lang string) string {
	switch strings.ToLower(lang) {
	case "shell", "sh", "zsh":
		return langShell
	case "c++":
		return "cpp"
	case "":
		return langText
	default:
		return strings.ToLower(lang)
	}
}
