package pretty

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/inkmark/pkg/syntax"
)

// TreeRenderer renders a red tree with spans and payload summaries.
type TreeRenderer struct {
	styles   *Styles
	maxWidth int
}

// NewTreeRenderer creates a renderer with the given styles and line width.
func NewTreeRenderer(styles *Styles, maxWidth int) *TreeRenderer {
	if maxWidth <= 0 {
		maxWidth = defaultTermWidth
	}
	return &TreeRenderer{styles: styles, maxWidth: maxWidth}
}

// Render writes the subtree rooted at ref to w, one node per line.
func (r *TreeRenderer) Render(w io.Writer, ref syntax.RedRef) error {
	return r.render(w, ref, "", "")
}

func (r *TreeRenderer) render(w io.Writer, ref syntax.RedRef, prefix, childPrefix string) error {
	if _, err := fmt.Fprintln(w, r.line(ref, prefix)); err != nil {
		return err
	}

	n := ref.NumChildren()
	i := 0
	for child := range ref.Children() {
		i++
		branch, next := "├─ ", "│  "
		if i == n {
			branch, next = "└─ ", "   "
		}
		branch = r.styles.Branch.Render(childPrefix + branch)
		if err := r.render(w, child, branch, childPrefix+next); err != nil {
			return err
		}
	}
	return nil
}

// line formats a single node: kind, span, and any payload summary.
func (r *TreeRenderer) line(ref syntax.RedRef, prefix string) string {
	kind := ref.Kind()
	span := ref.Span()

	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteString(r.kindStyle(kind).Render(kind.Tag.String()))
	sb.WriteString(" ")
	sb.WriteString(r.styles.Span.Render(fmt.Sprintf("%d..%d", span.Start, span.End)))

	if payload := payloadSummary(kind); payload != "" {
		sb.WriteString(" ")
		style := r.styles.Payload
		if kind.Tag == syntax.KindText {
			style = r.styles.TokenText
		}
		sb.WriteString(style.Render(truncate(payload, r.maxWidth/2)))
	}

	return sb.String()
}

func (r *TreeRenderer) kindStyle(kind syntax.NodeKind) lipgloss.Style {
	switch {
	case kind.IsError():
		return r.styles.Error
	case isContainerKind(kind):
		return r.styles.Container
	default:
		return r.styles.Kind
	}
}

// isContainerKind reports whether kind denotes a container in rendered output.
func isContainerKind(kind syntax.NodeKind) bool {
	switch kind.Tag {
	case syntax.KindMarkup, syntax.KindHeading, syntax.KindList,
		syntax.KindEnum, syntax.KindGroup, syntax.KindCall:
		return true
	default:
		return false
	}
}

// payloadSummary renders a kind's payload for display, "" if none.
func payloadSummary(kind syntax.NodeKind) string {
	switch kind.Tag {
	case syntax.KindSpace:
		if kind.Newlines > 0 {
			return fmt.Sprintf("(newlines %d)", kind.Newlines)
		}
		return ""
	case syntax.KindText, syntax.KindIdent, syntax.KindBool,
		syntax.KindInt, syntax.KindFloat, syntax.KindStr:
		return fmt.Sprintf("%q", kind.Text)
	case syntax.KindHeadingLevel:
		return fmt.Sprintf("(level %d)", kind.Level)
	case syntax.KindEnumNumbering:
		if kind.Number == nil {
			return "(auto)"
		}
		return fmt.Sprintf("(number %d)", *kind.Number)
	case syntax.KindRaw:
		if kind.Raw.Lang != "" {
			return fmt.Sprintf("(lang %s) %q", kind.Raw.Lang, kind.Raw.Text)
		}
		return fmt.Sprintf("%q", kind.Raw.Text)
	case syntax.KindUnicodeEscape:
		return fmt.Sprintf("(\\u{%s})", kind.Escape.Sequence)
	case syntax.KindError:
		return fmt.Sprintf("(%s: %s)", kind.Error.Pos, kind.Error.Message)
	default:
		return ""
	}
}

func truncate(s string, limit int) string {
	if limit < 8 {
		limit = 8
	}
	if len(s) <= limit {
		return s
	}
	cut := limit - 3
	for cut > 0 && s[cut]&0xC0 == 0x80 {
		cut--
	}
	return s[:cut] + "..."
}
