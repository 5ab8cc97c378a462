package pretty

import (
	"fmt"
	"io"
	"strings"

	"github.com/yaklabco/inkmark/pkg/langdetect"
	"github.com/yaklabco/inkmark/pkg/syntax/ast"
)

// MarkupRenderer renders a cast markup AST, one node per line, with
// composite bodies indented beneath their parent.
type MarkupRenderer struct {
	styles *Styles

	// DetectLang enables language detection for raw blocks without a tag.
	DetectLang bool
}

// NewMarkupRenderer creates a renderer with the given styles.
func NewMarkupRenderer(styles *Styles) *MarkupRenderer {
	return &MarkupRenderer{styles: styles}
}

// Render writes the markup sequence to w.
func (r *MarkupRenderer) Render(w io.Writer, markup ast.Markup) error {
	return r.render(w, markup, 0)
}

func (r *MarkupRenderer) render(w io.Writer, markup ast.Markup, depth int) error {
	indent := strings.Repeat("  ", depth)
	for _, node := range markup {
		if err := r.renderNode(w, node, indent, depth); err != nil {
			return err
		}
	}
	return nil
}

func (r *MarkupRenderer) renderNode(w io.Writer, node ast.Node, indent string, depth int) error {
	switch n := node.(type) {
	case ast.Space:
		return r.emit(w, indent, "Space", "")
	case ast.Linebreak:
		return r.emit(w, indent, "Linebreak", "")
	case ast.Parbreak:
		return r.emit(w, indent, "Parbreak", "")
	case ast.Strong:
		return r.emit(w, indent, "Strong", "")
	case ast.Emph:
		return r.emit(w, indent, "Emph", "")
	case ast.Text:
		return r.emit(w, indent, "Text", r.styles.Literal.Render(fmt.Sprintf("%q", string(n))))
	case ast.RawNode:
		return r.renderRaw(w, n, indent)
	case ast.HeadingNode:
		if err := r.emit(w, indent, "Heading", r.styles.Payload.Render(fmt.Sprintf("level=%d", n.Level()))); err != nil {
			return err
		}
		return r.render(w, n.Body(), depth+1)
	case ast.ListNode:
		if err := r.emit(w, indent, "List", ""); err != nil {
			return err
		}
		return r.render(w, n.Body(), depth+1)
	case ast.EnumNode:
		detail := "number=auto"
		if number, ok := n.Number(); ok {
			detail = fmt.Sprintf("number=%d", number)
		}
		if err := r.emit(w, indent, "Enum", r.styles.Payload.Render(detail)); err != nil {
			return err
		}
		return r.render(w, n.Body(), depth+1)
	case ast.Expr:
		return r.renderExpr(w, n, indent)
	default:
		return r.emit(w, indent, fmt.Sprintf("%T", node), "")
	}
}

func (r *MarkupRenderer) renderRaw(w io.Writer, raw ast.RawNode, indent string) error {
	lang := ""
	switch {
	case raw.Lang != nil:
		lang = raw.Lang.Name
	case r.DetectLang:
		lang = langdetect.Detect([]byte(raw.Text)) + "?"
	}

	var sb strings.Builder
	if lang != "" {
		sb.WriteString(r.styles.Lang.Render(lang))
		sb.WriteString(" ")
	}
	if raw.Block {
		sb.WriteString(r.styles.Dim.Render("block "))
	}
	sb.WriteString(r.styles.Literal.Render(fmt.Sprintf("%q", raw.Text)))

	return r.emit(w, indent, "Raw", sb.String())
}

func (r *MarkupRenderer) renderExpr(w io.Writer, expr ast.Expr, indent string) error {
	switch e := expr.(type) {
	case ast.Ident:
		return r.emit(w, indent, "Ident", r.styles.Literal.Render(e.Name))
	case ast.Lit:
		return r.emit(w, indent, e.Tag.String(), r.styles.Literal.Render(e.Text))
	case ast.Group:
		if inner, ok := e.Inner(); ok {
			if err := r.emit(w, indent, "Group", ""); err != nil {
				return err
			}
			return r.renderExpr(w, inner, indent+"  ")
		}
		return r.emit(w, indent, "Group", r.styles.Dim.Render("empty"))
	case ast.Call:
		detail := ""
		if callee, ok := e.Callee(); ok {
			detail = r.styles.Literal.Render(callee.Name)
		}
		if err := r.emit(w, indent, "Call", detail); err != nil {
			return err
		}
		for _, arg := range e.Args() {
			if err := r.renderExpr(w, arg, indent+"  "); err != nil {
				return err
			}
		}
		return nil
	default:
		return r.emit(w, indent, fmt.Sprintf("%T", expr), "")
	}
}

func (r *MarkupRenderer) emit(w io.Writer, indent, variant, detail string) error {
	line := indent + r.styles.Variant.Render(variant)
	if detail != "" {
		line += " " + detail
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
