// Package pretty provides Lipgloss-based styled renderers for syntax
// trees and markup ASTs.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Styles contains all styled renderers for tree output.
type Styles struct {
	// Tree components
	Kind      lipgloss.Style
	Container lipgloss.Style
	Span      lipgloss.Style
	Payload   lipgloss.Style
	TokenText lipgloss.Style
	Branch    lipgloss.Style
	Error     lipgloss.Style

	// Markup components
	Variant lipgloss.Style
	Literal lipgloss.Style
	Lang    lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

func newColorStyles() *Styles {
	return &Styles{
		Kind:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Container: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Span:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Payload:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		TokenText: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Branch:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Variant: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		Literal: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Lang:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Italic(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Kind:      plain,
		Container: plain,
		Span:      plain,
		Payload:   plain,
		TokenText: plain,
		Branch:    plain,
		Error:     plain,
		Variant:   plain,
		Literal:   plain,
		Lang:      plain,
		Dim:       plain,
		Bold:      plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// https://no-color.org/
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// defaultTermWidth is used when terminal width cannot be determined.
const defaultTermWidth = 100

// TerminalWidth returns the column width of the writer's terminal, or a
// sensible default when the writer is not a terminal.
func TerminalWidth(writer io.Writer) int {
	if f, ok := writer.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
