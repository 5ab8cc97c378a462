package pretty_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/inkmark/internal/ui/pretty"
)

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, pretty.IsColorEnabled("always", &buf))
	assert.False(t, pretty.IsColorEnabled("never", &buf))

	// A plain buffer is not a TTY, so auto mode disables color.
	t.Setenv("NO_COLOR", "")
	assert.False(t, pretty.IsColorEnabled("auto", &buf))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, pretty.IsColorEnabled("auto", &buf))
}

func TestTerminalWidth_NonTerminal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.Equal(t, 100, pretty.TerminalWidth(&buf))
}

func TestNewStyles(t *testing.T) {
	t.Parallel()

	// No-color styles must render input unchanged.
	styles := pretty.NewStyles(false)
	assert.Equal(t, "Markup", styles.Container.Render("Markup"))
	assert.Equal(t, "error", styles.Error.Render("error"))
}
