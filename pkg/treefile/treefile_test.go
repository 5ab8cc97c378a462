package treefile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/inkmark/pkg/syntax"
	"github.com/yaklabco/inkmark/pkg/treefile"
)

const sampleDoc = `
kind: Markup
children:
  - kind: Text
    text: "Hello"
  - kind: Space
    len: 1
    newlines: 0
  - kind: Heading
    children:
      - kind: HeadingLevel
        len: 2
        level: 2
      - kind: Markup
        children:
          - kind: Space
            len: 1
          - kind: Text
            text: "Intro"
`

func TestParse(t *testing.T) {
	t.Parallel()

	root, err := treefile.Parse([]byte(sampleDoc))
	require.NoError(t, err)

	assert.Equal(t, syntax.KindMarkup, root.Kind().Tag)
	assert.Equal(t, 14, root.Len())
	require.Equal(t, 3, root.NumChildren())

	text := root.Child(0)
	assert.Equal(t, syntax.KindText, text.Kind().Tag)
	assert.Equal(t, "Hello", text.Kind().Text)
	assert.Equal(t, 5, text.Len())

	heading := root.Child(2)
	require.Equal(t, syntax.KindHeading, heading.Kind().Tag)
	assert.Equal(t, 2, heading.Child(0).Kind().Level)
}

func TestParse_Payloads(t *testing.T) {
	t.Parallel()

	doc := `
kind: Markup
children:
  - kind: Raw
    len: 24
    raw:
      lang: rust
      backticks: 3
      text: "fn main() {}"
      block: true
  - kind: UnicodeEscape
    len: 9
    escape:
      sequence: "1F600"
      character: "😀"
      recognized: true
  - kind: Error
    len: 3
    error:
      pos: end
      message: unclosed raw block
  - kind: EnumNumbering
    len: 2
    number: 7
`

	root, err := treefile.Parse([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, 4, root.NumChildren())

	raw := root.Child(0).Kind().Raw
	require.NotNil(t, raw)
	assert.Equal(t, "rust", raw.Lang)
	assert.Equal(t, 3, raw.Backticks)
	assert.True(t, raw.Block)

	escape := root.Child(1).Kind().Escape
	require.NotNil(t, escape)
	assert.Equal(t, "1F600", escape.Sequence)
	assert.Equal(t, '😀', escape.Character)
	assert.True(t, escape.Recognized)

	nodeErr := root.Child(2).Kind().Error
	require.NotNil(t, nodeErr)
	assert.Equal(t, syntax.ErrorPosEnd, nodeErr.Pos)
	assert.Equal(t, "unclosed raw block", nodeErr.Message)

	number := root.Child(3).Kind().Number
	require.NotNil(t, number)
	assert.Equal(t, 7, *number)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		doc      string
		expected error
	}{
		{
			name:     "unknown kind",
			doc:      "kind: Wobble",
			expected: treefile.ErrUnknownKind,
		},
		{
			name:     "leaf without length",
			doc:      "kind: Markup\nchildren:\n  - kind: Strong",
			expected: treefile.ErrMissingLen,
		},
		{
			name:     "text leaf with children",
			doc:      "kind: Text\ntext: x\nchildren:\n  - kind: Strong\n    len: 1",
			expected: treefile.ErrLeafChildren,
		},
		{
			name:     "raw without payload",
			doc:      "kind: Raw\nlen: 5",
			expected: treefile.ErrMissingPayload,
		},
		{
			name:     "error node without payload",
			doc:      "kind: Error\nlen: 1",
			expected: treefile.ErrMissingPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := treefile.Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := treefile.Parse([]byte("kind: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode treefile")
}

func TestMarshal_RoundTrip(t *testing.T) {
	t.Parallel()

	three := 3
	original := syntax.NewInner(syntax.Plain(syntax.KindMarkup),
		syntax.NewTextLeaf("before"),
		syntax.NewLeaf(syntax.SpaceKind(2), 2),
		syntax.NewLeaf(syntax.RawKind(&syntax.RawAttrs{
			Lang: "go", Backticks: 3, Text: "x := 1", Block: true,
		}), 18),
		syntax.NewInner(syntax.Plain(syntax.KindEnum),
			syntax.NewLeaf(syntax.EnumNumberingKind(&three), 2),
			syntax.NewInner(syntax.Plain(syntax.KindMarkup),
				syntax.NewTextLeaf("item"),
			),
		),
		syntax.NewLeaf(syntax.ErrorKind(syntax.ErrorPosStart, "stray marker"), 1),
	)

	data, err := treefile.Marshal(original)
	require.NoError(t, err)

	reparsed, err := treefile.Parse(data)
	require.NoError(t, err)

	assert.Equal(t, original.Len(), reparsed.Len())
	require.Equal(t, original.NumChildren(), reparsed.NumChildren())
	for i := range original.NumChildren() {
		assert.Equal(t, original.Child(i).Kind(), reparsed.Child(i).Kind(), "child %d", i)
		assert.Equal(t, original.Child(i).Len(), reparsed.Child(i).Len(), "child %d", i)
	}
}

func TestSaveLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doc.yaml")
	original := syntax.NewInner(syntax.Plain(syntax.KindMarkup),
		syntax.NewTextLeaf("persisted"),
	)

	require.NoError(t, treefile.Save(path, original))

	loaded, err := treefile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, original.Len(), loaded.Len())
	assert.Equal(t, "persisted", loaded.Child(0).Kind().Text)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := treefile.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
