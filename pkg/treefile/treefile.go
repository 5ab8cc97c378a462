// Package treefile reads and writes green trees as YAML documents.
//
// The Inkmark parser runs out of process from the tools in this repo; a
// treefile is the interchange surface between it and the syntax core. It
// is also what golden tests for external parsers are written against.
//
// A treefile document is a single node. Container kinds (Markup, Heading,
// List, Enum, Group, Call) carry children; every other kind is a token
// leaf and states its source byte length, except text-bearing leaves
// whose length defaults to the text's byte length.
package treefile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/inkmark/pkg/fsutil"
	"github.com/yaklabco/inkmark/pkg/syntax"
)

// Sentinel errors for treefile decoding.
var (
	// ErrUnknownKind indicates a kind name not in the taxonomy.
	ErrUnknownKind = errors.New("unknown node kind")

	// ErrMissingLen indicates a leaf without a derivable byte length.
	ErrMissingLen = errors.New("leaf is missing len")

	// ErrMissingPayload indicates a node lacking the payload its kind requires.
	ErrMissingPayload = errors.New("node is missing required payload")

	// ErrLeafChildren indicates children listed under a non-container kind.
	ErrLeafChildren = errors.New("leaf kind cannot have children")
)

// nodeSpec is the YAML shape of a single green node.
type nodeSpec struct {
	Kind     string      `yaml:"kind"`
	Len      int         `yaml:"len,omitempty"`
	Text     string      `yaml:"text,omitempty"`
	Newlines int         `yaml:"newlines,omitempty"`
	Level    int         `yaml:"level,omitempty"`
	Number   *int        `yaml:"number,omitempty"`
	Raw      *rawSpec    `yaml:"raw,omitempty"`
	Escape   *escapeSpec `yaml:"escape,omitempty"`
	Error    *errorSpec  `yaml:"error,omitempty"`
	Children []nodeSpec  `yaml:"children,omitempty"`
}

type rawSpec struct {
	Lang      string `yaml:"lang,omitempty"`
	Backticks int    `yaml:"backticks"`
	Text      string `yaml:"text"`
	Block     bool   `yaml:"block,omitempty"`
}

type escapeSpec struct {
	Sequence   string `yaml:"sequence"`
	Character  string `yaml:"character,omitempty"`
	Recognized bool   `yaml:"recognized,omitempty"`
}

type errorSpec struct {
	Pos     string `yaml:"pos,omitempty"`
	Message string `yaml:"message"`
}

// Load reads a treefile from disk.
func Load(path string) (*syntax.GreenNode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read treefile: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML document into a green tree.
func Parse(data []byte) (*syntax.GreenNode, error) {
	var spec nodeSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("decode treefile: %w", err)
	}
	return build(spec)
}

// Save writes root to disk as a treefile. The write is atomic so a
// crashed tool never leaves a half-written document behind.
func Save(path string, root *syntax.GreenNode) error {
	data, err := Marshal(root)
	if err != nil {
		return err
	}
	if err := fsutil.WriteAtomic(path, data, 0); err != nil {
		return fmt.Errorf("write treefile: %w", err)
	}
	return nil
}

// Marshal encodes root as a YAML document.
func Marshal(root *syntax.GreenNode) ([]byte, error) {
	data, err := yaml.Marshal(dump(root))
	if err != nil {
		return nil, fmt.Errorf("encode treefile: %w", err)
	}
	return data, nil
}

// isContainer reports whether tag denotes an interior node.
func isContainer(tag syntax.Kind) bool {
	switch tag {
	case syntax.KindMarkup, syntax.KindHeading, syntax.KindList,
		syntax.KindEnum, syntax.KindGroup, syntax.KindCall:
		return true
	default:
		return false
	}
}

func build(spec nodeSpec) (*syntax.GreenNode, error) {
	tag, ok := syntax.KindByName(spec.Kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, spec.Kind)
	}

	kind, err := buildKind(tag, spec)
	if err != nil {
		return nil, err
	}

	if isContainer(tag) {
		children := make([]*syntax.GreenNode, 0, len(spec.Children))
		for _, childSpec := range spec.Children {
			child, err := build(childSpec)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		return syntax.NewInner(kind, children...), nil
	}

	if len(spec.Children) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrLeafChildren, spec.Kind)
	}

	length, ok := leafLen(tag, spec)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingLen, spec.Kind)
	}
	return syntax.NewLeaf(kind, length), nil
}

func buildKind(tag syntax.Kind, spec nodeSpec) (syntax.NodeKind, error) {
	switch tag {
	case syntax.KindSpace:
		return syntax.SpaceKind(spec.Newlines), nil
	case syntax.KindText:
		return syntax.TextKind(spec.Text), nil
	case syntax.KindIdent:
		return syntax.IdentKind(spec.Text), nil
	case syntax.KindBool, syntax.KindInt, syntax.KindFloat, syntax.KindStr:
		return syntax.NodeKind{Tag: tag, Text: spec.Text}, nil
	case syntax.KindHeadingLevel:
		return syntax.HeadingLevelKind(spec.Level), nil
	case syntax.KindEnumNumbering:
		return syntax.EnumNumberingKind(spec.Number), nil
	case syntax.KindRaw:
		if spec.Raw == nil {
			return syntax.NodeKind{}, fmt.Errorf("%w: raw", ErrMissingPayload)
		}
		return syntax.RawKind(&syntax.RawAttrs{
			Lang:      spec.Raw.Lang,
			Backticks: spec.Raw.Backticks,
			Text:      spec.Raw.Text,
			Block:     spec.Raw.Block,
		}), nil
	case syntax.KindUnicodeEscape:
		if spec.Escape == nil {
			return syntax.NodeKind{}, fmt.Errorf("%w: escape", ErrMissingPayload)
		}
		attrs := &syntax.EscapeAttrs{
			Sequence:   spec.Escape.Sequence,
			Recognized: spec.Escape.Recognized,
		}
		for _, r := range spec.Escape.Character {
			attrs.Character = r
			break
		}
		return syntax.EscapeKind(attrs), nil
	case syntax.KindError:
		if spec.Error == nil {
			return syntax.NodeKind{}, fmt.Errorf("%w: error", ErrMissingPayload)
		}
		return syntax.ErrorKind(errorPosByName(spec.Error.Pos), spec.Error.Message), nil
	default:
		return syntax.Plain(tag), nil
	}
}

// leafLen determines a leaf's byte length: explicit len wins, text-bearing
// leaves fall back to their text's byte length. Zero-length leaves are not
// meaningful and are rejected.
func leafLen(tag syntax.Kind, spec nodeSpec) (int, bool) {
	if spec.Len > 0 {
		return spec.Len, true
	}
	switch tag {
	case syntax.KindText, syntax.KindIdent, syntax.KindBool,
		syntax.KindInt, syntax.KindFloat, syntax.KindStr:
		return len(spec.Text), len(spec.Text) > 0
	default:
		return 0, false
	}
}

func errorPosByName(name string) syntax.ErrorPos {
	switch name {
	case "start":
		return syntax.ErrorPosStart
	case "end":
		return syntax.ErrorPosEnd
	default:
		return syntax.ErrorPosFull
	}
}

func dump(node *syntax.GreenNode) nodeSpec {
	kind := node.Kind()
	spec := nodeSpec{Kind: kind.Tag.String()}

	switch kind.Tag {
	case syntax.KindSpace:
		spec.Newlines = kind.Newlines
	case syntax.KindText, syntax.KindIdent, syntax.KindBool,
		syntax.KindInt, syntax.KindFloat, syntax.KindStr:
		spec.Text = kind.Text
	case syntax.KindHeadingLevel:
		spec.Level = kind.Level
	case syntax.KindEnumNumbering:
		spec.Number = kind.Number
	case syntax.KindRaw:
		spec.Raw = &rawSpec{
			Lang:      kind.Raw.Lang,
			Backticks: kind.Raw.Backticks,
			Text:      kind.Raw.Text,
			Block:     kind.Raw.Block,
		}
	case syntax.KindUnicodeEscape:
		spec.Escape = &escapeSpec{
			Sequence:   kind.Escape.Sequence,
			Recognized: kind.Escape.Recognized,
		}
		if kind.Escape.Recognized {
			spec.Escape.Character = string(kind.Escape.Character)
		}
	case syntax.KindError:
		spec.Error = &errorSpec{Pos: kind.Error.Pos.String(), Message: kind.Error.Message}
	}

	if node.IsLeaf() {
		spec.Len = node.Len()
		return spec
	}

	spec.Children = make([]nodeSpec, 0, node.NumChildren())
	for child := range node.Children() {
		spec.Children = append(spec.Children, dump(child))
	}
	return spec
}
