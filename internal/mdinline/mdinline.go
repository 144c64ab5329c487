// Package mdinline parses one-line markdown fragments into pandoc inlines.
// Config files declare caption labels as markdown ("*Sch.*", "**Scheme**")
// so they carry emphasis exactly like labels declared in document metadata.
package mdinline

import (
	"errors"
	"strings"

	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/alnah/go-pandoc-chemfig/pandoc"
)

var (
	ErrEmptyInput = errors.New("mdinline: empty input")
	ErrNotInline  = errors.New("mdinline: input is not a single line of inline markdown")
)

// Parse converts a one-line markdown string into a pandoc inline sequence.
// Only inline emphasis is mapped: *text* becomes Emph, **text** becomes
// Strong, everything else collapses to its literal text. Block constructs
// (headings, lists, multiple paragraphs) are rejected.
func Parse(src string) ([]any, error) {
	if src == "" {
		return nil, ErrEmptyInput
	}

	source := []byte(src)
	root := goldmark.New().Parser().Parse(text.NewReader(source))

	first := root.FirstChild()
	if first == nil {
		return nil, ErrEmptyInput
	}
	if first.NextSibling() != nil {
		return nil, ErrNotInline
	}
	if k := first.Kind(); k != gast.KindParagraph && k != gast.KindTextBlock {
		return nil, ErrNotInline
	}

	out := inlines(first, source)
	// Goldmark trims trailing whitespace off the line, but a label fragment
	// needs it to separate the label from the number that follows.
	if strings.TrimRight(src, " ") != src {
		out = append(out, pandoc.Space())
	}
	return out, nil
}

// inlines converts the children of a goldmark node. Text segments keep their
// embedded spaces; pandoc renders a Str with spaces the same as split words.
func inlines(n gast.Node, source []byte) []any {
	var out []any
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *gast.Text:
			if t := string(c.Segment.Value(source)); t != "" {
				out = append(out, pandoc.Str(t))
			}
			if c.SoftLineBreak() || c.HardLineBreak() {
				out = append(out, pandoc.Space())
			}
		case *gast.String:
			if len(c.Value) > 0 {
				out = append(out, pandoc.Str(string(c.Value)))
			}
		case *gast.Emphasis:
			inner := inlines(c, source)
			if c.Level >= 2 {
				out = append(out, pandoc.Strong(inner))
			} else {
				out = append(out, pandoc.Emph(inner))
			}
		default:
			out = append(out, inlines(c, source)...)
		}
	}
	return out
}
