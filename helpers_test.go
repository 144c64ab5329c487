package chemfig

import (
	"testing"

	"github.com/alnah/go-pandoc-chemfig/pandoc"
)

// Builders for the node payloads the rewriter and resolver consume.

func testAttr(id, class string, kvs ...pandoc.KV) pandoc.Attr {
	attr := pandoc.Attr{ID: id, KVs: kvs}
	if class != "" {
		attr.Classes = []string{class}
	}
	return attr
}

// imageContent returns the "c" payload of a flat Image node.
func imageContent(attr pandoc.Attr, caption []any, url string) any {
	return pandoc.Content(pandoc.Image(attr, caption, pandoc.Target{URL: url}))
}

// figureContent returns the "c" payload of a nested Figure node wrapping one
// image, with the caption encoded the way pandoc does: [short, long].
func figureContent(attr pandoc.Attr, capInlines []any, img map[string]any) any {
	var long []any
	if capInlines != nil {
		long = []any{pandoc.Plain(capInlines)}
	} else {
		long = []any{}
	}
	return []any{
		attr.Encode(),
		[]any{nil, long},
		[]any{pandoc.Plain([]any{img})},
	}
}

// citeContent returns the "c" payload of a Cite node whose rendered text is
// the given string.
func citeContent(text string) any {
	return []any{[]any{}, []any{pandoc.Str(text)}}
}

// rawText extracts the text of a RawInline node or fails the test.
func rawText(t *testing.T, node any) string {
	t.Helper()
	tag, ok := pandoc.Tag(node)
	if !ok || tag != pandoc.RawInlineTag {
		t.Fatalf("node = %v, want RawInline", node)
	}
	parts, ok := pandoc.Content(node).([]any)
	if !ok || len(parts) != 2 {
		t.Fatalf("RawInline content = %v, want [format, text]", pandoc.Content(node))
	}
	text, ok := parts[1].(string)
	if !ok {
		t.Fatalf("RawInline text = %v, want string", parts[1])
	}
	return text
}

// strText extracts the text of a Str node or fails the test.
func strText(t *testing.T, node any) string {
	t.Helper()
	text, ok := pandoc.InlineText(node)
	if !ok {
		t.Fatalf("node = %v, want Str", node)
	}
	return text
}

// wrappedStrText extracts the text of the single Str inside an Emph or
// Strong node, checking the wrapper tag on the way.
func wrappedStrText(t *testing.T, node any, wantTag string) string {
	t.Helper()
	tag, ok := pandoc.Tag(node)
	if !ok || tag != wantTag {
		t.Fatalf("node = %v, want %s", node, wantTag)
	}
	inner, ok := pandoc.Content(node).([]any)
	if !ok || len(inner) != 1 {
		t.Fatalf("%s content = %v, want one inline", wantTag, pandoc.Content(node))
	}
	return strText(t, inner[0])
}
