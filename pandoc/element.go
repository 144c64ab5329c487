package pandoc

// Tags for the node kinds this module consumes or emits. Pandoc defines many
// more; unknown kinds pass through Walk untouched.
const (
	StrTag       = "Str"
	SpaceTag     = "Space"
	EmphTag      = "Emph"
	StrongTag    = "Strong"
	RawInlineTag = "RawInline"
	RawBlockTag  = "RawBlock"
	PlainTag     = "Plain"
	ParaTag      = "Para"
	ImageTag     = "Image"
	FigureTag    = "Figure"
	CiteTag      = "Cite"

	MetaMapTag     = "MetaMap"
	MetaInlinesTag = "MetaInlines"
)

// Elt builds a tagged element. A nil content produces a content-free element
// such as Space, matching how pandoc serializes them.
func Elt(tag string, content any) map[string]any {
	if content == nil {
		return map[string]any{"t": tag}
	}
	return map[string]any{"t": tag, "c": content}
}

// Tag returns the element tag of a decoded node, or false if the node is not
// a tagged element.
func Tag(node any) (string, bool) {
	m, ok := node.(map[string]any)
	if !ok {
		return "", false
	}
	tag, ok := m["t"].(string)
	return tag, ok
}

// Content returns the "c" payload of a decoded node. Content-free elements
// and non-elements yield nil.
func Content(node any) any {
	m, ok := node.(map[string]any)
	if !ok {
		return nil
	}
	return m["c"]
}

// Str builds a text element.
func Str(text string) map[string]any { return Elt(StrTag, text) }

// Space builds an inter-word space element.
func Space() map[string]any { return Elt(SpaceTag, nil) }

// Emph builds an emphasized inline span.
func Emph(inlines []any) map[string]any { return Elt(EmphTag, inlines) }

// Strong builds a strongly emphasized inline span.
func Strong(inlines []any) map[string]any { return Elt(StrongTag, inlines) }

// RawInline builds a raw inline chunk for the given output format.
func RawInline(format, text string) map[string]any {
	return Elt(RawInlineTag, []any{format, text})
}

// RawBlock builds a raw block chunk for the given output format.
func RawBlock(format, text string) map[string]any {
	return Elt(RawBlockTag, []any{format, text})
}

// Plain builds a plain (non-paragraph) block from inlines.
func Plain(inlines []any) map[string]any { return Elt(PlainTag, inlines) }

// Image builds an image element from an attribute set, caption inlines, and
// a target.
func Image(attr Attr, caption []any, target Target) map[string]any {
	return Elt(ImageTag, []any{attr.Encode(), caption, target.Encode()})
}

// InlineText extracts the text of a Str node. Returns false for any other
// node kind.
func InlineText(node any) (string, bool) {
	tag, ok := Tag(node)
	if !ok || tag != StrTag {
		return "", false
	}
	text, ok := Content(node).(string)
	return text, ok
}
