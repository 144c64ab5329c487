package chemfig

import "github.com/alnah/go-pandoc-chemfig/pandoc"

// Auxiliary option keys recognized on figure attributes. Unknown keys are
// ignored so documents can carry extra attributes for other tools.
const (
	optWrapWidth = "wwidth" // wrap-float width; presence selects wrapped layout
	optWrapPos   = "wpos"   // wrap side, default "r"
	optPlacement = "lpos"   // explicit float placement specifier
	optEnvSuffix = "lts"    // environment-name suffix, e.g. "*" for scheme*
)

// defaultWrapPos is the wrap side used when wpos is absent.
const defaultWrapPos = "r"

// layoutMode is the typesetting layout of one figure, decided once from the
// option keys in precedence order: wrapped beats explicit placement beats
// default.
type layoutMode int

const (
	layoutDefault layoutMode = iota
	layoutPlaced
	layoutWrapped
)

// figure is the normalized view of both node shapes: the flat
// image-with-class-attribute and the nested figure-wrapping-an-image. The
// rewrite algorithm only ever sees this form.
type figure struct {
	id      string
	class   string
	caption []any // caption inlines
	target  pandoc.Target
	attr    pandoc.Attr

	wrap      bool
	wrapWidth string
	wrapPos   string
	placed    bool
	placement string
	envSuffix string

	// nested-shape originals, kept to rebuild the Figure node
	nested    bool
	attrRaw   any
	shortRaw  any
	longRaw   []any
	blocksRaw []any
}

// layout selects the typesetting layout mode.
func (f *figure) layout() layoutMode {
	switch {
	case f.wrap:
		return layoutWrapped
	case f.placed:
		return layoutPlaced
	}
	return layoutDefault
}

// envName is the LaTeX environment name: class plus optional lts suffix.
func (f *figure) envName() string {
	return f.class + f.envSuffix
}

// readOptions scans the key/value pairs in order; on duplicates the last
// occurrence wins. Presence of wwidth or lpos matters, not the value.
func (f *figure) readOptions(kvs []pandoc.KV) {
	f.wrapPos = defaultWrapPos
	for _, kv := range kvs {
		switch kv.Key {
		case optWrapWidth:
			f.wrap = true
			f.wrapWidth = kv.Value
		case optWrapPos:
			f.wrapPos = kv.Value
		case optPlacement:
			f.placed = true
			f.placement = kv.Value
		case optEnvSuffix:
			f.envSuffix = kv.Value
		}
	}
}

// figureFromImage normalizes the flat Image shape. It returns false when the
// node is not a numbered figure: no class attribute, or an empty caption.
func figureFromImage(content any) (*figure, bool) {
	parts, ok := content.([]any)
	if !ok || len(parts) != 3 {
		return nil, false
	}
	attr, ok := pandoc.ParseAttr(parts[0])
	if !ok {
		return nil, false
	}
	class, ok := attr.Class()
	if !ok {
		return nil, false
	}
	caption, ok := parts[1].([]any)
	if !ok || len(caption) == 0 {
		return nil, false
	}
	target, ok := pandoc.ParseTarget(parts[2])
	if !ok {
		return nil, false
	}

	f := &figure{
		id:      attr.ID,
		class:   class,
		caption: caption,
		target:  target,
		attr:    attr,
	}
	f.readOptions(attr.KVs)
	return f, true
}

// figureFromFigure normalizes the nested Figure shape. The figure's own
// attributes win; a missing id, class, or option falls back to the wrapped
// image. Returns false when neither carries a class.
func figureFromFigure(content any) (*figure, bool) {
	parts, ok := content.([]any)
	if !ok || len(parts) != 3 {
		return nil, false
	}
	attr, ok := pandoc.ParseAttr(parts[0])
	if !ok {
		return nil, false
	}
	capParts, ok := parts[1].([]any)
	if !ok || len(capParts) != 2 {
		return nil, false
	}
	long, ok := capParts[1].([]any)
	if !ok {
		return nil, false
	}
	blocks, ok := parts[2].([]any)
	if !ok {
		return nil, false
	}

	imgAttr, target, hasImage := findImage(blocks)

	class, ok := attr.Class()
	if !ok && hasImage {
		class, ok = imgAttr.Class()
	}
	if !ok {
		return nil, false
	}
	id := attr.ID
	if id == "" && hasImage {
		id = imgAttr.ID
	}

	f := &figure{
		id:        id,
		class:     class,
		caption:   captionInlines(long),
		target:    target,
		attr:      attr,
		nested:    true,
		attrRaw:   parts[0],
		shortRaw:  capParts[0],
		longRaw:   long,
		blocksRaw: blocks,
	}
	// readOptions is last-wins, so image options go first and figure-level
	// ones shadow them.
	f.readOptions(append(append([]pandoc.KV{}, imgAttr.KVs...), attr.KVs...))
	return f, true
}

// findImage returns the attributes and target of the first image nested in
// blocks, in document order.
func findImage(blocks []any) (pandoc.Attr, pandoc.Target, bool) {
	for _, block := range blocks {
		tag, ok := pandoc.Tag(block)
		if !ok {
			continue
		}
		content := pandoc.Content(block)
		if tag == pandoc.ImageTag {
			parts, ok := content.([]any)
			if !ok || len(parts) != 3 {
				continue
			}
			attr, aok := pandoc.ParseAttr(parts[0])
			target, tok := pandoc.ParseTarget(parts[2])
			if aok && tok {
				return attr, target, true
			}
			continue
		}
		if children, ok := content.([]any); ok {
			if attr, target, found := findImage(children); found {
				return attr, target, true
			}
		}
	}
	return pandoc.Attr{}, pandoc.Target{}, false
}

// captionInlines extracts the inline sequence of the first inline-bearing
// block of a long caption. Pandoc writes figure captions as a single Plain.
func captionInlines(long []any) []any {
	for _, block := range long {
		tag, ok := pandoc.Tag(block)
		if !ok {
			continue
		}
		if tag == pandoc.PlainTag || tag == pandoc.ParaTag {
			if inlines, ok := pandoc.Content(block).([]any); ok {
				return inlines
			}
		}
	}
	return nil
}
