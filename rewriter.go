package chemfig

import "github.com/alnah/go-pandoc-chemfig/pandoc"

// Rewriter numbers classed figures and replaces them with format-appropriate
// content: raw LaTeX environments for the typesetting family, decorated
// captions for everything else. It mutates the shared Registry as it goes,
// so the Resolver can look numbers up in the second pass.
type Rewriter struct {
	reg    *Registry
	format string
	family Family
	abbrs  Abbreviations
}

// NewRewriter returns a Rewriter writing raw chunks tagged with format and
// recording assignments in reg.
func NewRewriter(reg *Registry, format string, abbrs Abbreviations) *Rewriter {
	return &Rewriter{
		reg:    reg,
		format: format,
		family: FamilyOf(format),
		abbrs:  abbrs,
	}
}

// Rewrite is the pass-one pandoc.Action. Nodes that are not numbered figures
// (wrong kind, no class, or a flat image without a caption) pass through
// untouched.
func (rw *Rewriter) Rewrite(tag string, content any) ([]any, bool) {
	switch tag {
	case pandoc.ImageTag:
		f, ok := figureFromImage(content)
		if !ok {
			return nil, false
		}
		number := rw.register(f)
		if rw.family == TypesettingFamily {
			return rw.environment(f), true
		}
		return []any{pandoc.Image(f.attr, rw.decorate(f, number), f.target)}, true

	case pandoc.FigureTag:
		f, ok := figureFromFigure(content)
		if !ok {
			return nil, false
		}
		number := rw.register(f)
		if rw.family == TypesettingFamily {
			// A block-level figure becomes a Plain holding the same raw
			// chunks, so the caption survives as AST instead of text.
			return []any{pandoc.Plain(rw.environment(f))}, true
		}
		return []any{rw.rebuildFigure(f, number)}, true
	}
	return nil, false
}

// register assigns the next number of the figure's class and records the id
// label. Duplicate ids overwrite silently; numbering is unaffected.
func (rw *Rewriter) register(f *figure) string {
	number := rw.reg.AssignNumber(f.class)
	rw.reg.RecordLabel(f.id, number)
	label, _ := rw.reg.LookupLabel(f.id)
	return label
}

// environment emits the inline sequence for the typesetting family: a raw
// opening chunk, the optional caption command with the original caption
// inlines inside it, and a raw label + closing chunk. The leading and
// trailing newlines in the chunk text are part of the emitted markup; do not
// normalize them.
func (rw *Rewriter) environment(f *figure) []any {
	env := f.envName()
	file := f.target.URL

	var begin, end string
	switch f.layout() {
	case layoutWrapped:
		begin = "\n\\begin{wrapfloat}{" + env + "}{" + f.wrapPos + "}{" + f.wrapWidth + "}\n" +
			"\\centering\n\\includegraphics{" + file + "}\n"
		end = "\n\\label{" + f.id + "}\n\\end{wrapfloat}\n"
	case layoutPlaced:
		begin = "\n\\begin{" + env + "}[" + f.placement + "]\n" +
			"\\centering\n\\includegraphics{" + file + "}"
		end = "\n\\label{" + f.id + "}\n\\end{" + env + "}\n"
	default:
		begin = "\n\\begin{" + env + "}\n" +
			"\\centering\n\\includegraphics{" + file + "}"
		end = "\n\\label{" + f.id + "}\n\\end{" + env + "}\n"
	}

	inlines := []any{pandoc.RawInline(rw.format, begin)}
	// An empty \caption{} is invalid LaTeX; omit the command entirely.
	if len(f.caption) > 0 {
		inlines = append(inlines, pandoc.RawInline(rw.format, `\caption{`))
		inlines = append(inlines, f.caption...)
		inlines = append(inlines, pandoc.RawInline(rw.format, `}`))
	}
	return append(inlines, pandoc.RawInline(rw.format, end))
}

// decorate prepends label, number, and suffix to the original caption.
func (rw *Rewriter) decorate(f *figure, number string) []any {
	label := rw.abbrs.label(f.class)
	out := make([]any, 0, len(label)+2+len(f.caption))
	out = append(out, label...)
	out = append(out, numberInlines(label, number)...)
	out = append(out, rw.abbrs.suffix()...)
	return append(out, f.caption...)
}

// rebuildFigure returns the nested shape with its long caption decorated and
// everything else (attributes, short caption, wrapped blocks) untouched.
func (rw *Rewriter) rebuildFigure(f *figure, number string) map[string]any {
	decorated := rw.decorate(f, number)
	long := make([]any, 0, len(f.longRaw)+1)
	replaced := false
	for _, block := range f.longRaw {
		if !replaced {
			if tag, ok := pandoc.Tag(block); ok && (tag == pandoc.PlainTag || tag == pandoc.ParaTag) {
				long = append(long, pandoc.Elt(tag, decorated))
				replaced = true
				continue
			}
		}
		long = append(long, block)
	}
	if !replaced {
		long = append(long, pandoc.Plain(decorated))
	}
	return pandoc.Elt(pandoc.FigureTag, []any{f.attrRaw, []any{f.shortRaw, long}, f.blocksRaw})
}
