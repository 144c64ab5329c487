package chemfig

import "github.com/alnah/go-pandoc-chemfig/pandoc"

// Filter runs the two rewriting passes over one document. It holds the
// numbering state of a single conversion run: create one Filter per
// document, or counters would accumulate across unrelated inputs.
type Filter struct {
	format   string
	reg      *Registry
	defaults Abbreviations
}

// Option customizes a Filter.
type Option func(*Filter)

// WithDefaults supplies abbreviation defaults used when the document's own
// fig-abbr metadata is silent for a class (or for the suffix).
func WithDefaults(abbrs Abbreviations) Option {
	return func(f *Filter) { f.defaults = abbrs }
}

// WithRegistry injects a pre-seeded Registry, mainly so tests can drive one
// pass in isolation.
func WithRegistry(reg *Registry) Option {
	return func(f *Filter) { f.reg = reg }
}

// New creates a Filter for the given pandoc output format identifier.
func New(format string, opts ...Option) *Filter {
	f := &Filter{format: format, reg: NewRegistry()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Registry exposes the run's numbering state, for diagnostics after a
// Transform.
func (f *Filter) Registry() *Registry { return f.reg }

// Transform rewrites figures, then resolves references, and returns the
// rewritten document. The second pass starts only after the first has seen
// the entire tree; that ordering is what lets a citation precede its figure
// in the source.
func (f *Filter) Transform(doc *pandoc.Document) *pandoc.Document {
	abbrs := abbreviationsFromMeta(doc.Meta).merge(f.defaults)
	rewriter := NewRewriter(f.reg, f.format, abbrs)
	resolver := NewResolver(f.reg, f.format)

	meta, _ := pandoc.Walk(doc.Meta, rewriter.Rewrite).(map[string]any)
	blocks, _ := pandoc.Walk(doc.Blocks, rewriter.Rewrite).([]any)

	meta, _ = pandoc.Walk(meta, resolver.Resolve).(map[string]any)
	blocks, _ = pandoc.Walk(blocks, resolver.Resolve).([]any)

	return &pandoc.Document{
		APIVersion: doc.APIVersion,
		Meta:       meta,
		Blocks:     blocks,
	}
}
