package chemfig

import (
	"regexp"

	"github.com/alnah/go-pandoc-chemfig/pandoc"
)

// refPattern extracts the id tag from a citation key: a leading @ with
// optional surrounding brackets, anchored at the start of the text.
var refPattern = regexp.MustCompile(`^\[?@([^\s\]]*)\]?`)

// Resolver replaces figure back-references in the second pass. A citation
// whose first inline matches refPattern and names a registered id becomes a
// \ref command (typesetting family) or the literal number (everything else).
// Every other citation — which is to say ordinary bibliography — passes
// through byte-identical.
type Resolver struct {
	reg    *Registry
	format string
	family Family
}

// NewResolver returns a Resolver reading labels from reg. The Registry must
// already hold every figure of the document, which is why resolution runs as
// a separate pass after the Rewriter has seen the whole tree.
func NewResolver(reg *Registry, format string) *Resolver {
	return &Resolver{reg: reg, format: format, family: FamilyOf(format)}
}

// Resolve is the pass-two pandoc.Action.
func (rs *Resolver) Resolve(tag string, content any) ([]any, bool) {
	if tag != pandoc.CiteTag {
		return nil, false
	}
	parts, ok := content.([]any)
	if !ok || len(parts) != 2 {
		return nil, false
	}
	inlines, ok := parts[1].([]any)
	if !ok || len(inlines) == 0 {
		return nil, false
	}
	text, ok := pandoc.InlineText(inlines[0])
	if !ok {
		return nil, false
	}
	m := refPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	label, ok := rs.reg.LookupLabel(m[1])
	if !ok {
		return nil, false
	}
	if rs.family == TypesettingFamily {
		return []any{pandoc.RawInline(rs.format, `\ref{`+m[1]+`}`)}, true
	}
	return []any{pandoc.Str(label)}, true
}
