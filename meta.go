package chemfig

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alnah/go-pandoc-chemfig/pandoc"
)

// metaAbbrKey is the document metadata entry holding caption label overrides.
const metaAbbrKey = "fig-abbr"

// metaSuffixKey is the entry inside fig-abbr holding the shared suffix.
const metaSuffixKey = "suffix"

// Abbreviations overrides how caption labels render for non-typesetting
// output. Labels maps a figure class to the inline fragment put before the
// number ("Sch. " instead of "Scheme "); Suffix is the fragment put after it.
// Values are pandoc inline elements so they carry emphasis.
type Abbreviations struct {
	Labels map[string][]any
	Suffix []any
}

// abbreviationsFromMeta reads the document's fig-abbr metadata, as pandoc
// encodes YAML front matter: a MetaMap of MetaInlines keyed by class name,
// with the reserved key "suffix" for the shared suffix.
func abbreviationsFromMeta(meta map[string]any) Abbreviations {
	abbrs := Abbreviations{Labels: make(map[string][]any)}
	entries, ok := pandoc.Content(meta[metaAbbrKey]).(map[string]any)
	if !ok {
		return abbrs
	}
	for class, value := range entries {
		inlines, ok := pandoc.Content(value).([]any)
		if !ok {
			continue
		}
		if class == metaSuffixKey {
			abbrs.Suffix = inlines
			continue
		}
		abbrs.Labels[class] = inlines
	}
	return abbrs
}

// merge layers document metadata over host-supplied defaults; the document
// always wins.
func (a Abbreviations) merge(defaults Abbreviations) Abbreviations {
	merged := Abbreviations{Labels: make(map[string][]any), Suffix: a.Suffix}
	for class, label := range defaults.Labels {
		merged.Labels[class] = label
	}
	for class, label := range a.Labels {
		merged.Labels[class] = label
	}
	if merged.Suffix == nil {
		merged.Suffix = defaults.Suffix
	}
	return merged
}

// label returns the caption label for class: the override if declared, else
// the capitalized class name in bold followed by a space.
func (a Abbreviations) label(class string) []any {
	if label, ok := a.Labels[class]; ok {
		return label
	}
	return []any{pandoc.Strong([]any{pandoc.Str(capitalize(class) + " ")})}
}

// suffix returns the caption suffix: the override if declared, else bold
// ". ".
func (a Abbreviations) suffix() []any {
	if a.Suffix != nil {
		return a.Suffix
	}
	return []any{pandoc.Strong([]any{pandoc.Str(". ")})}
}

// numberInlines formats an assigned number in the same emphasis as the label
// it follows, so label and number render consistently.
func numberInlines(label []any, number string) []any {
	if len(label) > 0 {
		if tag, ok := pandoc.Tag(label[0]); ok {
			switch tag {
			case pandoc.StrongTag:
				return []any{pandoc.Strong([]any{pandoc.Str(number)})}
			case pandoc.EmphTag:
				return []any{pandoc.Emph([]any{pandoc.Str(number)})}
			}
		}
	}
	return []any{pandoc.Str(number)}
}

// capitalize upper-cases the first rune and lower-cases the rest, matching
// how the default labels have always been derived from class names.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
