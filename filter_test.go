package chemfig

import (
	"testing"

	"github.com/alnah/go-pandoc-chemfig/pandoc"
)

// figAbbrMeta encodes a fig-abbr metadata block the way pandoc serializes
// YAML front matter.
func figAbbrMeta(entries map[string][]any) map[string]any {
	m := make(map[string]any, len(entries))
	for key, inlines := range entries {
		m[key] = pandoc.Elt(pandoc.MetaInlinesTag, inlines)
	}
	return map[string]any{
		metaAbbrKey: pandoc.Elt(pandoc.MetaMapTag, m),
	}
}

func TestTransformGeneric(t *testing.T) {
	t.Parallel()

	doc := &pandoc.Document{
		Meta: map[string]any{},
		Blocks: []any{
			pandoc.Plain([]any{
				imageNode(t, testAttr("rx1", "scheme"), "Synthesis", "a.png"),
			}),
			pandoc.Plain([]any{
				pandoc.Str("see"),
				pandoc.Space(),
				pandoc.Elt(pandoc.CiteTag, citeContent("[@rx2]")),
			}),
			pandoc.Plain([]any{
				imageNode(t, testAttr("rx2", "scheme"), "Workup", "b.png"),
			}),
		},
	}

	out := New("html").Transform(doc)

	first := pandoc.Content(out.Blocks[0]).([]any)[0]
	caption := pandoc.Content(first).([]any)[1].([]any)
	if got := wrappedStrText(t, caption[0], pandoc.StrongTag); got != "Scheme " {
		t.Errorf("first label = %q, want %q", got, "Scheme ")
	}
	if got := wrappedStrText(t, caption[1], pandoc.StrongTag); got != "1" {
		t.Errorf("first number = %q, want %q", got, "1")
	}

	// The citation precedes its figure in the source; two passes make the
	// forward reference resolve anyway.
	cite := pandoc.Content(out.Blocks[1]).([]any)[2]
	if got := strText(t, cite); got != "2" {
		t.Errorf("forward reference = %q, want %q", got, "2")
	}

	third := pandoc.Content(out.Blocks[2]).([]any)[0]
	caption = pandoc.Content(third).([]any)[1].([]any)
	if got := wrappedStrText(t, caption[1], pandoc.StrongTag); got != "2" {
		t.Errorf("second number = %q, want %q", got, "2")
	}
}

func TestTransformTypesetting(t *testing.T) {
	t.Parallel()

	doc := &pandoc.Document{
		Meta: map[string]any{},
		Blocks: []any{
			pandoc.Plain([]any{
				imageNode(t, testAttr("rx1", "scheme"), "Synthesis", "a.png"),
				pandoc.Elt(pandoc.CiteTag, citeContent("[@rx1]")),
			}),
		},
	}

	out := New("latex").Transform(doc)

	inlines := pandoc.Content(out.Blocks[0]).([]any)
	wantBegin := "\n\\begin{scheme}\n\\centering\n\\includegraphics{a.png}"
	if got := rawText(t, inlines[0]); got != wantBegin {
		t.Errorf("begin chunk = %q, want %q", got, wantBegin)
	}
	last := inlines[len(inlines)-1]
	if got := rawText(t, last); got != `\ref{rx1}` {
		t.Errorf("reference = %q, want %q", got, `\ref{rx1}`)
	}
}

func TestTransformMetadataOverridesDefaults(t *testing.T) {
	t.Parallel()

	defaults := Abbreviations{
		Labels: map[string][]any{
			"scheme": {pandoc.Strong([]any{pandoc.Str("Default ")})},
			"chart":  {pandoc.Strong([]any{pandoc.Str("Chart. ")})},
		},
		Suffix: []any{pandoc.Str("; ")},
	}
	doc := &pandoc.Document{
		Meta: figAbbrMeta(map[string][]any{
			"scheme": {pandoc.Emph([]any{pandoc.Str("Sch. ")})},
		}),
		Blocks: []any{
			pandoc.Plain([]any{
				imageNode(t, testAttr("rx1", "scheme"), "c", "a.png"),
			}),
			pandoc.Plain([]any{
				imageNode(t, testAttr("ch1", "chart"), "c", "b.png"),
			}),
		},
	}

	out := New("html", WithDefaults(defaults)).Transform(doc)

	// Document metadata wins for scheme, and the number follows its style.
	caption := pandoc.Content(pandoc.Content(out.Blocks[0]).([]any)[0]).([]any)[1].([]any)
	if got := wrappedStrText(t, caption[0], pandoc.EmphTag); got != "Sch. " {
		t.Errorf("scheme label = %q, want %q", got, "Sch. ")
	}
	if got := wrappedStrText(t, caption[1], pandoc.EmphTag); got != "1" {
		t.Errorf("scheme number = %q, want emphasized %q", got, "1")
	}
	if got := strText(t, caption[2]); got != "; " {
		t.Errorf("suffix = %q, want %q", got, "; ")
	}

	// The host default still applies to classes the document is silent on.
	caption = pandoc.Content(pandoc.Content(out.Blocks[1]).([]any)[0]).([]any)[1].([]any)
	if got := wrappedStrText(t, caption[0], pandoc.StrongTag); got != "Chart. " {
		t.Errorf("chart label = %q, want %q", got, "Chart. ")
	}
}

func TestTransformFreshFilterResetsNumbering(t *testing.T) {
	t.Parallel()

	newDoc := func() *pandoc.Document {
		return &pandoc.Document{
			Meta: map[string]any{},
			Blocks: []any{
				pandoc.Plain([]any{
					imageNode(t, testAttr("rx1", "scheme"), "c", "a.png"),
				}),
			},
		}
	}

	New("html").Transform(newDoc())
	f := New("html")
	f.Transform(newDoc())

	if label, _ := f.Registry().LookupLabel("rx1"); label != "1" {
		t.Errorf("second run label = %q, want %q", label, "1")
	}
}

func TestTransformWithRegistry(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.RecordLabel("pre", reg.AssignNumber("scheme"))

	doc := &pandoc.Document{
		Meta: map[string]any{},
		Blocks: []any{
			pandoc.Plain([]any{
				pandoc.Elt(pandoc.CiteTag, citeContent("[@pre]")),
			}),
		},
	}

	out := New("html", WithRegistry(reg)).Transform(doc)
	cite := pandoc.Content(out.Blocks[0]).([]any)[0]
	if got := strText(t, cite); got != "1" {
		t.Errorf("resolved seeded reference = %q, want %q", got, "1")
	}
}

// imageNode builds a complete Image element from the helpers' content payload.
func imageNode(t *testing.T, attr pandoc.Attr, caption, url string) map[string]any {
	t.Helper()
	return pandoc.Image(attr, []any{pandoc.Str(caption)}, pandoc.Target{URL: url})
}
