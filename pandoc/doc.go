// Package pandoc models the pandoc JSON document exchanged with filters.
//
// A pandoc filter receives one JSON document on stdin and writes the
// rewritten document to stdout. Elements are tagged objects of the form
// {"t": "Str", "c": "text"}; containers are plain JSON arrays. This package
// keeps the decoded tree generic (map[string]any / []any) so that node kinds
// the filter does not know about round-trip untouched, and layers typed
// helpers on top: element constructors, attribute and target views, and a
// Walk that visits every tagged element with replace/splice semantics.
//
// Read a document, rewrite it, and write it back:
//
//	doc, err := pandoc.ReadDocument(os.Stdin)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc.Blocks = pandoc.Walk(doc.Blocks, action).([]any)
//	if err := pandoc.WriteDocument(os.Stdout, doc); err != nil {
//	    log.Fatal(err)
//	}
//
// Walk's action contract: returning (nil, false) keeps the element and
// descends into its children; returning a slice replaces the element with the
// slice contents (an empty slice deletes it). Replacements are spliced in
// place but not revisited, so an action may emit nodes it would itself match.
package pandoc
