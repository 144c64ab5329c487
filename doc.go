// Package chemfig numbers figure-like document nodes and resolves
// cross-references to them, as a pandoc filter core.
//
// Chemistry manuscripts distinguish figures, schemes, charts, and graphs,
// each with its own numbering sequence. The core walks a pandoc document in
// two passes: pass one rewrites every classed image or figure, assigning the
// next number of its class and producing either a LaTeX environment
// (optionally text-wrapped via the wrapfig package) or a decorated caption
// such as "Scheme 1. ..."; pass two replaces citations like [@rx1] with the
// assigned number, or with \ref{rx1} for LaTeX output. Because the first
// pass finishes before the second starts, a citation may precede its figure
// in the source.
//
// # Quick Start
//
//	doc, err := pandoc.ReadDocument(os.Stdin)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	f := chemfig.New("latex")
//	doc = f.Transform(doc)
//	if err := pandoc.WriteDocument(os.Stdout, doc); err != nil {
//	    log.Fatal(err)
//	}
//
// # Caption Labels
//
// For non-LaTeX output the caption label defaults to the bold, capitalized
// class name. Documents override it per class through fig-abbr metadata:
//
//	---
//	fig-abbr:
//	  scheme: "*Sch.*"
//	  suffix: "**.** "
//	---
//
// The assigned number inherits the emphasis of the label, so an emphasized
// label yields an emphasized number. Host programs can also supply defaults
// through Abbreviations (see WithDefaults), which lose to document metadata.
//
// The filter never fails on malformed figure or citation nodes; anything it
// does not recognize passes through unchanged.
package chemfig
