package main

import (
	"io"

	"go.uber.org/zap"

	chemfig "github.com/alnah/go-pandoc-chemfig"
	"github.com/alnah/go-pandoc-chemfig/pandoc"
)

// run reads one pandoc document from in, rewrites it, and writes the result
// to out. One invocation is one conversion run: the numbering state lives
// and dies inside this function.
func run(in io.Reader, out io.Writer, fl *flags, log *zap.Logger) error {
	doc, err := pandoc.ReadDocument(in)
	if err != nil {
		return err
	}

	var opts []chemfig.Option
	if fl.config != "" {
		cfg, err := chemfig.LoadConfig(fl.config)
		if err != nil {
			return err
		}
		defaults, err := cfg.Defaults()
		if err != nil {
			return err
		}
		opts = append(opts, chemfig.WithDefaults(defaults))
	}

	f := chemfig.New(fl.format, opts...)
	doc = f.Transform(doc)

	log.Debug("document rewritten",
		zap.String("format", fl.format),
		zap.Stringer("family", chemfig.FamilyOf(fl.format)),
	)
	for class, n := range f.Registry().Counts() {
		log.Info("numbered figures", zap.String("class", class), zap.Int("count", n))
	}

	return pandoc.WriteDocument(out, doc)
}
