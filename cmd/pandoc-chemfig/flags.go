package main

import (
	flag "github.com/spf13/pflag"
)

// flags holds the parsed command line. Pandoc passes the output format as
// the first positional argument; --format exists so the filter can be run by
// hand or through wrappers that do not follow that convention.
type flags struct {
	format  string
	config  string
	verbose bool
	version bool
}

// parseFlags parses args (including the program name at args[0]).
func parseFlags(args []string) (*flags, error) {
	fs := flag.NewFlagSet("pandoc-chemfig", flag.ContinueOnError)

	fl := &flags{}
	fs.StringVarP(&fl.format, "format", "f", "", "output format (overrides the positional argument pandoc passes)")
	fs.StringVarP(&fl.config, "config", "c", "", "config name or path with abbreviation defaults")
	fs.BoolVarP(&fl.verbose, "verbose", "v", false, "log per-class figure counts to stderr")
	fs.Bool("version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}

	fl.version, _ = fs.GetBool("version")
	if fl.format == "" && fs.NArg() > 0 {
		fl.format = fs.Arg(0)
	}
	return fl, nil
}
