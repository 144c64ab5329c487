// Command pandoc-chemfig is a pandoc JSON filter that numbers figure classes
// (schemes, charts, graphs) and resolves cross-references to them.
//
// Pandoc invokes it with the output format as the first argument and the
// document JSON on stdin:
//
//	pandoc --filter pandoc-chemfig -o paper.pdf paper.md
package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	fl, err := parseFlags(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if fl.version {
		fmt.Println("pandoc-chemfig " + Version)
		return
	}

	// Configure GOMAXPROCS with conditional logging. Error ignored:
	// maxprocs.Set only fails on an invalid GOMAXPROCS env value, in which
	// case runtime defaults apply and the filter continues safely.
	if fl.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	log := newLogger(fl.verbose)
	defer func() { _ = log.Sync() }()

	if err := run(os.Stdin, os.Stdout, fl, log); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
