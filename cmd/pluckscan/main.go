package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

func main() {
	var (
		pattern string
		all     bool
		verbose bool
	)

	flag.StringVarP(&pattern, "pattern", "p", "", "Hex bytes to scan for (required)")
	flag.BoolVarP(&all, "all", "a", false, "Report every occurrence, not just the first")
	flag.BoolVarP(&verbose, "verbose", "v", false, "Trace extraction steps to stderr")
	flag.Parse()

	app, err := newApp(pattern, all, verbose, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pluckscan: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	in := io.Reader(os.Stdin)
	name := "-"
	if args := flag.Args(); len(args) > 0 {
		name = args[0]
		f, err := os.Open(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "pluckscan: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	found, err := app.run(name, in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pluckscan: %v\n", err)
		os.Exit(1)
	}
	if !found {
		os.Exit(1)
	}
}
