package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/zostay/go-std/slices"

	"github.com/zostay/pluck"
	"github.com/zostay/pluck/source"
)

// app scans an input stream for a byte pattern and reports the offset of
// each occurrence found.
type app struct {
	pattern []byte
	all     bool
	verbose bool
	out     io.Writer
	errOut  io.Writer
}

func newApp(pattern string, all, verbose bool, out, errOut io.Writer) (*app, error) {
	if pattern == "" {
		return nil, errors.New("a --pattern is required")
	}

	bs, err := hex.DecodeString(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad --pattern: %w", err)
	}
	if len(bs) == 0 {
		return nil, errors.New("--pattern must name at least one byte")
	}

	return &app{
		pattern: bs,
		all:     all,
		verbose: verbose,
		out:     out,
		errOut:  errOut,
	}, nil
}

// hexPattern renders the pattern one byte at a time for trace output.
func (a *app) hexPattern() string {
	hexes := slices.Map(a.pattern, func(b byte) string {
		return fmt.Sprintf("%02x", b)
	})
	return strings.Join(hexes, " ")
}

// run scans in for the pattern and prints the byte offset of each match
// found. A DeferredStrategy locates each candidate by its first byte; a
// mismatch after the anchor only means that candidate wasn't a match, so the
// scan resumes from wherever the cursor stopped with a fresh extraction.
// Matches are non-overlapping. Returns whether at least one was found.
func (a *app) run(name string, in io.Reader) (bool, error) {
	src := source.Reader(in)
	cur := pluck.New[byte](src)
	if a.verbose {
		cur.TraceFunc = func(v ...any) {
			fmt.Fprintln(a.errOut, v...)
		}
		fmt.Fprintf(a.errOut, "scanning %s for [%s]\n", name, a.hexPattern())
	}

	found := false
	for {
		_, err := pluck.Deferred(cur, a.pattern...).Extract()
		switch {
		case errors.Is(err, pluck.ErrNotFound):
			if readErr := src.Err(); readErr != nil {
				return found, readErr
			}
			return found, nil
		case errors.Is(err, pluck.ErrIncorrectValue):
			continue
		case err != nil:
			return found, err
		}

		found = true
		fmt.Fprintf(a.out, "%s: %d\n", name, cur.Count()-len(a.pattern))
		if !a.all {
			return true, nil
		}
	}
}
