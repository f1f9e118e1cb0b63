// Package source provides stock pull sources for pluck Cursors: in-memory
// slices and strings, and bufio-backed byte and rune readers.
package source

import (
	"bufio"
	"errors"
	"io"

	"github.com/zostay/pluck"
)

// Slice returns a Source yielding the items of s in order. The slice is not
// copied; the caller must not modify it while the Source is in use.
func Slice[T any](s []T) pluck.Source[T] {
	return &slice[T]{items: s}
}

type slice[T any] struct {
	items []T
	pos   int
}

func (s *slice[T]) Next() (T, bool) {
	if s.pos >= len(s.items) {
		var zero T
		return zero, false
	}

	item := s.items[s.pos]
	s.pos++
	return item, true
}

// Bytes returns a Source yielding the bytes of s in order.
func Bytes(s string) pluck.Source[byte] {
	return &str{s: s}
}

type str struct {
	s   string
	pos int
}

func (s *str) Next() (byte, bool) {
	if s.pos >= len(s.s) {
		return 0, false
	}

	b := s.s[s.pos]
	s.pos++
	return b, true
}

// ByteReader is the Source returned by Reader and ReaderSize. It yields one
// byte at a time from an io.Reader through an internal bufio.Reader.
type ByteReader struct {
	r   *bufio.Reader
	err error
}

// Reader creates a byte Source over r using the default buffer size
// (inherited from bufio.Reader).
func Reader(r io.Reader) *ByteReader {
	return &ByteReader{r: bufio.NewReader(r)}
}

// ReaderSize creates a byte Source over r, but with a custom internal buffer
// size.
func ReaderSize(r io.Reader, size int) *ByteReader {
	return &ByteReader{r: bufio.NewReaderSize(r, size)}
}

// Next yields the next byte of the underlying reader. Any read error ends
// the stream; use Err to distinguish a real failure from end-of-data.
func (s *ByteReader) Next() (byte, bool) {
	if s.err != nil {
		return 0, false
	}

	b, err := s.r.ReadByte()
	if err != nil {
		s.err = err
		return 0, false
	}

	return b, true
}

// Err returns the error that ended the stream, if it was anything other than
// io.EOF.
func (s *ByteReader) Err() error {
	if errors.Is(s.err, io.EOF) {
		return nil
	}
	return s.err
}

// RuneReader is the Source returned by Runes. It yields one decoded rune at
// a time from an io.Reader containing UTF-8 text.
type RuneReader struct {
	r   *bufio.Reader
	err error
}

// Runes creates a rune Source over r. Invalid UTF-8 sequences yield
// utf8.RuneError one byte at a time, as bufio.Reader.ReadRune does.
func Runes(r io.Reader) *RuneReader {
	return &RuneReader{r: bufio.NewReader(r)}
}

// Next yields the next rune of the underlying reader. Any read error ends
// the stream; use Err to distinguish a real failure from end-of-data.
func (s *RuneReader) Next() (rune, bool) {
	if s.err != nil {
		return 0, false
	}

	c, _, err := s.r.ReadRune()
	if err != nil {
		s.err = err
		return 0, false
	}

	return c, true
}

// Err returns the error that ended the stream, if it was anything other than
// io.EOF.
func (s *RuneReader) Err() error {
	if errors.Is(s.err, io.EOF) {
		return nil
	}
	return s.err
}
