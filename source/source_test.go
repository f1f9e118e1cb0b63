package source_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zostay/pluck"
	"github.com/zostay/pluck/source"
)

// drain pulls every remaining item out of a source.
func drain[T any](src pluck.Source[T]) []T {
	var items []T
	for {
		item, ok := src.Next()
		if !ok {
			return items
		}
		items = append(items, item)
	}
}

func TestSlice(t *testing.T) {
	src := source.Slice([]int{1, 2, 3})

	if diff := cmp.Diff([]int{1, 2, 3}, drain(src)); diff != "" {
		t.Errorf("items mismatch:\n%s", diff)
	}

	// stays exhausted
	if _, ok := src.Next(); ok {
		t.Error("Next() after exhaustion = true, want false")
	}
}

func TestBytes(t *testing.T) {
	src := source.Bytes("hi")

	if diff := cmp.Diff([]byte("hi"), drain(src)); diff != "" {
		t.Errorf("items mismatch:\n%s", diff)
	}
}

func TestReader(t *testing.T) {
	src := source.Reader(strings.NewReader("stream"))

	if diff := cmp.Diff([]byte("stream"), drain[byte](src)); diff != "" {
		t.Errorf("items mismatch:\n%s", diff)
	}
	if err := src.Err(); err != nil {
		t.Errorf("Err() after clean EOF = %v, want nil", err)
	}
}

func TestReaderSize(t *testing.T) {
	input := strings.Repeat("x", 100)
	src := source.ReaderSize(strings.NewReader(input), 16)

	if got := len(drain[byte](src)); got != 100 {
		t.Errorf("drained %d bytes, want 100", got)
	}
}

type failReader struct {
	err error
}

func (r failReader) Read([]byte) (int, error) {
	return 0, r.err
}

func TestReaderErr(t *testing.T) {
	boom := errors.New("boom")
	src := source.Reader(failReader{err: boom})

	if _, ok := src.Next(); ok {
		t.Error("Next() on failing reader = true, want false")
	}
	if !errors.Is(src.Err(), boom) {
		t.Errorf("Err() = %v, want boom", src.Err())
	}
}

func TestRunes(t *testing.T) {
	src := source.Runes(strings.NewReader("héllo…"))

	if diff := cmp.Diff([]rune("héllo…"), drain[rune](src)); diff != "" {
		t.Errorf("runes mismatch:\n%s", diff)
	}
	if err := src.Err(); err != nil {
		t.Errorf("Err() after clean EOF = %v, want nil", err)
	}
}

func TestRunesWithCursor(t *testing.T) {
	c := pluck.New[rune](source.Runes(strings.NewReader("→ok")))

	got, err := pluck.Deferred(c, 'o', 'k').Extract()
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if diff := cmp.Diff([]rune("ok"), got); diff != "" {
		t.Errorf("result mismatch:\n%s", diff)
	}

	// the arrow is one item, not three bytes
	if c.Count() != 3 {
		t.Errorf("Count() = %d, want 3", c.Count())
	}
}
