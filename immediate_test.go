package pluck_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zostay/pluck"
	"github.com/zostay/pluck/source"
)

func TestImmediateExtract(t *testing.T) {
	c := pluck.New(source.Bytes("abcd tail"))

	got, err := pluck.Immediate(c, []byte("abcd")...).Extract()
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if diff := cmp.Diff([]byte("abcd"), got); diff != "" {
		t.Errorf("result mismatch:\n%s", diff)
	}
	if c.Count() != 4 {
		t.Errorf("Count() = %d, want 4", c.Count())
	}
}

func TestImmediateExtractMismatch(t *testing.T) {
	c := pluck.New(source.Bytes("abXd"))

	_, err := pluck.Immediate(c, []byte("abcd")...).Extract()
	if !errors.Is(err, pluck.ErrIncorrectValue) {
		t.Fatalf("Extract = %v, want ErrIncorrectValue", err)
	}

	var mismatch *pluck.MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("Extract error %T does not unwrap to *MismatchError", err)
	}
	if mismatch.Pos != 2 {
		t.Errorf("Pos = %d, want 2", mismatch.Pos)
	}
	if mismatch.Count != 3 {
		t.Errorf("Count = %d, want 3", mismatch.Count)
	}

	// the mismatching item at position 2 is gone; exactly i+1 items consumed
	if c.Count() != 3 {
		t.Errorf("cursor Count() = %d, want 3", c.Count())
	}
	rest, err := c.Any(1).Extract()
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if rest[0] != 'd' {
		t.Errorf("next item = %q, want %q", rest[0], byte('d'))
	}
}

func TestImmediateExtractExhausted(t *testing.T) {
	c := pluck.New(source.Bytes("ab"))

	_, err := pluck.Immediate(c, []byte("abc")...).Extract()
	if !errors.Is(err, pluck.ErrNotFound) {
		t.Errorf("Extract = %v, want ErrNotFound", err)
	}
	if c.Count() != 2 {
		t.Errorf("Count() = %d, want 2", c.Count())
	}
}

func TestImmediateDeferredConversion(t *testing.T) {
	direct := pluck.New(source.Bytes("xxcde"))
	converted := pluck.New(source.Bytes("xxcde"))

	want, err := pluck.Deferred(direct, []byte("cd")...).Extract()
	if err != nil {
		t.Fatalf("direct Extract: %v", err)
	}

	got, err := pluck.Immediate(converted, []byte("cd")...).Deferred().Extract()
	if err != nil {
		t.Fatalf("converted Extract: %v", err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("converted strategy diverges from direct Deferred:\n%s", diff)
	}
	if direct.Count() != converted.Count() {
		t.Errorf("consumed counts diverge: %d vs %d", direct.Count(), converted.Count())
	}
}
