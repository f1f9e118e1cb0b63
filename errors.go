package pluck

import (
	"errors"
	"fmt"
)

// The closed set of failure reasons returned by extraction calls. The
// wrapper types below carry diagnostic context and unwrap to these, so
// callers classify failures with errors.Is.
var (
	// ErrNotFound reports that the Source was exhausted before the
	// requested items (or the deferred anchor) could be obtained.
	ErrNotFound = errors.New("source exhausted before pattern completed")

	// ErrIncorrectValue reports that an examined item did not equal the
	// expected value at its position.
	ErrIncorrectValue = errors.New("item does not match expected value")

	// ErrFailedDeserialize reports that a raw run was pulled in full but
	// the decoder rejected it.
	ErrFailedDeserialize = errors.New("unable to decode raw run")
)

// MismatchError is the failure returned when an item fails an equality
// check. Pos is the 0-based position within the failing extraction call and
// Count is the Cursor's total consumed count when the mismatch was seen; the
// mismatched item is included in both.
type MismatchError struct {
	Pos   int
	Count int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v (position %d, item %d of input)", ErrIncorrectValue, e.Pos, e.Count)
}

func (e *MismatchError) Unwrap() error {
	return ErrIncorrectValue
}

// DecodeError is the failure returned when a Decoder rejects a raw run.
// Count is the Cursor's total consumed count at the failure, which is one
// past the end of the offending run.
type DecodeError struct {
	Count int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v (ending at item %d of input)", ErrFailedDeserialize, e.Count)
}

func (e *DecodeError) Unwrap() error {
	return ErrFailedDeserialize
}
