package pluck

// ImmediateStrategy extracts a run of items that must equal an expected
// sequence positionally, starting at the current cursor position with no
// skipping.
type ImmediateStrategy[T comparable] struct {
	c        *Cursor[T]
	expected []T
}

// Immediate dispatches an ImmediateStrategy on c for the given expected
// sequence. It is a package-level function rather than a Cursor method
// because it requires the item type to support equality.
func Immediate[T comparable](c *Cursor[T], expected ...T) *ImmediateStrategy[T] {
	return &ImmediateStrategy[T]{c: c, expected: expected}
}

// Extract consumes the next len(expected) items, requiring the item at each
// position to equal the expected value there. On success the matched items
// are returned; they equal the expected sequence, but are returned for
// symmetry with the other strategies. The first mismatch stops examination
// and returns a MismatchError; the mismatched item and everything before it
// stay consumed. Exhaustion of the Source first returns ErrNotFound.
func (s *ImmediateStrategy[T]) Extract() ([]T, error) {
	return s.ExtractAnd(nil)
}

// ExtractAnd is Extract with an observer called once with the full result on
// success.
func (s *ImmediateStrategy[T]) ExtractAnd(observe func([]T)) ([]T, error) {
	s.c.acquire()
	defer s.c.release()

	s.c.trace(StageTry, "Immediate.Extract", len(s.expected))

	result := make([]T, len(s.expected))
	err := s.c.collect(len(s.expected), func(i int, item T) error {
		if item != s.expected[i] {
			return &MismatchError{Pos: i, Count: s.c.count}
		}

		result[i] = item
		return nil
	})
	if err != nil {
		s.c.trace(StageFail, "Immediate.Extract", len(s.expected), err)
		return nil, err
	}

	if observe != nil {
		observe(result)
	}

	s.c.trace(StageGot, "Immediate.Extract", len(s.expected))
	return result, nil
}

// Deferred converts this strategy to a DeferredStrategy over the same
// Cursor, reusing the same expected sequence. Useful to retry a pattern with
// scanning semantics when an immediate match is not applicable.
func (s *ImmediateStrategy[T]) Deferred() *DeferredStrategy[T] {
	return &DeferredStrategy[T]{c: s.c, expected: s.expected}
}
