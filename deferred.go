package pluck

// DeferredStrategy scans forward for an expected sequence: items are pulled
// and discarded until one equals the first expected value (the anchor), then
// the remaining values must match strictly with no further skipping.
type DeferredStrategy[T comparable] struct {
	c        *Cursor[T]
	expected []T
}

// Deferred dispatches a DeferredStrategy on c for the given expected
// sequence. Like Immediate, it is package-level because it requires the item
// type to support equality.
func Deferred[T comparable](c *Cursor[T], expected ...T) *DeferredStrategy[T] {
	return &DeferredStrategy[T]{c: c, expected: expected}
}

// Extract scans for the expected sequence and returns the matched items,
// anchor included. Items discarded while hunting the anchor count toward the
// Cursor's consumed count but not toward the result. Returns ErrNotFound if
// the anchor never appears before the Source is exhausted, and a
// MismatchError if an item after the anchor fails to match; scanning does
// not resume after a post-anchor mismatch.
func (s *DeferredStrategy[T]) Extract() ([]T, error) {
	return s.ExtractAnd(nil)
}

// ExtractAnd is Extract with an observer called once with the full result on
// success.
func (s *DeferredStrategy[T]) ExtractAnd(observe func([]T)) ([]T, error) {
	s.c.acquire()
	defer s.c.release()

	s.c.trace(StageTry, "Deferred.Extract", len(s.expected))

	result := make([]T, len(s.expected))
	if len(s.expected) == 0 {
		if observe != nil {
			observe(result)
		}

		s.c.trace(StageGot, "Deferred.Extract", 0)
		return result, nil
	}

	for {
		item, ok := s.c.next()
		if !ok {
			s.c.trace(StageFail, "Deferred.Extract", len(s.expected), ErrNotFound)
			return nil, ErrNotFound
		}

		if item == s.expected[0] {
			result[0] = item
			break
		}
	}

	err := s.c.collect(len(s.expected)-1, func(i int, item T) error {
		if item != s.expected[i+1] {
			return &MismatchError{Pos: i + 1, Count: s.c.count}
		}

		result[i+1] = item
		return nil
	})
	if err != nil {
		s.c.trace(StageFail, "Deferred.Extract", len(s.expected), err)
		return nil, err
	}

	if observe != nil {
		observe(result)
	}

	s.c.trace(StageGot, "Deferred.Extract", len(s.expected))
	return result, nil
}
