package pluck

// AnyStrategy extracts a run of items of any value. Dispatch with
// Cursor.Any; the strategy borrows the Cursor for one extraction call and
// holds no state of its own afterward.
type AnyStrategy[T any] struct {
	c *Cursor[T]
	n int
}

// Extract consumes the next n items and returns them in consumption order.
// Returns ErrNotFound if the Source runs out first; items pulled before that
// remain consumed.
func (s *AnyStrategy[T]) Extract() ([]T, error) {
	return s.ExtractAnd(nil)
}

// ExtractAnd is Extract with an observer: on success, observe is called once
// with the full result before it is returned. It is not called on failure
// and must not affect the result.
func (s *AnyStrategy[T]) ExtractAnd(observe func([]T)) ([]T, error) {
	s.c.acquire()
	defer s.c.release()

	result := make([]T, s.n)
	if err := s.extractInto(result, observe); err != nil {
		return nil, err
	}

	return result, nil
}

// extractInto fills dst from the Source and then reports it to observe.
// Shared with GetStrategy so repeated runs can reuse one buffer; callers on
// that path already hold the Cursor.
func (s *AnyStrategy[T]) extractInto(dst []T, observe func([]T)) error {
	s.c.trace(StageTry, "Any.Extract", len(dst))

	err := s.c.collect(len(dst), func(i int, item T) error {
		dst[i] = item
		return nil
	})
	if err != nil {
		s.c.trace(StageFail, "Any.Extract", len(dst), err)
		return err
	}

	if observe != nil {
		observe(dst)
	}

	s.c.trace(StageGot, "Any.Extract", len(dst))
	return nil
}
