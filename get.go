package pluck

// Decoder converts a fixed-size run of raw bytes into a value of type V. The
// run length is fixed per Decoder and reported by Size; Decode returns false
// when the run does not form a valid value. The decode package provides
// stock implementations for common cases.
type Decoder[V any] interface {
	Size() int
	Decode(run []byte) (V, bool)
}

// GetStrategy extracts typed values, each decoded from a fixed-size run of
// raw bytes pulled through an internal AnyStrategy over the same Cursor.
type GetStrategy[V any] struct {
	c   *Cursor[byte]
	n   int
	dec Decoder[V]
}

// Get dispatches a GetStrategy producing n values of type V. Only byte
// Cursors support Get: a raw run has no defined shape for other item types.
func Get[V any](c *Cursor[byte], n int, dec Decoder[V]) *GetStrategy[V] {
	return &GetStrategy[V]{c: c, n: n, dec: dec}
}

// Extract pulls dec.Size() raw bytes per value and decodes each run in
// order, producing n values. ErrNotFound propagates unchanged when the
// Source runs out mid-run; a decode rejection stops the extraction with a
// DecodeError carrying the Cursor's total consumed count at that point.
func (s *GetStrategy[V]) Extract() ([]V, error) {
	return s.ExtractAnd(nil)
}

// ExtractAnd is Extract with an observer. Mirroring AnyStrategy, observe is
// called once per raw run, up to n times, not once for the whole typed
// result. The run buffer is reused between runs, so observers must copy
// anything they keep.
func (s *GetStrategy[V]) ExtractAnd(observe func(run []byte)) ([]V, error) {
	s.c.acquire()
	defer s.c.release()

	s.c.trace(StageTry, "Get.Extract", s.n, s.dec.Size())

	run := make([]byte, s.dec.Size())
	result := make([]V, s.n)
	for i := range result {
		if err := s.c.Any(len(run)).extractInto(run, observe); err != nil {
			s.c.trace(StageFail, "Get.Extract", s.n, len(run), err)
			return nil, err
		}

		value, ok := s.dec.Decode(run)
		if !ok {
			err := &DecodeError{Count: s.c.count}
			s.c.trace(StageFail, "Get.Extract", s.n, len(run), err)
			return nil, err
		}

		result[i] = value
	}

	s.c.trace(StageGot, "Get.Extract", s.n, len(run))
	return result, nil
}
