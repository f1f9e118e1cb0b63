// Package pluck extracts and validates sequences of items pulled one at a
// time from a forward-only source.
//
// A Cursor wraps the source and hands out short-lived extraction strategies:
// Any pulls the next items verbatim, Immediate requires them to equal an
// expected sequence, Deferred scans ahead for the start of an expected
// sequence, and Get decodes fixed-size byte runs into typed values.
//
// Consumption is permanent. The engine never rewinds and never buffers
// consumed items, so an extraction that fails partway through leaves the
// cursor past everything it examined. Callers that need retry semantics must
// arrange for it above this package, for example by buffering the input
// before wrapping it in a Cursor.
package pluck

// Source is the pull interface a Cursor consumes. Next returns the next item
// and true, or the zero value and false once the source is exhausted. Any
// ordering or buffering behavior beyond that is the source's concern.
type Source[T any] interface {
	Next() (T, bool)
}

// SourceFunc is the function form of Source.
type SourceFunc[T any] func() (T, bool)

func (f SourceFunc[T]) Next() (T, bool) {
	return f()
}

// Cursor facilitates the extraction and validation of desired sequences of
// items from a Source. It is the sole reader of its Source and the sole
// authority on how many items have been consumed.
//
// A Cursor must not be shared between goroutines and exactly one extraction
// may be in flight on it at a time. Overlapping extraction calls panic.
type Cursor[T any] struct {
	// TraceFunc may be set to help track the progress of extractions for
	// help in debugging.
	TraceFunc Tracer

	src   Source[T]
	count int
	inUse bool
}

// New creates a Cursor that owns src. The consumed count starts at zero.
func New[T any](src Source[T]) *Cursor[T] {
	return &Cursor[T]{src: src}
}

// Count returns the number of items the Source has yielded to this Cursor so
// far, including items consumed by extractions that went on to fail.
func (c *Cursor[T]) Count() int {
	return c.count
}

// next pulls one item and counts it.
func (c *Cursor[T]) next() (T, bool) {
	item, ok := c.src.Next()
	if ok {
		c.count++
	}
	return item, ok
}

// collect calls the provided callback on the next items of the Source for a
// given count. Pulling stops at the first failure: exhaustion of the Source
// returns ErrNotFound and a callback rejection returns the callback's error.
// Either way, every item pulled before the failure, including a rejected
// item, remains consumed and counted.
func (c *Cursor[T]) collect(n int, callback func(i int, item T) error) error {
	for i := 0; i < n; i++ {
		item, ok := c.next()
		if !ok {
			return ErrNotFound
		}

		if err := callback(i, item); err != nil {
			return err
		}
	}

	return nil
}

// acquire marks the Cursor as borrowed for the duration of one extraction
// call. The exclusive borrow cannot be enforced at compile time, so the
// Cursor keeps an explicit guard instead.
func (c *Cursor[T]) acquire() {
	if c.inUse {
		panic("pluck: extraction started while another extraction is in flight on this Cursor")
	}
	c.inUse = true
}

func (c *Cursor[T]) release() {
	c.inUse = false
}

// Any dispatches an AnyStrategy that will extract the next n items
// unconditionally.
func (c *Cursor[T]) Any(n int) *AnyStrategy[T] {
	return &AnyStrategy[T]{c: c, n: n}
}
