package writers

import (
	"io"
)

// LazyWriteCloser delays initialization until the first write, so nothing is
// created for an output that ends up empty.
type LazyWriteCloser struct {
	init   func() (io.WriteCloser, error)
	writer io.WriteCloser
	err    error
}

// NewLazyWriteCloser returns a LazyWriteCloser calling init once, on the first
// Write. A failed init is remembered and returned by every later Write.
func NewLazyWriteCloser(init func() (io.WriteCloser, error)) *LazyWriteCloser {
	return &LazyWriteCloser{init: init}
}

func (w *LazyWriteCloser) Write(p []byte) (int, error) {
	if w.writer == nil {
		if w.err != nil {
			return 0, w.err
		}
		w.writer, w.err = w.init()
		if w.err != nil {
			w.writer = nil
			return 0, w.err
		}
	}
	return w.writer.Write(p)
}

func (w *LazyWriteCloser) Close() error {
	if w.writer != nil {
		return w.writer.Close()
	}
	return nil
}
