package writers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// NewLazyFile opens path for writing on the first write, creating missing
// parent directories. An existing file is truncated.
func NewLazyFile(path string) *LazyWriteCloser {
	return NewLazyWriteCloser(func() (io.WriteCloser, error) {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating directory for %s: %w", path, err)
		}
		return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	})
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// Output resolves an output location. "-" writes to stdout, which is never
// closed; anything else is a lazily created file.
func Output(location string, stdout io.Writer) io.WriteCloser {
	if location == "-" {
		return nopCloser{stdout}
	}
	return NewLazyFile(location)
}
