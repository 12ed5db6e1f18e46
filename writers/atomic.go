package writers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// AtomicFile writes to a temporary file next to path and moves it into place
// on Close. Readers never see a partly written file at path.
type AtomicFile struct {
	path string
	tmp  *os.File
}

func NewAtomicFile(path string) *AtomicFile {
	return &AtomicFile{path: path}
}

func (f *AtomicFile) Write(p []byte) (int, error) {
	if f.tmp == nil {
		dir := filepath.Dir(f.path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, fmt.Errorf("creating directory for %s: %w", f.path, err)
		}
		tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.part")
		if err != nil {
			return 0, err
		}
		f.tmp = tmp
	}
	return f.tmp.Write(p)
}

// Close moves the written content to path. Nothing is created when nothing
// was written. A failed Close leaves no temporary file behind.
func (f *AtomicFile) Close() error {
	if f.tmp == nil {
		return nil
	}
	tmp := f.tmp
	f.tmp = nil
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

// Abort drops everything written so far.
func (f *AtomicFile) Abort() error {
	if f.tmp == nil {
		return nil
	}
	tmp := f.tmp
	f.tmp = nil
	return errors.Join(tmp.Close(), os.Remove(tmp.Name()))
}
