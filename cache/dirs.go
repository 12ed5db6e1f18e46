package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Dirs is the layout of the cache directory.
type Dirs struct {
	Root string
}

func (d Dirs) Downloads() string {
	return filepath.Join(d.Root, "downloads")
}

// Parsed holds reports of decoded meets.
func (d Dirs) Parsed() string {
	return filepath.Join(d.Root, "parsed")
}

// Report is where the report of the downloaded filename is kept.
func (d Dirs) Report(filename string) string {
	return filepath.Join(d.Parsed(), strings.TrimSuffix(filename, filepath.Ext(filename))+".yaml")
}

func (d Dirs) IndexPath() string {
	return filepath.Join(d.Root, "index.db")
}

func (d Dirs) Download(filename string) string {
	return filepath.Join(d.Downloads(), filename)
}

func (d Dirs) Ensure() error {
	for _, dir := range []string{d.Downloads(), d.Parsed()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return nil
}

// Clear removes downloaded and parsed files. The index is cleared separately
// with Index.Clear.
func (d Dirs) Clear() error {
	for _, dir := range []string{d.Downloads(), d.Parsed()} {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("removing %s: %w", dir, err)
		}
	}
	return nil
}

// Exists reports whether filename has been downloaded.
func (d Dirs) Exists(filename string) (bool, error) {
	_, err := os.Stat(d.Download(filename))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
