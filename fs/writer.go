// Package fs provides file-based storage for extracted text.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/urltext"
)

// EnsureDir creates the directory and any missing parents.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// Ensure Writer implements urltext.RecordWriter at compile time.
var _ urltext.RecordWriter = (*Writer)(nil)

// Writer writes records as plain-text files into a single directory.
// Existing files of the same name are overwritten, so re-running a batch
// over an unchanged input produces identical output.
type Writer struct {
	dir string
}

// NewWriter creates a new Writer that writes into dir.
// The directory must already exist; callers create it with EnsureDir after
// any interactive confirmation has happened.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Write persists one record. An empty Text is valid and produces an empty
// file, so every valid URL attempted leaves a file behind.
func (w *Writer) Write(ctx context.Context, rec *urltext.Record) error {
	if rec.Filename == "" {
		return urltext.Errorf(urltext.EINVALID, "record filename required")
	}
	return os.WriteFile(filepath.Join(w.dir, rec.Filename), []byte(rec.Text), 0644)
}
