package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/readmegen"
	"github.com/natefinch/atomic"
)

// Ensure Writer implements readmegen.OutputWriter at compile time.
var _ readmegen.OutputWriter = (*Writer)(nil)

// Writer writes the combined output to a single file.
// The file is replaced atomically, so a failed write leaves the old one.
type Writer struct {
	path string
}

// NewWriter creates a new Writer for the file at path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the output file path.
func (w *Writer) Path() string {
	return w.path
}

// Write replaces the output file with content unless it already holds it.
func (w *Writer) Write(ctx context.Context, content string) (bool, error) {
	existing, err := w.Read(ctx)
	created := readmegen.ErrorCode(err) == readmegen.ENOTFOUND
	if err != nil && !created {
		return false, err
	} else if !created && existing == content {
		return false, nil
	}

	if err := atomic.WriteFile(w.path, strings.NewReader(content)); err != nil {
		return false, fmt.Errorf("write %s: %w", w.path, err)
	}

	// Temporary files are created 0600; existing files keep their mode.
	if created {
		if err := os.Chmod(w.path, 0644); err != nil {
			return true, fmt.Errorf("chmod %s: %w", w.path, err)
		}
	}

	return true, nil
}

// Read returns the current contents of the output file.
// A missing file is reported as ENOTFOUND.
func (w *Writer) Read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(w.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", readmegen.Errorf(readmegen.ENOTFOUND, "%s not found", w.path)
	} else if err != nil {
		return "", fmt.Errorf("read %s: %w", w.path, err)
	}
	return string(data), nil
}
