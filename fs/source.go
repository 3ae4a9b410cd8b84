// Package fs provides file-based sources and output for README generation.
package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/fwojciec/readmegen"
)

// Ensure Source implements the readmegen source interfaces at compile time.
var (
	_ readmegen.DocumentSource = (*Source)(nil)
	_ readmegen.TemplateSource = (*Source)(nil)
)

// Source reads variant documents and the template from a directory.
type Source struct {
	dir      string
	pattern  string
	template string
	parser   readmegen.Parser
}

// NewSource creates a new Source. Documents are the files in dir matching
// pattern; template is a file name relative to dir.
func NewSource(dir, pattern, template string, parser readmegen.Parser) *Source {
	return &Source{
		dir:      dir,
		pattern:  pattern,
		template: template,
		parser:   parser,
	}
}

// Paths returns the files matching the source pattern in reverse
// lexicographic order, so later versions come first.
func (s *Source) Paths() ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(s.dir, s.pattern))
	if err != nil {
		return nil, readmegen.Errorf(readmegen.EINVALID, "invalid source pattern %q: %v", s.pattern, err)
	}
	slices.Sort(paths)
	slices.Reverse(paths)
	return paths, nil
}

// LoadDocuments reads and parses every matching file. Drafts are left out.
func (s *Source) LoadDocuments(ctx context.Context) ([]*readmegen.Document, error) {
	paths, err := s.Paths()
	if err != nil {
		return nil, err
	}

	docs := make([]*readmegen.Document, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		src, err := readFile(path)
		if err != nil {
			return nil, err
		}

		doc, err := s.parser.Parse(filepath.Base(path), src)
		if err != nil {
			return nil, err
		}
		if doc.Meta.Draft {
			continue
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// LoadTemplate reads the template file.
func (s *Source) LoadTemplate(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	src, err := readFile(filepath.Join(s.dir, s.template))
	if err != nil {
		return "", err
	}
	return string(src), nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, readmegen.Errorf(readmegen.ENOTFOUND, "%s not found", path)
	} else if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
