// Package goldmark parses variant sources with the goldmark markdown engine.
package goldmark

import (
	"bytes"
	"strings"

	"github.com/fwojciec/readmegen"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Ensure Parser implements readmegen.Parser at compile time.
var _ readmegen.Parser = (*Parser)(nil)

// Parser builds documents from markdown sources. Only top-level headings
// open sections, so headings in code blocks, lists or quotes are ignored.
type Parser struct {
	md goldmark.Markdown
}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{md: goldmark.New()}
}

// Parse strips optional front matter from src and locates its headings.
func (p *Parser) Parse(name string, src []byte) (*readmegen.Document, error) {
	meta, body, err := ParseFrontMatter(src)
	if err != nil {
		return nil, readmegen.Errorf(readmegen.EINVALID, "%s: %v", name, err)
	}

	root := p.md.Parser().Parse(text.NewReader(body))
	headings := collectHeadings(root, body)

	return readmegen.NewDocument(name, string(body), headings, meta), nil
}

func collectHeadings(root ast.Node, src []byte) []readmegen.Heading {
	var headings []readmegen.Heading

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok {
			continue
		}

		// Empty ATX headings carry no segment to locate them by.
		segs := h.Lines()
		if segs.Len() == 0 {
			continue
		}

		first := segs.At(0)
		last := segs.At(segs.Len() - 1)

		line := lineIndex(src, first.Start)
		bodyLine := lineIndex(src, last.Start) + 1
		if !isATX(lineAt(src, first.Start)) {
			// Skip the setext underline.
			bodyLine++
		}

		parts := make([]string, 0, segs.Len())
		for i := 0; i < segs.Len(); i++ {
			seg := segs.At(i)
			parts = append(parts, strings.TrimSpace(string(seg.Value(src))))
		}

		headings = append(headings, readmegen.Heading{
			Level:    h.Level,
			Name:     strings.Join(parts, " "),
			Line:     line,
			BodyLine: bodyLine,
		})
	}

	return headings
}

// lineIndex returns the zero-based line holding the byte at offset.
func lineIndex(src []byte, offset int) int {
	return bytes.Count(src[:offset], []byte{'\n'})
}

// lineAt returns the full line holding the byte at offset.
func lineAt(src []byte, offset int) []byte {
	start := bytes.LastIndexByte(src[:offset], '\n') + 1
	end := bytes.IndexByte(src[offset:], '\n')
	if end < 0 {
		return src[start:]
	}
	return src[start : offset+end]
}

// isATX reports whether line opens with an ATX heading marker: up to three
// spaces, one to six '#', then whitespace or end of line.
func isATX(line []byte) bool {
	trimmed := line
	for i := 0; i < 3 && len(trimmed) > 0 && trimmed[0] == ' '; i++ {
		trimmed = trimmed[1:]
	}

	n := 0
	for n < len(trimmed) && trimmed[n] == '#' {
		n++
	}
	if n == 0 || n > 6 {
		return false
	}
	return n == len(trimmed) || trimmed[n] == ' ' || trimmed[n] == '\t' || trimmed[n] == '\r'
}
